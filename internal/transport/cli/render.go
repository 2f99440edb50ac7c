package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"bookshelf_cli/internal/controller"
	"bookshelf_cli/internal/model"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorBlue   = "\033[34m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
)

type statusBadge struct {
	label string
	color string
}

// statusBadges is total over the backend's status enum; anything else falls
// through to the raw value uncolored.
var statusBadges = map[string]statusBadge{
	model.StatusAvailable: {label: "Available", color: colorGreen},
	model.StatusBorrowed:  {label: "Borrowed", color: colorBlue},
	model.StatusLost:      {label: "Lost", color: colorRed},
}

func formatStatus(status string, color bool) string {
	badge, ok := statusBadges[status]
	if !ok {
		return status
	}
	if !color {
		return badge.label
	}
	return badge.color + badge.label + colorReset
}

func (a *App) renderList(snap controller.ListSnapshot) {
	switch snap.State {
	case controller.StateLoading:
		fmt.Fprintln(a.out, "Fetching books...")
	case controller.StateError:
		a.renderError(snap.ErrMsg)
	case controller.StateSuccess:
		if len(snap.Books) == 0 {
			fmt.Fprintln(a.out, msgNoBooks)
			return
		}
		fmt.Fprintf(a.out, "Books (%d):\n", len(snap.Books))
		for _, b := range snap.Books {
			fmt.Fprintf(a.out, "  %s  %s — %s  [%s]\n", b.ID, b.Title, b.Author, formatStatus(b.Status, a.color))
		}
	}
}

func (a *App) renderDetail(snap controller.DetailSnapshot) {
	switch snap.State {
	case controller.StateLoading:
		fmt.Fprintln(a.out, "Loading book...")
	case controller.StateError:
		a.renderError(snap.ErrMsg)
	case controller.StateSuccess:
		b := snap.Book
		cover := b.CoverUrl
		if cover == "" {
			cover = msgNoCover
		}
		fmt.Fprintf(a.out, "%s\n", b.Title)
		fmt.Fprintf(a.out, "  Author:  %s\n", b.Author)
		fmt.Fprintf(a.out, "  Status:  %s\n", formatStatus(b.Status, a.color))
		if b.ISBN != "" {
			fmt.Fprintf(a.out, "  ISBN:    %s\n", b.ISBN)
		}
		fmt.Fprintf(a.out, "  Cover:   %s\n", cover)
		if b.Description != "" {
			fmt.Fprintf(a.out, "  %s\n", b.Description)
		}
		if !b.CreatedAt.IsZero() {
			fmt.Fprintf(a.out, "  Added:   %s\n", b.CreatedAt.Format("2006-01-02 15:04"))
		}
		// a failed delete keeps the book on screen with the error under it
		if snap.ErrMsg != "" {
			a.renderError(snap.ErrMsg)
		}
	}
}

func (a *App) renderError(msg string) {
	if a.color {
		fmt.Fprintln(a.out, colorRed+"Error: "+msg+colorReset)
		return
	}
	fmt.Fprintln(a.out, "Error: "+msg)
}

func (a *App) renderNotice(msg string) {
	if a.color {
		fmt.Fprintln(a.out, colorYellow+msg+colorReset)
		return
	}
	fmt.Fprintln(a.out, msg)
}

func queryInt(query url.Values, key string, def int) int {
	v := query.Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}
