package cli

import (
	"fmt"
	"strings"
	"syscall"

	"golang.org/x/term"

	"bookshelf_cli/internal/model"
)

// promptLine reads one line, falling back to def when the user just presses
// enter. The default is shown in brackets.
func (a *App) promptLine(label, def string) string {
	if def != "" {
		fmt.Fprintf(a.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(a.out, "%s: ", label)
	}

	if !a.in.Scan() {
		return def
	}

	text := strings.TrimSpace(a.in.Text())
	if text == "" {
		return def
	}
	return text
}

// promptPassword reads without echo when stdin is a terminal; piped input is
// read as a plain line.
func (a *App) promptPassword(label string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", label)

	if !a.terminal {
		if !a.in.Scan() {
			return "", a.in.Err()
		}
		return strings.TrimSpace(a.in.Text()), nil
	}

	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Fprintln(a.out)

	return strings.TrimSpace(string(bytePassword)), nil
}

func (a *App) promptYesNo(label string) bool {
	answer := a.promptLine(label+" [y/N]", "")
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

func (a *App) promptStatus(def string) string {
	for {
		answer := a.promptLine("Status (available/borrowed/lost)", def)
		switch answer {
		case model.StatusAvailable, model.StatusBorrowed, model.StatusLost:
			return answer
		}
		fmt.Fprintln(a.out, "Please enter one of: available, borrowed, lost")
	}
}

func (a *App) promptBookForm(draft model.BookDraft) model.BookDraft {
	draft.Title = a.promptLine("Title", draft.Title)
	draft.Author = a.promptLine("Author", draft.Author)
	draft.ISBN = a.promptLine("ISBN", draft.ISBN)
	draft.Description = a.promptLine("Description", draft.Description)
	draft.CoverUrl = a.promptLine("Cover URL", draft.CoverUrl)
	draft.Status = a.promptStatus(draft.Status)
	return draft
}
