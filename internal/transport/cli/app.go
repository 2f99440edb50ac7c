// Package cli is the terminal transport: cobra commands are the navigation
// entry points, each resolving a route through the guard, mounting the
// matching view controller and rendering its snapshots. Navigations a
// controller requests after a successful action are followed in the same run.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"bookshelf_cli/config"
	"bookshelf_cli/internal/controller"
	"bookshelf_cli/internal/model"
	"bookshelf_cli/internal/router"
	"bookshelf_cli/internal/service/authService"
	"bookshelf_cli/internal/service/bookService"
	"bookshelf_cli/utils"
)

const maxRedirects = 5

type App struct {
	cfg    *config.Config
	router *router.Router
	auth   *authService.AuthService
	books  *bookService.BookService

	in    *bufio.Scanner
	out   io.Writer
	color bool
	// terminal is true when stdin is an interactive terminal; passwords are
	// read without echo only then
	terminal bool

	// pending is the navigation a controller requested during an action; the
	// handler follows it once the action returns.
	pending string
}

func New(cfg *config.Config, rtr *router.Router, auth *authService.AuthService, books *bookService.BookService) *App {
	return &App{
		cfg:      cfg,
		router:   rtr,
		auth:     auth,
		books:    books,
		in:       bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
		color:    term.IsTerminal(int(os.Stdout.Fd())),
		terminal: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// Open starts one navigation with a fresh request id.
func (a *App) Open(target string) error {
	ctx := utils.CreateCtxWithRqID(context.Background())
	return a.navigate(ctx, target, 0)
}

// Navigate implements controller.Navigator. The request is queued, not
// followed immediately, so a controller action finishes before the next view
// mounts.
func (a *App) Navigate(path string) {
	a.pending = path
}

func (a *App) followPending(ctx context.Context, depth int) error {
	if a.pending == "" {
		return nil
	}
	target := a.pending
	a.pending = ""
	return a.navigate(ctx, target, depth+1)
}

func (a *App) navigate(ctx context.Context, target string, depth int) error {
	op := "cli.navigate"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if depth > maxRedirects {
		return fmt.Errorf("navigation loop at %s", target)
	}

	match, redirect := a.router.Resolve(ctx, target)
	if redirect != "" {
		slog.Debug("redirect", slog.String("rqID", rqID), slog.String("op", op), slog.String("from", target), slog.String("to", redirect))
		return a.navigate(ctx, redirect, depth+1)
	}

	slog.Debug("navigated", slog.String("rqID", rqID), slog.String("op", op), slog.String("target", target), slog.String("view", string(match.View)))

	switch match.View {
	case router.ViewList:
		return a.showList(ctx, match)
	case router.ViewDetail:
		return a.showDetail(ctx, match)
	case router.ViewCreate:
		return a.showCreate(ctx, depth)
	case router.ViewEdit:
		return a.showEdit(ctx, match, depth)
	case router.ViewLogin:
		return a.showLogin(ctx, match, depth)
	case router.ViewRegister:
		return a.showRegister(ctx, depth)
	}

	return nil
}

func (a *App) showList(ctx context.Context, match router.Match) error {
	page := queryInt(match.Query, "page", 1)
	pageSize := queryInt(match.Query, "page_size", a.cfg.BooksPerPage)

	ctrl := controller.NewList(a.books, page, pageSize)
	ctrl.Subscribe(func() {
		a.renderList(ctrl.Snapshot())
	})

	ctrl.Mount(ctx)

	if snap := ctrl.Snapshot(); snap.State == controller.StateError {
		return errors.New(snap.ErrMsg)
	}
	return nil
}

func (a *App) showDetail(ctx context.Context, match router.Match) error {
	ctrl := controller.NewDetail(a.books, a, match.Params["id"])
	ctrl.Subscribe(func() {
		a.renderDetail(ctrl.Snapshot())
	})

	ctrl.Mount(ctx)

	if snap := ctrl.Snapshot(); snap.State == controller.StateError {
		return errors.New(snap.ErrMsg)
	}
	return nil
}

// runDelete drives the detail view's two-step delete confirmation for one
// book: load, arm, confirm, delete, then follow the controller back to the
// list view.
func (a *App) runDelete(ctx context.Context, id string) error {
	match, redirect := a.router.Resolve(ctx, "/books/"+id)
	if redirect != "" {
		return a.navigate(ctx, redirect, 1)
	}

	ctrl := controller.NewDetail(a.books, a, match.Params["id"])
	ctrl.Mount(ctx)

	snap := ctrl.Snapshot()
	if snap.State == controller.StateError {
		a.renderError(snap.ErrMsg)
		return errors.New(snap.ErrMsg)
	}
	a.renderDetail(snap)

	ctrl.ToggleDeleteConfirm()
	if !a.promptYesNo(promptConfirmDelete) {
		ctrl.ToggleDeleteConfirm()
		fmt.Fprintln(a.out, msgDeleteCancelled)
		return nil
	}

	ctrl.Delete(ctx)

	snap = ctrl.Snapshot()
	if snap.ErrMsg != "" {
		a.renderError(snap.ErrMsg)
		return errors.New(snap.ErrMsg)
	}

	fmt.Fprintln(a.out, msgBookDeleted)
	return a.followPending(ctx, 0)
}

func (a *App) showCreate(ctx context.Context, depth int) error {
	ctrl := controller.NewCreate(a.books, a)
	draft := ctrl.Snapshot().Draft

	fmt.Fprintln(a.out, headerNewBook)

	for {
		draft = a.promptBookForm(draft)
		ctrl.SetDraft(draft)
		ctrl.Submit(ctx)

		snap := ctrl.Snapshot()
		if snap.State == controller.StateSuccess {
			fmt.Fprintln(a.out, msgBookCreated)
			return a.followPending(ctx, depth)
		}

		a.renderError(snap.ErrMsg)
		if !a.promptYesNo(promptTryAgain) {
			return errors.New(snap.ErrMsg)
		}
		draft = snap.Draft
	}
}

func (a *App) showEdit(ctx context.Context, match router.Match, depth int) error {
	ctrl := controller.NewEdit(a.books, a, match.Params["id"])
	ctrl.Mount(ctx)

	snap := ctrl.Snapshot()
	if snap.State == controller.StateError {
		a.renderError(snap.ErrMsg)
		return errors.New(snap.ErrMsg)
	}

	fmt.Fprintf(a.out, headerEditBook+"\n", snap.Book.Title)
	draft := snap.Draft

	for {
		draft = a.promptBookForm(draft)
		ctrl.SetDraft(draft)
		ctrl.Submit(ctx)

		snap = ctrl.Snapshot()
		if snap.State == controller.StateSuccess {
			fmt.Fprintln(a.out, msgBookUpdated)
			return a.followPending(ctx, depth)
		}

		a.renderError(snap.ErrMsg)
		if !a.promptYesNo(promptTryAgain) {
			return errors.New(snap.ErrMsg)
		}
		draft = snap.Draft
	}
}

func (a *App) showLogin(ctx context.Context, match router.Match, depth int) error {
	ctrl := controller.NewLogin(a.auth, a)
	ctrl.Mount(match.Query)

	if notice := ctrl.Snapshot().Notice; notice != "" {
		a.renderNotice(notice)
	}
	fmt.Fprintln(a.out, headerLogin)

	creds := model.Credentials{}

	for {
		creds.Email = a.promptLine("Email", creds.Email)
		password, err := a.promptPassword("Password")
		if err != nil {
			return err
		}
		creds.Password = password

		ctrl.SetCredentials(creds)
		ctrl.Submit(ctx)

		snap := ctrl.Snapshot()
		if snap.State == controller.StateSuccess {
			fmt.Fprintln(a.out, msgLoggedIn)
			return a.followPending(ctx, depth)
		}

		a.renderError(snap.ErrMsg)
		if !a.promptYesNo(promptTryAgain) {
			return errors.New(snap.ErrMsg)
		}
		creds = snap.Creds
	}
}

func (a *App) showRegister(ctx context.Context, depth int) error {
	ctrl := controller.NewRegister(a.auth, a)

	fmt.Fprintln(a.out, headerRegister)

	form := model.Registration{}

	for {
		form.Name = a.promptLine("Name", form.Name)
		form.Email = a.promptLine("Email", form.Email)
		password, err := a.promptPassword("Password")
		if err != nil {
			return err
		}
		form.Password = password

		ctrl.SetForm(form)
		ctrl.Submit(ctx)

		snap := ctrl.Snapshot()
		if snap.State == controller.StateSuccess {
			return a.followPending(ctx, depth)
		}

		a.renderError(snap.ErrMsg)
		if !a.promptYesNo(promptTryAgain) {
			return errors.New(snap.ErrMsg)
		}
		form = snap.Form
	}
}
