package controller

import (
	"context"

	"bookshelf_cli/internal/apiclient"
	"bookshelf_cli/internal/model"
)

type BookReader interface {
	Get(ctx context.Context, id string) (model.Book, error)
	Delete(ctx context.Context, id string) error
}

type DetailSnapshot struct {
	State State
	Book  model.Book
	// ErrMsg can be set while State is still success: a failed delete keeps
	// the loaded book on screen with the error line under it.
	ErrMsg      string
	DeleteArmed bool
}

type DetailController struct {
	notifier
	books BookReader
	nav   Navigator
	id    string

	state       State
	book        model.Book
	errMsg      string
	deleteArmed bool
}

func NewDetail(books BookReader, nav Navigator, id string) *DetailController {
	return &DetailController{books: books, nav: nav, id: id, state: StateIdle}
}

func (c *DetailController) Snapshot() DetailSnapshot {
	return DetailSnapshot{State: c.state, Book: c.book, ErrMsg: c.errMsg, DeleteArmed: c.deleteArmed}
}

func (c *DetailController) Mount(ctx context.Context) {
	if c.state == StateLoading {
		return
	}

	c.state = StateLoading
	c.errMsg = ""
	c.notify()

	book, err := c.books.Get(ctx, c.id)
	if err != nil {
		c.state = StateError
		c.errMsg = apiclient.ErrorMessage(err, msgLoadBookFailed)
		c.notify()
		return
	}

	c.book = book
	c.state = StateSuccess
	c.notify()
}

// ToggleDeleteConfirm arms or disarms the two-step delete confirmation.
func (c *DetailController) ToggleDeleteConfirm() {
	c.deleteArmed = !c.deleteArmed
	c.notify()
}

// Delete removes the book once the confirmation is armed and navigates back
// to the list view. Called while disarmed or while another action runs, it
// does nothing.
func (c *DetailController) Delete(ctx context.Context) {
	if !c.deleteArmed || c.state == StateLoading {
		return
	}

	if err := c.books.Delete(ctx, c.id); err != nil {
		c.errMsg = apiclient.ErrorMessage(err, msgDeleteBookFailed)
		c.deleteArmed = false
		c.notify()
		return
	}

	c.nav.Navigate("/books")
}
