package controller

import (
	"context"

	"bookshelf_cli/internal/apiclient"
	"bookshelf_cli/internal/model"
)

type BookEditor interface {
	Get(ctx context.Context, id string) (model.Book, error)
	Update(ctx context.Context, id string, patch model.BookPatch) (model.Book, error)
}

type EditSnapshot struct {
	State  State
	Book   model.Book
	Draft  model.BookDraft
	ErrMsg string
}

type EditController struct {
	notifier
	books BookEditor
	nav   Navigator
	id    string

	state  State
	book   model.Book
	draft  model.BookDraft
	errMsg string
}

func NewEdit(books BookEditor, nav Navigator, id string) *EditController {
	return &EditController{books: books, nav: nav, id: id, state: StateIdle}
}

func (c *EditController) Snapshot() EditSnapshot {
	return EditSnapshot{State: c.state, Book: c.book, Draft: c.draft, ErrMsg: c.errMsg}
}

// Mount loads the existing book and seeds the form draft from it.
func (c *EditController) Mount(ctx context.Context) {
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
	c.draft = model.DraftFromBook(book)
	c.state = StateSuccess
	c.notify()
}

func (c *EditController) SetDraft(draft model.BookDraft) {
	if c.state == StateLoading {
		return
	}
	c.draft = draft
	c.notify()
}

// Submit requires title and author before any network call, then sends the
// patch. On success the controller navigates to the detail view; on failure
// the edits stay in the draft.
func (c *EditController) Submit(ctx context.Context) {
	if c.state == StateLoading {
		return
	}

	if err := validate.Struct(c.draft); err != nil {
		c.state = StateError
		c.errMsg = msgRequiredBookFields
		c.notify()
		return
	}

	c.state = StateLoading
	c.errMsg = ""
	c.notify()

	if _, err := c.books.Update(ctx, c.id, c.draft.Patch()); err != nil {
		c.state = StateError
		c.errMsg = apiclient.ErrorMessage(err, msgUpdateBookFailed)
		c.notify()
		return
	}

	c.state = StateSuccess
	c.notify()

	c.nav.Navigate("/books/" + c.id)
}
