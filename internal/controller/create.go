package controller

import (
	"context"

	"bookshelf_cli/internal/apiclient"
	"bookshelf_cli/internal/model"
)

type BookCreator interface {
	Create(ctx context.Context, draft model.BookDraft) (model.Book, error)
}

type CreateSnapshot struct {
	State  State
	Draft  model.BookDraft
	ErrMsg string
}

type CreateController struct {
	notifier
	books BookCreator
	nav   Navigator

	state  State
	draft  model.BookDraft
	errMsg string
}

func NewCreate(books BookCreator, nav Navigator) *CreateController {
	return &CreateController{books: books, nav: nav, state: StateIdle, draft: model.NewBookDraft()}
}

func (c *CreateController) Snapshot() CreateSnapshot {
	return CreateSnapshot{State: c.state, Draft: c.draft, ErrMsg: c.errMsg}
}

func (c *CreateController) SetDraft(draft model.BookDraft) {
	if c.state == StateLoading {
		return
	}
	c.draft = draft
	c.notify()
}

// Submit gates on the required fields, then posts the draft. On success the
// controller navigates to the new book's detail view; on failure the draft
// stays populated. A submit while one is already running is ignored.
func (c *CreateController) Submit(ctx context.Context) {
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

	book, err := c.books.Create(ctx, c.draft)
	if err != nil {
		c.state = StateError
		c.errMsg = apiclient.ErrorMessage(err, msgCreateBookFailed)
		c.notify()
		return
	}

	c.state = StateSuccess
	c.notify()

	c.nav.Navigate("/books/" + book.ID)
}
