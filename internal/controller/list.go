package controller

import (
	"context"

	"bookshelf_cli/internal/apiclient"
	"bookshelf_cli/internal/model"
)

type BookLister interface {
	List(ctx context.Context, page, pageSize int) ([]model.Book, error)
}

type ListSnapshot struct {
	State  State
	Books  []model.Book
	ErrMsg string
}

type ListController struct {
	notifier
	books    BookLister
	page     int
	pageSize int

	state  State
	items  []model.Book
	errMsg string
}

func NewList(books BookLister, page, pageSize int) *ListController {
	return &ListController{books: books, page: page, pageSize: pageSize, state: StateIdle}
}

func (c *ListController) Snapshot() ListSnapshot {
	return ListSnapshot{State: c.state, Books: c.items, ErrMsg: c.errMsg}
}

// Mount fetches the page of books. A mount while a fetch is already running
// is ignored.
func (c *ListController) Mount(ctx context.Context) {
	if c.state == StateLoading {
		return
	}

	c.state = StateLoading
	c.errMsg = ""
	c.notify()

	items, err := c.books.List(ctx, c.page, c.pageSize)
	if err != nil {
		c.state = StateError
		c.errMsg = apiclient.ErrorMessage(err, msgFetchBooksFailed)
		c.notify()
		return
	}

	c.items = items
	c.state = StateSuccess
	c.notify()
}
