package bookService

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"bookshelf_cli/config"
	"bookshelf_cli/internal/model"
	"bookshelf_cli/utils"
)

type Gateway interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Put(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string) error
}

// BookService maps the catalog operations 1:1 onto the backend's /books
// endpoints. It holds no state of its own; books live on the backend and the
// controllers hold transient copies.
type BookService struct {
	cfg     *config.Config
	gateway Gateway
}

func New(cfg *config.Config, gateway Gateway) *BookService {
	return &BookService{cfg: cfg, gateway: gateway}
}

// List returns one page of books in the order the backend sent them.
func (s *BookService) List(ctx context.Context, page, pageSize int) ([]model.Book, error) {
	op := "bookService.List"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = s.cfg.BooksPerPage
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	var books []model.Book
	if err := s.gateway.Get(ctx, "/books", query, &books); err != nil {
		slog.Error("got error from gateway.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, err
	}

	return books, nil
}

func (s *BookService) Get(ctx context.Context, id string) (model.Book, error) {
	op := "bookService.Get"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if id == "" {
		return model.Book{}, ErrEmptyBookId
	}

	var book model.Book
	if err := s.gateway.Get(ctx, "/books/"+url.PathEscape(id), nil, &book); err != nil {
		slog.Error("got error from gateway.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("id", id))
		return model.Book{}, err
	}

	return book, nil
}

// Create posts the draft and returns the created book with its
// backend-assigned id and timestamps.
func (s *BookService) Create(ctx context.Context, draft model.BookDraft) (model.Book, error) {
	op := "bookService.Create"
	rqID := utils.GetRequestIDFromCtx(ctx)

	var book model.Book
	if err := s.gateway.Post(ctx, "/books", draft, &book); err != nil {
		slog.Error("got error from gateway.Post", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Book{}, err
	}

	return book, nil
}

func (s *BookService) Update(ctx context.Context, id string, patch model.BookPatch) (model.Book, error) {
	op := "bookService.Update"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if id == "" {
		return model.Book{}, ErrEmptyBookId
	}

	var book model.Book
	if err := s.gateway.Put(ctx, "/books/"+url.PathEscape(id), patch, &book); err != nil {
		slog.Error("got error from gateway.Put", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("id", id))
		return model.Book{}, err
	}

	return book, nil
}

// Delete removes the book. Deleting an id the backend no longer knows
// surfaces the backend's error; nothing is swallowed here.
func (s *BookService) Delete(ctx context.Context, id string) error {
	op := "bookService.Delete"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if id == "" {
		return ErrEmptyBookId
	}

	if err := s.gateway.Delete(ctx, "/books/"+url.PathEscape(id)); err != nil {
		slog.Error("got error from gateway.Delete", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("id", id))
		return err
	}

	return nil
}
