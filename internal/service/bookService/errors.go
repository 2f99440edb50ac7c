package bookService

import "errors"

var ErrEmptyBookId = errors.New("empty book id")
