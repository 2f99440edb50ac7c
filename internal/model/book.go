package model

import "time"

const (
	StatusAvailable = "available"
	StatusBorrowed  = "borrowed"
	StatusLost      = "lost"
)

type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	ISBN        string    `json:"isbn"`
	Description string    `json:"description"`
	CoverUrl    string    `json:"cover_url"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BookDraft holds the fields a user can enter in the create and edit forms.
// Id and timestamps are assigned by the backend and never sent.
type BookDraft struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	ISBN        string `json:"isbn"`
	Description string `json:"description"`
	CoverUrl    string `json:"cover_url"`
	Status      string `json:"status" validate:"required,oneof=available borrowed lost"`
}

func NewBookDraft() BookDraft {
	return BookDraft{Status: StatusAvailable}
}

func DraftFromBook(b Book) BookDraft {
	return BookDraft{
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Description: b.Description,
		CoverUrl:    b.CoverUrl,
		Status:      b.Status,
	}
}

// BookPatch enumerates exactly the mutable Book fields for a partial update.
// Nil members are omitted from the request body.
type BookPatch struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	ISBN        *string `json:"isbn,omitempty"`
	Description *string `json:"description,omitempty"`
	CoverUrl    *string `json:"cover_url,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// Patch converts the draft into a full patch of the mutable fields, the shape
// the edit form submits.
func (d BookDraft) Patch() BookPatch {
	return BookPatch{
		Title:       &d.Title,
		Author:      &d.Author,
		ISBN:        &d.ISBN,
		Description: &d.Description,
		CoverUrl:    &d.CoverUrl,
		Status:      &d.Status,
	}
}
