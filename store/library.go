package store

import (
	"errors"

	"bookstore/models"
)

// ErrNotFound is returned when no book exists for an id.
var ErrNotFound = errors.New("book not found")

// Library holds the authoritative set of books. Implementations must be
// safe for concurrent use.
type Library interface {
	// List returns every book. Order is not guaranteed.
	List() []models.Book

	// Get returns the book stored under id, or ErrNotFound.
	Get(id string) (models.Book, error)

	// Put inserts or replaces the book stored under id.
	Put(id string, book models.Book)

	// Merge shallow-merges patch into the book stored under id.
	// Returns ErrNotFound if the id is absent.
	Merge(id string, patch models.BookPatch) error

	// Delete removes the book stored under id, or returns ErrNotFound.
	Delete(id string) error
}
