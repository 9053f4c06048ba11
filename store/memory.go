package store

import (
	"sync"

	"bookstore/models"
)

// MemoryLibrary implements Library with a mutex-guarded map. gin serves
// requests on concurrent goroutines, so reads share the lock and writes
// take it exclusively.
type MemoryLibrary struct {
	mu    sync.RWMutex
	books map[string]models.Book
}

// NewMemoryLibrary creates an empty in-memory library.
func NewMemoryLibrary() *MemoryLibrary {
	return &MemoryLibrary{books: make(map[string]models.Book)}
}

func (l *MemoryLibrary) List() []models.Book {
	l.mu.RLock()
	defer l.mu.RUnlock()

	books := make([]models.Book, 0, len(l.books))
	for _, book := range l.books {
		books = append(books, book)
	}
	return books
}

func (l *MemoryLibrary) Get(id string) (models.Book, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	book, ok := l.books[id]
	if !ok {
		return models.Book{}, ErrNotFound
	}
	return book, nil
}

func (l *MemoryLibrary) Put(id string, book models.Book) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.books[id] = book
}

func (l *MemoryLibrary) Merge(id string, patch models.BookPatch) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	book, ok := l.books[id]
	if !ok {
		return ErrNotFound
	}
	book.Apply(patch)
	l.books[id] = book
	return nil
}

func (l *MemoryLibrary) Delete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.books[id]; !ok {
		return ErrNotFound
	}
	delete(l.books, id)
	return nil
}
