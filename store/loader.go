package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"bookstore/models"
)

// LoadFile seeds the library from a JSON array of books, preserving the
// ids in the file. Entries without an id are skipped. Returns the number
// of books loaded; callers treat errors as non-fatal and start with
// whatever loaded.
func LoadFile(path string, library Library) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var books []models.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return 0, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	loaded := 0
	for i, book := range books {
		if book.ID == "" {
			log.Printf("seed file %s: entry %d has no id, skipping", path, i)
			continue
		}
		library.Put(book.ID, book)
		loaded++
	}
	return loaded, nil
}
