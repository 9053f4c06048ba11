package models

// Book is the single managed resource. Ids are opaque strings, assigned
// either by the seed loader (preserved from the file) or by the create
// handler when the caller supplies none.
type Book struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Genre   string `json:"genre"`
	Year    int    `json:"year"`
	Summary string `json:"summary"`
}

// BookPatch is a partial update. A nil field was not supplied and is left
// untouched by Apply. Unknown JSON keys are dropped on decode.
type BookPatch struct {
	Title   *string `json:"title"`
	Author  *string `json:"author"`
	Genre   *string `json:"genre"`
	Year    *int    `json:"year"`
	Summary *string `json:"summary"`
}

// Apply shallow-merges the supplied patch fields into the book.
func (b *Book) Apply(patch BookPatch) {
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Author != nil {
		b.Author = *patch.Author
	}
	if patch.Genre != nil {
		b.Genre = *patch.Genre
	}
	if patch.Year != nil {
		b.Year = *patch.Year
	}
	if patch.Summary != nil {
		b.Summary = *patch.Summary
	}
}
