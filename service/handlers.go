package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookstore/cache"
	"bookstore/models"
	"bookstore/store"
)

// Service owns the collaborators the handlers need. GenerateID is a field
// so tests can inject deterministic ids.
type Service struct {
	Library    store.Library
	Requests   cache.RequestCacher
	GenerateID func() string
}

func New(library store.Library, requests cache.RequestCacher) *Service {
	return &Service{
		Library:    library,
		Requests:   requests,
		GenerateID: func() string { return uuid.New().String() },
	}
}

// createBookRequest binds the create payload. Required fields are pointers
// so presence is checked rather than zero values (year 0 stays valid).
type createBookRequest struct {
	ID      string  `json:"id"`
	Title   *string `json:"title" binding:"required"`
	Author  *string `json:"author" binding:"required"`
	Genre   *string `json:"genre" binding:"required"`
	Year    *int    `json:"year" binding:"required"`
	Summary *string `json:"summary" binding:"required"`
}

func (s *Service) ListBooks(c *gin.Context) {
	c.JSON(http.StatusOK, s.Library.List())
}

func (s *Service) GetBookById(c *gin.Context) {
	id := c.Param("id")

	book, err := s.Library.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		abortWithError(c, NotFound(fmt.Sprintf("book with id '%s' not found", id)))
		return
	}
	if err != nil {
		abortWithError(c, Internal(err))
		return
	}

	c.JSON(http.StatusOK, book)
}

func (s *Service) CreateBook(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, BadRequest("invalid book payload: "+err.Error()))
		return
	}

	book := models.Book{
		ID:      req.ID,
		Title:   *req.Title,
		Author:  *req.Author,
		Genre:   *req.Genre,
		Year:    *req.Year,
		Summary: *req.Summary,
	}
	if book.ID == "" {
		book.ID = s.GenerateID()
	}

	s.Library.Put(book.ID, book)
	c.JSON(http.StatusCreated, book)
}

func (s *Service) UpdateBookById(c *gin.Context) {
	id := c.Param("id")
	if strings.TrimSpace(id) == "" {
		abortWithError(c, BadRequest("id is required"))
		return
	}

	var patch models.BookPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, BadRequest("invalid update payload: "+err.Error()))
		return
	}

	err := s.Library.Merge(id, patch)
	if errors.Is(err, store.ErrNotFound) {
		abortWithError(c, NotFound(fmt.Sprintf("book with id '%s' not found", id)))
		return
	}
	if err != nil {
		abortWithError(c, Internal(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book updated successfully"})
}

func (s *Service) DeleteBookById(c *gin.Context) {
	id := c.Param("id")

	err := s.Library.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		abortWithError(c, NotFound(fmt.Sprintf("book with id '%s' not found", id)))
		return
	}
	if err != nil {
		abortWithError(c, Internal(err))
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Service) Activity(c *gin.Context) {
	username := c.Param("username")

	entries, err := s.Requests.Read(username)
	if err != nil {
		abortWithError(c, Internal(err))
		return
	}

	userRequests := make([]models.UserRequest, 0, len(entries))
	for _, entry := range entries {
		var userRequest models.UserRequest
		if err := json.Unmarshal([]byte(entry), &userRequest); err != nil {
			continue
		}
		userRequests = append(userRequests, userRequest)
	}

	c.JSON(http.StatusOK, userRequests)
}

// NotFoundPage answers unmatched routes with an HTML body naming the path.
func NotFoundPage(c *gin.Context) {
	body := fmt.Sprintf("<html><body><h1>404 Not Found</h1><pre>Cannot %s %s</pre></body></html>",
		c.Request.Method, html.EscapeString(c.Request.URL.Path))
	c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(body))
}
