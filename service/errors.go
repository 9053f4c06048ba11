package service

import (
	"errors"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// HTTPError is the typed error handlers attach to the context; RenderErrors
// turns it into the response body.
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

func (e *HTTPError) Error() string { return e.Message }

func (e *HTTPError) Unwrap() error { return e.Err }

func BadRequest(message string) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Message: message}
}

func NotFound(message string) *HTTPError {
	return &HTTPError{Status: http.StatusNotFound, Message: message}
}

func Internal(err error) *HTTPError {
	return &HTTPError{Status: http.StatusInternalServerError, Message: "internal server error", Err: err}
}

// abortWithError stops the handler chain without writing a body; the
// response is written by RenderErrors.
func abortWithError(c *gin.Context, err *HTTPError) {
	c.Error(err)
	c.Abort()
}

// RenderErrors is the single error boundary. It renders the last HTTPError
// attached to the context as JSON when the client accepts it, plain text
// otherwise. Untyped errors are logged and answered with a bare 500.
func RenderErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		var httpErr *HTTPError
		if !errors.As(last.Err, &httpErr) {
			log.Printf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, last.Err)
			c.String(http.StatusInternalServerError, "internal server error")
			return
		}

		if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEPlain) == gin.MIMEPlain {
			c.String(httpErr.Status, "%d %s", httpErr.Status, httpErr.Message)
			return
		}

		body := gin.H{"message": httpErr.Message, "status": httpErr.Status}
		if gin.IsDebugging() {
			body["stack"] = string(debug.Stack())
		}
		c.JSON(httpErr.Status, body)
	}
}
