package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"bookstore/models"
)

// CORS sets the permissive cross-origin headers on every response,
// unmatched routes included.
func CORS(c *gin.Context) {
	header := c.Writer.Header()
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
	c.Next()
}

// timedWriter stamps X-Response-Time right before the first header or body
// byte goes out, while headers can still be set.
type timedWriter struct {
	gin.ResponseWriter
	start   time.Time
	stamped bool
}

func (w *timedWriter) stamp() {
	if w.stamped {
		return
	}
	w.stamped = true
	elapsed := float64(time.Since(w.start)) / float64(time.Millisecond)
	w.Header().Set("X-Response-Time", fmt.Sprintf("%.3fms", elapsed))
}

func (w *timedWriter) WriteHeader(code int) {
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *timedWriter) Write(b []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(b)
}

func (w *timedWriter) WriteString(s string) (int, error) {
	w.stamp()
	return w.ResponseWriter.WriteString(s)
}

// ResponseTime reports handler latency in the X-Response-Time header.
func ResponseTime() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer = &timedWriter{ResponseWriter: c.Writer, start: time.Now()}
		c.Next()
	}
}

// CacheUserRequest records the method and route of every request carrying
// a username query parameter. A cache failure never fails the request.
func (s *Service) CacheUserRequest(c *gin.Context) {
	username, ok := c.GetQuery("username")
	if !ok {
		c.Next()
		return
	}

	userRequest := models.UserRequest{
		Method: c.Request.Method,
		Route:  c.Request.URL.Path,
	}

	request, err := json.Marshal(userRequest)
	if err == nil {
		if err := s.Requests.Write(username, request); err != nil {
			log.Printf("activity cache write for %q: %v", username, err)
		}
	}

	c.Next()
}
