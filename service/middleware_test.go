package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/models"
)

// recordingCacher captures activity writes in memory for assertions.
type recordingCacher struct {
	entries map[string][]string
}

func newRecordingCacher() *recordingCacher {
	return &recordingCacher{entries: make(map[string][]string)}
}

func (r *recordingCacher) Write(key string, value []byte) error {
	r.entries[key] = append([]string{string(value)}, r.entries[key]...)
	return nil
}

func (r *recordingCacher) Read(key string) ([]string, error) {
	return r.entries[key], nil
}

func TestCORSHeaders(t *testing.T) {
	_, router := newTestRouter()

	for _, path := range []string{"/books", "/definitely-not-a-route"} {
		w := doRequest(router, http.MethodGet, path, "")

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), path)
		assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Methods"), path)
		assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Headers"), path)
	}
}

func TestResponseTimeHeader(t *testing.T) {
	_, router := newTestRouter()

	t.Run("on a body response", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/books", "")
		assert.True(t, strings.HasSuffix(w.Header().Get("X-Response-Time"), "ms"))
	})

	t.Run("on a 204 response", func(t *testing.T) {
		created := decodeBook(t, doRequest(router, http.MethodPost, "/books", validPayload).Body.Bytes())
		w := doRequest(router, http.MethodDelete, "/books/"+created.ID, "")

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.True(t, strings.HasSuffix(w.Header().Get("X-Response-Time"), "ms"))
	})
}

func TestErrorRendering(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		_, router := newTestRouter()

		w := doRequest(router, http.MethodGet, "/books/ghost", "")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	})

	t.Run("plain text when the client asks for it", func(t *testing.T) {
		_, router := newTestRouter()

		req := httptest.NewRequest(http.MethodGet, "/books/ghost", nil)
		req.Header.Set("Accept", "text/plain")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		assert.Contains(t, w.Body.String(), "404")
	})
}

func TestCacheUserRequest(t *testing.T) {
	t.Run("records requests carrying a username", func(t *testing.T) {
		svc, router := newTestRouter()
		recorder := newRecordingCacher()
		svc.Requests = recorder

		doRequest(router, http.MethodGet, "/books?username=amy", "")

		require.Len(t, recorder.entries["amy"], 1)
		var entry models.UserRequest
		require.NoError(t, json.Unmarshal([]byte(recorder.entries["amy"][0]), &entry))
		assert.Equal(t, http.MethodGet, entry.Method)
		assert.Equal(t, "/books", entry.Route)
	})

	t.Run("ignores requests without a username", func(t *testing.T) {
		svc, router := newTestRouter()
		recorder := newRecordingCacher()
		svc.Requests = recorder

		doRequest(router, http.MethodGet, "/books", "")

		assert.Empty(t, recorder.entries)
	})
}

func TestActivity(t *testing.T) {
	svc, router := newTestRouter()
	recorder := newRecordingCacher()
	svc.Requests = recorder

	doRequest(router, http.MethodGet, "/books?username=amy", "")
	doRequest(router, http.MethodPost, "/books?username=amy", validPayload)

	w := doRequest(router, http.MethodGet, "/activity/amy", "")
	require.Equal(t, http.StatusOK, w.Code)

	var activity []models.UserRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activity))
	require.Len(t, activity, 2)
	assert.Equal(t, http.MethodPost, activity[0].Method)
	assert.Equal(t, http.MethodGet, activity[1].Method)
}
