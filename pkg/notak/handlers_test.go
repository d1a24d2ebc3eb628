package notak

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/notak/notak/pkg/models"
	"github.com/notak/notak/pkg/store"
	"github.com/notak/notak/pkg/store/sqlite"
)

// newTestApp builds an App over a fresh SQLite database with the schema
// migrated, exactly as the production wiring does except for the silent
// logger.
func newTestApp(t *testing.T) *App {
	t.Helper()

	s, err := sqlite.NewSQLiteStore(filepath.Join(t.TempDir(), "notak.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate(context.Background()))

	app := &App{
		config: &Config{ServerPort: "0"},
		logger: zerolog.Nop(),
	}
	app.store = store.NewReadOnlyStore(s, app.IsReadOnly)
	return app
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeNote(t *testing.T, rec *httptest.ResponseRecorder) models.Note {
	t.Helper()
	var note models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	return note
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestHealth(t *testing.T) {
	h := newTestApp(t).Handler()

	for _, path := range []string{"/api/health", "/health"} {
		rec := doRequest(t, h, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	}
}

func TestCreateNote(t *testing.T) {
	h := newTestApp(t).Handler()

	before := time.Now().Add(time.Second)
	rec := doRequest(t, h, http.MethodPost, "/api/notes", map[string]string{
		"title": "A", "content": "B",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	note := decodeNote(t, rec)
	require.False(t, note.ID.IsZero())
	require.Equal(t, "A", note.Title)
	require.Equal(t, "B", note.Content)
	require.False(t, note.CreatedAt.After(before))

	// the created note appears in the list
	rec = doRequest(t, h, http.MethodGet, "/api/notes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var notes []models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 1)
	require.Equal(t, note.ID, notes[0].ID)
}

func TestCreateNoteValidation(t *testing.T) {
	app := newTestApp(t)
	h := app.Handler()

	cases := []struct {
		name string
		body any
	}{
		{"missing title", map[string]string{"content": "B"}},
		{"missing content", map[string]string{"title": "A"}},
		{"empty title", map[string]string{"title": "", "content": "B"}},
		{"empty content", map[string]string{"title": "A", "content": ""}},
		{"empty body", map[string]string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodPost, "/api/notes", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, "Title and content are required", decodeError(t, rec))
		})
	}

	t.Run("malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/notes", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	// rejected requests must not alter the store
	notes, err := app.Store().ListNotes(context.Background())
	require.NoError(t, err)
	require.Empty(t, notes)
}

func TestListNotesEmpty(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := doRequest(t, h, http.MethodGet, "/api/notes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestListNotesNewestFirst(t *testing.T) {
	app := newTestApp(t)
	h := app.Handler()

	// seed through the store with explicit timestamps t1 < t2 < t3
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	for i, title := range []string{"t1", "t2", "t3"} {
		require.NoError(t, app.Store().CreateNote(context.Background(), &models.Note{
			Title:     title,
			Content:   "body",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	rec := doRequest(t, h, http.MethodGet, "/api/notes", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var notes []models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 3)
	require.Equal(t, "t3", notes[0].Title)
	require.Equal(t, "t2", notes[1].Title)
	require.Equal(t, "t1", notes[2].Title)
}

func TestInvalidIDRejected(t *testing.T) {
	h := newTestApp(t).Handler()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := doRequest(t, h, method, "/api/notes/abc", map[string]string{
			"title": "A", "content": "B",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code, "%s /api/notes/abc", method)
		require.Equal(t, "Invalid note ID", decodeError(t, rec))
	}
}

func TestMissingIDReturns404(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := doRequest(t, h, http.MethodGet, "/api/notes/99", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Note not found", decodeError(t, rec))

	rec = doRequest(t, h, http.MethodPut, "/api/notes/99", map[string]string{
		"title": "A", "content": "B",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, h, http.MethodDelete, "/api/notes/99", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateNote(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := doRequest(t, h, http.MethodPost, "/api/notes", map[string]string{
		"title": "A", "content": "B",
	})
	created := decodeNote(t, rec)

	rec = doRequest(t, h, http.MethodPut, fmt.Sprintf("/api/notes/%s", created.ID), map[string]string{
		"title": "A2", "content": "B2",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeNote(t, rec)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "A2", updated.Title)
	require.Equal(t, "B2", updated.Content)
	require.True(t, updated.CreatedAt.Equal(created.CreatedAt))

	// update validation mirrors create
	rec = doRequest(t, h, http.MethodPut, fmt.Sprintf("/api/notes/%s", created.ID), map[string]string{
		"title": "", "content": "B2",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteNote(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := doRequest(t, h, http.MethodPost, "/api/notes", map[string]string{
		"title": "A", "content": "B",
	})
	created := decodeNote(t, rec)

	rec = doRequest(t, h, http.MethodDelete, fmt.Sprintf("/api/notes/%s", created.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.Bytes())

	// delete is not idempotent: the second call reports 404
	rec = doRequest(t, h, http.MethodDelete, fmt.Sprintf("/api/notes/%s", created.ID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEndToEndScenario(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := doRequest(t, h, http.MethodPost, "/api/notes", map[string]string{
		"title": "A", "content": "B",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeNote(t, rec)
	require.Equal(t, models.NoteID(1), created.ID)

	rec = doRequest(t, h, http.MethodGet, "/api/notes", nil)
	var notes []models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 1)
	require.Equal(t, "A", notes[0].Title)
	require.Equal(t, "B", notes[0].Content)

	rec = doRequest(t, h, http.MethodPut, "/api/notes/1", map[string]string{
		"title": "A2", "content": "B2",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeNote(t, rec)
	require.Equal(t, "A2", updated.Title)
	require.Equal(t, "B2", updated.Content)

	rec = doRequest(t, h, http.MethodDelete, "/api/notes/1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/notes/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReadOnlyModeRejectsWrites(t *testing.T) {
	app := newTestApp(t)
	h := app.Handler()

	rec := doRequest(t, h, http.MethodPost, "/api/notes", map[string]string{
		"title": "A", "content": "B",
	})
	created := decodeNote(t, rec)

	app.SetReadOnly(true)

	rec = doRequest(t, h, http.MethodPost, "/api/notes", map[string]string{
		"title": "X", "content": "Y",
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	// internal detail stays server-side
	require.Equal(t, "Failed to create note", decodeError(t, rec))

	// reads still work
	rec = doRequest(t, h, http.MethodGet, fmt.Sprintf("/api/notes/%s", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	app.SetReadOnly(false)
	rec = doRequest(t, h, http.MethodDelete, fmt.Sprintf("/api/notes/%s", created.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := doRequest(t, h, http.MethodGet, "/api/notes", nil)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
