package notak

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/notak/notak/pkg/models"
	"github.com/notak/notak/pkg/store"
)

// noteInput is the request body for create and update operations.
// Only title and content are caller-controlled; ID and CreatedAt are
// assigned by the store and ignored if supplied.
type noteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// handleListNotes returns all notes ordered newest-first.
//
// HTTP Method: GET
// Endpoint: /api/notes
//
// Response:
//   - 200 OK: JSON array of notes (empty array when none exist)
//   - 500 Internal Server Error: store failure
func (a *App) handleListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := a.store.ListNotes(r.Context())
	if err != nil {
		a.storeError(w, "list notes", err, "Failed to fetch notes")
		return
	}
	if notes == nil {
		notes = []*models.Note{}
	}
	respondJSON(w, http.StatusOK, notes)
}

// handleGetNote returns a single note by ID.
func (a *App) handleGetNote(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseNoteID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	note, err := a.store.GetNote(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}
	if err != nil {
		a.storeError(w, "get note", err, "Failed to fetch note")
		return
	}

	respondJSON(w, http.StatusOK, note)
}

// handleCreateNote creates a new note from a JSON payload.
//
// HTTP Method: POST
// Endpoint: /api/notes
// Content-Type: application/json
//
// Request body: {"title": "...", "content": "..."}; both fields are
// required and must be non-empty. Validation is presence-only: no length
// limits, no sanitization.
//
// Response:
//   - 201 Created: the created note with assigned ID and CreatedAt
//   - 400 Bad Request: malformed JSON or missing/empty title or content
//   - 500 Internal Server Error: store failure
func (a *App) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var input noteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if input.Title == "" || input.Content == "" {
		respondError(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	note := &models.Note{Title: input.Title, Content: input.Content}
	if err := a.store.CreateNote(r.Context(), note); err != nil {
		a.storeError(w, "create note", err, "Failed to create note")
		return
	}

	respondJSON(w, http.StatusCreated, note)
}

// handleUpdateNote replaces title and content of an existing note.
func (a *App) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseNoteID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	var input noteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if input.Title == "" || input.Content == "" {
		respondError(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	note, err := a.store.UpdateNote(r.Context(), id, input.Title, input.Content)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}
	if err != nil {
		a.storeError(w, "update note", err, "Failed to update note")
		return
	}

	respondJSON(w, http.StatusOK, note)
}

// handleDeleteNote removes a note. A delete of an already-deleted ID
// returns 404, not 204.
func (a *App) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseNoteID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	err = a.store.DeleteNote(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}
	if err != nil {
		a.storeError(w, "delete note", err, "Failed to delete note")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// handleHealth is the health check used by monitoring and the client's
// connectivity probe. Always returns 200 while the server can respond.
func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// storeError logs an unexpected persistence failure and responds with a
// generic message. Internal error detail never reaches the caller.
func (a *App) storeError(w http.ResponseWriter, op string, err error, message string) {
	a.logger.Error().Err(err).Str("op", op).Msg("store operation failed")
	respondError(w, http.StatusInternalServerError, message)
}

// respondJSON sends a JSON response with the given status and payload.
// A nil payload produces an empty body, used for 204 responses.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_, _ = w.Write(response)
	}
}

// respondError sends a standardized JSON error body: {"error": message}.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
