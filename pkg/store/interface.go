// Package store provides the data persistence layer abstraction for the
// notak application.
//
// The [Store] interface implements the repository pattern over the Note
// collection so the HTTP layer never touches the database directly. Two
// implementations exist:
//
//   - [github.com/notak/notak/pkg/store/postgres.PostgresStore]: GORM over
//     PostgreSQL, the deployment backend
//   - [github.com/notak/notak/pkg/store/sqlite.SQLiteStore]: GORM over a
//     pure-Go SQLite driver, used for local development and tests
//
// Both back ends provide ACID semantics for individual operations; the
// application performs no locking of its own and delegates all
// consistency to the database.
//
// Absent rows are reported as [ErrNotFound] rather than (nil, nil) so
// callers can distinguish "no such note" from a store failure with
// [errors.Is].
package store

import (
	"context"
	"errors"

	"github.com/notak/notak/pkg/models"
)

// ErrNotFound is returned by Get, Update and Delete when no note exists
// with the given ID. The API layer maps it to HTTP 404.
var ErrNotFound = errors.New("note not found")

// Store defines the persistence operations over the Note collection.
type Store interface {
	// CreateNote persists a new note. The store assigns ID and CreatedAt.
	CreateNote(ctx context.Context, note *models.Note) error

	// GetNote returns the note with the given ID, or ErrNotFound.
	GetNote(ctx context.Context, id models.NoteID) (*models.Note, error)

	// ListNotes returns all notes ordered newest-first by creation time.
	ListNotes(ctx context.Context) ([]*models.Note, error)

	// UpdateNote replaces title and content of an existing note, leaving
	// ID and CreatedAt untouched. Returns the updated note, or
	// ErrNotFound when no note matched.
	UpdateNote(ctx context.Context, id models.NoteID, title, content string) (*models.Note, error)

	// DeleteNote removes the note with the given ID. Returns ErrNotFound
	// when no note matched, so a second delete of the same ID fails.
	DeleteNote(ctx context.Context, id models.NoteID) error

	// Migrate initializes or updates the schema.
	Migrate(ctx context.Context) error

	// Close releases the underlying database connection.
	Close() error
}
