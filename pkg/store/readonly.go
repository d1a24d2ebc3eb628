package store

import (
	"context"
	"fmt"

	"github.com/notak/notak/pkg/models"
)

// ReadOnlyStore wraps a Store and rejects write operations while the
// application is in read-only mode.
//
// The read-only state is determined dynamically by the isReadOnly
// function, so the application can toggle between read-write and
// read-only without recreating the store instance. This is used for
// maintenance windows, for example while taking a backup of the note
// database.
//
// Write operations (Create, Update, Delete) return an error while
// read-only; Get and List continue to work normally.
type ReadOnlyStore struct {
	Store
	isReadOnly func() bool
}

// NewReadOnlyStore creates a read-only wrapper for a store.
func NewReadOnlyStore(store Store, isReadOnly func() bool) Store {
	return &ReadOnlyStore{
		Store:      store,
		isReadOnly: isReadOnly,
	}
}

// Unwrap returns the underlying store.
func (r *ReadOnlyStore) Unwrap() Store {
	return r.Store
}

func (r *ReadOnlyStore) checkReadOnly() error {
	if r.isReadOnly() {
		return fmt.Errorf("operation denied: server is in read-only mode")
	}
	return nil
}

func (r *ReadOnlyStore) CreateNote(ctx context.Context, note *models.Note) error {
	if err := r.checkReadOnly(); err != nil {
		return err
	}
	return r.Store.CreateNote(ctx, note)
}

func (r *ReadOnlyStore) UpdateNote(ctx context.Context, id models.NoteID, title, content string) (*models.Note, error) {
	if err := r.checkReadOnly(); err != nil {
		return nil, err
	}
	return r.Store.UpdateNote(ctx, id, title, content)
}

func (r *ReadOnlyStore) DeleteNote(ctx context.Context, id models.NoteID) error {
	if err := r.checkReadOnly(); err != nil {
		return err
	}
	return r.Store.DeleteNote(ctx, id)
}
