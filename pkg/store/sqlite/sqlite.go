// Package sqlite provides the SQLite implementation of the
// [github.com/notak/notak/pkg/store.Store] interface using GORM.
//
// It uses the glebarez/sqlite driver, a cgo-free port built on the
// modernc SQLite translation, so local development and tests need no C
// toolchain. Behavior mirrors the postgres package; only the driver and
// DSN handling differ.
package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/notak/notak/pkg/models"
	"github.com/notak/notak/pkg/store"
)

// SQLiteStore implements the Store interface using a SQLite database file.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (or creates) the SQLite database at path.
// The special path ":memory:" yields a private in-memory database.
func NewSQLiteStore(path string) (store.Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %q: %w", path, err)
	}
	return &SQLiteStore{db: db}, nil
}

// Migrate creates or updates the notes table.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&models.Note{})
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLiteStore) CreateNote(ctx context.Context, note *models.Note) error {
	return s.db.WithContext(ctx).Create(note).Error
}

func (s *SQLiteStore) GetNote(ctx context.Context, id models.NoteID) (*models.Note, error) {
	var note models.Note
	err := s.db.WithContext(ctx).First(&note, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

func (s *SQLiteStore) ListNotes(ctx context.Context) ([]*models.Note, error) {
	var notes []*models.Note
	err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&notes).Error
	return notes, err
}

func (s *SQLiteStore) UpdateNote(ctx context.Context, id models.NoteID, title, content string) (*models.Note, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ?", id).
		Updates(map[string]any{"title": title, "content": content})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return s.GetNote(ctx, id)
}

func (s *SQLiteStore) DeleteNote(ctx context.Context, id models.NoteID) error {
	res := s.db.WithContext(ctx).Delete(&models.Note{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
