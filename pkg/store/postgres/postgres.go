// Package postgres provides the PostgreSQL implementation of the
// [github.com/notak/notak/pkg/store.Store] interface using GORM.
//
// GORM handles SQL generation, connection pooling and prepared statement
// caching; individual operations are wrapped in transactions by GORM, so
// the store needs no explicit transaction management. Schema setup uses
// GORM's AutoMigrate, which only adds missing schema elements and is
// safe to run repeatedly.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/notak/notak/pkg/models"
	"github.com/notak/notak/pkg/store"
)

// PostgresStore implements the Store interface using PostgreSQL with GORM.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore connects to PostgreSQL with the given DSN.
func NewPostgresStore(dsn string) (store.Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Migrate creates or updates the notes table.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&models.Note{})
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *PostgresStore) CreateNote(ctx context.Context, note *models.Note) error {
	return s.db.WithContext(ctx).Create(note).Error
}

func (s *PostgresStore) GetNote(ctx context.Context, id models.NoteID) (*models.Note, error) {
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

func (s *PostgresStore) ListNotes(ctx context.Context) ([]*models.Note, error) {
	var notes []*models.Note
	// id breaks ties between notes created within the same timestamp tick
	err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&notes).Error
	return notes, err
}

func (s *PostgresStore) UpdateNote(ctx context.Context, id models.NoteID, title, content string) (*models.Note, error) {
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

func (s *PostgresStore) DeleteNote(ctx context.Context, id models.NoteID) error {
	res := s.db.WithContext(ctx).Delete(&models.Note{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
