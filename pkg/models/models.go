package models

import (
	"fmt"
	"strconv"
	"time"
)

// NoteID is a typed ID for notes. IDs are assigned by the store as an
// autoincrementing integer on creation and are immutable afterwards.
type NoteID int64

// ParseNoteID parses the string form of a note ID, as it appears in URL
// path segments. Non-integer input is rejected.
func ParseNoteID(s string) (NoteID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid note ID %q: %w", s, err)
	}
	return NoteID(n), nil
}

func (id NoteID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id NoteID) IsZero() bool   { return id == 0 }

// Note is the sole persisted entity: a titled block of text with a
// store-assigned identifier and creation timestamp.
//
// Title and Content are never empty once persisted. Presence is enforced
// at the API boundary; the schema additionally carries NOT NULL
// constraints, but the empty-string check belongs to the handlers.
// CreatedAt is set by the store on creation and never updated.
type Note struct {
	ID        NoteID    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
