package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/notak/notak/pkg/models"
)

// Named events driving the view-model state machine. Every network call
// resolves to exactly one of these, so each request has an explicit
// success or failure outcome instead of a silently dropped error.

// notesLoadedMsg carries a fresh copy of the full note list.
type notesLoadedMsg struct {
	notes []*models.Note
}

// noteSavedMsg reports a completed create or update.
type noteSavedMsg struct {
	note *models.Note
}

// noteDeletedMsg reports a completed delete.
type noteDeletedMsg struct {
	id models.NoteID
}

// requestFailedMsg reports any failed API call. The op names the action
// for the status line; the draft and list state stay untouched.
type requestFailedMsg struct {
	op  string
	err error
}

func (m Model) loadNotes() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		notes, err := api.ListNotes(context.Background())
		if err != nil {
			return requestFailedMsg{op: "load notes", err: err}
		}
		return notesLoadedMsg{notes: notes}
	}
}

// saveDraft submits the draft: an update when a note is being edited,
// a create otherwise. The draft values are captured before the command
// runs so later keystrokes cannot race the request.
func (m Model) saveDraft() tea.Cmd {
	api := m.api
	title := m.title.Value()
	content := m.content.Value()
	editing := m.editingID
	return func() tea.Msg {
		var (
			note *models.Note
			err  error
		)
		if editing != nil {
			note, err = api.UpdateNote(context.Background(), *editing, title, content)
		} else {
			note, err = api.CreateNote(context.Background(), title, content)
		}
		if err != nil {
			return requestFailedMsg{op: "save note", err: err}
		}
		return noteSavedMsg{note: note}
	}
}

func (m Model) removeNote(id models.NoteID) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		if err := api.DeleteNote(context.Background(), id); err != nil {
			return requestFailedMsg{op: "delete note", err: err}
		}
		return noteDeletedMsg{id: id}
	}
}
