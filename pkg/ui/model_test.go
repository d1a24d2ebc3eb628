package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/notak/notak/pkg/client"
	"github.com/notak/notak/pkg/models"
)

func testNote(id models.NoteID, title string) *models.Note {
	return &models.Note{
		ID:        id,
		Title:     title,
		Content:   "content of " + title,
		CreatedAt: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

// newTestModel returns a model whose client is never actually invoked:
// the tests drive Update with messages directly and do not run the
// returned commands.
func newTestModel() Model {
	return NewModel(client.NewClient("http://localhost:0"))
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestNotesLoadedReplacesList(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, notesLoadedMsg{notes: []*models.Note{testNote(2, "b"), testNote(1, "a")}})
	require.Len(t, m.notes, 2)
	require.False(t, m.inflight)

	// wholesale replacement, not a merge
	m, _ = update(t, m, notesLoadedMsg{notes: []*models.Note{testNote(3, "c")}})
	require.Len(t, m.notes, 1)
	require.Equal(t, models.NoteID(3), m.notes[0].ID)
	require.Equal(t, 0, m.cursor)
}

func TestEnterEditPreloadsDraft(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, notesLoadedMsg{notes: []*models.Note{testNote(7, "groceries")}})

	m, _ = update(t, m, keyRune('e'))
	require.Equal(t, screenForm, m.screen)
	require.NotNil(t, m.editingID)
	require.Equal(t, models.NoteID(7), *m.editingID)
	require.Equal(t, "groceries", m.title.Value())
	require.Equal(t, "content of groceries", m.content.Value())
}

func TestViewClearsEditState(t *testing.T) {
	m := newTestModel()
	a, b := testNote(1, "a"), testNote(2, "b")
	m, _ = update(t, m, notesLoadedMsg{notes: []*models.Note{a, b}})

	m.enterEdit(a)
	require.NotNil(t, m.editingID)

	// entering detail view forces exit from edit mode
	m.enterView(b)
	require.Nil(t, m.editingID)
	require.Equal(t, screenView, m.screen)
	require.Equal(t, models.NoteID(2), m.viewing.ID)
	require.Empty(t, m.title.Value())
}

func TestSubmitEmptyDraftRefused(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, keyRune('n'))
	require.Equal(t, screenForm, m.screen)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Nil(t, cmd, "empty draft must not issue a request")
	require.False(t, m.inflight)
	require.True(t, m.failed)
}

func TestSubmitValidDraftGoesInflight(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, keyRune('n'))
	m.title.SetValue("A")
	m.content.SetValue("B")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	require.True(t, m.inflight)
}

func TestSaveSuccessResetsFormAndReloads(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, notesLoadedMsg{notes: []*models.Note{testNote(1, "a")}})
	m.enterEdit(m.notes[0])

	m, cmd := update(t, m, noteSavedMsg{note: testNote(1, "a2")})
	require.Equal(t, screenList, m.screen)
	require.Nil(t, m.editingID)
	require.Empty(t, m.title.Value())
	require.Empty(t, m.content.Value())
	require.NotNil(t, cmd, "list must be refreshed after the mutation completes")
}

func TestFailureKeepsDraft(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, keyRune('n'))
	m.title.SetValue("typed title")
	m.content.SetValue("typed content")
	m.inflight = true

	m, _ = update(t, m, requestFailedMsg{op: "save note", err: errors.New("boom")})
	require.False(t, m.inflight)
	require.True(t, m.failed)
	require.Contains(t, m.status, "save note failed")
	require.Equal(t, "typed title", m.title.Value())
	require.Equal(t, "typed content", m.content.Value())
}

func TestRefreshDropsStaleViewing(t *testing.T) {
	m := newTestModel()
	gone := testNote(2, "gone")
	m, _ = update(t, m, notesLoadedMsg{notes: []*models.Note{testNote(1, "a"), gone}})
	m.enterView(gone)

	// the viewed note disappeared from the authoritative list
	m, _ = update(t, m, notesLoadedMsg{notes: []*models.Note{testNote(1, "a")}})
	require.Nil(t, m.viewing)
	require.Equal(t, screenList, m.screen)
}

func TestRefreshDropsStaleEditing(t *testing.T) {
	m := newTestModel()
	gone := testNote(2, "gone")
	m, _ = update(t, m, notesLoadedMsg{notes: []*models.Note{gone}})
	m.enterEdit(gone)
	m.title.SetValue("reworked")

	m, _ = update(t, m, notesLoadedMsg{notes: []*models.Note{}})
	require.Nil(t, m.editingID, "editing target vanished, form falls back to create mode")
	require.Equal(t, "reworked", m.title.Value(), "draft text survives")
	require.Equal(t, screenForm, m.screen)
}

func TestCancelReturnsToCreateMode(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, notesLoadedMsg{notes: []*models.Note{testNote(1, "a")}})
	m, _ = update(t, m, keyRune('e'))
	require.NotNil(t, m.editingID)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, screenList, m.screen)
	require.Nil(t, m.editingID)
	require.Empty(t, m.title.Value())
}

func TestDeleteIssuesRequestThenRefresh(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, notesLoadedMsg{notes: []*models.Note{testNote(1, "a")}})

	m, cmd := update(t, m, keyRune('d'))
	require.True(t, m.inflight)
	require.NotNil(t, cmd)

	m, cmd = update(t, m, noteDeletedMsg{id: 1})
	require.False(t, m.inflight)
	require.NotNil(t, cmd, "refresh is issued only after the delete response")
}
