// Package ui implements the interactive terminal client for notak.
//
// The client is a bubbletea program whose Model is an explicit,
// serializable view-model mirroring server state: the full note list
// (refreshed wholesale after every mutation), the draft title/content
// pair, an optional editing target and an optional note shown in detail
// view. All transitions are driven by named messages — key presses and
// the request outcome events in events.go — so every state change is an
// explicit event through Update rather than ambient mutation.
//
// Form state machine: editingID nil means the form creates a new note;
// non-nil means it edits that note, with the draft preloaded from it.
// Entering detail view always clears edit state, so the two modes never
// overlap. Submission is refused while either draft field is empty,
// mirroring the server-side presence validation without replacing it.
package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/notak/notak/pkg/client"
	"github.com/notak/notak/pkg/models"
)

type screen int

const (
	screenList screen = iota
	screenForm
	screenView
)

type focusField int

const (
	focusTitle focusField = iota
	focusContent
)

// Model is the client view-model. It holds a transient, non-authoritative
// copy of the note collection; the server remains the source of truth
// and the copy is replaced wholesale on every refresh.
type Model struct {
	api *client.Client

	screen screen
	notes  []*models.Note
	cursor int

	title     textinput.Model
	content   textarea.Model
	focus     focusField
	editingID *models.NoteID
	viewing   *models.Note

	inflight bool
	status   string
	failed   bool

	keys     KeyMap
	help     help.Model
	showHelp bool

	width  int
	height int
}

// NewModel builds the initial view-model in list screen, create mode.
func NewModel(api *client.Client) Model {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 0
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "Write your note..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false

	h := help.New()

	return Model{
		api:     api,
		screen:  screenList,
		title:   ti,
		content: ta,
		focus:   focusTitle,
		keys:    DefaultKeyMap(),
		help:    h,
	}
}

// Init fetches the note list as soon as the program starts.
func (m Model) Init() tea.Cmd {
	return m.loadNotes()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.title.Width = max(20, msg.Width-8)
		m.content.SetWidth(max(20, msg.Width-8))
		m.content.SetHeight(max(4, msg.Height-10))
		return m, nil

	case notesLoadedMsg:
		return m.applyNotesLoaded(msg), nil

	case noteSavedMsg:
		m.inflight = false
		m.failed = false
		m.status = "Saved"
		m.resetForm()
		m.screen = screenList
		// refresh only after the mutation's response is observed
		return m, m.loadNotes()

	case noteDeletedMsg:
		m.inflight = false
		m.failed = false
		m.status = "Deleted"
		return m, m.loadNotes()

	case requestFailedMsg:
		// draft fields are preserved so nothing typed is lost
		m.inflight = false
		m.failed = true
		m.status = msg.op + " failed: " + msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// applyNotesLoaded replaces the local copy of the note collection and
// drops any viewing/editing reference whose note no longer exists, so a
// delete from elsewhere can never leave the UI pointed at stale data.
func (m Model) applyNotesLoaded(msg notesLoadedMsg) Model {
	m.inflight = false
	m.notes = msg.notes
	if m.cursor >= len(m.notes) {
		m.cursor = max(0, len(m.notes)-1)
	}

	if m.viewing != nil && !m.hasNote(m.viewing.ID) {
		m.viewing = nil
		if m.screen == screenView {
			m.screen = screenList
			m.failed = true
			m.status = "Note no longer exists"
		}
	}
	if m.editingID != nil && !m.hasNote(*m.editingID) {
		// keep the draft text but fall back to create mode
		m.editingID = nil
		if m.screen == screenForm {
			m.failed = true
			m.status = "Note was deleted; draft kept as a new note"
		}
	}
	return m
}

func (m Model) hasNote(id models.NoteID) bool {
	for _, n := range m.notes {
		if n.ID == id {
			return true
		}
	}
	return false
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && m.screen != screenForm {
		return m, tea.Quit
	}

	switch m.screen {
	case screenForm:
		return m.handleFormKey(msg)
	case screenView:
		return m.handleViewKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.notes)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.inflight = true
		m.status = "Loading..."
		return m, m.loadNotes()

	case key.Matches(msg, m.keys.New):
		m.resetForm()
		m.screen = screenForm
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if note := m.selectedNote(); note != nil {
			m.enterEdit(note)
			return m, nil
		}
		return m, nil

	case key.Matches(msg, m.keys.View):
		if note := m.selectedNote(); note != nil {
			m.enterView(note)
			return m, nil
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if note := m.selectedNote(); note != nil {
			m.inflight = true
			m.status = "Deleting..."
			return m, m.removeNote(note.ID)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		// cancellation always returns to create mode with a clean draft
		m.resetForm()
		m.screen = screenList
		m.status = "Canceled"
		m.failed = false
		return m, nil

	case key.Matches(msg, m.keys.Save):
		if m.title.Value() == "" || m.content.Value() == "" {
			m.failed = true
			m.status = "Title and content are required"
			return m, nil
		}
		m.inflight = true
		m.failed = false
		m.status = "Saving..."
		return m, m.saveDraft()

	case key.Matches(msg, m.keys.Tab):
		if m.focus == focusTitle {
			m.focus = focusContent
			m.title.Blur()
			return m, m.content.Focus()
		}
		m.focus = focusTitle
		m.content.Blur()
		return m, m.title.Focus()
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m Model) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.viewing = nil
		m.screen = screenList
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if m.viewing != nil {
			note := m.viewing
			m.viewing = nil
			m.enterEdit(note)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if m.viewing != nil {
			m.inflight = true
			m.status = "Deleting..."
			return m, m.removeNote(m.viewing.ID)
		}
		return m, nil
	}

	return m, nil
}

// enterEdit preloads the draft from an existing note and switches the
// form into edit mode for it.
func (m *Model) enterEdit(note *models.Note) {
	id := note.ID
	m.editingID = &id
	m.viewing = nil
	m.title.SetValue(note.Title)
	m.content.SetValue(note.Content)
	m.focusTitleField()
	m.screen = screenForm
}

// enterView shows the detail view. Edit state is cleared so the two
// modes never overlap.
func (m *Model) enterView(note *models.Note) {
	m.viewing = note
	m.editingID = nil
	m.title.SetValue("")
	m.content.SetValue("")
	m.screen = screenView
}

// resetForm returns the form to create mode with empty draft fields.
func (m *Model) resetForm() {
	m.editingID = nil
	m.title.SetValue("")
	m.content.SetValue("")
	m.focusTitleField()
}

func (m *Model) focusTitleField() {
	m.focus = focusTitle
	m.title.Focus()
	m.content.Blur()
}

func (m Model) selectedNote() *models.Note {
	if m.cursor < 0 || m.cursor >= len(m.notes) {
		return nil
	}
	return m.notes[m.cursor]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
