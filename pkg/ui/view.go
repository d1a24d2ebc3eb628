package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle   = lipgloss.NewStyle().Faint(true)
	labelStyle    = lipgloss.NewStyle().Bold(true)
	bodyStyle     = lipgloss.NewStyle().Padding(0, 1)
)

func (m Model) View() string {
	var b strings.Builder

	switch m.screen {
	case screenForm:
		b.WriteString(m.viewForm())
	case screenView:
		b.WriteString(m.viewDetail())
	default:
		b.WriteString(m.viewList())
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("My Notes"))
	b.WriteString("\n\n")

	if len(m.notes) == 0 {
		b.WriteString(dimStyle.Render("No notes yet. Press n to write one."))
		b.WriteString("\n")
		return b.String()
	}

	for i, note := range m.notes {
		line := fmt.Sprintf("%s  %s", note.Title, dimStyle.Render(note.CreatedAt.Format("2006-01-02 15:04")))
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder
	if m.editingID != nil {
		b.WriteString(headerStyle.Render(fmt.Sprintf("Edit Note #%s", *m.editingID)))
	} else {
		b.WriteString(headerStyle.Render("Create Note"))
	}
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Title"))
	b.WriteString("\n")
	b.WriteString(m.title.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Content"))
	b.WriteString("\n")
	b.WriteString(m.content.View())
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewDetail() string {
	if m.viewing == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.viewing.Title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("created " + m.viewing.CreatedAt.Format("2006-01-02 15:04")))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(m.viewing.Content))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewStatus() string {
	if m.inflight {
		return statusStyle.Render("… " + m.status)
	}
	if m.failed {
		return errorStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}
