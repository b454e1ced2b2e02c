package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"daygrid/internal/models"
)

const (
	nameColumnWidth = 18
	dayColumnWidth  = 7
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateAddActivity, StateRenameActivity, StateEditNote:
		return m.form.View()
	case StateConfirmDelete:
		return m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		m.viewGrid(),
		m.viewNote(),
		m.help.View(m.keys),
	)
}

func (m Model) viewHeader() string {
	title := titleStyle.Render("daygrid " + m.tracker.Today())
	if m.tracker.Degraded() {
		return lipgloss.JoinHorizontal(lipgloss.Top, title, degradedStyle.Render("[local only]"))
	}
	return title
}

func (m Model) viewGrid() string {
	dates := m.tracker.VisibleDates()
	activities := m.tracker.Activities()

	var b strings.Builder

	b.WriteString(strings.Repeat(" ", nameColumnWidth))
	for i, day := range dates {
		// Headers show MM-DD; the full date lives in the title bar
		label := pad(day[5:], dayColumnWidth)
		if day == m.tracker.Today() {
			b.WriteString(todayHeaderStyle.Render(label))
		} else if i == m.col {
			b.WriteString(headerStyle.Bold(true).Render(label))
		} else {
			b.WriteString(headerStyle.Render(label))
		}
	}
	b.WriteString("\n")

	if len(activities) == 0 {
		b.WriteString("\n  No activities yet. Press 'a' to add one.\n")
		return b.String()
	}

	for rowIdx, activity := range activities {
		b.WriteString(pad(truncate(activity.Name, nameColumnWidth-2), nameColumnWidth))
		for colIdx, day := range dates {
			cell := "·"
			if m.tracker.IsLogged(activity.ID, day) {
				cell = "✓"
			}
			label := pad(cell, dayColumnWidth)
			switch {
			case rowIdx == m.row && colIdx == m.col:
				b.WriteString(cursorStyle.Render(label))
			case cell == "✓":
				b.WriteString(loggedStyle.Render(label))
			default:
				b.WriteString(label)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewNote() string {
	day := m.selectedDay()
	if note, ok := m.tracker.NoteFor(day); ok {
		return noteStyle.Render(day + ": " + truncate(note.Text, 72))
	}
	return noteStyle.Render(day + ": no note, press 'n' to add one")
}

func (m Model) viewConfirmDelete() string {
	name := m.activityToDelete
	for _, a := range m.tracker.Activities() {
		if a.ID == m.activityToDelete {
			name = a.Name
			break
		}
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete \""+name+"\" and all of its history?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) selectedActivity() (models.Activity, bool) {
	activities := m.tracker.Activities()
	if m.row < 0 || m.row >= len(activities) {
		return models.Activity{}, false
	}
	return activities[m.row], true
}

func (m Model) selectedDay() string {
	dates := m.tracker.VisibleDates()
	if m.col < 0 || m.col >= len(dates) {
		return m.tracker.Today()
	}
	return dates[m.col]
}

func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
