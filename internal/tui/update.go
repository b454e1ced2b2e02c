package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	switch m.state {
	case StateAddActivity:
		return m.updateAddActivity(msg)
	case StateRenameActivity:
		return m.updateRenameActivity(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case StateEditNote:
		return m.updateEditNote(msg)
	default:
		return m.updateGrid(msg)
	}
}

func (m Model) updateGrid(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.row < len(m.tracker.Activities())-1 {
			m.row++
		}

	case key.Matches(keyMsg, m.keys.Left):
		if m.col > 0 {
			m.col--
		} else if m.tracker.CanGoBack() {
			m.tracker.Back()
			m.col = len(m.tracker.VisibleDates()) - 1
		}

	case key.Matches(keyMsg, m.keys.Right):
		if m.col < len(m.tracker.VisibleDates())-1 {
			m.col++
		} else if m.tracker.CanGoForward() {
			m.tracker.Forward()
			m.col = 0
		}

	case key.Matches(keyMsg, m.keys.PageBack):
		if m.tracker.CanGoBack() {
			m.tracker.Back()
		}

	case key.Matches(keyMsg, m.keys.PageFwd):
		if m.tracker.CanGoForward() {
			m.tracker.Forward()
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		if activity, ok := m.selectedActivity(); ok {
			m.tracker.ToggleLog(activity.ID, m.selectedDay())
		}

	case key.Matches(keyMsg, m.keys.Add):
		m.activityForm = &ActivityFormModel{}
		m.form = NewActivityForm(m.activityForm, "New activity")
		m.state = StateAddActivity
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.Rename):
		if activity, ok := m.selectedActivity(); ok {
			m.renameID = activity.ID
			m.activityForm = &ActivityFormModel{Name: activity.Name}
			m.form = NewActivityForm(m.activityForm, "Rename activity")
			m.state = StateRenameActivity
			return m, m.form.Init()
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if activity, ok := m.selectedActivity(); ok {
			m.activityToDelete = activity.ID
			m.state = StateConfirmDelete
		}

	case key.Matches(keyMsg, m.keys.Note):
		day := m.selectedDay()
		m.noteDay = day
		m.noteForm = &NoteFormModel{}
		if note, ok := m.tracker.NoteFor(day); ok {
			m.noteForm.Text = note.Text
		}
		m.form = NewNoteForm(m.noteForm, day)
		m.state = StateEditNote
		return m, m.form.Init()
	}

	return m, nil
}

func (m Model) updateAddActivity(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = StateGrid
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.activityForm.Name != "" {
			m.tracker.AddActivity(m.activityForm.Name)
			m.row = len(m.tracker.Activities()) - 1
		}
		m.state = StateGrid
	case huh.StateAborted:
		m.state = StateGrid
	}
	return m, cmd
}

func (m Model) updateRenameActivity(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = StateGrid
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.activityForm.Name != "" {
			m.tracker.RenameActivity(m.renameID, m.activityForm.Name)
		}
		m.state = StateGrid
	case huh.StateAborted:
		m.state = StateGrid
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		m.tracker.DeleteActivity(m.activityToDelete)
		if m.row >= len(m.tracker.Activities()) && m.row > 0 {
			m.row--
		}
		m.state = StateGrid
	case "n", "N", "esc", "q":
		m.state = StateGrid
	}
	return m, nil
}

func (m Model) updateEditNote(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = StateGrid
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.tracker.SaveNote(m.noteDay, m.noteForm.Text)
		m.state = StateGrid
	case huh.StateAborted:
		m.state = StateGrid
	}
	return m, cmd
}
