package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"daygrid/internal/tracker"
)

type SessionState int

const (
	StateGrid SessionState = iota
	StateAddActivity
	StateRenameActivity
	StateConfirmDelete
	StateEditNote
)

type ActivityFormModel struct {
	Name string
}

type NoteFormModel struct {
	Text string
}

type Model struct {
	tracker *tracker.Tracker
	state   SessionState
	keys    KeyMap
	help    help.Model

	// cursor position: row indexes activities, col indexes the visible window
	row int
	col int

	form         *huh.Form
	activityForm *ActivityFormModel
	noteForm     *NoteFormModel

	renameID         string
	activityToDelete string
	noteDay          string

	width    int
	height   int
	quitting bool
}

func NewModel(tr *tracker.Tracker) Model {
	m := Model{
		tracker: tr,
		state:   StateGrid,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	// Start the cursor on today's column
	m.col = len(tr.VisibleDates()) - 1
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func NewActivityForm(fm *ActivityFormModel, title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&fm.Name),
		),
	)
}

func NewNoteForm(fm *NoteFormModel, day string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Note for " + day).
				Description("Saving empty text removes the note").
				Value(&fm.Text),
		),
	)
}
