package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"daygrid/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	p := tea.NewProgram(tui.NewModel(ctx.Tracker()), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
