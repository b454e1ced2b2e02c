package cli

import (
	"fmt"
)

type NoteCmd struct {
	Set   NoteSetCmd   `cmd:"" help:"Set the note for a day."`
	Show  NoteShowCmd  `cmd:"" help:"Show the note for a day."`
	Clear NoteClearCmd `cmd:"" help:"Remove the note for a day."`
}

type NoteSetCmd struct {
	Text string `arg:"" help:"Note text. Empty text removes the note."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *NoteSetCmd) Run(ctx *Context) error {
	ctx.Store.Initialize()

	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	if _, exists := ctx.Store.SaveNote(day, c.Text); exists {
		fmt.Printf("Saved note for %s\n", day)
	} else {
		fmt.Printf("Removed note for %s\n", day)
	}
	return nil
}

type NoteShowCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *NoteShowCmd) Run(ctx *Context) error {
	ctx.Store.Initialize()

	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	note, ok := ctx.Store.NoteFor(day)
	if !ok {
		fmt.Printf("No note for %s\n", day)
		return nil
	}

	fmt.Printf("%s: %s\n", day, note.Text)
	return nil
}

type NoteClearCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *NoteClearCmd) Run(ctx *Context) error {
	ctx.Store.Initialize()

	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	ctx.Store.DeleteNote(day)
	fmt.Printf("Removed note for %s\n", day)
	return nil
}
