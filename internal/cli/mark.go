package cli

import (
	"fmt"
)

type MarkCmd struct {
	Name string `arg:"" help:"Activity name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *MarkCmd) Run(ctx *Context) error {
	activity, err := ctx.FindActivity(c.Name)
	if err != nil {
		return err
	}

	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	if _, logged := ctx.Store.ToggleLog(activity.ID, day); logged {
		fmt.Printf("Marked %q for %s\n", c.Name, day)
	} else {
		fmt.Printf("Unmarked %q for %s\n", c.Name, day)
	}
	return nil
}
