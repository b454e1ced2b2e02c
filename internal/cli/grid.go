package cli

import (
	"fmt"
	"strings"
)

type GridCmd struct {
	Days int `help:"Number of days to show." default:"14"`
}

func (c *GridCmd) Run(ctx *Context) error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}

	tr := ctx.Tracker()
	activities := tr.Activities()
	if len(activities) == 0 {
		fmt.Println("No activities found.")
		return nil
	}

	// AllDates is newest first; take the requested span and flip it so the
	// grid reads oldest to newest like a calendar
	all := tr.AllDates()
	if c.Days < len(all) {
		all = all[:c.Days]
	}
	days := make([]string, len(all))
	for i, d := range all {
		days[len(all)-1-i] = d
	}

	const nameWidth = 20
	fmt.Printf("Activity log (last %d days):\n\n", len(days))

	fmt.Print(strings.Repeat(" ", nameWidth))
	for _, day := range days {
		fmt.Printf(" %5s", day[5:])
	}
	fmt.Println()

	fmt.Println(strings.Repeat("-", nameWidth+6*len(days)))

	for _, activity := range activities {
		name := activity.Name
		if len(name) > nameWidth {
			name = name[:nameWidth-3] + "..."
		} else {
			name = name + strings.Repeat(" ", nameWidth-len(name))
		}
		fmt.Print(name)

		for _, day := range days {
			if tr.IsLogged(activity.ID, day) {
				fmt.Print("  x   ")
			} else {
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}

	for _, day := range days {
		if note, ok := tr.NoteFor(day); ok {
			fmt.Printf("\n%s: %s", day, note.Text)
		}
	}
	fmt.Println()

	return nil
}
