package cli

import (
	"fmt"
)

type ActivityCmd struct {
	Add    ActivityAddCmd    `cmd:"" help:"Add a new activity."`
	List   ActivityListCmd   `cmd:"" help:"List activities in display order."`
	Rename ActivityRenameCmd `cmd:"" help:"Rename an activity."`
	Delete ActivityDeleteCmd `cmd:"" help:"Delete an activity and its history."`
}

type ActivityAddCmd struct {
	Name string `arg:"" help:"Activity name."`
}

func (c *ActivityAddCmd) Run(ctx *Context) error {
	ctx.Store.Initialize()

	for _, a := range ctx.Store.Activities() {
		if a.Name == c.Name {
			return fmt.Errorf("activity %q already exists", c.Name)
		}
	}

	activity := ctx.Store.AddActivity(c.Name)
	fmt.Printf("Added activity: %s\n", activity.Name)
	return nil
}

type ActivityListCmd struct{}

func (c *ActivityListCmd) Run(ctx *Context) error {
	ctx.Store.Initialize()

	activities := ctx.Store.Activities()
	if len(activities) == 0 {
		fmt.Println("No activities found.")
		return nil
	}

	for _, a := range activities {
		fmt.Println(a.Name)
	}
	return nil
}

type ActivityRenameCmd struct {
	Name    string `arg:"" help:"Current activity name."`
	NewName string `arg:"" help:"New activity name."`
}

func (c *ActivityRenameCmd) Run(ctx *Context) error {
	activity, err := ctx.FindActivity(c.Name)
	if err != nil {
		return err
	}

	ctx.Store.RenameActivity(activity.ID, c.NewName)
	fmt.Printf("Renamed activity %q to %q\n", c.Name, c.NewName)
	return nil
}

type ActivityDeleteCmd struct {
	Name string `arg:"" help:"Activity name to delete."`
}

func (c *ActivityDeleteCmd) Run(ctx *Context) error {
	activity, err := ctx.FindActivity(c.Name)
	if err != nil {
		return err
	}

	ctx.Store.DeleteActivity(activity.ID)
	fmt.Printf("Deleted activity: %s\n", c.Name)
	fmt.Println("(All of its completion history was removed as well)")
	return nil
}
