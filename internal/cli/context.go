package cli

import (
	"fmt"

	"daygrid/internal/constants"
	"daygrid/internal/models"
	"daygrid/internal/remote"
	"daygrid/internal/replica"
	"daygrid/internal/tracker"
	"daygrid/internal/utils"
)

type Context struct {
	Adapter remote.Adapter
	Store   *replica.Store
	Clock   utils.Clock
}

// Tracker builds the session view-model on first use. The replica seeds or
// loads itself inside tracker.New.
func (c *Context) Tracker() *tracker.Tracker {
	return tracker.New(c.Store, c.Clock, constants.PageSize)
}

// FindActivity resolves an activity by its display name.
func (c *Context) FindActivity(name string) (models.Activity, error) {
	c.Store.Initialize()
	for _, a := range c.Store.Activities() {
		if a.Name == name {
			return a, nil
		}
	}
	return models.Activity{}, fmt.Errorf("activity %q not found", name)
}

// ResolveDay validates an explicit date flag, defaulting to today.
func (c *Context) ResolveDay(date string) (string, error) {
	if date == "" {
		return utils.FormatDay(utils.Day(c.Clock.Now())), nil
	}
	if !utils.ValidateDay(date) {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}
	return date, nil
}
