package cli

import (
	"fmt"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if ctx.Adapter == nil {
		return fmt.Errorf("nothing to initialize in demo mode")
	}
	if err := ctx.Adapter.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized storage: %s\n", ctx.Adapter.Describe())
	return nil
}
