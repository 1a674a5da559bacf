package cli

import "github.com/mantra-journal/mantra/internal/tui"

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if _, err := ctx.RequireProfile(); err != nil {
		return err
	}
	return tui.Run(ctx.Store)
}
