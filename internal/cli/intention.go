package cli

import (
	"fmt"
	"strings"
	"time"
)

type IntentionCmd struct {
	Set  IntentionSetCmd  `cmd:"" help:"Set today's intention."`
	Done IntentionDoneCmd `cmd:"" help:"Toggle today's intention complete."`
	Show IntentionShowCmd `cmd:"" default:"1" help:"Show today's intention."`
}

type IntentionSetCmd struct {
	Text []string `arg:"" help:"The intention text."`
}

func (c *IntentionSetCmd) Run(ctx *Context) error {
	if _, err := ctx.RequireProfile(); err != nil {
		return err
	}
	text := strings.TrimSpace(strings.Join(c.Text, " "))
	if text == "" {
		return fmt.Errorf("intention text cannot be empty")
	}
	intention := ctx.Store.SetIntention(text, time.Now())
	fmt.Printf("Intention for %s: %s\n", intention.Date, intention.Text)
	return nil
}

type IntentionDoneCmd struct{}

func (c *IntentionDoneCmd) Run(ctx *Context) error {
	if _, err := ctx.RequireProfile(); err != nil {
		return err
	}
	intention, ok := ctx.Store.ToggleIntention()
	if !ok {
		fmt.Println(faintStyle.Render("No intention set for today."))
		return nil
	}
	if intention.Completed {
		fmt.Printf("Done: %s ✓\n", intention.Text)
	} else {
		fmt.Printf("Reopened: %s\n", intention.Text)
	}
	return nil
}

type IntentionShowCmd struct{}

func (c *IntentionShowCmd) Run(ctx *Context) error {
	if _, err := ctx.RequireProfile(); err != nil {
		return err
	}
	intention, ok := ctx.Store.Intention()
	if !ok {
		fmt.Println(faintStyle.Render("No intention set for today."))
		return nil
	}
	mark := "[ ]"
	if intention.Completed {
		mark = "[x]"
	}
	fmt.Printf("%s %s\n", mark, intention.Text)
	return nil
}
