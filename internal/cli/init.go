package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
)

type InitCmd struct {
	Name string `arg:"" optional:"" help:"Your display name."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if profile, ok := ctx.Store.Profile(); ok && profile.Onboarded {
		return fmt.Errorf("already set up for %s; use 'reset' to start over", profile.Name)
	}

	name := strings.TrimSpace(c.Name)
	if name == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("What should we call you?").
				Placeholder("Friend").
				Value(&name),
		))
		if err := form.Run(); err != nil {
			return err
		}
		name = strings.TrimSpace(name)
	}
	if name == "" {
		name = "Friend"
	}

	profile := ctx.Store.CompleteOnboarding(name, time.Now())
	fmt.Printf("Welcome, %s. Log your first moment with 'mantra checkin'.\n", titleStyle.Render(profile.Name))
	return nil
}
