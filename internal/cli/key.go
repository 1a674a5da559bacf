package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/mantra-journal/mantra/internal/keyring"
)

type KeyCmd struct {
	Set    KeySetCmd    `cmd:"" help:"Store the Gemini API key in the OS keyring."`
	Delete KeyDeleteCmd `cmd:"" help:"Remove the stored API key."`
}

type KeySetCmd struct {
	Key string `arg:"" optional:"" help:"The API key. Prompted for when omitted."`
}

func (c *KeySetCmd) Run(ctx *Context) error {
	key := c.Key
	if key == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Gemini API key").
				EchoMode(huh.EchoModePassword).
				Value(&key),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}
	if err := keyring.SetAPIKey(key); err != nil {
		return err
	}
	fmt.Println("API key stored.")
	return nil
}

type KeyDeleteCmd struct{}

func (c *KeyDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		return err
	}
	fmt.Println("API key removed.")
	return nil
}
