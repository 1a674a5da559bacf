package cli

import (
	"fmt"

	"github.com/mantra-journal/mantra/internal/constants"
	"github.com/mantra-journal/mantra/internal/models"
)

type PromptsCmd struct {
	Mood string `short:"m" help:"Show prompts tuned to a mood instead of the general library."`
}

func (c *PromptsCmd) Validate() error {
	if c.Mood != "" && !models.Mood(c.Mood).Valid() {
		return fmt.Errorf("invalid mood %q", c.Mood)
	}
	return nil
}

func (c *PromptsCmd) Run(ctx *Context) error {
	if c.Mood != "" {
		cfg := models.Moods[models.Mood(c.Mood)]
		fmt.Printf("%s\n", titleStyle.Render(cfg.Emoji+" "+cfg.Label))
		for _, p := range constants.MoodPrompts[models.Mood(c.Mood)] {
			fmt.Printf("  • %s\n", p)
		}
		return nil
	}

	for _, cat := range constants.ReflectionPrompts {
		fmt.Printf("%s\n", titleStyle.Render(cat.Category))
		for _, p := range cat.Prompts {
			fmt.Printf("  • %s\n", p)
		}
		fmt.Println()
	}
	return nil
}
