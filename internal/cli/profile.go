package cli

import (
	"fmt"
	"time"

	"github.com/mantra-journal/mantra/internal/journal"
	"github.com/mantra-journal/mantra/internal/models"
	"github.com/mantra-journal/mantra/internal/utils"
)

type ProfileCmd struct{}

func (c *ProfileCmd) Run(ctx *Context) error {
	profile, err := ctx.RequireProfile()
	if err != nil {
		return err
	}

	entries := ctx.Store.Entries()
	fmt.Printf("%s\n", titleStyle.Render(profile.Name))
	fmt.Printf("Member since %s\n", time.UnixMilli(profile.CreatedAt).Format("January 2006"))
	fmt.Printf("Current streak: %s\n", streakStyle.Render(fmt.Sprintf("%d days", profile.Streak)))
	fmt.Printf("Total moments: %d\n", len(entries))

	if mood, ok := journal.MostFrequentMood(entries); ok {
		cfg := models.Moods[mood]
		fmt.Printf("Most frequent mood: %s %s\n", cfg.Emoji, cfg.Label)
	}

	counts := journal.MoodFrequency(entries)
	if len(counts) > 0 {
		fmt.Println()
		for _, m := range models.MoodOrder {
			if counts[m] > 0 {
				fmt.Printf("  %s %-8s %d\n", models.Moods[m].Emoji, models.Moods[m].Label, counts[m])
			}
		}
	}

	streak := journal.CurrentStreak(entries, utils.Today())
	if streak != profile.Streak {
		fmt.Println(faintStyle.Render(fmt.Sprintf("Calendar streak: %d days", streak)))
	}
	return nil
}
