package cli

import (
	"fmt"

	"github.com/mantra-journal/mantra/internal/journal"
	"github.com/mantra-journal/mantra/internal/models"
	"github.com/mantra-journal/mantra/internal/utils"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	profile, err := ctx.RequireProfile()
	if err != nil {
		return err
	}

	entries := ctx.Store.Entries()
	today := utils.Today()

	fmt.Printf("%s\n", titleStyle.Render("Today — "+today))

	streak := journal.CurrentStreak(entries, today)
	if streak > 0 {
		fmt.Printf("%s\n", streakStyle.Render(fmt.Sprintf("🔥 %d day streak", streak)))
	}

	if intention, ok := ctx.Store.Intention(); ok {
		mark := "[ ]"
		if intention.Completed {
			mark = "[x]"
		}
		fmt.Printf("%s %s\n", mark, intention.Text)
	}

	if latest, ok := journal.MostRecentEntryForDate(entries, today); ok {
		fmt.Printf("\nLatest mood: %s %s at %s\n", latest.MoodEmoji, models.Moods[latest.Mood].Label, latest.Time)
	} else {
		fmt.Printf("\n%s\n", faintStyle.Render(fmt.Sprintf("No moments yet today, %s. 'mantra checkin' when you're ready.", profile.Name)))
		return nil
	}

	fmt.Println()
	for _, e := range journal.EntriesForDate(entries, today) {
		fmt.Println(FormatEntryLine(e))
	}
	return nil
}
