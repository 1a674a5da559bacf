package cli

import (
	"fmt"

	"github.com/mantra-journal/mantra/internal/journal"
	"github.com/mantra-journal/mantra/internal/utils"
)

type MomentsCmd struct {
	Date string `arg:"" optional:"" help:"Day to show (YYYY-MM-DD), defaults to today."`
}

func (c *MomentsCmd) Validate() error {
	if c.Date != "" {
		if _, err := utils.ParseDate(c.Date); err != nil {
			return err
		}
	}
	return nil
}

func (c *MomentsCmd) Run(ctx *Context) error {
	if _, err := ctx.RequireProfile(); err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = utils.Today()
	}

	day := journal.EntriesForDate(ctx.Store.Entries(), date)
	fmt.Printf("%s\n", titleStyle.Render("Moments — "+date))
	if len(day) == 0 {
		fmt.Println(faintStyle.Render("No moments logged on this day."))
		return nil
	}
	for _, e := range day {
		fmt.Println(FormatEntryLine(e))
	}
	return nil
}
