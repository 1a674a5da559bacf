package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/mantra-journal/mantra/internal/journal"
	"github.com/mantra-journal/mantra/internal/models"
)

type MonthCmd struct {
	Year  int `help:"Year to summarize." default:"0"`
	Month int `help:"Month to summarize (1-12)." default:"0"`
}

func (c *MonthCmd) Validate() error {
	if c.Month < 0 || c.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}
	return nil
}

func (c *MonthCmd) Run(ctx *Context) error {
	if _, err := ctx.RequireProfile(); err != nil {
		return err
	}

	now := time.Now()
	year, month := c.Year, time.Month(c.Month)
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}

	stats := journal.MonthlyAggregate(ctx.Store.Entries(), year, month)
	fmt.Printf("%s\n", titleStyle.Render(fmt.Sprintf("%s %d — %d moments", month, year, stats.Total)))

	if stats.Total == 0 {
		fmt.Println(faintStyle.Render("Nothing logged this month."))
		return nil
	}

	// Highest count first; ties resolve in declared mood order.
	for _, m := range sortedByCount(stats) {
		cfg := models.Moods[m]
		pct := int(math.Round(float64(stats.Counts[m]) / float64(stats.Total) * 100))
		fmt.Printf("  %s %-8s %3d%%  (%d)\n", cfg.Emoji, cfg.Label, pct, stats.Counts[m])
	}
	return nil
}

func sortedByCount(stats journal.MonthStats) []models.Mood {
	order := make([]models.Mood, 0, len(stats.Counts))
	for _, m := range models.MoodOrder {
		if stats.Counts[m] > 0 {
			order = append(order, m)
		}
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && stats.Counts[order[j]] > stats.Counts[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	return order
}
