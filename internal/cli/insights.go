package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mantra-journal/mantra/internal/constants"
	"github.com/mantra-journal/mantra/internal/insights"
	"github.com/mantra-journal/mantra/internal/keyring"
	"github.com/mantra-journal/mantra/internal/models"
)

type InsightsCmd struct {
	Generate InsightsGenerateCmd `cmd:"" help:"Generate a fresh insight batch from your history."`
	Show     InsightsShowCmd     `cmd:"" default:"1" help:"Show the last generated insights."`
}

type InsightsGenerateCmd struct{}

func (c *InsightsGenerateCmd) Run(ctx *Context) error {
	profile, err := ctx.RequireProfile()
	if err != nil {
		return err
	}

	cfg, err := insights.LoadConfig()
	if err != nil {
		return err
	}

	apiKey, err := keyring.GetAPIKey()
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) && !errors.Is(err, keyring.ErrKeyringUnavailable) {
			return err
		}
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		return fmt.Errorf("no API key configured; run '%s key set' or set MANTRA_AI_API_KEY", constants.AppName)
	}

	cache := insights.NewCache(insights.NewGeminiProvider(cfg, apiKey))
	fmt.Println(faintStyle.Render("Reading your history..."))
	batch, err := cache.Refresh(context.Background(), ctx.Store.Entries(), profile.Name)
	if err != nil {
		return err
	}
	ctx.Store.SetInsights(batch)

	printInsights(batch)
	return nil
}

type InsightsShowCmd struct{}

func (c *InsightsShowCmd) Run(ctx *Context) error {
	if _, err := ctx.RequireProfile(); err != nil {
		return err
	}
	batch := ctx.Store.Insights()
	if len(batch) == 0 {
		fmt.Println(faintStyle.Render("No insights yet. Run 'mantra insights generate'."))
		return nil
	}
	printInsights(batch)
	return nil
}

func printInsights(batch []models.Insight) {
	for _, ins := range batch {
		fmt.Println(cardStyle.Render(titleStyle.Render(ins.Title) + "\n" + ins.Content))
	}
	if len(batch) > 0 && batch[0].Expiry > 0 {
		generated := time.UnixMilli(batch[0].Expiry).Add(-24 * time.Hour)
		fmt.Println(faintStyle.Render("Generated " + generated.Format("2006-01-02 15:04")))
	}
}
