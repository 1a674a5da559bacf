package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mantra-journal/mantra/internal/cli"
	"github.com/mantra-journal/mantra/internal/constants"
	"github.com/mantra-journal/mantra/internal/errors"
	"github.com/mantra-journal/mantra/internal/journal"
	"github.com/mantra-journal/mantra/internal/logger"
	"github.com/mantra-journal/mantra/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Enable debug logging to stderr."`
	Storage string `help:"Storage directory." default:"${storage_dir}"`
	Backend string `help:"Persistence backend." enum:"diskv,sqlite" default:"diskv"`

	Init      cli.InitCmd      `cmd:"" help:"Set up your profile."`
	Checkin   cli.CheckinCmd   `cmd:"" help:"Log a mood check-in."`
	Today     cli.TodayCmd     `cmd:"" default:"1" help:"Show today's moments, streak, and intention."`
	Moments   cli.MomentsCmd   `cmd:"" help:"List the moments for a day."`
	Month     cli.MonthCmd     `cmd:"" help:"Summarize a month by mood."`
	Intention cli.IntentionCmd `cmd:"" help:"Manage today's intention."`
	Insights  cli.InsightsCmd  `cmd:"" help:"AI insights over your mood history."`
	Profile   cli.ProfileCmd   `cmd:"" help:"Show your profile and mood stats."`
	Prompts   cli.PromptsCmd   `cmd:"" help:"Browse reflection prompts."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive dashboard."`
	Key       cli.KeyCmd       `cmd:"" help:"Manage the Gemini API key."`
	Reset     cli.ResetCmd     `cmd:"" help:"Delete all data."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("A personal mood journal with AI-generated insights."),
		kong.UsageOnError(),
		kong.Vars{
			"version":     constants.Version,
			"storage_dir": constants.DefaultStoragePath,
		},
	)

	storageDir := expandPath(CLI.Storage)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: storageDir}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	provider, err := openProvider(CLI.Backend, storageDir)
	if err != nil {
		errors.Fatal(err)
	}
	defer provider.Close()

	store := journal.NewStore(provider)
	store.Load()

	err = kctx.Run(&cli.Context{Store: store})
	errors.Fatal(err)
}

func openProvider(backend, dir string) (storage.Provider, error) {
	switch backend {
	case "sqlite":
		return storage.NewSQLiteStore(filepath.Join(dir, "journal.db"))
	default:
		return storage.NewDiskvStore(filepath.Join(dir, "records"))
	}
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
