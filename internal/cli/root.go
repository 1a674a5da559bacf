package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mantra-journal/mantra/internal/constants"
	"github.com/mantra-journal/mantra/internal/journal"
	"github.com/mantra-journal/mantra/internal/models"
)

// Context carries the loaded journal store into every command.
type Context struct {
	Store *journal.Store
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	streakStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FB923C"))
	crisisStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// RequireProfile fetches the onboarded profile or fails with a hint.
func (c *Context) RequireProfile() (models.UserProfile, error) {
	profile, ok := c.Store.Profile()
	if !ok || !profile.Onboarded {
		return models.UserProfile{}, fmt.Errorf("not set up yet, run '%s init' first", constants.AppName)
	}
	return profile, nil
}

// FormatEntryLine renders one entry for list output.
func FormatEntryLine(e models.MoodEntry) string {
	line := fmt.Sprintf("%s %s  %s %s", faintStyle.Render(e.ID[:8]), e.Time, e.MoodEmoji, models.Moods[e.Mood].Label)
	if e.IsQuickMoment {
		line += faintStyle.Render("  (quick)")
	}
	if e.Context != "" {
		line += "  " + faintStyle.Render(e.Context)
	}
	if note := journal.CleanNote(e.Note); note != "" {
		line += "\n    " + truncate(note, 72)
	}
	return line
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// PrintSupportPrompt shows the non-blocking crisis support message.
func PrintSupportPrompt() {
	fmt.Println()
	fmt.Println(crisisStyle.Render("We care about you."))
	fmt.Println("We noticed you might be going through a hard time. You don't have to face this alone.")
	for _, h := range constants.Helplines {
		fmt.Printf("  %s — %s (%s)\n", h.Name, h.Phone, h.Desc)
	}
	fmt.Println()
}
