package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mantra-journal/mantra/internal/journal"
	"github.com/mantra-journal/mantra/internal/models"
	"github.com/mantra-journal/mantra/internal/utils"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6")).MarginBottom(1)
	streakStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FB923C"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	entryStyle  = lipgloss.NewStyle().PaddingLeft(2)
)

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	today := utils.Today()
	entries := m.store.Entries()

	b.WriteString(headerStyle.Render("Mantra — " + today))
	b.WriteString("\n")

	if streak := journal.CurrentStreak(entries, today); streak > 0 {
		b.WriteString(streakStyle.Render(fmt.Sprintf("🔥 %d day streak", streak)))
		b.WriteString("\n")
	}

	if intention, ok := m.store.Intention(); ok {
		mark := "[ ]"
		if intention.Completed {
			mark = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", mark, intention.Text))
	} else {
		b.WriteString(dimStyle.Render("No intention set for today.") + "\n")
	}
	b.WriteString("\n")

	day := journal.EntriesForDate(entries, today)
	if len(day) == 0 {
		b.WriteString(dimStyle.Render("No moments yet today.") + "\n")
	}
	for _, e := range day {
		line := fmt.Sprintf("%s  %s %s", e.Time, e.MoodEmoji, models.Moods[e.Mood].Label)
		if e.Context != "" {
			line += dimStyle.Render("  " + e.Context)
		}
		b.WriteString(entryStyle.Render(line) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}
