package insights

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mantra-journal/mantra/internal/constants"
	"github.com/mantra-journal/mantra/internal/models"
)

// Generator is the external AI collaborator. Any provider that returns one
// insight per required type satisfies the contract; the core never sees
// transport or schema details.
type Generator interface {
	GenerateInsights(ctx context.Context, entries []models.MoodEntry, userName string) ([]models.Insight, error)
}

// SummarizeEntries renders the most recent entries (by timestamp, newest
// first, capped at limit) as one line each for the provider prompt.
func SummarizeEntries(entries []models.MoodEntry, limit int) string {
	sorted := make([]models.MoodEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Timestamp > sorted[j].Timestamp })
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	lines := make([]string, 0, len(sorted))
	for _, e := range sorted {
		line := fmt.Sprintf("[%s %s] Mood: %s. Secondary: %s. Context: %s. Note: %s",
			e.Date, e.Time, e.Mood, strings.Join(e.SecondaryMoods, ", "), e.Context, e.Note)
		if e.Transcription != "" {
			line += fmt.Sprintf(" (Voice: %s)", e.Transcription)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// buildPrompt is the shared instruction text for insight generation.
func buildPrompt(entries []models.MoodEntry, userName string) string {
	return fmt.Sprintf(`You are an empathetic emotional intelligence companion for an app called "Mantra".
User: %s.

DATA HISTORY (Most recent first):
%s

TASK:
Analyze the provided mood history to generate 6 specific insights.
Even if there is only one entry, provide a forecast and analysis based on that initial data point and general psychological principles suitable for the context.

GENERATE 6 INSIGHTS matching these exact types:
1. pattern_detection: Frequency, trends, and clusters (or initial observation for new users).
2. temporal_patterns: Days of week, time of day analysis.
3. emotional_complexity: Co-occurrence of emotions.
4. what_helps: Evidence-based analysis of what improved mood based on notes.
5. predictions: Forecast/Advice for the next 24h. Be encouraging and specific to their current state.
6. diary_themes: Recurring topics in text.

Tone: Warm, empathetic, non-clinical. Use "you". Be specific.`,
		userName, SummarizeEntries(entries, constants.InsightHistoryLimit))
}
