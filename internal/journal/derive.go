package journal

import (
	"sort"
	"strings"
	"time"

	"github.com/mantra-journal/mantra/internal/models"
	"github.com/mantra-journal/mantra/internal/utils"
)

// Derivations are pure functions over an entry snapshot. Same input, same
// output; callers pass the slice returned by Store.Entries and may call from
// any goroutine.

// EntriesForDate returns the entries logged for the given day, ordered by
// creation time ascending. Day membership is decided by the Date field only;
// backdated entries belong to the day they were backdated to.
func EntriesForDate(entries []models.MoodEntry, date string) []models.MoodEntry {
	var out []models.MoodEntry
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out
}

// MostRecentEntryForDate returns the latest entry for the given day, if any.
func MostRecentEntryForDate(entries []models.MoodEntry, date string) (models.MoodEntry, bool) {
	day := EntriesForDate(entries, date)
	if len(day) == 0 {
		return models.MoodEntry{}, false
	}
	return day[len(day)-1], true
}

// CurrentStreak counts consecutive calendar days with at least one entry,
// walking backward from today. When today has no entry yet the walk starts
// at yesterday, so an unlogged morning does not zero the streak mid-day.
func CurrentStreak(entries []models.MoodEntry, today string) int {
	if len(entries) == 0 {
		return 0
	}

	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.Date] = true
	}

	check := today
	if !days[today] {
		prev, err := utils.AddDays(check, -1)
		if err != nil {
			return 0
		}
		check = prev
	}

	count := 0
	for days[check] {
		count++
		prev, err := utils.AddDays(check, -1)
		if err != nil {
			break
		}
		check = prev
	}
	return count
}

// MonthStats aggregates one calendar month of entries by primary mood.
// Secondary moods are excluded. Total can be zero; percentage rendering must
// guard against dividing by it.
type MonthStats struct {
	Counts map[models.Mood]int
	Total  int
}

// MonthlyAggregate tallies entries whose Date falls in the given year-month.
func MonthlyAggregate(entries []models.MoodEntry, year int, month time.Month) MonthStats {
	prefix := utils.MonthPrefix(year, month) + "-"
	stats := MonthStats{Counts: make(map[models.Mood]int)}
	for _, e := range entries {
		if strings.HasPrefix(e.Date, prefix) {
			stats.Counts[e.Mood]++
			stats.Total++
		}
	}
	return stats
}

// MoodFrequency tallies all entries by primary mood.
func MoodFrequency(entries []models.MoodEntry) map[models.Mood]int {
	counts := make(map[models.Mood]int)
	for _, e := range entries {
		counts[e.Mood]++
	}
	return counts
}

// MostFrequentMood returns the mood with the highest entry count. Ties are
// broken by the declared mood order, so the result is stable across runs.
func MostFrequentMood(entries []models.MoodEntry) (models.Mood, bool) {
	if len(entries) == 0 {
		return "", false
	}
	counts := MoodFrequency(entries)
	var best models.Mood
	bestCount := 0
	for _, m := range models.MoodOrder {
		if counts[m] > bestCount {
			best = m
			bestCount = counts[m]
		}
	}
	return best, bestCount > 0
}
