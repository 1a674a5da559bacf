package journal

import (
	"testing"
	"time"

	"github.com/mantra-journal/mantra/internal/models"
)

func entryOn(date string, ts int64, mood models.Mood) models.MoodEntry {
	return models.MoodEntry{ID: date + "-" + mood.Emoji(), Date: date, Timestamp: ts, Mood: mood}
}

func TestEntriesForDate(t *testing.T) {
	entries := []models.MoodEntry{
		entryOn("2025-08-30", 300, models.MoodGood),
		entryOn("2025-08-29", 250, models.MoodSad),
		entryOn("2025-08-30", 100, models.MoodOkay),
		entryOn("2025-08-30", 200, models.MoodGreat),
	}

	got := EntriesForDate(entries, "2025-08-30")
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Timestamp > got[i].Timestamp {
			t.Errorf("entries not sorted ascending by timestamp: %d before %d", got[i-1].Timestamp, got[i].Timestamp)
		}
	}
	for _, e := range got {
		if e.Date != "2025-08-30" {
			t.Errorf("entry for wrong date %s included", e.Date)
		}
	}

	if got := EntriesForDate(nil, "2025-08-30"); len(got) != 0 {
		t.Errorf("expected empty result for empty input, got %d entries", len(got))
	}
}

func TestEntriesForDateIgnoresTimestampDay(t *testing.T) {
	// A backdated entry belongs to its Date even when its creation timestamp
	// falls on another day.
	backdated := entryOn("2025-08-01", time.Date(2025, 8, 30, 10, 0, 0, 0, time.UTC).UnixMilli(), models.MoodLow)
	got := EntriesForDate([]models.MoodEntry{backdated}, "2025-08-01")
	if len(got) != 1 {
		t.Fatalf("backdated entry not returned for its date, got %d entries", len(got))
	}
	if got := EntriesForDate([]models.MoodEntry{backdated}, "2025-08-30"); len(got) != 0 {
		t.Errorf("backdated entry leaked into its creation day")
	}
}

func TestMostRecentEntryForDate(t *testing.T) {
	entries := []models.MoodEntry{
		entryOn("2025-08-30", 100, models.MoodOkay),
		entryOn("2025-08-30", 300, models.MoodGood),
		entryOn("2025-08-30", 200, models.MoodGreat),
	}

	got, ok := MostRecentEntryForDate(entries, "2025-08-30")
	if !ok {
		t.Fatal("expected an entry")
	}
	if got.Timestamp != 300 {
		t.Errorf("expected latest timestamp 300, got %d", got.Timestamp)
	}

	if _, ok := MostRecentEntryForDate(entries, "2025-08-29"); ok {
		t.Error("expected no entry for an unlogged day")
	}
}

func TestCurrentStreak(t *testing.T) {
	today := "2025-08-30"

	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{
			name:  "three consecutive days including today",
			dates: []string{"2025-08-30", "2025-08-29", "2025-08-28"},
			want:  3,
		},
		{
			name:  "today not yet logged starts from yesterday",
			dates: []string{"2025-08-29", "2025-08-28"},
			want:  2,
		},
		{
			name:  "no entries",
			dates: nil,
			want:  0,
		},
		{
			name:  "gap breaks the count",
			dates: []string{"2025-08-30", "2025-08-29", "2025-08-27", "2025-08-26"},
			want:  2,
		},
		{
			name:  "neither today nor yesterday logged",
			dates: []string{"2025-08-27"},
			want:  0,
		},
		{
			name:  "multiple entries per day count once",
			dates: []string{"2025-08-30", "2025-08-30", "2025-08-29"},
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []models.MoodEntry
			for i, d := range tt.dates {
				entries = append(entries, entryOn(d, int64(i), models.MoodOkay))
			}
			if got := CurrentStreak(entries, today); got != tt.want {
				t.Errorf("CurrentStreak(%v) = %d, want %d", tt.dates, got, tt.want)
			}
		})
	}
}

func TestMonthlyAggregate(t *testing.T) {
	entries := []models.MoodEntry{
		entryOn("2025-08-01", 1, models.MoodGood),
		entryOn("2025-08-15", 2, models.MoodGood),
		entryOn("2025-08-30", 3, models.MoodSad),
		entryOn("2025-07-31", 4, models.MoodGreat),
	}

	stats := MonthlyAggregate(entries, 2025, time.August)
	if stats.Total != 3 {
		t.Errorf("total = %d, want 3", stats.Total)
	}
	if stats.Counts[models.MoodGood] != 2 {
		t.Errorf("good count = %d, want 2", stats.Counts[models.MoodGood])
	}
	if stats.Counts[models.MoodSad] != 1 {
		t.Errorf("sad count = %d, want 1", stats.Counts[models.MoodSad])
	}
	if stats.Counts[models.MoodGreat] != 0 {
		t.Errorf("great count = %d, want 0", stats.Counts[models.MoodGreat])
	}
}

func TestMonthlyAggregateEmptyMonth(t *testing.T) {
	stats := MonthlyAggregate(nil, 2025, time.January)
	if stats.Total != 0 {
		t.Errorf("total = %d, want 0", stats.Total)
	}
	if len(stats.Counts) != 0 {
		t.Errorf("counts = %v, want empty", stats.Counts)
	}
}

func TestMostFrequentMood(t *testing.T) {
	tests := []struct {
		name   string
		moods  []models.Mood
		want   models.Mood
		wantOK bool
	}{
		{
			name:   "clear winner",
			moods:  []models.Mood{models.MoodSad, models.MoodSad, models.MoodGood},
			want:   models.MoodSad,
			wantOK: true,
		},
		{
			name:   "tie broken by declared order",
			moods:  []models.Mood{models.MoodSad, models.MoodGood},
			want:   models.MoodGood,
			wantOK: true,
		},
		{
			name:   "three way tie picks earliest declared",
			moods:  []models.Mood{models.MoodAnxious, models.MoodOkay, models.MoodLow},
			want:   models.MoodOkay,
			wantOK: true,
		},
		{
			name:   "no entries",
			moods:  nil,
			want:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []models.MoodEntry
			for i, m := range tt.moods {
				entries = append(entries, entryOn("2025-08-30", int64(i), m))
			}
			got, ok := MostFrequentMood(entries)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("MostFrequentMood(%v) = %q, want %q", tt.moods, got, tt.want)
			}
		})
	}
}

func TestMoodFrequency(t *testing.T) {
	entries := []models.MoodEntry{
		entryOn("2025-08-30", 1, models.MoodGood),
		entryOn("2025-08-29", 2, models.MoodGood),
		entryOn("2025-08-28", 3, models.MoodAnxious),
	}
	counts := MoodFrequency(entries)
	if counts[models.MoodGood] != 2 || counts[models.MoodAnxious] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}
