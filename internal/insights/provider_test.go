package insights

import (
	"strings"
	"testing"

	"github.com/mantra-journal/mantra/internal/models"
)

func TestSummarizeEntries(t *testing.T) {
	entries := []models.MoodEntry{
		{
			Date:           "2025-08-28",
			Time:           "09:00",
			Mood:           models.MoodOkay,
			SecondaryMoods: []string{"tired"},
			Context:        "Work",
			Note:           "slow start",
			Timestamp:      100,
		},
		{
			Date:          "2025-08-30",
			Time:          "21:15",
			Mood:          models.MoodGood,
			Note:          "wound down early",
			Transcription: "read a book",
			Timestamp:     300,
		},
		{
			Date:      "2025-08-29",
			Time:      "12:30",
			Mood:      models.MoodAnxious,
			Note:      "deadline",
			Timestamp: 200,
		},
	}

	out := SummarizeEntries(entries, 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	want := "[2025-08-30 21:15] Mood: good. Secondary: . Context: . Note: wound down early (Voice: read a book)"
	if lines[0] != want {
		t.Errorf("line 0 = %q, want %q", lines[0], want)
	}
	if !strings.HasPrefix(lines[1], "[2025-08-29") {
		t.Errorf("entries not ordered newest first: %q", lines[1])
	}
	want = "[2025-08-28 09:00] Mood: okay. Secondary: tired. Context: Work. Note: slow start"
	if lines[2] != want {
		t.Errorf("line 2 = %q, want %q", lines[2], want)
	}
}

func TestSummarizeEntriesLimit(t *testing.T) {
	var entries []models.MoodEntry
	for i := 0; i < 5; i++ {
		entries = append(entries, models.MoodEntry{
			Date:      "2025-08-30",
			Time:      "08:00",
			Mood:      models.MoodOkay,
			Timestamp: int64(i),
		})
	}

	out := SummarizeEntries(entries, 2)
	if got := len(strings.Split(out, "\n")); got != 2 {
		t.Errorf("expected 2 lines, got %d", got)
	}

	if SummarizeEntries(nil, 10) != "" {
		t.Error("empty history must summarize to an empty string")
	}
}

func TestSummarizeEntriesDoesNotReorderInput(t *testing.T) {
	entries := []models.MoodEntry{
		{Date: "2025-08-28", Timestamp: 1, Mood: models.MoodOkay},
		{Date: "2025-08-30", Timestamp: 3, Mood: models.MoodGood},
	}
	SummarizeEntries(entries, 10)
	if entries[0].Timestamp != 1 || entries[1].Timestamp != 3 {
		t.Error("caller's slice must not be mutated")
	}
}

func TestBuildPromptMentionsUserAndHistory(t *testing.T) {
	entries := []models.MoodEntry{{
		Date:      "2025-08-30",
		Time:      "10:00",
		Mood:      models.MoodGreat,
		Note:      "ran along the river",
		Timestamp: 1,
	}}

	prompt := buildPrompt(entries, "Asha")
	if !strings.Contains(prompt, "User: Asha.") {
		t.Error("prompt missing user name")
	}
	if !strings.Contains(prompt, "ran along the river") {
		t.Error("prompt missing entry history")
	}
	for _, typ := range models.InsightTypes {
		if !strings.Contains(prompt, string(typ)) {
			t.Errorf("prompt missing insight type %s", typ)
		}
	}
}
