package models

// MoodEntry represents one logged emotional moment.
//
// Date is the logical day the entry belongs to and may be backdated;
// Timestamp is the wall-clock creation time in unix milliseconds and is the
// authoritative within-day sort key. The two are independent: day queries
// filter on Date, never on Timestamp.
type MoodEntry struct {
	ID             string   `json:"id"`
	Date           string   `json:"date"` // YYYY-MM-DD
	Time           string   `json:"time"` // HH:MM, display cache of creation time
	Mood           Mood     `json:"mood"`
	MoodEmoji      string   `json:"moodEmoji"`
	SecondaryMoods []string `json:"secondaryMoods"`
	Context        string   `json:"context"`
	Note           string   `json:"note"`
	Transcription  string   `json:"transcription,omitempty"`
	Timestamp      int64    `json:"timestamp"`
	IsCrisis       bool     `json:"isCrisis,omitempty"`
	IsQuickMoment  bool     `json:"isQuickMoment,omitempty"`
}

// SecondaryMood is one tag from the secondary-mood vocabulary.
type SecondaryMood struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}
