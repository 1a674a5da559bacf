package constants

const (
	AppName            = "mantra"
	DefaultKeyringUser = "gemini-api-key"
	DefaultStoragePath = "~/.config/mantra/journal"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Persisted record keys. The four records are independent; each one falls
	// back to its default when missing or unreadable.
	KeyEntries   = "mantra_entries"
	KeyProfile   = "mantra_profile"
	KeyIntention = "mantra_intention"
	KeyInsights  = "mantra_insights"

	// MaxSecondaryMoods caps the secondary-mood tags on a single entry.
	MaxSecondaryMoods = 5

	// InsightHistoryLimit is the number of most-recent entries summarized for
	// the AI collaborator.
	InsightHistoryLimit = 100
)
