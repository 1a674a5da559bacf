package models

// Mood is the primary mood of a check-in
type Mood string

const (
	MoodGreat   Mood = "great"
	MoodGood    Mood = "good"
	MoodOkay    Mood = "okay"
	MoodLow     Mood = "low"
	MoodAnxious Mood = "anxious"
	MoodSad     Mood = "sad"
)

// MoodConfig describes the display attributes of a primary mood
type MoodConfig struct {
	Label     string `json:"label"`
	Emoji     string `json:"emoji"`
	Color     string `json:"color"` // hex code
	Intensity int    `json:"intensity"` // 1-5 scale
}

// MoodOrder is the canonical declaration order of the mood set. Frequency
// ties are broken by this order so derived views are deterministic.
var MoodOrder = []Mood{MoodGreat, MoodGood, MoodOkay, MoodLow, MoodAnxious, MoodSad}

// Moods maps each primary mood to its display configuration. Anxious and sad
// share the lowest intensity rank on purpose; intensity is not a valence scale.
var Moods = map[Mood]MoodConfig{
	MoodGreat:   {Label: "Great", Emoji: "🤩", Color: "#FACC15", Intensity: 5},
	MoodGood:    {Label: "Good", Emoji: "🙂", Color: "#4ADE80", Intensity: 4},
	MoodOkay:    {Label: "Okay", Emoji: "😐", Color: "#22D3EE", Intensity: 3},
	MoodLow:     {Label: "Low", Emoji: "😔", Color: "#A78BFA", Intensity: 2},
	MoodAnxious: {Label: "Anxious", Emoji: "😰", Color: "#FB923C", Intensity: 1},
	MoodSad:     {Label: "Sad", Emoji: "😢", Color: "#60A5FA", Intensity: 1},
}

// Valid reports whether m is one of the six primary moods.
func (m Mood) Valid() bool {
	_, ok := Moods[m]
	return ok
}

// Emoji returns the emoji for the mood, or an empty string for unknown moods.
func (m Mood) Emoji() string {
	return Moods[m].Emoji
}
