package constants

import "github.com/mantra-journal/mantra/internal/models"

// SecondaryMoods is the fixed vocabulary of secondary-mood tags offered
// during a check-in. Entries store tag IDs, not labels.
var SecondaryMoods = []models.SecondaryMood{
	// High energy / negative
	{ID: "frustrated", Label: "Frustrated", Emoji: "😤"},
	{ID: "angry", Label: "Angry", Emoji: "😠"},
	{ID: "furious", Label: "Furious", Emoji: "🤬"},
	{ID: "irritated", Label: "Irritated", Emoji: "🙄"},
	{ID: "defensive", Label: "Defensive", Emoji: "🛡️"},
	// High energy / positive
	{ID: "excited", Label: "Excited", Emoji: "⚡"},
	{ID: "mindblown", Label: "Mind-blown", Emoji: "🤯"},
	{ID: "empowered", Label: "Empowered", Emoji: "🔥"},
	{ID: "confident", Label: "Confident", Emoji: "😎"},
	{ID: "silly", Label: "Silly", Emoji: "🤪"},
	// Low energy / negative
	{ID: "tired", Label: "Tired", Emoji: "🥱"},
	{ID: "exhausted", Label: "Exhausted", Emoji: "😫"},
	{ID: "heartbroken", Label: "Heartbroken", Emoji: "💔"},
	{ID: "disappointed", Label: "Disappointed", Emoji: "😞"},
	{ID: "lonely", Label: "Lonely", Emoji: "🌑"},
	{ID: "guilty", Label: "Guilty", Emoji: "😓"},
	{ID: "regretful", Label: "Regretful", Emoji: "🥀"},
	{ID: "hurt", Label: "Hurt", Emoji: "🤕"},
	{ID: "sleepy", Label: "Sleepy", Emoji: "💤"},
	{ID: "bored", Label: "Bored", Emoji: "😶"},
	{ID: "numb", Label: "Numb", Emoji: "🌫️"},
	// High stress / fear
	{ID: "scared", Label: "Scared", Emoji: "😨"},
	{ID: "overwhelmed", Label: "Overwhelmed", Emoji: "🌊"},
	{ID: "stressed", Label: "Stressed", Emoji: "😫"},
	{ID: "pressured", Label: "Pressured", Emoji: "💣"},
	{ID: "worried", Label: "Worried", Emoji: "😟"},
	{ID: "shocked", Label: "Shocked", Emoji: "⚡"},
	{ID: "uncertain", Label: "Uncertain", Emoji: "🤔"},
	{ID: "vulnerable", Label: "Vulnerable", Emoji: "🥺"},
	{ID: "uneasy", Label: "Uneasy", Emoji: "😬"},
	{ID: "tense", Label: "Tense", Emoji: "😖"},
	// Positive / calm
	{ID: "calm", Label: "Calm", Emoji: "😌"},
	{ID: "peaceful", Label: "Peaceful", Emoji: "🕊️"},
	{ID: "hopeful", Label: "Hopeful", Emoji: "✨"},
	{ID: "grateful", Label: "Grateful", Emoji: "🙏"},
	{ID: "relieved", Label: "Relieved", Emoji: "😅"},
}

// ContextTags is the fixed tag vocabulary for the context field. The field
// also accepts short free text; the two are mutually exclusive in the UI only.
var ContextTags = []string{
	"Academic stress", "Family pressure", "Work deadline", "Relationship",
	"Money worries", "Health", "Social battery", "Future anxiety",
	"Travel", "Exercise", "Party", "Date", "Sleep", "Weather",
}

// CrisisPhrases are matched case-insensitively against note text on every
// save. A match flags the entry and surfaces the support prompt; it never
// blocks the save.
var CrisisPhrases = []string{
	"suicide", "kill myself", "end it all", "better off dead", "no point living",
	"self harm", "cutting", "hurting myself", "want to die",
}

// Helpline is one entry in the support directory shown with the crisis prompt
type Helpline struct {
	Name  string
	Phone string
	Desc  string
}

// Helplines backs the non-blocking support prompt.
var Helplines = []Helpline{
	{Name: "Vandrevala Foundation", Phone: "1860-2662-345", Desc: "24/7 Crisis Support"},
	{Name: "iCall", Phone: "9152987821", Desc: "Mon-Sat, 8 AM-10 PM"},
	{Name: "AASRA", Phone: "+91-9820466726", Desc: "24/7 Helpline"},
}
