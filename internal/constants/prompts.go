package constants

import "github.com/mantra-journal/mantra/internal/models"

// PromptCategory groups reflection prompts under a themed heading
type PromptCategory struct {
	Category string
	Prompts  []string
}

// ReflectionPrompts is the general prompt library shown by `mantra prompts`.
var ReflectionPrompts = []PromptCategory{
	{
		Category: "🌟 Gratitude",
		Prompts: []string{
			"What's one thing you're grateful for today?",
			"Who made your day a little better?",
			"What's something you often take for granted?",
			"Name 3 small things that went well today",
			"What's a comfort you have that others might not?",
			"Who showed up for you this week?",
			"What ability/skill are you thankful you have?",
		},
	},
	{
		Category: "🎯 Self-Discovery",
		Prompts: []string{
			"What does your ideal day look like?",
			"What are three words that describe you best?",
			"When do you feel most like yourself?",
			"What is a boundary you need to set?",
			"What advice would you give your younger self?",
			"What brings you energy vs what drains you?",
		},
	},
	{
		Category: "🌊 Emotional Processing",
		Prompts: []string{
			"What emotion are you avoiding right now?",
			"If this feeling had a color, what would it be and why?",
			"What triggered this mood today?",
			"How does this emotion feel physically in your body?",
			"What do you need most right now?",
		},
	},
	{
		Category: "👨‍👩‍👦 Relationships",
		Prompts: []string{
			"Who do you feel safest with?",
			"Is there a conversation you've been avoiding?",
			"How have you been a good friend recently?",
			"What quality do you value most in others?",
		},
	},
}

// MoodPrompts offers diary prompts tuned to the selected primary mood.
var MoodPrompts = map[models.Mood][]string{
	models.MoodAnxious: {
		"What's the worst that could realistically happen?",
		"What parts of this CAN you control?",
		"When you felt this before, what helped?",
		"If your anxiety could talk, what would it say?",
		"What would you tell a friend feeling this way?",
	},
	models.MoodSad: {
		"What loss or disappointment are you grieving?",
		"What is one small way you can be kind to yourself today?",
		"It's okay to not be okay. Write about what hurts.",
		"Who can you reach out to for a hug or chat?",
	},
	models.MoodLow: {
		"What is draining your energy right now?",
		"What is one tiny thing you can do to shift your state?",
		"Are you physically tired or emotionally tired?",
		"List 3 things that usually bring you joy.",
	},
	models.MoodOkay: {
		"What would make today a 'Good' day?",
		"What is keeping you steady right now?",
		"Are you feeling neutral or just numb?",
		"What are you looking forward to?",
	},
	models.MoodGood: {
		"What went right today?",
		"How can you carry this energy into tomorrow?",
		"Who did you share your good mood with?",
		"What strengths did you use today?",
	},
	models.MoodGreat: {
		"Capture this moment: what does it feel like?",
		"What contributed to this amazing feeling?",
		"How can you celebrate yourself today?",
		"Write a note to your future self for a bad day.",
	},
}
