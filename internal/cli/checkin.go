package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/mantra-journal/mantra/internal/constants"
	"github.com/mantra-journal/mantra/internal/journal"
	"github.com/mantra-journal/mantra/internal/models"
	"github.com/mantra-journal/mantra/internal/utils"
)

type CheckinCmd struct {
	Mood      string `short:"m" help:"Primary mood (great|good|okay|low|anxious|sad). Interactive when omitted."`
	Secondary string `short:"s" help:"Comma-separated secondary mood tags (max 5)."`
	Context   string `short:"c" help:"Context tag or short free text."`
	Note      string `short:"n" help:"Diary text."`
	Voice     string `help:"Voice transcript to attach."`
	Date      string `short:"d" help:"Backdate the entry (YYYY-MM-DD)."`
	Quick     bool   `short:"q" help:"Quick moment: skip the diary step."`
	Edit      string `help:"Edit an existing entry by id (prefix accepted)."`
}

func (c *CheckinCmd) Validate() error {
	if c.Mood != "" && !models.Mood(c.Mood).Valid() {
		return fmt.Errorf("invalid mood %q", c.Mood)
	}
	if c.Date != "" {
		if _, err := utils.ParseDate(c.Date); err != nil {
			return err
		}
	}
	return nil
}

func (c *CheckinCmd) Run(ctx *Context) error {
	if _, err := ctx.RequireProfile(); err != nil {
		return err
	}

	checkIn := journal.CheckIn{
		Mood:          models.Mood(c.Mood),
		Context:       c.Context,
		Note:          c.Note,
		Transcription: c.Voice,
		IsQuickMoment: c.Quick,
		Date:          c.Date,
	}
	if c.Secondary != "" {
		for _, tag := range strings.Split(c.Secondary, ",") {
			checkIn.SecondaryMoods = append(checkIn.SecondaryMoods, strings.TrimSpace(tag))
		}
	}

	var editing *models.MoodEntry
	if c.Edit != "" {
		for _, e := range ctx.Store.Entries() {
			if e.ID == c.Edit || strings.HasPrefix(e.ID, c.Edit) {
				entry := e
				editing = &entry
				break
			}
		}
		if editing == nil {
			return fmt.Errorf("no entry matching id %q", c.Edit)
		}
		if checkIn.Mood == "" {
			checkIn.Mood = editing.Mood
		}
		if checkIn.SecondaryMoods == nil {
			checkIn.SecondaryMoods = editing.SecondaryMoods
		}
		if checkIn.Context == "" {
			checkIn.Context = editing.Context
		}
		if checkIn.Note == "" {
			checkIn.Note = journal.CleanNote(editing.Note)
		}
		if checkIn.Transcription == "" {
			checkIn.Transcription = editing.Transcription
		}
	}

	if checkIn.Mood == "" {
		if err := c.runForm(&checkIn); err != nil {
			return err
		}
	}

	var (
		entry models.MoodEntry
		err   error
	)
	if editing != nil {
		entry, err = ctx.Store.UpdateEntry(editing.ID, checkIn)
	} else {
		entry, err = ctx.Store.CreateEntry(checkIn, time.Now())
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s  Logged %s for %s.\n", entry.MoodEmoji, models.Moods[entry.Mood].Label, entry.Date)
	if entry.IsCrisis {
		PrintSupportPrompt()
	}
	return nil
}

// runForm walks the interactive check-in flow: primary mood, secondary
// nuances, context, then the diary step (skipped for quick moments).
func (c *CheckinCmd) runForm(checkIn *journal.CheckIn) error {
	moodOptions := make([]huh.Option[string], 0, len(models.MoodOrder))
	for _, m := range models.MoodOrder {
		cfg := models.Moods[m]
		moodOptions = append(moodOptions, huh.NewOption(cfg.Emoji+"  "+cfg.Label, string(m)))
	}

	secondaryOptions := make([]huh.Option[string], 0, len(constants.SecondaryMoods))
	for _, sm := range constants.SecondaryMoods {
		secondaryOptions = append(secondaryOptions, huh.NewOption(sm.Emoji+"  "+sm.Label, sm.ID))
	}

	var mood string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling right now?").
				Options(moodOptions...).
				Value(&mood),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Any nuance to that?").
				Description("Pick up to 5.").
				Options(secondaryOptions...).
				Limit(constants.MaxSecondaryMoods).
				Value(&checkIn.SecondaryMoods),
			huh.NewInput().
				Title("What's the context?").
				Suggestions(constants.ContextTags).
				Value(&checkIn.Context),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	checkIn.Mood = models.Mood(mood)

	if !c.Quick {
		prompts := constants.MoodPrompts[checkIn.Mood]
		placeholder := "Unburden your mind..."
		if len(prompts) > 0 {
			placeholder = prompts[rand.Intn(len(prompts))]
		}
		diary := huh.NewForm(huh.NewGroup(
			huh.NewText().
				Title("Want to write about it?").
				Placeholder(placeholder).
				Value(&checkIn.Note),
		))
		if err := diary.Run(); err != nil {
			return err
		}
	}

	return nil
}
