package journal

import (
	"fmt"

	"github.com/mantra-journal/mantra/internal/constants"
	"github.com/mantra-journal/mantra/internal/models"
	"github.com/mantra-journal/mantra/internal/utils"
)

// CheckIn is the typed save payload for a check-in. Note holds the clean
// diary text; the store embeds the transcript on save so the persisted note
// always follows the delimiter convention.
type CheckIn struct {
	Mood           models.Mood
	SecondaryMoods []string
	Context        string
	Note           string
	Transcription  string
	IsQuickMoment  bool

	// Date backdates the entry when set; empty means today. Creation keeps
	// the real timestamp either way.
	Date string
}

// Validate checks the payload at the save boundary.
func (c CheckIn) Validate() error {
	if !c.Mood.Valid() {
		return fmt.Errorf("invalid mood %q", c.Mood)
	}
	if len(c.SecondaryMoods) > constants.MaxSecondaryMoods {
		return fmt.Errorf("at most %d secondary moods allowed, got %d", constants.MaxSecondaryMoods, len(c.SecondaryMoods))
	}
	if c.Date != "" {
		if _, err := utils.ParseDate(c.Date); err != nil {
			return err
		}
	}
	return nil
}

// composedNote is the persisted note text: diary text plus the embedded
// transcript when one exists.
func (c CheckIn) composedNote() string {
	return EmbedTranscript(c.Note, c.Transcription)
}
