package journal

import (
	"testing"

	"github.com/mantra-journal/mantra/internal/models"
)

func TestCheckInValidate(t *testing.T) {
	tests := []struct {
		name    string
		checkIn CheckIn
		wantErr bool
	}{
		{
			name:    "minimal valid payload",
			checkIn: CheckIn{Mood: models.MoodOkay},
			wantErr: false,
		},
		{
			name: "full valid payload",
			checkIn: CheckIn{
				Mood:           models.MoodAnxious,
				SecondaryMoods: []string{"worried", "tense"},
				Context:        "Exam tomorrow",
				Note:           "can't settle down",
				Transcription:  "spoke into the mic",
				IsQuickMoment:  true,
				Date:           "2025-08-29",
			},
			wantErr: false,
		},
		{
			name:    "missing mood",
			checkIn: CheckIn{},
			wantErr: true,
		},
		{
			name:    "unknown mood",
			checkIn: CheckIn{Mood: "fine"},
			wantErr: true,
		},
		{
			name: "five secondary moods allowed",
			checkIn: CheckIn{
				Mood:           models.MoodGood,
				SecondaryMoods: []string{"a", "b", "c", "d", "e"},
			},
			wantErr: false,
		},
		{
			name: "six secondary moods rejected",
			checkIn: CheckIn{
				Mood:           models.MoodGood,
				SecondaryMoods: []string{"a", "b", "c", "d", "e", "f"},
			},
			wantErr: true,
		},
		{
			name:    "malformed date",
			checkIn: CheckIn{Mood: models.MoodGood, Date: "August 30"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.checkIn.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
