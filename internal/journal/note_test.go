package journal

import "testing"

func TestEmbedTranscript(t *testing.T) {
	tests := []struct {
		name       string
		note       string
		transcript string
		want       string
	}{
		{
			name:       "empty transcript returns note unchanged",
			note:       "a quiet day",
			transcript: "",
			want:       "a quiet day",
		},
		{
			name:       "transcript appended with delimiter",
			note:       "a quiet day",
			transcript: "spoke about work",
			want:       "a quiet day\n\n[Voice Transcript]: spoke about work",
		},
		{
			name:       "empty note still carries transcript",
			note:       "",
			transcript: "spoke about work",
			want:       "\n\n[Voice Transcript]: spoke about work",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EmbedTranscript(tt.note, tt.transcript); got != tt.want {
				t.Errorf("EmbedTranscript(%q, %q) = %q, want %q", tt.note, tt.transcript, got, tt.want)
			}
		})
	}
}

func TestCleanNote(t *testing.T) {
	tests := []struct {
		name string
		note string
		want string
	}{
		{
			name: "no transcript",
			note: "just thoughts",
			want: "just thoughts",
		},
		{
			name: "strips embedded transcript",
			note: "just thoughts\n\n[Voice Transcript]: more words",
			want: "just thoughts",
		},
		{
			name: "strips transcript missing the trailing space",
			note: "just thoughts\n\n[Voice Transcript]:more words",
			want: "just thoughts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanNote(tt.note); got != tt.want {
				t.Errorf("CleanNote(%q) = %q, want %q", tt.note, got, tt.want)
			}
		})
	}
}

func TestTranscriptRoundTrip(t *testing.T) {
	original := "felt heavy this morning\n\n[Voice Transcript]: talked it through on a walk"
	transcript := "talked it through on a walk"

	rebuilt := EmbedTranscript(CleanNote(original), transcript)
	if rebuilt != original {
		t.Errorf("round trip = %q, want %q", rebuilt, original)
	}
}
