package journal

import "strings"

// The transcript is appended to the diary text with this delimiter. The
// split key deliberately omits the trailing space so older notes that were
// saved without it still split cleanly.
const (
	transcriptDelimiter = "\n\n[Voice Transcript]: "
	transcriptSplitKey  = "\n\n[Voice Transcript]:"
)

// EmbedTranscript appends transcript to note using the delimiter convention.
// An empty transcript returns note unchanged, so
// EmbedTranscript(CleanNote(n), t) round-trips byte-for-byte.
func EmbedTranscript(note, transcript string) string {
	if transcript == "" {
		return note
	}
	return note + transcriptDelimiter + transcript
}

// CleanNote strips an embedded transcript, returning only the diary text.
func CleanNote(note string) string {
	if i := strings.Index(note, transcriptSplitKey); i >= 0 {
		return note[:i]
	}
	return note
}
