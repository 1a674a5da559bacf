package journal

import (
	"strings"

	"github.com/mantra-journal/mantra/internal/constants"
)

// ContainsCrisisSignal reports whether text contains any crisis-indicator
// phrase, matched case-insensitively. The scan is advisory: it flags the
// entry and triggers the support prompt, and never blocks a save. It runs
// synchronously with no external dependency.
func ContainsCrisisSignal(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range constants.CrisisPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
