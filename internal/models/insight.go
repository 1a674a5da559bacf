package models

// InsightType identifies one of the six fixed insight categories
type InsightType string

const (
	InsightPatternDetection    InsightType = "pattern_detection"
	InsightTemporalPatterns    InsightType = "temporal_patterns"
	InsightEmotionalComplexity InsightType = "emotional_complexity"
	InsightWhatHelps           InsightType = "what_helps"
	InsightPredictions         InsightType = "predictions"
	InsightDiaryThemes         InsightType = "diary_themes"
)

// InsightTypes is the required category set, in presentation order. A full
// generated batch contains exactly one insight per type.
var InsightTypes = []InsightType{
	InsightPatternDetection,
	InsightTemporalPatterns,
	InsightEmotionalComplexity,
	InsightWhatHelps,
	InsightPredictions,
	InsightDiaryThemes,
}

// Insight is one AI-generated analysis card.
type Insight struct {
	ID      string      `json:"id"`
	Type    InsightType `json:"type"`
	Title   string      `json:"title"`
	Content string      `json:"content"`
	Expiry  int64       `json:"expiry,omitempty"` // unix milliseconds
}

// Valid reports whether t is one of the six insight categories.
func (t InsightType) Valid() bool {
	for _, it := range InsightTypes {
		if t == it {
			return true
		}
	}
	return false
}
