package models

// Intention is the single daily intention. An intention whose Date is not
// today is expired and must not be surfaced; it is discarded at load time
// rather than deleted.
type Intention struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"` // YYYY-MM-DD
}
