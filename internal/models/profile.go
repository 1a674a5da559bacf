package models

// Preferences holds per-user display preferences
type Preferences struct {
	Language string `json:"language"` // "en" | "hi"
	Theme    string `json:"theme"`    // "light" | "dark"
}

// UserProfile is the singleton per-installation profile. Streak and
// LastCheckIn are updated on every new-entry save; nothing else mutates
// after onboarding.
type UserProfile struct {
	Name        string      `json:"name"`
	Onboarded   bool        `json:"onboarded"`
	Streak      int         `json:"streak"`
	LastCheckIn int64       `json:"lastCheckIn"` // unix milliseconds, 0 = never
	CreatedAt   int64       `json:"createdAt"`   // unix milliseconds
	Preferences Preferences `json:"preferences"`
}
