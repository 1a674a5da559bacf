package journal

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mantra-journal/mantra/internal/constants"
	"github.com/mantra-journal/mantra/internal/logger"
	"github.com/mantra-journal/mantra/internal/models"
	"github.com/mantra-journal/mantra/internal/storage"
	"github.com/mantra-journal/mantra/internal/utils"
)

// ErrEntryNotFound is returned by UpdateEntry for an unknown id. The CLI
// treats it as a logic error rather than a user-facing message; it cannot
// occur through the normal flow.
var ErrEntryNotFound = errors.New("entry not found")

// Store owns the session state: the entry collection plus the profile,
// intention, and insight singletons. In-memory state is the source of truth;
// the storage provider is a best-effort mirror loaded once at startup.
// The store assumes a single logical writer.
type Store struct {
	provider storage.Provider

	entries   []models.MoodEntry
	profile   *models.UserProfile
	intention *models.Intention
	insights  []models.Insight
}

// NewStore wraps the given persistence provider. Call Load before use.
func NewStore(provider storage.Provider) *Store {
	return &Store{provider: provider}
}

// Load reads the four persisted records. Each record degrades independently:
// a missing or unreadable record falls back to its default instead of
// failing startup. A persisted intention from a previous day is discarded
// here, not surfaced.
func (s *Store) Load() {
	s.entries = nil
	if data, err := s.provider.Get(constants.KeyEntries); err == nil {
		var entries []models.MoodEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			logger.Warn("Discarding unreadable entries record", "error", err)
		} else {
			s.entries = entries
		}
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		logger.Warn("Failed to load entries", "error", err)
	}

	s.profile = nil
	if data, err := s.provider.Get(constants.KeyProfile); err == nil {
		var profile models.UserProfile
		if err := json.Unmarshal(data, &profile); err != nil {
			logger.Warn("Discarding unreadable profile record", "error", err)
		} else {
			s.profile = &profile
		}
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		logger.Warn("Failed to load profile", "error", err)
	}

	s.intention = nil
	if data, err := s.provider.Get(constants.KeyIntention); err == nil {
		var intention models.Intention
		if err := json.Unmarshal(data, &intention); err != nil {
			logger.Warn("Discarding unreadable intention record", "error", err)
		} else if intention.Date == utils.Today() {
			s.intention = &intention
		}
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		logger.Warn("Failed to load intention", "error", err)
	}

	s.insights = nil
	if data, err := s.provider.Get(constants.KeyInsights); err == nil {
		var insights []models.Insight
		if err := json.Unmarshal(data, &insights); err != nil {
			logger.Warn("Discarding unreadable insights record", "error", err)
		} else {
			s.insights = insights
		}
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		logger.Warn("Failed to load insights", "error", err)
	}
}

// CreateEntry validates the payload, appends a new entry, and runs the
// synchronous write-path policies: the crisis scan annotates the entry and
// the streak update adjusts the profile. The caller reads IsCrisis off the
// returned entry to decide whether to show the support prompt.
func (s *Store) CreateEntry(c CheckIn, now time.Time) (models.MoodEntry, error) {
	if err := c.Validate(); err != nil {
		return models.MoodEntry{}, err
	}

	date := c.Date
	if date == "" {
		date = utils.FormatDate(now)
	}

	note := c.composedNote()
	entry := models.MoodEntry{
		ID:             uuid.NewString(),
		Date:           date,
		Time:           utils.FormatTime(now),
		Mood:           c.Mood,
		MoodEmoji:      c.Mood.Emoji(),
		SecondaryMoods: c.SecondaryMoods,
		Context:        c.Context,
		Note:           note,
		Transcription:  c.Transcription,
		Timestamp:      utils.UnixMillis(now),
		IsCrisis:       ContainsCrisisSignal(note),
		IsQuickMoment:  c.IsQuickMoment,
	}

	s.entries = append(s.entries, entry)
	s.persistEntries()

	if s.profile != nil {
		s.profile.Streak = NextStreak(s.profile.Streak, s.profile.LastCheckIn, utils.UnixMillis(now))
		s.profile.LastCheckIn = utils.UnixMillis(now)
		s.persistProfile()
	}

	return entry, nil
}

// UpdateEntry replaces an existing entry wholesale. The original id,
// creation time, and timestamp are preserved; the date is kept unless the
// payload explicitly changes it. Edits never touch the streak.
func (s *Store) UpdateEntry(id string, c CheckIn) (models.MoodEntry, error) {
	if err := c.Validate(); err != nil {
		return models.MoodEntry{}, err
	}

	for i, e := range s.entries {
		if e.ID != id {
			continue
		}

		date := e.Date
		if c.Date != "" {
			date = c.Date
		}

		note := c.composedNote()
		updated := models.MoodEntry{
			ID:             e.ID,
			Date:           date,
			Time:           e.Time,
			Mood:           c.Mood,
			MoodEmoji:      c.Mood.Emoji(),
			SecondaryMoods: c.SecondaryMoods,
			Context:        c.Context,
			Note:           note,
			Transcription:  c.Transcription,
			Timestamp:      e.Timestamp,
			IsCrisis:       ContainsCrisisSignal(note),
			IsQuickMoment:  c.IsQuickMoment,
		}
		s.entries[i] = updated
		s.persistEntries()
		return updated, nil
	}

	return models.MoodEntry{}, ErrEntryNotFound
}

// Entries returns a snapshot of the collection. Order is insertion order,
// not chronological; derivations sort as needed.
func (s *Store) Entries() []models.MoodEntry {
	out := make([]models.MoodEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Profile returns the user profile, if onboarding has completed.
func (s *Store) Profile() (models.UserProfile, bool) {
	if s.profile == nil {
		return models.UserProfile{}, false
	}
	return *s.profile, true
}

// CompleteOnboarding creates the singleton profile.
func (s *Store) CompleteOnboarding(name string, now time.Time) models.UserProfile {
	profile := models.UserProfile{
		Name:        name,
		Onboarded:   true,
		Streak:      0,
		LastCheckIn: 0,
		CreatedAt:   utils.UnixMillis(now),
		Preferences: models.Preferences{Language: "en", Theme: "dark"},
	}
	s.profile = &profile
	s.persistProfile()
	return profile
}

// Intention returns the active intention. A loaded intention that has rolled
// past its day reports as unset even before the next Load.
func (s *Store) Intention() (models.Intention, bool) {
	if s.intention == nil || s.intention.Date != utils.Today() {
		return models.Intention{}, false
	}
	return *s.intention, true
}

// SetIntention replaces any prior intention with a fresh one for today.
func (s *Store) SetIntention(text string, now time.Time) models.Intention {
	intention := models.Intention{
		ID:        uuid.NewString(),
		Text:      text,
		Completed: false,
		Date:      utils.FormatDate(now),
	}
	s.intention = &intention
	s.persistIntention()
	return intention
}

// ToggleIntention flips the completed flag. No-op when unset.
func (s *Store) ToggleIntention() (models.Intention, bool) {
	current, ok := s.Intention()
	if !ok {
		return models.Intention{}, false
	}
	current.Completed = !current.Completed
	s.intention = &current
	s.persistIntention()
	return current, true
}

// Insights returns the cached insight batch, possibly empty.
func (s *Store) Insights() []models.Insight {
	out := make([]models.Insight, len(s.insights))
	copy(out, s.insights)
	return out
}

// SetInsights replaces the cached batch wholesale.
func (s *Store) SetInsights(batch []models.Insight) {
	s.insights = batch
	s.persistInsights()
}

// Wipe clears all state, in memory and mirrored, in one destructive action.
// The next start lands in the first-run onboarding flow.
func (s *Store) Wipe() {
	s.entries = nil
	s.profile = nil
	s.intention = nil
	s.insights = nil
	for _, key := range []string{constants.KeyEntries, constants.KeyProfile, constants.KeyIntention, constants.KeyInsights} {
		if err := s.provider.Remove(key); err != nil {
			logger.Warn("Failed to remove record", "key", key, "error", err)
		}
	}
}

// Mirror writes are fire-and-forget: a failure is logged and the in-memory
// mutation stands.

func (s *Store) persistEntries() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		logger.Warn("Failed to serialize entries", "error", err)
		return
	}
	if err := s.provider.Set(constants.KeyEntries, data); err != nil {
		logger.Warn("Failed to persist entries", "error", err)
	}
}

func (s *Store) persistProfile() {
	if s.profile == nil {
		return
	}
	data, err := json.Marshal(s.profile)
	if err != nil {
		logger.Warn("Failed to serialize profile", "error", err)
		return
	}
	if err := s.provider.Set(constants.KeyProfile, data); err != nil {
		logger.Warn("Failed to persist profile", "error", err)
	}
}

func (s *Store) persistIntention() {
	if s.intention == nil {
		if err := s.provider.Remove(constants.KeyIntention); err != nil {
			logger.Warn("Failed to remove intention", "error", err)
		}
		return
	}
	data, err := json.Marshal(s.intention)
	if err != nil {
		logger.Warn("Failed to serialize intention", "error", err)
		return
	}
	if err := s.provider.Set(constants.KeyIntention, data); err != nil {
		logger.Warn("Failed to persist intention", "error", err)
	}
}

func (s *Store) persistInsights() {
	data, err := json.Marshal(s.insights)
	if err != nil {
		logger.Warn("Failed to serialize insights", "error", err)
		return
	}
	if err := s.provider.Set(constants.KeyInsights, data); err != nil {
		logger.Warn("Failed to persist insights", "error", err)
	}
}
