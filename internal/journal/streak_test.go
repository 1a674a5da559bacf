package journal

import (
	"testing"
	"time"
)

func TestNextStreak(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC).UnixMilli()

	tests := []struct {
		name        string
		current     int
		lastCheckIn int64
		now         int64
		want        int
	}{
		{
			name:        "first ever check-in",
			current:     0,
			lastCheckIn: 0,
			now:         now,
			want:        1,
		},
		{
			name:        "consecutive day continues streak",
			current:     5,
			lastCheckIn: now - 20*60*60*1000,
			now:         now,
			want:        6,
		},
		{
			name:        "same day repeat extends streak",
			current:     3,
			lastCheckIn: now - 2*60*60*1000,
			now:         now,
			want:        4,
		},
		{
			name:        "gap of three days resets to one",
			current:     5,
			lastCheckIn: now - 50*60*60*1000,
			now:         now,
			want:        1,
		},
		{
			name:        "boundary gap of exactly two days leaves streak unchanged",
			current:     5,
			lastCheckIn: now - 30*60*60*1000,
			now:         now,
			want:        5,
		},
		{
			name:        "boundary gap with zero streak starts at one",
			current:     0,
			lastCheckIn: now - 30*60*60*1000,
			now:         now,
			want:        1,
		},
		{
			name:        "identical timestamps leave nonzero streak unchanged",
			current:     2,
			lastCheckIn: now,
			now:         now,
			want:        2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextStreak(tt.current, tt.lastCheckIn, tt.now)
			if got != tt.want {
				t.Errorf("NextStreak(%d, %d, %d) = %d, want %d", tt.current, tt.lastCheckIn, tt.now, got, tt.want)
			}
		})
	}
}
