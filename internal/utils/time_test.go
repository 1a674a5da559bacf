package utils

import (
	"testing"
	"time"
)

func TestFormatDateAndTime(t *testing.T) {
	ts := time.Date(2025, 8, 30, 9, 5, 0, 0, time.UTC)
	if got := FormatDate(ts); got != "2025-08-30" {
		t.Errorf("FormatDate = %s, want 2025-08-30", got)
	}
	if got := FormatTime(ts); got != "09:05" {
		t.Errorf("FormatTime = %s, want 09:05", got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "valid", date: "2025-08-30", wantErr: false},
		{name: "wrong order", date: "30-08-2025", wantErr: true},
		{name: "missing padding", date: "2025-8-30", wantErr: true},
		{name: "prose", date: "August 30", wantErr: true},
		{name: "empty", date: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.date)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.date, err, tt.wantErr)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		date string
		n    int
		want string
	}{
		{name: "forward", date: "2025-08-30", n: 1, want: "2025-08-31"},
		{name: "backward", date: "2025-08-30", n: -1, want: "2025-08-29"},
		{name: "month boundary", date: "2025-08-31", n: 1, want: "2025-09-01"},
		{name: "year boundary", date: "2025-12-31", n: 1, want: "2026-01-01"},
		{name: "leap day", date: "2024-02-28", n: 1, want: "2024-02-29"},
		{name: "zero", date: "2025-08-30", n: 0, want: "2025-08-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddDays(tt.date, tt.n)
			if err != nil {
				t.Fatalf("AddDays(%q, %d) failed: %v", tt.date, tt.n, err)
			}
			if got != tt.want {
				t.Errorf("AddDays(%q, %d) = %s, want %s", tt.date, tt.n, got, tt.want)
			}
		})
	}

	if _, err := AddDays("not-a-date", 1); err == nil {
		t.Error("expected an error for a malformed date")
	}
}

func TestMonthPrefix(t *testing.T) {
	if got := MonthPrefix(2025, time.August); got != "2025-08" {
		t.Errorf("MonthPrefix = %s, want 2025-08", got)
	}
	if got := MonthPrefix(825, time.January); got != "0825-01" {
		t.Errorf("MonthPrefix = %s, want 0825-01", got)
	}
}

func TestUnixMillis(t *testing.T) {
	ts := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	if got := UnixMillis(ts); got != ts.UnixMilli() {
		t.Errorf("UnixMillis = %d, want %d", got, ts.UnixMilli())
	}
}
