package timeclock

import (
	"testing"
	"time"
)

func TestComputeLateness(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		actual   string
		isLate   bool
		minutes  int
	}{
		{name: "on time exactly", expected: "18:00", actual: "18:00", isLate: false, minutes: 0},
		{name: "inside grace window", expected: "18:00", actual: "18:05", isLate: false, minutes: 5},
		{name: "one past grace", expected: "18:00", actual: "18:06", isLate: true, minutes: 6},
		{name: "early arrival", expected: "18:00", actual: "17:55", isLate: false, minutes: 0},
		{name: "very late", expected: "18:00", actual: "18:20", isLate: true, minutes: 20},
		{name: "hour boundary", expected: "17:50", actual: "18:10", isLate: true, minutes: 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeLateness(tt.expected, tt.actual)
			if err != nil {
				t.Fatalf("ComputeLateness() error = %v", err)
			}
			if got.IsLate != tt.isLate || got.MinutesLate != tt.minutes {
				t.Errorf("ComputeLateness(%s, %s) = %+v, want isLate=%v minutes=%d",
					tt.expected, tt.actual, got, tt.isLate, tt.minutes)
			}
		})
	}
}

func TestComputeLatenessInvalid(t *testing.T) {
	for _, bad := range []string{"", "18", "18:60", "24:00", "ab:cd", "18:00:00"} {
		if _, err := ComputeLateness(bad, "18:00"); err == nil {
			t.Errorf("ComputeLateness(%q, _) expected error", bad)
		}
		if _, err := ComputeLateness("18:00", bad); err == nil {
			t.Errorf("ComputeLateness(_, %q) expected error", bad)
		}
	}
}

func TestScheduledHours(t *testing.T) {
	tests := []struct {
		start, end string
		want       float64
	}{
		{"18:00", "19:30", 1.5},
		{"18:00", "19:15", 1.25},
		{"06:00", "07:00", 1},
		{"09:00", "09:20", 0.33},
	}
	for _, tt := range tests {
		got, err := ScheduledHours(tt.start, tt.end)
		if err != nil {
			t.Fatalf("ScheduledHours(%s, %s) error = %v", tt.start, tt.end, err)
		}
		if got != tt.want {
			t.Errorf("ScheduledHours(%s, %s) = %v, want %v", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestActualHours(t *testing.T) {
	got, err := ActualHours("18:00", "19:15")
	if err != nil {
		t.Fatalf("ActualHours() error = %v", err)
	}
	if got != 1.25 {
		t.Errorf("ActualHours(18:00, 19:15) = %v, want 1.25", got)
	}
}

func TestLeftEarly(t *testing.T) {
	tests := []struct {
		end, departure string
		want           bool
	}{
		{"20:00", "19:40", true},
		{"20:00", "19:55", false}, // inside grace
		{"20:00", "20:00", false},
		{"20:00", "20:10", false},
		{"20:00", "19:54", true},
	}
	for _, tt := range tests {
		got, err := LeftEarly(tt.end, tt.departure)
		if err != nil {
			t.Fatalf("LeftEarly(%s, %s) error = %v", tt.end, tt.departure, err)
		}
		if got != tt.want {
			t.Errorf("LeftEarly(%s, %s) = %v, want %v", tt.end, tt.departure, got, tt.want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd string
		want                           bool
	}{
		{"disjoint", "08:00", "09:00", "09:00", "10:00", false},
		{"partial", "08:00", "09:30", "09:00", "10:00", true},
		{"contained", "08:00", "12:00", "09:00", "10:00", true},
		{"identical", "08:00", "09:00", "08:00", "09:00", true},
		{"touching reversed", "09:00", "10:00", "08:00", "09:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			if err != nil {
				t.Fatalf("Overlaps() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHHMM(t *testing.T) {
	at := time.Date(2025, 3, 10, 7, 5, 59, 0, time.UTC)
	if got := HHMM(at); got != "07:05" {
		t.Errorf("HHMM() = %q, want 07:05", got)
	}
}
