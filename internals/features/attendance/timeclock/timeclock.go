// file: internals/features/attendance/timeclock/timeclock.go
//
// Pure HH:mm arithmetic for the attendance flows: lateness against a
// scheduled start, worked hours, early departures. Everything assumes
// both times fall on the same day (start < end); classes crossing
// midnight are not supported.
package timeclock

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// GraceMinutes is the tolerance applied before an arrival counts as late
// and after which a departure counts as early.
const GraceMinutes = 5

// ErrBadClock reports a value that does not parse as an "HH:mm" time.
var ErrBadClock = errors.New("hora inválida, se espera HH:mm")

type Lateness struct {
	IsLate      bool `json:"is_late"`
	MinutesLate int  `json:"minutes_late"`
}

// MinutesOfDay parses "HH:mm" into minutes since midnight.
func MinutesOfDay(hhmm string) (int, error) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, hhmm)
	}
	return h*60 + m, nil
}

// HHMM formats t's wall-clock time as "HH:mm".
func HHMM(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// ComputeLateness compares an actual arrival against the expected start.
// Arrivals within GraceMinutes are on time; minutesLate reports any
// positive delay even inside the grace window.
func ComputeLateness(expected, actual string) (Lateness, error) {
	expMin, err := MinutesOfDay(expected)
	if err != nil {
		return Lateness{}, err
	}
	actMin, err := MinutesOfDay(actual)
	if err != nil {
		return Lateness{}, err
	}

	diff := actMin - expMin
	minutesLate := 0
	if diff > 0 {
		minutesLate = diff
	}
	return Lateness{
		IsLate:      diff > GraceMinutes,
		MinutesLate: minutesLate,
	}, nil
}

// ScheduledHours is the planned span of a class, in hours, 2 decimals.
func ScheduledHours(start, end string) (float64, error) {
	return spanHours(start, end)
}

// ActualHours is the worked span between arrival and departure, 2 decimals.
func ActualHours(arrival, departure string) (float64, error) {
	return spanHours(arrival, departure)
}

// LeftEarly reports whether a departure beats the expected end by more
// than the grace window.
func LeftEarly(expectedEnd, actualDeparture string) (bool, error) {
	endMin, err := MinutesOfDay(expectedEnd)
	if err != nil {
		return false, err
	}
	depMin, err := MinutesOfDay(actualDeparture)
	if err != nil {
		return false, err
	}
	return depMin < endMin-GraceMinutes, nil
}

// ValidRange reports whether start < end within the same day.
func ValidRange(start, end string) bool {
	s, err := MinutesOfDay(start)
	if err != nil {
		return false
	}
	e, err := MinutesOfDay(end)
	if err != nil {
		return false
	}
	return s < e
}

// Overlaps reports whether two same-day [start,end) ranges intersect.
func Overlaps(aStart, aEnd, bStart, bEnd string) (bool, error) {
	as, err := MinutesOfDay(aStart)
	if err != nil {
		return false, err
	}
	ae, err := MinutesOfDay(aEnd)
	if err != nil {
		return false, err
	}
	bs, err := MinutesOfDay(bStart)
	if err != nil {
		return false, err
	}
	be, err := MinutesOfDay(bEnd)
	if err != nil {
		return false, err
	}
	return as < be && bs < ae, nil
}

func spanHours(from, to string) (float64, error) {
	fromMin, err := MinutesOfDay(from)
	if err != nil {
		return 0, err
	}
	toMin, err := MinutesOfDay(to)
	if err != nil {
		return 0, err
	}
	h := float64(toMin-fromMin) / 60
	return math.Round(h*100) / 100, nil
}
