package timeslot

import (
	"strings"
	"time"

	"github.com/mhclabs/timetabler/internal/apperr"
	"github.com/mhclabs/timetabler/internal/timeutil"
)

// Weekday is one of the five school days, Monday through Friday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

var weekdayNames = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
}

var errUnknownWeekday = &apperr.Error{
	Message: "unknown weekday: %q (expected Monday through Friday)",
}

func (w Weekday) String() string {
	if w < Monday || w > Friday {
		return "Unknown"
	}

	return weekdayNames[w]
}

// Weekdays returns all five school days in order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
}

// ParseWeekday parses a weekday name, case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	for i, name := range weekdayNames {
		if strings.EqualFold(s, name) {
			return Weekday(i), nil
		}
	}

	return Monday, errUnknownWeekday.Fmt(s)
}

// Today maps now to the corresponding school day. Weekends fall back to
// Monday.
func Today(now time.Time) Weekday {
	switch d := now.Weekday(); d {
	case time.Saturday, time.Sunday:
		return Monday
	default:
		return Weekday(int(d) - 1)
	}
}

// DateFor returns the calendar date of the given weekday within now's
// Monday-based week, normalized to midnight in now's location. Sunday
// belongs to the week that started the previous Monday.
func DateFor(w Weekday, now time.Time) time.Time {
	sinceMonday := (int(now.Weekday()) + 6) % 7

	return timeutil.RoundToStart(now.AddDate(0, 0, int(w)-sinceMonday))
}
