// Package schedule owns the weekly timetable: the mapping from each school
// day and class block to a free-text subject, its persistence, and the rules
// for repairing whatever was previously stored.
package schedule

import (
	"encoding/json"
	"strings"

	"github.com/mhclabs/timetabler/internal/calendar"
	"github.com/mhclabs/timetabler/internal/timeslot"
)

// Display fallbacks for slots that carry no subject of their own.
const (
	// FreeStudyLabel is shown for class slots with no assigned subject.
	FreeStudyLabel = "Free Study"

	// BreakSubtitle is shown beneath break blocks in day views.
	BreakSubtitle = "Recharge and reset"
)

// Day maps a class block id to the subject assigned to it. An empty string
// means the slot is unassigned.
type Day map[string]string

// Week maps a weekday name to its day schedule. After Repair, every school
// day holds an entry for every class block id.
type Week map[string]Day

// baseline is the pre-populated example week applied when nothing has been
// stored yet.
var baseline = Week{
	"Monday": {
		"period1": "English",
		"period2": "Mathematics",
		"period3": "Science",
		"period4": "Music",
		"period5": "Sport",
	},
	"Tuesday": {
		"period1": "Geography",
		"period2": "Mathematics",
		"period3": "Engineering",
		"period4": "Science Lab",
		"period5": "Drama",
	},
	"Wednesday": {
		"period1": "History",
		"period2": "Mathematics",
		"period3": "Physical Education",
		"period4": "English",
		"period5": "Art",
	},
	"Thursday": {
		"period1": "Science",
		"period2": "Mathematics",
		"period3": "English",
		"period4": "Languages",
		"period5": "Computing",
	},
	"Friday": {
		"period1": "Assembly",
		"period2": "Mathematics",
		"period3": "Community Project",
		"period4": "Health",
		"period5": "Clubs",
	},
}

// Default returns the pre-populated example week for the given calendar.
// Class blocks without a baseline subject start out unassigned.
func Default(cal calendar.Calendar) Week {
	w := make(Week, len(timeslot.Weekdays()))

	for _, day := range timeslot.Weekdays() {
		name := day.String()
		w[name] = make(Day)

		for _, b := range cal.ClassBlocks() {
			w[name][b.ID] = baseline[name][b.ID]
		}
	}

	return w
}

// Parse decodes raw persisted bytes into a repaired Week. Unknown weekdays
// and block ids are dropped, missing or non-string entries become "". A
// decode failure is returned so the caller can fall back to the default
// week.
func Parse(raw []byte, cal calendar.Calendar) (Week, error) {
	var loose map[string]map[string]any

	if err := json.Unmarshal(raw, &loose); err != nil {
		return nil, err
	}

	w := make(Week, len(timeslot.Weekdays()))

	for _, day := range timeslot.Weekdays() {
		name := day.String()
		w[name] = make(Day)

		for _, b := range cal.ClassBlocks() {
			if s, ok := loose[name][b.ID].(string); ok {
				w[name][b.ID] = s
			}
		}
	}

	w.Repair(cal)

	return w, nil
}

// Repair fills in any missing weekday or class-block entry so that the
// materialized form always satisfies the model invariant.
func (w Week) Repair(cal calendar.Calendar) {
	for _, day := range timeslot.Weekdays() {
		name := day.String()

		if w[name] == nil {
			w[name] = make(Day)
		}

		for _, b := range cal.ClassBlocks() {
			if _, ok := w[name][b.ID]; !ok {
				w[name][b.ID] = ""
			}
		}
	}
}

// Set assigns a subject to the (day, block) pair. The value is trimmed of
// surrounding whitespace. Unknown days, unknown block ids, and break-type
// blocks are ignored. It reports whether the week was modified.
func (w Week) Set(day timeslot.Weekday, blockID, value string, cal calendar.Calendar) bool {
	if day < timeslot.Monday || day > timeslot.Friday {
		return false
	}

	if !cal.IsClass(blockID) {
		return false
	}

	trimmed := strings.TrimSpace(value)

	if w[day.String()][blockID] == trimmed {
		return false
	}

	w[day.String()][blockID] = trimmed

	return true
}

// Label returns the subject assigned to the (day, block) pair, or "" when
// unassigned.
func (w Week) Label(day timeslot.Weekday, blockID string) string {
	return w[day.String()][blockID]
}

// Clone returns a deep copy of the week.
func (w Week) Clone() Week {
	c := make(Week, len(w))

	for name, day := range w {
		c[name] = make(Day, len(day))

		for id, label := range day {
			c[name][id] = label
		}
	}

	return c
}

// Marshal serializes the week for persistence.
func (w Week) Marshal() ([]byte, error) {
	return json.Marshal(w)
}
