// Package timeslot derives block lifecycle status and progress from the
// calendar and a reference time. All functions are pure.
package timeslot

import (
	"time"

	"github.com/mhclabs/timetabler/internal/calendar"
)

// Status is the lifecycle state of a block relative to a point in time.
type Status string

const (
	Upcoming   Status = "upcoming"
	InProgress Status = "in-progress"
	Completed  Status = "completed"
)

// ResolvedBlock pairs a block with its status and progress at a point in
// time. It is recomputed on every tick and never persisted.
type ResolvedBlock struct {
	Block    calendar.Block
	Status   Status
	Progress float64
	Label    string
}

// Window projects the block's wall-clock start and end onto the calendar
// date of ref.
func Window(b calendar.Block, ref time.Time) (start, end time.Time) {
	return b.Window(ref)
}

// BlockStatus returns Completed when now is strictly after end, Upcoming
// when now is before start, and InProgress otherwise. A zero-duration block
// is Completed as soon as now reaches its start.
func BlockStatus(now, start, end time.Time) Status {
	if start.Equal(end) {
		if now.Before(start) {
			return Upcoming
		}

		return Completed
	}

	if now.After(end) {
		return Completed
	}

	if now.Before(start) {
		return Upcoming
	}

	return InProgress
}

// Progress returns the elapsed fraction of the window as a percentage in
// [0, 100]: 0 at or before start, 100 at or after end, and linear in
// between. A zero-duration window reports 100 once now reaches start.
func Progress(now, start, end time.Time) float64 {
	if !now.After(start) {
		if start.Equal(end) && now.Equal(start) {
			return 100
		}

		return 0
	}

	if !now.Before(end) {
		return 100
	}

	elapsed := now.Sub(start).Seconds()
	duration := end.Sub(start).Seconds()

	return clamp(elapsed / duration * 100)
}

// DayProgress returns the elapsed fraction of the whole school day, spanning
// from the first block's start to the last block's end. Breaks count toward
// elapsed time since they fall inside the span.
func DayProgress(now time.Time, cal calendar.Calendar) float64 {
	first, last := cal.Span()

	return Progress(now, first.On(now), last.On(now))
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 100 {
		return 100
	}

	return v
}
