package timeslot

import (
	"testing"
	"time"

	"github.com/mhclabs/timetabler/internal/calendar"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 4, hour, minute, 0, 0, time.Local)
}

func TestBlockStatus(t *testing.T) {
	start, end := at(8, 45), at(9, 45)

	cases := []struct {
		name string
		now  time.Time
		want Status
	}{
		{name: "before start", now: at(7, 0), want: Upcoming},
		{name: "at start", now: at(8, 45), want: InProgress},
		{name: "midway", now: at(9, 15), want: InProgress},
		{name: "at end", now: at(9, 45), want: InProgress},
		{name: "after end", now: at(9, 46), want: Completed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BlockStatus(tc.now, start, end)
			if got != tc.want {
				t.Errorf("expected status %s, but got: %s", tc.want, got)
			}
		})
	}
}

func TestZeroDurationBlock(t *testing.T) {
	instant := at(12, 0)

	if got := BlockStatus(at(11, 59), instant, instant); got != Upcoming {
		t.Errorf("expected upcoming before a zero-duration block, but got: %s", got)
	}

	if got := BlockStatus(instant, instant, instant); got != Completed {
		t.Errorf("expected a zero-duration block to complete at its start, but got: %s", got)
	}

	if got := Progress(instant, instant, instant); got != 100 {
		t.Errorf("expected progress 100 for a zero-duration block, but got: %v", got)
	}

	if got := Progress(at(11, 59), instant, instant); got != 0 {
		t.Errorf("expected progress 0 before a zero-duration block, but got: %v", got)
	}
}

func TestProgress(t *testing.T) {
	start, end := at(8, 45), at(9, 45)

	cases := []struct {
		name string
		now  time.Time
		want float64
	}{
		{name: "before start", now: at(7, 0), want: 0},
		{name: "at start", now: at(8, 45), want: 0},
		{name: "midway", now: at(9, 15), want: 50},
		{name: "at end", now: at(9, 45), want: 100},
		{name: "after end", now: at(16, 0), want: 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Progress(tc.now, start, end)
			if got != tc.want {
				t.Errorf("expected progress %v, but got: %v", tc.want, got)
			}
		})
	}
}

// Progress must never decrease as time moves forward, and its value must
// agree with the block status at every instant.
func TestProgressStatusAgreement(t *testing.T) {
	start, end := at(8, 45), at(9, 45)

	prev := float64(-1)

	for now := at(7, 0); now.Before(at(16, 0)); now = now.Add(time.Minute) {
		p := Progress(now, start, end)

		if p < prev {
			t.Fatalf("progress decreased from %v to %v at %v", prev, p, now)
		}

		prev = p

		switch BlockStatus(now, start, end) {
		case Completed:
			if p != 100 {
				t.Fatalf("completed block must report 100, got %v at %v", p, now)
			}
		case Upcoming:
			if p != 0 {
				t.Fatalf("upcoming block must report 0, got %v at %v", p, now)
			}
		case InProgress:
		}
	}
}

func TestDayProgress(t *testing.T) {
	cal := calendar.Default()

	cases := []struct {
		name string
		now  time.Time
		want float64
	}{
		{name: "before day start", now: at(7, 0), want: 0},
		{name: "after day end", now: at(15, 30), want: 100},
		{name: "at noon", now: at(11, 52), // 08:45–15:00 spans 375 mins; 187 elapsed
			want: Progress(at(11, 52), at(8, 45), at(15, 0))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DayProgress(tc.now, cal)
			if got != tc.want {
				t.Errorf("expected day progress %v, but got: %v", tc.want, got)
			}
		})
	}
}
