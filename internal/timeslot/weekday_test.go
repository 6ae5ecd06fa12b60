package timeslot

import (
	"testing"
	"time"
)

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday("wednesday")
	if err != nil {
		t.Fatal(err)
	}

	if day != Wednesday {
		t.Errorf("expected Wednesday, but got: %s", day)
	}

	if _, err := ParseWeekday("Sunday"); err == nil {
		t.Error("expected an error for a weekend day")
	}
}

func TestToday(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want Weekday
	}{
		{
			name: "a Wednesday",
			now:  time.Date(2026, time.March, 4, 10, 0, 0, 0, time.Local),
			want: Wednesday,
		},
		{
			name: "a Friday",
			now:  time.Date(2026, time.March, 6, 10, 0, 0, 0, time.Local),
			want: Friday,
		},
		{
			name: "a Saturday falls back to Monday",
			now:  time.Date(2026, time.March, 7, 10, 0, 0, 0, time.Local),
			want: Monday,
		},
		{
			name: "a Sunday falls back to Monday",
			now:  time.Date(2026, time.March, 8, 10, 0, 0, 0, time.Local),
			want: Monday,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Today(tc.now)
			if got != tc.want {
				t.Errorf("expected %s, but got: %s", tc.want, got)
			}
		})
	}
}

func TestDateFor(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		day  Weekday
		want time.Time
	}{
		{
			name: "Friday selected on a Monday",
			now:  time.Date(2026, time.March, 2, 9, 0, 0, 0, time.Local),
			day:  Friday,
			want: time.Date(2026, time.March, 6, 0, 0, 0, 0, time.Local),
		},
		{
			name: "Monday selected on a Friday",
			now:  time.Date(2026, time.March, 6, 9, 0, 0, 0, time.Local),
			day:  Monday,
			want: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.Local),
		},
		{
			name: "across a month boundary",
			now:  time.Date(2026, time.April, 29, 9, 0, 0, 0, time.Local), // a Wednesday
			day:  Friday,
			want: time.Date(2026, time.May, 1, 0, 0, 0, 0, time.Local),
		},
		{
			name: "across a year boundary",
			now:  time.Date(2025, time.December, 31, 9, 0, 0, 0, time.Local), // a Wednesday
			day:  Friday,
			want: time.Date(2026, time.January, 2, 0, 0, 0, 0, time.Local),
		},
		{
			name: "Sunday belongs to the week that started the previous Monday",
			now:  time.Date(2026, time.March, 8, 9, 0, 0, 0, time.Local),
			day:  Monday,
			want: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DateFor(tc.day, tc.now)
			if !got.Equal(tc.want) {
				t.Errorf("expected %v, but got: %v", tc.want, got)
			}
		})
	}
}
