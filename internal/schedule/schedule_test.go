package schedule

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mhclabs/timetabler/internal/calendar"
	"github.com/mhclabs/timetabler/internal/timeslot"
)

func TestDefaultWeekIsComplete(t *testing.T) {
	cal := calendar.Default()
	week := Default(cal)

	for _, day := range timeslot.Weekdays() {
		for _, b := range cal.ClassBlocks() {
			if _, ok := week[day.String()][b.ID]; !ok {
				t.Errorf("missing entry for %s/%s", day, b.ID)
			}
		}
	}

	if got := week.Label(timeslot.Monday, "period1"); got != "English" {
		t.Errorf("expected the baseline Monday period1, but got: %q", got)
	}
}

func TestParseRepairsPartialContent(t *testing.T) {
	cal := calendar.Default()

	week, err := Parse([]byte(`{"Monday": {"period1": "Chemistry"}}`), cal)
	if err != nil {
		t.Fatal(err)
	}

	if got := week.Label(timeslot.Monday, "period1"); got != "Chemistry" {
		t.Errorf("expected Chemistry, but got: %q", got)
	}

	if got, ok := week["Monday"]["period2"]; !ok || got != "" {
		t.Errorf("expected Monday period2 to exist and be empty, but got: %q (present: %v)", got, ok)
	}

	if got, ok := week["Tuesday"]["period1"]; !ok || got != "" {
		t.Errorf("expected Tuesday period1 to exist and be empty, but got: %q (present: %v)", got, ok)
	}
}

func TestParseCoercesNonStringValues(t *testing.T) {
	cal := calendar.Default()

	week, err := Parse(
		[]byte(`{"Monday": {"period1": 42, "period2": {"nested": true}, "period3": "Art"}}`),
		cal,
	)
	if err != nil {
		t.Fatal(err)
	}

	if got := week.Label(timeslot.Monday, "period1"); got != "" {
		t.Errorf("expected a number value to become empty, but got: %q", got)
	}

	if got := week.Label(timeslot.Monday, "period2"); got != "" {
		t.Errorf("expected an object value to become empty, but got: %q", got)
	}

	if got := week.Label(timeslot.Monday, "period3"); got != "Art" {
		t.Errorf("expected Art, but got: %q", got)
	}
}

func TestRepairFillsMissingEntries(t *testing.T) {
	cal := calendar.Default()

	week := Week{
		"Monday": {"period1": "Chemistry"},
	}

	week.Repair(cal)

	for _, day := range timeslot.Weekdays() {
		for _, b := range cal.ClassBlocks() {
			if _, ok := week[day.String()][b.ID]; !ok {
				t.Errorf("missing entry for %s/%s after repair", day, b.ID)
			}
		}
	}

	if got := week.Label(timeslot.Monday, "period1"); got != "Chemistry" {
		t.Errorf("expected existing entries to survive repair, but got: %q", got)
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte(`{not json`), calendar.Default()); err == nil {
		t.Fatal("expected an error for malformed content")
	}
}

func TestParseDropsForeignKeys(t *testing.T) {
	cal := calendar.Default()

	week, err := Parse(
		[]byte(`{"Monday": {"nonsense": "x"}, "Caturday": {"period1": "Nap"}}`),
		cal,
	)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := week["Monday"]["nonsense"]; ok {
		t.Error("expected unknown block ids to be dropped")
	}

	if _, ok := week["Caturday"]; ok {
		t.Error("expected unknown weekdays to be dropped")
	}
}

func TestSetTrimsWhitespace(t *testing.T) {
	cal := calendar.Default()
	week := Default(cal)

	if !week.Set(timeslot.Monday, "period1", "  Chemistry  ", cal) {
		t.Fatal("expected the entry to change")
	}

	if got := week.Label(timeslot.Monday, "period1"); got != "Chemistry" {
		t.Errorf("expected trimmed value, but got: %q", got)
	}
}

func TestSetIgnoresInvalidTargets(t *testing.T) {
	cal := calendar.Default()
	week := Default(cal)

	before := week.Clone()

	if week.Set(timeslot.Monday, "break1", "Mischief", cal) {
		t.Error("expected editing a break block to be a no-op")
	}

	if week.Set(timeslot.Monday, "period9", "Alchemy", cal) {
		t.Error("expected editing an unknown block to be a no-op")
	}

	if week.Set(timeslot.Weekday(7), "period1", "Alchemy", cal) {
		t.Error("expected editing an unknown day to be a no-op")
	}

	if diff := cmp.Diff(before, week); diff != "" {
		t.Errorf("schedule changed after invalid edits (-want +got):\n%s", diff)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cal := calendar.Default()
	week := Default(cal)

	week.Set(timeslot.Friday, "period5", "Chess Club", cal)

	raw, err := week.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := Parse(raw, cal)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(week, parsed); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	again, err := parsed.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	if string(raw) != string(again) {
		t.Error("expected serialization to be stable across a round trip")
	}
}
