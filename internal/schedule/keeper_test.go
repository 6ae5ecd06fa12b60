package schedule

import (
	"sync"
	"testing"
	"time"

	"github.com/mhclabs/timetabler/internal/calendar"
	"github.com/mhclabs/timetabler/internal/timeslot"
)

// memoryDB is an in-memory store.DB that records every persisted payload.
type memoryDB struct {
	mu     sync.Mutex
	stored []byte
	saves  int
	closed bool
}

func (m *memoryDB) GetSchedule() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stored, nil
}

func (m *memoryDB) SaveSchedule(raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stored = append([]byte(nil), raw...)
	m.saves++

	return nil
}

func (m *memoryDB) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true

	return nil
}

func (m *memoryDB) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saves
}

func TestKeeperLoadsStoredSchedule(t *testing.T) {
	cal := calendar.Default()

	week := Default(cal)
	week.Set(timeslot.Monday, "period1", "Chemistry", cal)

	raw, err := week.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	k := NewKeeper(&memoryDB{stored: raw}, cal)

	if got := k.Week().Label(timeslot.Monday, "period1"); got != "Chemistry" {
		t.Errorf("expected the stored subject, but got: %q", got)
	}
}

func TestKeeperFallsBackOnMalformedContent(t *testing.T) {
	cal := calendar.Default()

	k := NewKeeper(&memoryDB{stored: []byte(`{broken`)}, cal)

	if got := k.Week().Label(timeslot.Monday, "period1"); got != "English" {
		t.Errorf("expected the default schedule, but got: %q", got)
	}
}

func TestKeeperDebouncesRapidEdits(t *testing.T) {
	cal := calendar.Default()
	db := &memoryDB{}

	k := NewKeeper(db, cal, WithDebounce(20*time.Millisecond))

	if !k.SetEntry(timeslot.Monday, "period1", "A") {
		t.Fatal("expected the first edit to apply")
	}

	if !k.SetEntry(timeslot.Monday, "period1", "AB") {
		t.Fatal("expected the second edit to apply")
	}

	deadline := time.Now().Add(2 * time.Second)
	for db.saveCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	if got := db.saveCount(); got != 1 {
		t.Fatalf("expected exactly one persisted write, but got: %d", got)
	}

	parsed, err := Parse(db.stored, cal)
	if err != nil {
		t.Fatal(err)
	}

	if got := parsed.Label(timeslot.Monday, "period1"); got != "AB" {
		t.Errorf("expected the last value to win, but got: %q", got)
	}
}

func TestKeeperRejectsInvalidEdits(t *testing.T) {
	cal := calendar.Default()
	db := &memoryDB{}

	k := NewKeeper(db, cal, WithDebounce(10*time.Millisecond))

	if k.SetEntry(timeslot.Monday, "break1", "Mischief") {
		t.Error("expected editing a break block to be a no-op")
	}

	if k.SetEntry(timeslot.Monday, "period9", "Alchemy") {
		t.Error("expected editing an unknown block to be a no-op")
	}

	time.Sleep(50 * time.Millisecond)

	if got := db.saveCount(); got != 0 {
		t.Errorf("expected no persisted writes, but got: %d", got)
	}
}

func TestKeeperCloseFlushesPendingWrite(t *testing.T) {
	cal := calendar.Default()
	db := &memoryDB{}

	k := NewKeeper(db, cal, WithDebounce(time.Hour))

	k.SetEntry(timeslot.Friday, "period5", "Chess Club")

	if err := k.Close(); err != nil {
		t.Fatal(err)
	}

	if got := db.saveCount(); got != 1 {
		t.Fatalf("expected the pending edit to be flushed, but got %d writes", got)
	}

	if !db.closed {
		t.Error("expected the store to be closed")
	}

	parsed, err := Parse(db.stored, cal)
	if err != nil {
		t.Fatal(err)
	}

	if got := parsed.Label(timeslot.Friday, "period5"); got != "Chess Club" {
		t.Errorf("expected the flushed value, but got: %q", got)
	}
}

func TestKeeperCurrentView(t *testing.T) {
	cal := calendar.Default()
	db := &memoryDB{}

	k := NewKeeper(db, cal, WithDebounce(time.Hour))
	defer k.Close()

	// A Wednesday, halfway through period2 (09:45 to 10:45).
	now := time.Date(2026, time.March, 4, 10, 15, 0, 0, time.Local)

	view := k.CurrentView(timeslot.Wednesday, now)

	if len(view) != len(cal.Blocks()) {
		t.Fatalf("expected %d blocks, but got: %d", len(cal.Blocks()), len(view))
	}

	var active *timeslot.ResolvedBlock

	for i := range view {
		if view[i].Block.ID == "period2" {
			active = &view[i]
		}
	}

	if active == nil {
		t.Fatal("period2 missing from the view")
	}

	if active.Status != timeslot.InProgress {
		t.Errorf("expected period2 to be in progress, but got: %s", active.Status)
	}

	if active.Label != "Mathematics" {
		t.Errorf("expected the assigned subject, but got: %q", active.Label)
	}

	if active.Progress < 49 || active.Progress > 51 {
		t.Errorf("expected roughly half progress, but got: %.2f", active.Progress)
	}
}

func TestKeeperViewUsesBreakLabels(t *testing.T) {
	cal := calendar.Default()

	k := NewKeeper(&memoryDB{}, cal, WithDebounce(time.Hour))
	defer k.Close()

	now := time.Date(2026, time.March, 4, 8, 0, 0, 0, time.Local)

	for _, rb := range k.CurrentView(timeslot.Monday, now) {
		if rb.Block.Type != calendar.Class && rb.Label != rb.Block.Label {
			t.Errorf("expected %s to carry its own label, but got: %q", rb.Block.ID, rb.Label)
		}
	}
}
