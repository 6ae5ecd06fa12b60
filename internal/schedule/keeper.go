package schedule

import (
	"log/slog"
	"sync"
	"time"

	"github.com/mhclabs/timetabler/internal/calendar"
	"github.com/mhclabs/timetabler/internal/timeslot"
	"github.com/mhclabs/timetabler/store"
)

// DebounceWindow is how long an edit may sit in memory before it is
// persisted. Rapid edits within the window supersede each other so that
// only the final value is written.
const DebounceWindow = 250 * time.Millisecond

// Keeper owns the in-memory week schedule and its persistence. Reads from
// the view path and writes from the edit path are serialized with a mutex
// since the host's timer and input callbacks may run on different
// goroutines.
type Keeper struct {
	db       store.DB
	cal      calendar.Calendar
	week     Week
	pending  *time.Timer
	debounce time.Duration
	mu       sync.Mutex
}

// KeeperOption modifies a Keeper.
type KeeperOption func(*Keeper)

// WithDebounce overrides the persistence debounce window.
func WithDebounce(d time.Duration) KeeperOption {
	return func(k *Keeper) {
		k.debounce = d
	}
}

// NewKeeper loads the stored week (falling back to the default schedule on
// absence or malformed content) and returns its owner.
func NewKeeper(db store.DB, cal calendar.Calendar, opts ...KeeperOption) *Keeper {
	k := &Keeper{
		db:       db,
		cal:      cal,
		debounce: DebounceWindow,
	}

	for _, opt := range opts {
		opt(k)
	}

	k.week = k.load()

	return k
}

// load reads the persisted schedule. Failures are reported as warnings,
// never to the caller: a readable schedule is repaired, anything else
// becomes the default week.
func (k *Keeper) load() Week {
	raw, err := k.db.GetSchedule()
	if err != nil {
		slog.Warn("could not read stored schedule", slog.Any("error", err))

		return Default(k.cal)
	}

	if raw == nil {
		return Default(k.cal)
	}

	week, err := Parse(raw, k.cal)
	if err != nil {
		slog.Warn(
			"stored schedule is malformed, falling back to defaults",
			slog.Any("error", err),
		)

		return Default(k.cal)
	}

	return week
}

// Calendar returns the day calendar the keeper was built with.
func (k *Keeper) Calendar() calendar.Calendar {
	return k.cal
}

// Week returns a snapshot of the current week schedule.
func (k *Keeper) Week() Week {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.week.Clone()
}

// SetEntry assigns a subject to the (day, block) pair and schedules a
// debounced persist. Invalid targets (unknown day or block, break-type
// block) are no-ops. It reports whether the schedule changed.
func (k *Keeper) SetEntry(day timeslot.Weekday, blockID, value string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.week.Set(day, blockID, value, k.cal) {
		return false
	}

	// Single-slot deferred write: a newer edit supersedes an unexecuted
	// earlier one.
	if k.pending == nil {
		k.pending = time.AfterFunc(k.debounce, func() {
			if err := k.Flush(); err != nil {
				slog.Error("could not persist schedule", slog.Any("error", err))
			}
		})
	} else {
		k.pending.Reset(k.debounce)
	}

	return true
}

// Flush writes the current week to the store immediately, superseding any
// pending debounced write.
func (k *Keeper) Flush() error {
	k.mu.Lock()

	if k.pending != nil {
		k.pending.Stop()
		k.pending = nil
	}

	raw, err := k.week.Marshal()

	k.mu.Unlock()

	if err != nil {
		return err
	}

	return k.db.SaveSchedule(raw)
}

// Close flushes any pending write and releases the store.
func (k *Keeper) Close() error {
	if err := k.Flush(); err != nil {
		slog.Error("could not persist schedule", slog.Any("error", err))
	}

	return k.db.Close()
}

// CurrentView resolves the given day against now, returning every block in
// start-time order with its status, progress, and display label. Class
// blocks carry the assigned subject (possibly empty), breaks their own
// label.
func (k *Keeper) CurrentView(day timeslot.Weekday, now time.Time) []timeslot.ResolvedBlock {
	anchor := timeslot.DateFor(day, now)

	k.mu.Lock()
	defer k.mu.Unlock()

	blocks := k.cal.Blocks()
	view := make([]timeslot.ResolvedBlock, 0, len(blocks))

	for _, b := range blocks {
		start, end := timeslot.Window(b, anchor)

		label := b.Label
		if b.Type == calendar.Class {
			label = k.week.Label(day, b.ID)
		}

		view = append(view, timeslot.ResolvedBlock{
			Block:    b,
			Status:   timeslot.BlockStatus(now, start, end),
			Progress: timeslot.Progress(now, start, end),
			Label:    label,
		})
	}

	return view
}

// DayProgress returns the elapsed fraction of the whole school day at now.
func (k *Keeper) DayProgress(now time.Time) float64 {
	return timeslot.DayProgress(now, k.cal)
}
