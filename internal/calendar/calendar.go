// Package calendar defines the fixed set of labeled time blocks that make up
// a school day.
package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/maruel/natural"

	"github.com/mhclabs/timetabler/internal/apperr"
)

// BlockType distinguishes class slots from breaks.
type BlockType string

const (
	Class BlockType = "class"
	Break BlockType = "break"
)

var (
	errInvalidClock = &apperr.Error{
		Message: "invalid clock time: %q (expected HH:MM)",
	}

	errEmptyCalendar = &apperr.Error{
		Message: "calendar must contain at least one block",
	}

	errBlockOrder = &apperr.Error{
		Message: "block %q must not start before the preceding block ends",
	}

	errBlockWindow = &apperr.Error{
		Message: "block %q must not end before it starts",
	}

	errBlockType = &apperr.Error{
		Message: "block %q has unknown type %q",
	}

	errDuplicateID = &apperr.Error{
		Message: "block id %q appears more than once",
	}
)

// ClockTime is a wall-clock time of day without a date.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses a "HH:MM" string into a ClockTime.
func ParseClock(s string) (ClockTime, error) {
	var c ClockTime

	n, err := fmt.Sscanf(s, "%d:%d", &c.Hour, &c.Minute)
	if err != nil || n != 2 {
		return ClockTime{}, errInvalidClock.Fmt(s)
	}

	if c.Hour < 0 || c.Hour > 23 || c.Minute < 0 || c.Minute > 59 {
		return ClockTime{}, errInvalidClock.Fmt(s)
	}

	return c, nil
}

// MustClock is like ParseClock but panics on invalid input. It is reserved
// for static block definitions.
func MustClock(s string) ClockTime {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}

	return c
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns the clock time as minutes since midnight.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// On projects the clock time onto the calendar date of ref, in ref's
// location.
func (c ClockTime) On(ref time.Time) time.Time {
	return time.Date(
		ref.Year(),
		ref.Month(),
		ref.Day(),
		c.Hour,
		c.Minute,
		0,
		0,
		ref.Location(),
	)
}

// Block is a fixed segment of the school day. Blocks are defined once at
// startup and never mutated.
type Block struct {
	ID    string
	Label string
	Type  BlockType
	Start ClockTime
	End   ClockTime
}

// Window projects the block's wall-clock start and end onto the calendar
// date of ref.
func (b Block) Window(ref time.Time) (start, end time.Time) {
	return b.Start.On(ref), b.End.On(ref)
}

// Calendar is an ordered, validated set of day blocks.
type Calendar struct {
	blocks []Block
}

// New validates the given blocks and returns a Calendar. Blocks must be
// ascending and non-overlapping, and ids must be unique.
func New(blocks []Block) (Calendar, error) {
	if len(blocks) == 0 {
		return Calendar{}, errEmptyCalendar
	}

	seen := make(map[string]struct{}, len(blocks))

	for i, b := range blocks {
		if b.Type != Class && b.Type != Break {
			return Calendar{}, errBlockType.Fmt(b.ID, b.Type)
		}

		if b.End.Minutes() < b.Start.Minutes() {
			return Calendar{}, errBlockWindow.Fmt(b.ID)
		}

		if i > 0 && b.Start.Minutes() < blocks[i-1].End.Minutes() {
			return Calendar{}, errBlockOrder.Fmt(b.ID)
		}

		if _, ok := seen[b.ID]; ok {
			return Calendar{}, errDuplicateID.Fmt(b.ID)
		}

		seen[b.ID] = struct{}{}
	}

	return Calendar{blocks: blocks}, nil
}

// Default returns the standard school-day calendar: five one-hour class
// periods interleaved with three breaks, 08:45 to 15:00.
func Default() Calendar {
	cal, err := New([]Block{
		{ID: "period1", Label: "Period 1", Type: Class, Start: MustClock("08:45"), End: MustClock("09:45")},
		{ID: "period2", Label: "Period 2", Type: Class, Start: MustClock("09:45"), End: MustClock("10:45")},
		{ID: "break1", Label: "Break 1", Type: Break, Start: MustClock("10:45"), End: MustClock("11:15")},
		{ID: "period3", Label: "Period 3", Type: Class, Start: MustClock("11:15"), End: MustClock("12:15")},
		{ID: "break2", Label: "Break 2", Type: Break, Start: MustClock("12:15"), End: MustClock("12:40")},
		{ID: "period4", Label: "Period 4", Type: Class, Start: MustClock("12:40"), End: MustClock("13:40")},
		{ID: "break3", Label: "Break 3", Type: Break, Start: MustClock("13:40"), End: MustClock("14:00")},
		{ID: "period5", Label: "Period 5", Type: Class, Start: MustClock("14:00"), End: MustClock("15:00")},
	})
	if err != nil {
		panic(err)
	}

	return cal
}

// Blocks returns all blocks in start-time order.
func (c Calendar) Blocks() []Block {
	return c.blocks
}

// ClassBlocks returns the class-type blocks in start-time order.
func (c Calendar) ClassBlocks() []Block {
	var blocks []Block

	for _, b := range c.blocks {
		if b.Type == Class {
			blocks = append(blocks, b)
		}
	}

	return blocks
}

// ClassIDs returns the ids of all class blocks in natural order, so that
// "period10" sorts after "period2".
func (c Calendar) ClassIDs() []string {
	var ids []string

	for _, b := range c.blocks {
		if b.Type == Class {
			ids = append(ids, b.ID)
		}
	}

	sort.Sort(natural.StringSlice(ids))

	return ids
}

// ByID looks up a block by its id.
func (c Calendar) ByID(id string) (Block, bool) {
	for _, b := range c.blocks {
		if b.ID == id {
			return b, true
		}
	}

	return Block{}, false
}

// IsClass reports whether id names a class-type block.
func (c Calendar) IsClass(id string) bool {
	b, ok := c.ByID(id)

	return ok && b.Type == Class
}

// Span returns the wall-clock start of the first block and end of the last
// block.
func (c Calendar) Span() (start, end ClockTime) {
	return c.blocks[0].Start, c.blocks[len(c.blocks)-1].End
}
