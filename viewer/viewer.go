// Package viewer renders the day timeline as a live terminal UI and routes
// inline edits back to the schedule keeper.
package viewer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mhclabs/timetabler/internal/calendar"
	"github.com/mhclabs/timetabler/internal/config"
	"github.com/mhclabs/timetabler/internal/schedule"
	"github.com/mhclabs/timetabler/internal/timeslot"
)

const (
	// tickInterval is how often block statuses are re-evaluated against
	// the wall clock.
	tickInterval = 30 * time.Second

	padding  = 2
	maxWidth = 60
)

// tickMsg carries the wall-clock time of a periodic refresh.
type tickMsg time.Time

type keymap struct {
	prevDay key.Binding
	nextDay key.Binding
	up      key.Binding
	down    key.Binding
	edit    key.Binding
	quit    key.Binding
}

var defaultKeymap = keymap{
	prevDay: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous day"),
	),
	nextDay: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next day"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	edit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "edit slot"),
	),
	quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}

// Viewer is the bubbletea model for the day timeline.
type Viewer struct {
	keeper    *schedule.Keeper
	opts      *config.Config
	editForm  *huh.Form
	lastSeen  map[string]timeslot.Status
	editing   string
	editValue string
	day       timeslot.Weekday
	now       time.Time
	frozen    bool
	cursor    int
	blockBar  progress.Model
	dayBar    progress.Model
	help      help.Model
}

// New creates a viewer for the keeper's schedule. When the config carries
// an --at override the clock is frozen at that instant.
func New(keeper *schedule.Keeper, cfg *config.Config) *Viewer {
	return &Viewer{
		keeper:   keeper,
		opts:     cfg,
		day:      cfg.SelectedDay(),
		now:      cfg.Now(),
		frozen:   cfg.CLI.AtSet,
		blockBar: progress.New(progress.WithDefaultGradient()),
		dayBar:   progress.New(progress.WithSolidFill("#12EAEA")),
		help:     help.New(),
		lastSeen: make(map[string]timeslot.Status),
	}
}

func (v *Viewer) Init() tea.Cmd {
	v.seedStatuses()

	return tick()
}

// seedStatuses records the current status of every block so that blocks
// already in progress are not announced as new.
func (v *Viewer) seedStatuses() {
	for _, rb := range v.keeper.CurrentView(v.day, v.now) {
		v.lastSeen[rb.Block.ID] = rb.Status
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// classBlocks returns the class blocks of the calendar in display order.
func (v *Viewer) classBlocks() []timeslot.ResolvedBlock {
	var class []timeslot.ResolvedBlock

	for _, rb := range v.keeper.CurrentView(v.day, v.now) {
		if rb.Block.Type != calendar.Class {
			continue
		}

		class = append(class, rb)
	}

	return class
}
