package viewer

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mhclabs/timetabler/internal/timeslot"
)

// handleTick re-evaluates every block against the latest wall-clock time
// and announces blocks that just entered progress.
func (v *Viewer) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if !v.frozen {
		v.now = time.Time(msg)
	}

	v.announceTransitions()

	return v, tick()
}

// openEditor starts an inline edit of the selected class slot.
func (v *Viewer) openEditor() {
	class := v.classBlocks()
	if v.cursor >= len(class) {
		return
	}

	rb := class[v.cursor]

	v.editing = rb.Block.ID
	v.editValue = rb.Label

	v.editForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(rb.Block.Label + " on " + v.day.String()).
				Placeholder("Add class").
				Value(&v.editValue),
		),
	)
}

// handleEditForm forwards messages to the active edit form and commits the
// entry once the form completes.
func (v *Viewer) handleEditForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			v.editForm = nil
			return v, tea.Batch(tea.ClearScreen, tea.Quit)
		case "esc":
			v.editForm = nil
			v.editing = ""

			return v, nil
		}
	}

	form, cmd := v.editForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.editForm = f

		if v.editForm.State == huh.StateCompleted {
			v.keeper.SetEntry(v.day, v.editing, v.editValue)
			v.editForm = nil
			v.editing = ""
		}
	}

	return v, cmd
}

func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.editForm != nil {
		return v.handleEditForm(msg)
	}

	switch msg := msg.(type) {
	case tickMsg:
		return v.handleTick(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeymap.prevDay):
			if v.day > timeslot.Monday {
				v.day--
				v.seedStatuses()
			}

			return v, nil

		case key.Matches(msg, defaultKeymap.nextDay):
			if v.day < timeslot.Friday {
				v.day++
				v.seedStatuses()
			}

			return v, nil

		case key.Matches(msg, defaultKeymap.up):
			if v.cursor > 0 {
				v.cursor--
			}

			return v, nil

		case key.Matches(msg, defaultKeymap.down):
			if v.cursor < len(v.classBlocks())-1 {
				v.cursor++
			}

			return v, nil

		case key.Matches(msg, defaultKeymap.edit):
			v.openEditor()

			if v.editForm != nil {
				return v, v.editForm.Init()
			}

			return v, nil

		case key.Matches(msg, defaultKeymap.quit):
			return v, tea.Batch(tea.ClearScreen, tea.Quit)
		}

	case tea.WindowSizeMsg:
		width := msg.Width - padding*2 - 4
		if width > maxWidth {
			width = maxWidth
		}

		v.blockBar.Width = width
		v.dayBar.Width = width

		return v, nil

		// FrameMsg is sent when a progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := v.dayBar.Update(msg)
		v.dayBar, _ = progressModel.(progress.Model)

		return v, cmd
	}

	return v, nil
}
