package viewer

import (
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/mhclabs/timetabler/internal/calendar"
	"github.com/mhclabs/timetabler/internal/schedule"
	"github.com/mhclabs/timetabler/internal/timeslot"
)

// announceTransitions compares block statuses against the previous tick and
// reacts to class blocks that just started: a desktop notification and,
// when configured, the block command.
func (v *Viewer) announceTransitions() {
	for _, rb := range v.keeper.CurrentView(v.day, v.now) {
		prev, seen := v.lastSeen[rb.Block.ID]
		v.lastSeen[rb.Block.ID] = rb.Status

		if !seen || prev == rb.Status {
			continue
		}

		if rb.Status != timeslot.InProgress || rb.Block.Type != calendar.Class {
			continue
		}

		title := rb.Label
		if title == "" {
			title = schedule.FreeStudyLabel
		}

		if v.opts.Notifications.Enabled {
			err := beeep.Notify(rb.Block.Label+" has started", title, "")
			if err != nil {
				slog.Error(
					"unable to display notification",
					slog.Any("error", err),
				)
			}
		}

		go v.runBlockCmd()
	}
}

// runBlockCmd executes the configured block command, if any.
func (v *Viewer) runBlockCmd() {
	blockCmd := v.opts.Settings.BlockCmd
	if blockCmd == "" {
		return
	}

	cmdSlice, err := shellquote.Split(blockCmd)
	if err != nil {
		slog.Error("unable to parse block_cmd option", slog.Any("error", err))
		return
	}

	if len(cmdSlice) == 0 {
		return
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	if err := exec.Command(name, args...).Run(); err != nil {
		slog.Error("block_cmd failed", slog.Any("error", err))
	}
}
