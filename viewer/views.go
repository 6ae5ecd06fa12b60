package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/mhclabs/timetabler/internal/calendar"
	"github.com/mhclabs/timetabler/internal/schedule"
	"github.com/mhclabs/timetabler/internal/timeslot"
	"github.com/mhclabs/timetabler/internal/timeutil"
)

var (
	baseStyle     = lipgloss.NewStyle().Padding(1, padding)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B0DB43"))
	clockStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#12EAEA"))
	upcomingStyle = lipgloss.NewStyle().Faint(true)
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B0DB43"))
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	breakStyle    = lipgloss.NewStyle().Italic(true).Faint(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C492B1"))
)

// clockFormat returns the display format for wall-clock times.
func (v *Viewer) clockFormat() string {
	if v.opts.Display.TwentyFourHour {
		return "15:04"
	}

	return "03:04 PM"
}

func (v *Viewer) headerView() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render(v.day.String()))
	s.WriteString("  ")
	s.WriteString(clockStyle.Render(v.now.Format(v.clockFormat())))

	if left := v.timeLeft(); left != "" {
		s.WriteString("  ")
		s.WriteString(upcomingStyle.Render(left))
	}

	s.WriteString("\n\n")
	s.WriteString(v.dayBar.ViewAs(v.keeper.DayProgress(v.now) / 100))
	s.WriteString("\n")

	return s.String()
}

// timeLeft describes how much of the school day remains, or "" outside the
// day's span.
func (v *Viewer) timeLeft() string {
	first, last := v.keeper.Calendar().Span()

	start, end := first.On(v.now), last.On(v.now)
	if v.now.Before(start) || !v.now.Before(end) {
		return ""
	}

	hrs, mins := timeutil.MinsToHoursAndMins(
		timeutil.Round(end.Sub(v.now).Minutes()),
	)

	if hrs > 0 {
		return fmt.Sprintf("%dh %02dm left", hrs, mins)
	}

	return fmt.Sprintf("%dm left", mins)
}

// blockLine renders one row of the day timeline.
func (v *Viewer) blockLine(rb timeslot.ResolvedBlock, selected bool) string {
	timeRange := fmt.Sprintf("%s – %s", rb.Block.Start, rb.Block.End)

	title := rb.Label

	if rb.Block.Type == calendar.Class && title == "" {
		title = schedule.FreeStudyLabel
	}

	if rb.Block.Type == calendar.Break {
		title = schedule.BreakSubtitle
	}

	var marker string

	style := upcomingStyle

	switch rb.Status {
	case timeslot.Completed:
		style = doneStyle
		marker = "✓"
	case timeslot.InProgress:
		style = activeStyle
		marker = fmt.Sprintf("%3d%%", timeutil.Round(rb.Progress))
	case timeslot.Upcoming:
		marker = " "
	}

	if rb.Block.Type == calendar.Break {
		style = breakStyle
	}

	cursor := "  "
	if selected {
		cursor = cursorStyle.Render("▸ ")
	}

	line := fmt.Sprintf(
		"%s%s  %-24s %s  %s",
		cursor,
		timeRange,
		title,
		rb.Block.Label,
		marker,
	)

	rendered := style.Render(line)

	if rb.Status == timeslot.InProgress {
		rendered += "\n    " + v.blockBar.ViewAs(rb.Progress/100)
	}

	return rendered
}

func (v *Viewer) timelineView() string {
	var s strings.Builder

	classIndex := 0

	for _, rb := range v.keeper.CurrentView(v.day, v.now) {
		selected := false

		if rb.Block.Type == calendar.Class {
			selected = classIndex == v.cursor
			classIndex++
		}

		s.WriteString(v.blockLine(rb, selected))
		s.WriteString("\n")
	}

	return s.String()
}

func (v *Viewer) helpView() string {
	return "\n" + v.help.ShortHelpView([]key.Binding{
		defaultKeymap.prevDay,
		defaultKeymap.nextDay,
		defaultKeymap.up,
		defaultKeymap.down,
		defaultKeymap.edit,
		defaultKeymap.quit,
	})
}

func (v *Viewer) View() string {
	if v.editForm != nil {
		return baseStyle.Render(v.headerView() + "\n" + v.editForm.View())
	}

	return baseStyle.Render(v.headerView() + "\n" + v.timelineView() + v.helpView())
}
