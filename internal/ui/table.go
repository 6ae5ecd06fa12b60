package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/mhclabs/timetabler/internal/calendar"
	"github.com/mhclabs/timetabler/internal/schedule"
	"github.com/mhclabs/timetabler/internal/timeslot"
)

// WeekTable lays out the full week as one row per class period and one
// column per school day.
func WeekTable(cal calendar.Calendar, week schedule.Week) [][]string {
	header := []string{"PERIOD"}
	for _, day := range timeslot.Weekdays() {
		header = append(header, day.String())
	}

	data := [][]string{header}

	for _, b := range cal.ClassBlocks() {
		row := []string{
			fmt.Sprintf("%s (%s - %s)", b.Label, b.Start, b.End),
		}

		for _, day := range timeslot.Weekdays() {
			row = append(row, week.Label(day, b.ID))
		}

		data = append(data, row)
	}

	return data
}

func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output schedule table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}
