package app

import "github.com/urfave/cli/v2"

var (
	dayFlag = &cli.StringFlag{
		Name:    "day",
		Aliases: []string{"d"},
		Usage:   "Select the school day to display (Monday through Friday). Defaults to today, or Monday on weekends",
	}

	atFlag = &cli.StringFlag{
		Name:  "at",
		Usage: "View the timetable as of an arbitrary time (e.g. '09:15', '3pm yesterday')",
	}

	blockCmdFlag = &cli.StringFlag{
		Name:    "block-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command whenever a class period begins",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"D"},
		Usage:   "Disable the system notification that appears when a class period begins",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the week schedule as JSON",
	}

	portFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Specify the port for the asset server",
		Value: 1111,
	}

	originFlag = &cli.StringFlag{
		Name:  "origin",
		Usage: "Origin URL to fetch and cache the app shell from",
		Value: "http://localhost:8000",
	}
)
