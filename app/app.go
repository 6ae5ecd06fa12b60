// Package app wires up the command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/mhclabs/timetabler/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the timetabler app instance.
func Get() *cli.App {
	timetablerApp := &cli.App{
		Name: "timetabler",
		Usage: `
		Timetabler is a weekly class schedule viewer and editor for the
		command line. It shows the current school day as a live timeline
		with per-period progress, and keeps your week stored locally so it
		works entirely offline.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "Print the full week as an editable grid",
				Action: listAction,
				Flags:  []cli.Flag{jsonFlag},
			},
			{
				Name:      "set",
				Usage:     "Assign a subject to a class slot (e.g. set monday period1 Chemistry)",
				ArgsUsage: "DAY BLOCK [SUBJECT]",
				Action:    setAction,
			},
			{
				Name:   "today",
				Usage:  "Print the selected day's timeline and progress",
				Action: todayAction,
			},
			{
				Name:   "serve",
				Usage:  "Serve the web app shell offline-first from the local asset cache",
				Action: serveAction,
				Flags:  []cli.Flag{portFlag, originFlag},
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			dayFlag,
			atFlag,
			blockCmdFlag,
			disableNotificationFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return timetablerApp
}
