package app

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/mhclabs/timetabler/internal/calendar"
	"github.com/mhclabs/timetabler/internal/config"
	"github.com/mhclabs/timetabler/internal/schedule"
	"github.com/mhclabs/timetabler/internal/timeslot"
	"github.com/mhclabs/timetabler/internal/ui"
	"github.com/mhclabs/timetabler/store"
	"github.com/mhclabs/timetabler/viewer"
	"github.com/mhclabs/timetabler/web"
)

const (
	envNoColor           = "NO_COLOR"
	envTimetablerNoColor = "TIMETABLER_NO_COLOR"
)

var errMissingSetArgs = errors.New(
	"usage: set DAY BLOCK [SUBJECT] (an omitted subject clears the slot)",
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// configHelper assembles the effective configuration from the settings file
// and command-line flags.
func configHelper(ctx *cli.Context) (*config.Config, error) {
	return config.New(
		config.WithViperConfig(config.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
}

// keeperHelper opens the schedule store and loads the week.
func keeperHelper(cfg *config.Config) (*schedule.Keeper, error) {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return nil, err
	}

	return schedule.NewKeeper(db, cfg.Calendar), nil
}

// defaultAction opens the live day timeline.
func defaultAction(ctx *cli.Context) error {
	cfg, err := configHelper(ctx)
	if err != nil {
		return err
	}

	keeper, err := keeperHelper(cfg)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	p := tea.NewProgram(viewer.New(keeper, cfg))

	_, err = p.Run()
	if err != nil {
		return err
	}

	return keeper.Close()
}

// listAction prints the whole week as a grid, or as JSON with --json.
func listAction(ctx *cli.Context) error {
	cfg, err := configHelper(ctx)
	if err != nil {
		return err
	}

	keeper, err := keeperHelper(cfg)
	if err != nil {
		return err
	}

	defer func() {
		_ = keeper.Close()
	}()

	week := keeper.Week()

	if ctx.Bool("json") {
		b, err := week.Marshal()
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	ui.PrintTable(ui.WeekTable(cfg.Calendar, week), config.Stdout)

	return nil
}

// setAction assigns a subject to a class slot from the command line.
func setAction(ctx *cli.Context) error {
	args := ctx.Args().Slice()
	if len(args) < 2 {
		return errMissingSetArgs
	}

	cfg, err := configHelper(ctx)
	if err != nil {
		return err
	}

	day, err := timeslot.ParseWeekday(args[0])
	if err != nil {
		return err
	}

	blockID := args[1]
	subject := strings.Join(args[2:], " ")

	if !cfg.Calendar.IsClass(blockID) {
		pterm.Warning.Printfln(
			"%q is not an editable class slot (expected one of: %s)",
			blockID,
			strings.Join(cfg.Calendar.ClassIDs(), ", "),
		)

		return nil
	}

	keeper, err := keeperHelper(cfg)
	if err != nil {
		return err
	}

	keeper.SetEntry(day, blockID, subject)

	return keeper.Close()
}

// todayAction prints the selected day's resolved timeline to stdout.
func todayAction(ctx *cli.Context) error {
	cfg, err := configHelper(ctx)
	if err != nil {
		return err
	}

	keeper, err := keeperHelper(cfg)
	if err != nil {
		return err
	}

	defer func() {
		_ = keeper.Close()
	}()

	now := cfg.Now()
	day := cfg.SelectedDay()

	pterm.Printfln(
		"%s — day progress %.0f%%",
		ui.Highlight(day.String()),
		keeper.DayProgress(now),
	)

	for _, rb := range keeper.CurrentView(day, now) {
		title := rb.Label
		if rb.Block.Type == calendar.Class && title == "" {
			title = schedule.FreeStudyLabel
		}

		if rb.Block.Type == calendar.Break {
			title = schedule.BreakSubtitle
		}

		line := pterm.Sprintf(
			"%s – %s  %-24s %s",
			rb.Block.Start,
			rb.Block.End,
			title,
			rb.Block.Label,
		)

		switch rb.Status {
		case timeslot.Completed:
			pterm.Println(ui.Magenta(line + "  done"))
		case timeslot.InProgress:
			pterm.Println(ui.Green(pterm.Sprintf("%s  %.0f%%", line, rb.Progress)))
		case timeslot.Upcoming:
			pterm.Println(ui.Cyan(line))
		}
	}

	return nil
}

// serveAction runs the offline-first asset server.
func serveAction(ctx *cli.Context) error {
	return web.Server(
		ctx.Uint("port"),
		ctx.String("origin"),
		config.CacheFilePath(),
	)
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, config.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()

	config.InitLogger()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if TIMETABLER_NO_COLOR is set
	if _, exists := os.LookupEnv(envTimetablerNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting timetabler")

	return nil
}
