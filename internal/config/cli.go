package config

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mhclabs/timetabler/internal/timeslot"
	"github.com/mhclabs/timetabler/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Day           string
	At            string
	BlockCmd      string
	DisableNotify bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Day:           ctx.String("day"),
			At:            ctx.String("at"),
			BlockCmd:      ctx.String("block-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.BlockCmd != "" {
		c.Settings.BlockCmd = opts.BlockCmd
	}

	if opts.Day != "" {
		day, err := timeslot.ParseWeekday(opts.Day)
		if err != nil {
			return err
		}

		c.CLI.Day = day
		c.CLI.DaySet = true
	}

	if opts.At != "" {
		at, err := timeutil.FromStr(opts.At, time.Now())
		if err != nil {
			return errInvalidAtTime.Wrap(err)
		}

		c.CLI.At = at
		c.CLI.AtSet = true
	}

	return nil
}

// Now returns the reference time for view resolution: the --at override
// when one was given, the wall clock otherwise.
func (c *Config) Now() time.Time {
	if c.CLI.AtSet {
		return c.CLI.At
	}

	return time.Now()
}

// SelectedDay returns the weekday to display: the --day override when one
// was given, otherwise the current day (Monday on weekends).
func (c *Config) SelectedDay() timeslot.Weekday {
	if c.CLI.DaySet {
		return c.CLI.Day
	}

	return timeslot.Today(c.Now())
}
