package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/mhclabs/timetabler/internal/calendar"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keyBlockCmd             = "settings.block_cmd"
	keyCalendarBlocks       = "calendar.blocks"
)

// calendarEntry is the on-disk form of a day block.
type calendarEntry struct {
	ID    string `mapstructure:"id"`
	Label string `mapstructure:"label"`
	Type  string `mapstructure:"type"`
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

// WithViperConfig returns an Option that loads configuration from Viper.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, true)
	v.SetDefault(keyBlockCmd, "")
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	c.Notifications.Enabled = v.GetBool(keyNotificationsEnabled)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Display.TwentyFourHour = v.GetBool(keyTwentyFourHour)
	c.Settings.BlockCmd = v.GetString(keyBlockCmd)

	if v.IsSet(keyCalendarBlocks) {
		cal, err := loadCalendar(v)
		if err != nil {
			// A broken calendar override must not take the app down.
			slog.Warn(
				"invalid calendar override, using the default calendar",
				slog.Any("error", err),
			)

			return nil
		}

		c.Calendar = cal
	}

	return nil
}

// loadCalendar builds a validated Calendar from the config file's block
// list.
func loadCalendar(v *viper.Viper) (calendar.Calendar, error) {
	var entries []calendarEntry

	if err := v.UnmarshalKey(keyCalendarBlocks, &entries); err != nil {
		return calendar.Calendar{}, err
	}

	blocks := make([]calendar.Block, 0, len(entries))

	for _, e := range entries {
		start, err := calendar.ParseClock(e.Start)
		if err != nil {
			return calendar.Calendar{}, fmt.Errorf("block %q: %w", e.ID, err)
		}

		end, err := calendar.ParseClock(e.End)
		if err != nil {
			return calendar.Calendar{}, fmt.Errorf("block %q: %w", e.ID, err)
		}

		blocks = append(blocks, calendar.Block{
			ID:    e.ID,
			Label: e.Label,
			Type:  calendar.BlockType(e.Type),
			Start: start,
			End:   end,
		})
	}

	return calendar.New(blocks)
}
