// Package config is responsible for configuring the timetabler application:
// filesystem paths, the settings file, and command-line overrides.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"

	"github.com/mhclabs/timetabler/internal/calendar"
	"github.com/mhclabs/timetabler/internal/timeslot"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Calendar      calendar.Calendar
		Settings      Settings
		Notifications NotificationConfig
		Display       DisplayConfig
		CLI           CLIConfig
	}

	// Settings holds general application settings.
	Settings struct {
		// BlockCmd is an arbitrary command executed whenever a class
		// block begins.
		BlockCmd string
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool
		TwentyFourHour bool
	}

	// CLIConfig holds per-invocation state derived from command-line
	// flags.
	CLIConfig struct {
		Day    timeslot.Weekday
		DaySet bool
		At     time.Time
		AtSet  bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v1.0.2"

var (
	configDir      = "timetabler"
	configFileName = "config.yml"
	dbFileName     = "timetabler.db"
	cacheFileName  = "cache.db"
	logFileName    = "timetabler.log"
	dbFilePath     string
	cacheFilePath  string
	configFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func CacheFilePath() string {
	return cacheFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

func InitializePaths() {
	appEnv := strings.TrimSpace(os.Getenv("TIMETABLER_ENV"))
	if appEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", appEnv)
		dbFileName = fmt.Sprintf("timetabler_%s.db", appEnv)
		cacheFileName = fmt.Sprintf("cache_%s.db", appEnv)
		logFileName = fmt.Sprintf("timetabler_%s.log", appEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	cacheFilePath = filepath.Join(dataDir, cacheFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a new Config with default values and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		Calendar: calendar.Default(),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	return cfg, nil
}
