package config

import "github.com/mhclabs/timetabler/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidAtTime = &apperr.Error{
		Message: "invalid --at time",
	}
)
