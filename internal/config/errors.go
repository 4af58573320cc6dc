package config

import "github.com/ayoisaiah/vntracker/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errEmptyFileName = &apperr.Error{
		Message: "%s file name cannot be empty",
	}

	errSameFileName = &apperr.Error{
		Message: "games and sessions cannot share the file name %q",
	}

	errInvalidBusCapacity = &apperr.Error{
		Message: "tracker bus capacity must be between %d and %d, got %d",
	}

	errInvalidFrameInterval = &apperr.Error{
		Message: "ui frame interval must be between %v and %v, got %v",
	}

	errInvalidSoundFile = &apperr.Error{
		Message: "sound file %q must be one of %s",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "log level must be one of %s, got %q",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "please provide a valid time period: %s",
	}

	errInvalidSince = &apperr.Error{
		Message: "unable to understand the date %q",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start time must be earlier than the end time",
	}
)
