package config

import (
	"github.com/rshade/footprint/internal/logging"
)

// ToLoggingConfig converts the logging section for the logging package.
// Setting File switches the output to that file.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = outputTypeFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}
