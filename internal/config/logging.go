package config

import "github.com/carboncentrik/footprint/internal/logging"

// ToLoggingConfig converts the config's Logging section into the logging
// package's Config. This bridges the configuration system to the logging
// infrastructure.
//
// The conversion applies these rules:
//   - Level and Format are copied directly
//   - If File is set, Output becomes "file" and File is passed through
//   - If File is empty, Output defaults to "stderr"
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}
