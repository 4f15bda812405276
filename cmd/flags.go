package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/acpitools/amltohex/pkg/log"
)

var (
	logLevel string
	logFile  string

	// logToFile is set when the active logger writes to a file instead of stderr.
	logToFile bool
)

func addLoggingFlags(fs *pflag.FlagSet) {
	fs.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Append logs to this file instead of stderr")
}

// newLogger builds the logger for cmd. Explicitly set flags win over the
// manifest values passed in; the flag defaults apply when both are empty.
func newLogger(cmd *cobra.Command, level, path string) (*slog.Logger, func() error, error) {
	flags := cmd.Flags()
	if level == "" || flags.Changed("log-level") {
		level = logLevel
	}
	if path == "" || flags.Changed("log-file") {
		path = logFile
	}
	if !log.ValidLevel(level) {
		return nil, nil, fmt.Errorf("invalid logging level: %s", level)
	}
	logToFile = path != ""
	return log.New(os.Stderr, path, level)
}
