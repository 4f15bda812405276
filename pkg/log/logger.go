package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Levels lists the accepted level names.
var Levels = []string{"debug", "info", "warn", "error"}

// New builds a text logger writing to the specified path (or w when path is empty)
// at the specified level. The returned close function releases the log file, if any.
//
// path: Log file path. If empty, logs go to w.
// level: Log level ("debug", "info", "warn", "error"). Defaults to "info".
func New(w io.Writer, path string, level string) (*slog.Logger, func() error, error) {
	closeFn := func() error { return nil }

	if path != "" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, nil, err
			}
		}

		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = f.Close
	}

	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}
	return slog.New(slog.NewTextHandler(w, opts)), closeFn, nil
}

// ValidLevel reports whether s names a known level. The empty string is valid.
func ValidLevel(s string) bool {
	if s == "" {
		return true
	}
	for _, l := range Levels {
		if strings.EqualFold(s, l) {
			return true
		}
	}
	return false
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
