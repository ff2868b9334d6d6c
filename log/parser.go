package log

import (
	"fmt"
	"log/slog"
	"strings"
)

// ParseLogLevel reads a level name, falling back to INFO for anything unknown.
func ParseLogLevel(input string) slog.Level {
	level, err := ParseLogLevelStrict(input)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLogLevelStrict is ParseLogLevel without the fallback.
func ParseLogLevelStrict(input string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", input)
	}
}
