package log

import (
	"io"
	"log/slog"
	"strings"

	"github.com/dpotapov/slogpfx"
)

// Logger wraps a slog.Logger and tracks prefixes so they can be stacked. A runner
// logging under "[workshop]" can hand "[workshop][tripleAll]" to a single exercise.
type Logger struct {
	*slog.Logger

	rawLogLevel string
	prefixes    []string
}

// NewLoggerWithWriter creates a logger that writes text lines to w.
func NewLoggerWithWriter(rawLogLevel string, w io.Writer, prefixes []string) *Logger {
	slogger := newSlogger(rawLogLevel, w)
	return newLoggerWithSlogger(slogger, rawLogLevel, prefixes)
}

func newLoggerWithSlogger(slogger *slog.Logger, rawLogLevel string, prefixes []string) *Logger {
	// Copy so sibling loggers never share a backing array
	owned := make([]string, len(prefixes))
	copy(owned, prefixes)

	return &Logger{
		Logger:      slogger.With(prefixKey, strings.Join(owned, "")),
		rawLogLevel: rawLogLevel,
		prefixes:    owned,
	}
}

// ApplyPrefix returns a child logger with prefix appended to the existing ones.
func (l *Logger) ApplyPrefix(prefix string) *Logger {
	return newLoggerWithSlogger(l.Logger, l.rawLogLevel, append(l.prefixes, prefix))
}

// With returns a child logger carrying args on every line.
func (l *Logger) With(args ...any) *Logger {
	return newLoggerWithSlogger(l.Logger.With(args...), l.rawLogLevel, l.prefixes)
}

// Any value logged under this key is rendered as a message prefix by slogpfx.
const prefixKey = "_prefixKey"

func newSlogger(rawLogLevel string, w io.Writer) *slog.Logger {
	lvl := new(slog.LevelVar)
	lvl.Set(ParseLogLevel(rawLogLevel))

	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})

	// slogpfx defaults to a '>' separator, prefixes here are concatenated
	prefixFormatter := func(prefixes []slog.Value) string {
		p := make([]string, 0, len(prefixes))
		for _, prefix := range prefixes {
			if prefix.Any() == nil || prefix.String() == "" {
				continue
			}
			p = append(p, prefix.String())
		}
		if len(p) == 0 {
			return ""
		}
		return strings.Join(p, "") + " "
	}

	prefixHandler := slogpfx.NewHandler(textHandler, &slogpfx.HandlerOptions{
		PrefixKeys:      []string{prefixKey},
		PrefixFormatter: prefixFormatter,
	})

	return slog.New(prefixHandler)
}
