// Package logging builds the server's structured logger from RUST_LOG,
// following an env-filter grammar: a default level, optionally followed by
// comma-separated "target=level" overrides (e.g. "warn,jsonls/schema=debug").
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format selects the slog handler's wire format.
type Format string

const (
	FormatJSON   Format = "json"
	FormatLogfmt Format = "logfmt"
)

var ErrUnknownLogLevel = errors.New("logging: unknown log level")

// Filter is a parsed RUST_LOG value: a default level plus per-target
// overrides.
type Filter struct {
	Default   slog.Level
	Overrides map[string]slog.Level
}

// ParseRustLog parses an env-filter string. An empty value yields the
// default level Info with no overrides.
func ParseRustLog(value string) (Filter, error) {
	if strings.TrimSpace(value) == "" {
		return Filter{Default: slog.LevelInfo, Overrides: map[string]slog.Level{}}, nil
	}
	f := Filter{Default: slog.LevelInfo, Overrides: map[string]slog.Level{}}
	for _, directive := range strings.Split(value, ",") {
		directive = strings.TrimSpace(directive)
		if directive == "" {
			continue
		}
		target, levelStr, hasTarget := strings.Cut(directive, "=")
		level, err := ParseLevel(levelStr)
		if !hasTarget {
			level, err = ParseLevel(target)
			if err != nil {
				return Filter{}, err
			}
			f.Default = level
			continue
		}
		if err != nil {
			return Filter{}, err
		}
		f.Overrides[target] = level
	}
	return f, nil
}

// LevelFor returns the effective level for target, falling back to the
// filter's default when no override matches.
func (f Filter) LevelFor(target string) slog.Level {
	if lvl, ok := f.Overrides[target]; ok {
		return lvl
	}
	return f.Default
}

// ParseLevel parses one of error/warn/info/debug/trace (trace maps to
// slog's lowest level, there being no native slog.LevelTrace).
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "trace":
		return slog.LevelDebug - 4, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
}

// New builds a slog.Logger writing w in format at the filter's default
// level. Per-target overrides are consulted by callers that build child
// loggers via slog.Logger.With("target", name) and compare against
// filter.LevelFor.
func New(w io.Writer, filter Filter, format Format) *slog.Logger {
	return slog.New(newHandler(w, filter.Default, format))
}

func newHandler(w io.Writer, level slog.Level, format Format) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
