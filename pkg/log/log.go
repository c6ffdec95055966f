package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

type Format string

const (
	FormatText   Format = "text"
	FormatLogfmt Format = "logfmt"
	FormatJSON   Format = "json"
)

var (
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidFormat = errors.New("invalid log format")
)

// CreateHandlerWithStrings creates a [slog.Handler] from level and format
// strings.
func CreateHandlerWithStrings(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := GetLevel(level)
	if err != nil {
		return nil, err
	}

	f, err := GetFormat(format)
	if err != nil {
		return nil, err
	}

	return CreateHandler(w, lvl, f), nil
}

// CreateHandler creates a [slog.Handler] writing to w. Unknown formats fall
// back to [FormatText].
func CreateHandler(w io.Writer, lvl slog.Level, format Format) slog.Handler {
	opts := log.Options{
		Level:     log.Level(lvl),
		Formatter: log.TextFormatter,
	}

	switch format {
	case FormatJSON:
		opts.Formatter = log.JSONFormatter
		opts.ReportTimestamp = true
	case FormatLogfmt:
		opts.Formatter = log.LogfmtFormatter
		opts.ReportTimestamp = true
	case FormatText:
	}

	return log.NewWithOptions(w, opts)
}

func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
}

func GetFormat(format string) (Format, error) {
	switch f := Format(strings.ToLower(format)); f {
	case FormatText, FormatLogfmt, FormatJSON:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidFormat, format)
}
