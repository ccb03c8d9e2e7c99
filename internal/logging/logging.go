// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text" (the default when empty) or "json".
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid log format %q (expected text|json)", s)
	}
}

// New builds a logger writing to w (os.Stderr when nil) at debug level when
// debug is set and info level otherwise.
func New(debug bool, w io.Writer, format Format) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Setup installs a text logger as the slog default.
func Setup(debug bool, w io.Writer) {
	slog.SetDefault(New(debug, w, FormatText))
}

// SetupJSON installs a JSON logger as the slog default.
func SetupJSON(debug bool, w io.Writer) {
	slog.SetDefault(New(debug, w, FormatJSON))
}
