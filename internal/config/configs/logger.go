package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger configures the service log. Level is one of debug, info, warn or
// error; Format is text or json. Unknown values fall back to info and text.
type Logger struct {
	Level     string `env:"LEVEL" envDefault:"info"`
	Format    string `env:"FORMAT" envDefault:"text"`
	AddSource bool   `env:"ADD_SOURCE" envDefault:"false"`
}

// SlogLevel converts the textual level into a slog.Level.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat normalises the requested log format.
func (c Logger) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return "json"
	}
	return "text"
}

// Handler builds the slog handler writing to w.
func (c Logger) Handler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.AddSource}
	if c.SlogFormat() == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
