package configs

import (
	"log/slog"
	"strings"
)

// Logger configures the structured logger. Level is one of "debug",
// "info", "warn" or "error"; Format is "text" (default) or "json".
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
	// Source adds the calling file and line to every record.
	Source bool `env:"SOURCE" envDefault:"false"`
}

// SlogLevel parses Level with slog's own syntax, so offsets such as
// "debug-4" or "warn+2" work. "warning" is accepted as "warn". Unknown
// levels default to slog.LevelInfo.
func (c Logger) SlogLevel() slog.Level {
	name := strings.TrimSpace(c.Level)
	if strings.EqualFold(name, "warning") {
		name = "warn"
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// SlogFormat returns "json" or "text". Unknown formats fall back to "text".
func (c Logger) SlogFormat() string {
	switch strings.ToLower(c.Format) {
	case "json":
		return "json"
	default:
		return "text"
	}
}
