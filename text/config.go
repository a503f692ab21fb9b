package text

import "log/slog"

// Config holds handout rendering settings.
type Config struct {
	// Width is the line width used for wrapping and alignment.
	Width int
	// ANSI enables SGR escapes for emphasis and headings.
	ANSI bool
	// Logger receives write failures. Nil discards.
	Logger *slog.Logger
}

// DefaultConfig returns a baseline configuration.
func DefaultConfig() Config {
	return Config{Width: 80}
}
