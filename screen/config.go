package screen

import (
	"log/slog"
	"time"
)

// Config holds player settings.
type Config struct {
	// HugeFallback draws "--huge" text as a bold centered line when no
	// banner program is available.
	HugeFallback bool
	// Logger receives diagnostics such as invalid sleep values. Nil discards.
	Logger *slog.Logger

	// sleep replaces time.Sleep in tests.
	sleep func(time.Duration)
}
