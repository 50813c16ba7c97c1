package internal

import (
	"io"
	"time"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	in     io.Reader
	out    io.Writer
	clock  func() time.Time
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithInput sets where interactive command lines are read from.
func WithInput(r io.Reader) Option {
	return func(a *application) {
		a.in = r
	}
}

// WithOutput sets where command feedback is written.
func WithOutput(w io.Writer) Option {
	return func(a *application) {
		a.out = w
	}
}

// WithClock sets the source of the current time used by commands.
func WithClock(clock func() time.Time) Option {
	return func(a *application) {
		a.clock = clock
	}
}
