package master

import (
	"log/slog"

	"datamaps/internal/cleanser"
	"datamaps/internal/temporal"
)

// Option configures a projection.
type Option func(*options)

type options struct {
	cleanser cleanser.Cleanser
	calendar *temporal.Calendar
	logger   *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{
		cleanser: cleanser.New(),
		calendar: temporal.DefaultCalendar(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCleanser replaces the cleanser applied to field labels.
func WithCleanser(c cleanser.Cleanser) Option {
	return func(o *options) {
		if c != nil {
			o.cleanser = c
		}
	}
}

// WithCalendar sets the calendar used to resolve periods.
func WithCalendar(cal *temporal.Calendar) Option {
	return func(o *options) {
		if cal != nil {
			o.calendar = cal
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
