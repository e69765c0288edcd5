package master

import (
	"context"

	"datamaps/internal/temporal"
)

// FromQuarter projects src for a known financial quarter.
func FromQuarter(ctx context.Context, src Source, quarter, year int, opts ...Option) (*Projection, error) {
	o := newOptions(opts)
	period, err := o.calendar.ResolveQuarter(quarter, year)
	if err != nil {
		return nil, err
	}
	return Project(ctx, src, period, opts...)
}

// FromMonth projects src for the financial quarter containing calendar month
// month of year. The projection keeps the month and the year as supplied.
func FromMonth(ctx context.Context, src Source, month, year int, opts ...Option) (*Projection, error) {
	o := newOptions(opts)
	period, err := o.calendar.ResolveMonth(month, year)
	if err != nil {
		return nil, err
	}
	return Project(ctx, src, period, opts...)
}

// Resolve returns the period for either a quarter or a month request. A
// non-zero month takes precedence over quarter. A nil cal uses the default
// bounds.
func Resolve(cal *temporal.Calendar, quarter, month, year int) (temporal.Period, error) {
	if cal == nil {
		cal = temporal.DefaultCalendar()
	}
	if month != 0 {
		return cal.ResolveMonth(month, year)
	}
	return cal.ResolveQuarter(quarter, year)
}
