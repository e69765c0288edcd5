package temporal

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// Period is a reporting period resolved for a master projection. Month is
// only set when the period was resolved from a calendar month, in which case
// Year holds the calendar year originally supplied.
type Period struct {
	Quarter Quarter
	Month   *Month
	Year    int
}

func (p Period) String() string {
	if p.Month != nil {
		return fmt.Sprintf("%s %d (%s)", p.Month.Name(), p.Year, p.Quarter)
	}
	return p.Quarter.String()
}

// QuarterForMonth returns the financial quarter containing calendar month
// month.
func QuarterForMonth(month int) (int, error) {
	switch {
	case month >= 1 && month <= 3:
		return 4, nil
	case month >= 4 && month <= 6:
		return 1, nil
	case month >= 7 && month <= 9:
		return 2, nil
	case month >= 10 && month <= 12:
		return 3, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
}

// Calendar builds periods under a fixed set of year bounds.
type Calendar struct {
	bounds Bounds
}

// NewCalendar returns a Calendar enforcing b.
func NewCalendar(b Bounds) (*Calendar, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &Calendar{bounds: b}, nil
}

// DefaultCalendar returns a Calendar using DefaultBounds.
func DefaultCalendar() *Calendar {
	return &Calendar{bounds: DefaultBounds()}
}

// Bounds returns the year bounds enforced by c.
func (c *Calendar) Bounds() Bounds { return c.bounds }

// Quarter builds quarter q of financial year year.
func (c *Calendar) Quarter(q, year int) (Quarter, error) {
	return newQuarter(q, year, c.bounds)
}

// FinancialYear builds the financial year opening in year.
func (c *Calendar) FinancialYear(year int) (FinancialYear, error) {
	return newFinancialYear(year, c.bounds)
}

// ResolveQuarter returns the period for a known quarter.
func (c *Calendar) ResolveQuarter(q, year int) (Period, error) {
	qt, err := c.Quarter(q, year)
	if err != nil {
		return Period{}, err
	}
	return Period{Quarter: qt, Year: year}, nil
}

// ResolveMonth returns the period containing calendar month month of
// calendar year year. January to March belong to Q4 of the previous
// financial year, so their quarter is built with year-1 and still ends in
// year.
func (c *Calendar) ResolveMonth(month, year int) (Period, error) {
	q, err := QuarterForMonth(month)
	if err != nil {
		return Period{}, err
	}
	qYear := year
	if q == 4 {
		qYear = year - 1
	}
	qt, err := c.Quarter(q, qYear)
	if err != nil {
		return Period{}, err
	}
	m := Month{month: month, year: year}
	return Period{Quarter: qt, Month: &m, Year: year}, nil
}

// PeriodFor returns the month-based period containing d.
func (c *Calendar) PeriodFor(d civil.Date) (Period, error) {
	if !d.IsValid() {
		return Period{}, fmt.Errorf("%w: %s", ErrInvalidMonth, d)
	}
	return c.ResolveMonth(int(d.Month), d.Year)
}

// ResolveQuarter resolves a known quarter under DefaultBounds.
func ResolveQuarter(q, year int) (Period, error) {
	return DefaultCalendar().ResolveQuarter(q, year)
}

// ResolveMonth resolves a calendar month under DefaultBounds.
func ResolveMonth(month, year int) (Period, error) {
	return DefaultCalendar().ResolveMonth(month, year)
}
