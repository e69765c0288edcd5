package temporal

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// quarterStartMonths maps a financial quarter to its first calendar month.
var quarterStartMonths = [4]int{4, 7, 10, 1}

const monthsPerQuarter = 3

// Quarter is a financial quarter. Year is the financial year the quarter
// belongs to, so the months of Q4 fall in Year+1.
type Quarter struct {
	quarter int
	year    int
	start   civil.Date
	end     civil.Date
	months  [monthsPerQuarter]Month
	bounds  Bounds
}

// NewQuarter builds quarter q of financial year year using DefaultBounds.
func NewQuarter(q, year int) (Quarter, error) {
	return newQuarter(q, year, DefaultBounds())
}

func newQuarter(q, year int, b Bounds) (Quarter, error) {
	if q < 1 || q > 4 {
		return Quarter{}, fmt.Errorf("%w: %d, must be 1, 2, 3 or 4", ErrInvalidQuarter, q)
	}
	if err := b.checkQuarterYear(year); err != nil {
		return Quarter{}, err
	}

	calYear := year
	if q == 4 {
		calYear = year + 1
	}

	qt := Quarter{quarter: q, year: year, bounds: b}
	first := quarterStartMonths[q-1]
	for i := range qt.months {
		qt.months[i] = Month{month: first + i, year: calYear}
	}
	qt.start = qt.months[0].StartDate()
	qt.end = qt.months[monthsPerQuarter-1].EndDate()
	return qt, nil
}

// Number returns the quarter number, 1 to 4.
func (q Quarter) Number() int { return q.quarter }

// Year returns the financial year the quarter belongs to.
func (q Quarter) Year() int { return q.year }

// StartDate returns the first day of the quarter.
func (q Quarter) StartDate() civil.Date { return q.start }

// EndDate returns the last day of the quarter.
func (q Quarter) EndDate() civil.Date { return q.end }

// Months returns the three months of the quarter in chronological order.
func (q Quarter) Months() []Month {
	out := make([]Month, monthsPerQuarter)
	copy(out, q.months[:])
	return out
}

// Month returns the i'th month of the quarter, counting from zero.
func (q Quarter) Month(i int) (Month, error) {
	if i < 0 || i >= monthsPerQuarter {
		return Month{}, fmt.Errorf("%w: %d", ErrMonthIndex, i)
	}
	return q.months[i], nil
}

// Contains reports whether d falls inside the quarter.
func (q Quarter) Contains(d civil.Date) bool {
	return !d.Before(q.start) && !d.After(q.end)
}

// FY returns the financial year the quarter belongs to.
func (q Quarter) FY() (FinancialYear, error) {
	return newFinancialYear(q.year, q.bounds)
}

func (q Quarter) String() string {
	return fmt.Sprintf("Q%d %s/%s", q.quarter, twoDigit(q.year), twoDigit(q.year+1))
}

// twoDigit renders the last two digits of a year, or the year itself when it
// is shorter than that.
func twoDigit(year int) string {
	s := fmt.Sprint(year)
	if len(s) <= 2 {
		return s
	}
	return s[2:]
}
