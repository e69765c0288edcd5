package temporal

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

var monthNames = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Month is a single calendar month.
type Month struct {
	month int
	year  int
}

// NewMonth returns the calendar month month/year. It fails with
// ErrInvalidMonth when month is outside 1-12.
func NewMonth(month, year int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	return Month{month: month, year: year}, nil
}

// Number returns the month number, 1 for January.
func (m Month) Number() int { return m.month }

// Year returns the calendar year.
func (m Month) Year() int { return m.year }

// Name returns the English name of the month.
func (m Month) Name() string {
	return monthNames[m.month-1]
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	if m.month == 2 && IsLeap(m.year) {
		return 29
	}
	return monthDays[m.month-1]
}

// StartDate returns the first day of the month.
func (m Month) StartDate() civil.Date {
	return civil.Date{Year: m.year, Month: time.Month(m.month), Day: 1}
}

// EndDate returns the last day of the month.
func (m Month) EndDate() civil.Date {
	return civil.Date{Year: m.year, Month: time.Month(m.month), Day: m.Days()}
}

// Contains reports whether d falls inside the month.
func (m Month) Contains(d civil.Date) bool {
	return d.Year == m.year && int(d.Month) == m.month
}

func (m Month) String() string {
	return fmt.Sprintf("Month(%s)", m.Name())
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
