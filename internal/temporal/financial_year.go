package temporal

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// FinancialYear is the twelve months from April of Year to March of Year+1.
type FinancialYear struct {
	year     int
	quarters [4]Quarter
}

// NewFinancialYear builds financial year year using DefaultBounds.
func NewFinancialYear(year int) (FinancialYear, error) {
	return newFinancialYear(year, DefaultBounds())
}

func newFinancialYear(year int, b Bounds) (FinancialYear, error) {
	if err := b.checkFinancialYear(year); err != nil {
		return FinancialYear{}, err
	}
	fy := FinancialYear{year: year}
	for i := range fy.quarters {
		q, err := newQuarter(i+1, year, b)
		if err != nil {
			return FinancialYear{}, fmt.Errorf("financial year %d: %w", year, err)
		}
		fy.quarters[i] = q
	}
	return fy, nil
}

// Year returns the calendar year in which the financial year opens.
func (fy FinancialYear) Year() int { return fy.year }

func (fy FinancialYear) Q1() Quarter { return fy.quarters[0] }
func (fy FinancialYear) Q2() Quarter { return fy.quarters[1] }
func (fy FinancialYear) Q3() Quarter { return fy.quarters[2] }
func (fy FinancialYear) Q4() Quarter { return fy.quarters[3] }

// Quarters returns Q1 to Q4.
func (fy FinancialYear) Quarters() []Quarter {
	out := make([]Quarter, len(fy.quarters))
	copy(out, fy.quarters[:])
	return out
}

// StartDate is the first day of Q1.
func (fy FinancialYear) StartDate() civil.Date { return fy.quarters[0].StartDate() }

// EndDate is the last day of Q4.
func (fy FinancialYear) EndDate() civil.Date { return fy.quarters[3].EndDate() }

// Contains reports whether d falls inside the financial year.
func (fy FinancialYear) Contains(d civil.Date) bool {
	return !d.Before(fy.StartDate()) && !d.After(fy.EndDate())
}

func (fy FinancialYear) String() string {
	return fmt.Sprintf("FY%d/%s", fy.year, twoDigit(fy.year+1))
}
