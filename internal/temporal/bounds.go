package temporal

import "fmt"

// Bounds holds the inclusive year ranges accepted by the constructors.
type Bounds struct {
	QuarterMin       int
	QuarterMax       int
	FinancialYearMin int
	FinancialYearMax int
}

// DefaultBounds returns the historical ranges: 1950-2099 for quarters and
// 150-2099 for financial years.
func DefaultBounds() Bounds {
	return Bounds{
		QuarterMin:       1950,
		QuarterMax:       2099,
		FinancialYearMin: 150,
		FinancialYearMax: 2099,
	}
}

// Validate reports whether both ranges are well formed.
func (b Bounds) Validate() error {
	if b.QuarterMin > b.QuarterMax {
		return fmt.Errorf("quarter year bounds inverted: %d > %d", b.QuarterMin, b.QuarterMax)
	}
	if b.FinancialYearMin > b.FinancialYearMax {
		return fmt.Errorf("financial year bounds inverted: %d > %d", b.FinancialYearMin, b.FinancialYearMax)
	}
	if b.FinancialYearMin < 1 || b.QuarterMin < 1 {
		return fmt.Errorf("year bounds must be positive")
	}
	return nil
}

func (b Bounds) checkQuarterYear(year int) error {
	if year < b.QuarterMin || year > b.QuarterMax {
		return fmt.Errorf("%w: %d not in %d-%d", ErrInvalidYear, year, b.QuarterMin, b.QuarterMax)
	}
	return nil
}

func (b Bounds) checkFinancialYear(year int) error {
	if year < b.FinancialYearMin || year > b.FinancialYearMax {
		return fmt.Errorf("%w: %d not in %d-%d", ErrInvalidYear, year, b.FinancialYearMin, b.FinancialYearMax)
	}
	return nil
}
