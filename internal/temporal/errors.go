package temporal

import "errors"

// Error kinds returned by the temporal constructors. Callers distinguish
// them with errors.Is.
var (
	ErrInvalidQuarter = errors.New("invalid quarter")
	ErrInvalidYear    = errors.New("invalid year")
	ErrInvalidMonth   = errors.New("invalid month")
	ErrMonthIndex     = errors.New("month index out of range")
)
