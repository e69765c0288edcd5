// Package temporal models the reporting periods used to tag master data:
// calendar months, UK government financial quarters and financial years.
//
// # Financial quarters
//
// A financial year opens in April. Quarters map to calendar months as
//
//	Q1 = April - June
//	Q2 = July - September
//	Q3 = October - December
//	Q4 = January - March (of the following calendar year)
//
// so Quarter(4, 2021) covers January to March 2022. The Period Resolver
// reverses this when classifying a calendar month:
//
//	p, err := temporal.ResolveMonth(2, 2021)
//	// p.Quarter is Q4 of financial year 2020, ending 2021-03-31
//
// # Validation
//
// Every constructor validates its input and returns one of the sentinel
// errors (ErrInvalidQuarter, ErrInvalidYear, ErrInvalidMonth). Year ranges
// are held in Bounds so they can be configured; DefaultBounds keeps the
// historical ranges, which differ between quarters and financial years.
//
// All values are immutable once built and safe to share between goroutines.
package temporal
