// Package workbook loads spreadsheets with excelize and snapshots a sheet
// into an in-memory Grid of typed cell values.
//
// Cells are returned as one of
//
//	nil        empty cell
//	string     shared, inline or formula string
//	float64    number
//	bool       boolean
//	time.Time  number formatted as a date, or an ISO 8601 date cell
//
// A Grid is a copy: it does not reference the excelize file and stays valid
// after the Workbook is closed. Workbook handles are not safe for concurrent
// use; open one per goroutine.
package workbook
