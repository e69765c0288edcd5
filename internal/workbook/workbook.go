package workbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var (
	ErrNotFound          = errors.New("workbook not found")
	ErrUnsupportedFormat = errors.New("unsupported workbook format")
	ErrNoSheet           = errors.New("workbook has no such sheet")
	// ErrUnreadable wraps failures of the spreadsheet reader itself: a
	// corrupt archive, malformed sheet XML or an unreadable cell.
	ErrUnreadable = errors.New("workbook unreadable")
)

// Extensions lists the file extensions Open accepts.
var Extensions = []string{".xlsx", ".xlsm"}

// Supported reports whether path has a workbook extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Workbook is an open spreadsheet.
type Workbook struct {
	file *excelize.File
	path string

	// style index -> is a date format
	dateStyles map[int]bool
}

// Open opens the workbook at path.
func Open(path string) (*Workbook, error) {
	if !Supported(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat workbook: %w", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	return &Workbook{file: f, path: path, dateStyles: make(map[int]bool)}, nil
}

// FromFile wraps an already open excelize file. Closing the Workbook closes f.
func FromFile(f *excelize.File) *Workbook {
	return &Workbook{file: f, path: f.Path, dateStyles: make(map[int]bool)}
}

// Path returns the file the workbook was read from, if any.
func (w *Workbook) Path() string { return w.path }

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// ActiveSheetName returns the name of the sheet that opens first in Excel.
func (w *Workbook) ActiveSheetName() (string, error) {
	names := w.file.GetSheetList()
	if len(names) == 0 {
		return "", ErrNoSheet
	}
	if name := w.file.GetSheetName(w.file.GetActiveSheetIndex()); name != "" {
		return name, nil
	}
	return names[0], nil
}

// ActiveSheet snapshots the active sheet.
func (w *Workbook) ActiveSheet() (*Grid, error) {
	name, err := w.ActiveSheetName()
	if err != nil {
		return nil, err
	}
	return w.Sheet(name)
}

// Sheet snapshots the named sheet.
func (w *Workbook) Sheet(name string) (*Grid, error) {
	if idx, err := w.file.GetSheetIndex(name); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSheet, name)
	}

	rows, err := w.file.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrUnreadable, name, err)
	}

	date1904 := w.date1904()
	values := make([][]any, len(rows))
	for r, row := range rows {
		vals := make([]any, len(row))
		for c, raw := range row {
			if raw == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, fmt.Errorf("%w: sheet %q: %v", ErrUnreadable, name, err)
			}
			v, err := w.cellValue(name, cell, raw, date1904)
			if err != nil {
				return nil, fmt.Errorf("%w: sheet %q cell %s: %v", ErrUnreadable, name, cell, err)
			}
			vals[c] = v
		}
		values[r] = vals
	}
	if err := w.fillFormulas(name, values); err != nil {
		return nil, err
	}
	return NewGrid(name, values), nil
}

// fillFormulas gives formula cells that carry no cached result their formula
// text, "=" prefixed. Rows are padded to the widest row first so trailing
// formula cells are seen.
func (w *Workbook) fillFormulas(sheet string, values [][]any) error {
	width := 0
	for _, row := range values {
		width = max(width, len(row))
	}
	for r := range values {
		for c := 0; c < width; c++ {
			if c < len(values[r]) && values[r][c] != nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("%w: sheet %q: %v", ErrUnreadable, sheet, err)
			}
			formula, err := w.file.GetCellFormula(sheet, cell)
			if err != nil {
				return fmt.Errorf("%w: sheet %q cell %s: %v", ErrUnreadable, sheet, cell, err)
			}
			if formula == "" {
				continue
			}
			for len(values[r]) <= c {
				values[r] = append(values[r], nil)
			}
			values[r][c] = "=" + formula
		}
	}
	return nil
}

func (w *Workbook) cellValue(sheet, cell, raw string, date1904 bool) (any, error) {
	typ, err := w.file.GetCellType(sheet, cell)
	if err != nil {
		return nil, err
	}

	switch typ {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), nil
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return t, nil
		}
		return raw, nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return raw, nil
		}
		if w.isDateCell(sheet, cell) {
			t, err := excelize.ExcelDateToTime(n, date1904)
			if err != nil {
				return n, nil
			}
			return t, nil
		}
		return n, nil
	default:
		return raw, nil
	}
}

func (w *Workbook) date1904() bool {
	props, err := w.file.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}

func (w *Workbook) isDateCell(sheet, cell string) bool {
	idx, err := w.file.GetCellStyle(sheet, cell)
	if err != nil || idx == 0 {
		return false
	}
	if isDate, ok := w.dateStyles[idx]; ok {
		return isDate
	}

	isDate := false
	if style, err := w.file.GetStyle(idx); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			isDate = IsDateFormatCode(*style.CustomNumFmt)
		} else {
			isDate = IsBuiltInDateFormat(style.NumFmt)
		}
	}
	w.dateStyles[idx] = isDate
	return isDate
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseISODate(raw string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
