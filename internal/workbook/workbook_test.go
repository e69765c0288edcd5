package workbook

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a single-sheet workbook built from cells (axis -> value).
func writeWorkbook(t *testing.T, name string, cells map[string]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for axis, v := range cells {
		require.NoError(t, f.SetCellValue(sheet, axis, v))
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Open("master.csv")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	bad := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(bad, []byte("not a zip"), 0644))
	_, err = Open(bad)
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestWorkbook_ActiveSheetTypedValues(t *testing.T) {
	when := time.Date(2019, 4, 1, 13, 45, 0, 0, time.UTC)
	path := writeWorkbook(t, "master.xlsx", map[string]any{
		"A1": "Project/Programme Name",
		"B1": "Chutney Bridge.xlsm",
		"A2": "Total Budget",
		"B2": 1200.5,
		"A3": "Start Date",
		"B3": when,
		"A4": "Active",
		"B4": true,
		"A6": "Count",
		"B6": 7,
	})

	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()

	g, err := wb.ActiveSheet()
	require.NoError(t, err)

	assert.Equal(t, 6, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, "Chutney Bridge.xlsm", g.Cell(1, 2))
	assert.Equal(t, 1200.5, g.Cell(2, 2))
	assert.Equal(t, true, g.Cell(4, 2))
	assert.Equal(t, float64(7), g.Cell(6, 2))
	assert.Nil(t, g.Cell(5, 1), "blank row is kept as empty")

	got, ok := g.Cell(3, 2).(time.Time)
	require.True(t, ok, "date cell should decode to time.Time, got %T", g.Cell(3, 2))
	assert.Equal(t, 2019, got.Year())
	assert.Equal(t, time.April, got.Month())
	assert.Equal(t, 1, got.Day())
}

func TestWorkbook_ActiveSheetFollowsActiveIndex(t *testing.T) {
	f := excelize.NewFile()
	_, err := f.NewSheet("Second")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Second", "A1", "from second"))
	f.SetActiveSheet(1)

	wb := FromFile(f)
	defer wb.Close()

	name, err := wb.ActiveSheetName()
	require.NoError(t, err)
	assert.Equal(t, "Second", name)

	g, err := wb.ActiveSheet()
	require.NoError(t, err)
	assert.Equal(t, "from second", g.Cell(1, 1))
	assert.Equal(t, []string{"Sheet1", "Second"}, wb.SheetNames())
}

func TestWorkbook_Sheet_Unknown(t *testing.T) {
	wb := FromFile(excelize.NewFile())
	defer wb.Close()

	_, err := wb.Sheet("Nope")
	assert.ErrorIs(t, err, ErrNoSheet)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("a.xlsx"))
	assert.True(t, Supported("a.XLSM"))
	assert.False(t, Supported("a.xls"))
	assert.False(t, Supported("a"))
}

func TestWorkbook_UncachedFormulaKeepsFormulaText(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{nil, "Rail Link"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"base", 4}))
	require.NoError(t, f.SetCellValue(sheet, "A3", "double"))
	require.NoError(t, f.SetCellFormula(sheet, "B3", "B2*2"))

	path := filepath.Join(t.TempDir(), "formula.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()

	g, err := wb.ActiveSheet()
	require.NoError(t, err)
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, float64(4), g.Cell(2, 2))
	assert.Equal(t, "=B2*2", g.Cell(3, 2))
	assert.Nil(t, g.Cell(1, 1))
}
