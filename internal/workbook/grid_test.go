package workbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid(t *testing.T) {
	g := NewGrid("Sheet1", [][]any{
		{"key", "p1", "p2"},
		{"a", 1.0},
		{},
		{"b", nil, "x"},
	})

	assert.Equal(t, "Sheet1", g.Name())
	assert.Equal(t, 4, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Nil(t, g.Cell(0, 1))
	assert.Nil(t, g.Cell(2, 3))
	assert.Nil(t, g.Cell(9, 1))
	assert.Equal(t, []any{"key", "a", nil, "b"}, g.Column(1))

	cols := g.ColumnsFrom(2)
	assert.Len(t, cols, 2)
	assert.Equal(t, []any{"p1", 1.0, nil, nil}, cols[0])
	assert.Equal(t, []any{"p2", nil, nil, "x"}, cols[1])
	assert.Len(t, g.ColumnsFrom(0), 3)
}

func TestIsDateFormat(t *testing.T) {
	for _, id := range []int{14, 15, 16, 17, 22, 30, 57} {
		assert.True(t, IsBuiltInDateFormat(id), "id %d", id)
	}
	for _, id := range []int{0, 1, 4, 18, 21, 45, 46, 49} {
		assert.False(t, IsBuiltInDateFormat(id), "id %d", id)
	}

	tests := map[string]bool{
		"yyyy-mm-dd":          true,
		"dd/mm/yyyy":          true,
		"[$-809]dd mmmm yyyy": true,
		"mmm-yy;@":            true,
		"h:mm:ss":             false,
		"[h]:mm":              false,
		"#,##0.00":            false,
		`"day "0`:             false,
		"[Red]0.00":           false,
		"General":             false,
	}
	for code, want := range tests {
		assert.Equal(t, want, IsDateFormatCode(code), code)
	}
}
