package workbook

// Grid is an in-memory copy of one sheet. Rows and columns are 1-based.
type Grid struct {
	name string
	rows [][]any
	cols int
}

// NewGrid builds a Grid from row-major values. Rows may be ragged.
func NewGrid(name string, rows [][]any) *Grid {
	g := &Grid{name: name, rows: rows}
	for _, row := range rows {
		if len(row) > g.cols {
			g.cols = len(row)
		}
	}
	return g
}

// Name returns the sheet name.
func (g *Grid) Name() string { return g.name }

// Rows returns the number of rows up to the last non-empty one.
func (g *Grid) Rows() int { return len(g.rows) }

// Cols returns the width of the widest row.
func (g *Grid) Cols() int { return g.cols }

// Cell returns the value at row, col or nil outside the used range.
func (g *Grid) Cell(row, col int) any {
	if row < 1 || row > len(g.rows) {
		return nil
	}
	r := g.rows[row-1]
	if col < 1 || col > len(r) {
		return nil
	}
	return r[col-1]
}

// Column returns column col from row 1 to Rows().
func (g *Grid) Column(col int) []any {
	out := make([]any, len(g.rows))
	for i := range g.rows {
		out[i] = g.Cell(i+1, col)
	}
	return out
}

// ColumnsFrom returns every column from minCol to Cols().
func (g *Grid) ColumnsFrom(minCol int) [][]any {
	if minCol < 1 {
		minCol = 1
	}
	var out [][]any
	for c := minCol; c <= g.cols; c++ {
		out = append(out, g.Column(c))
	}
	return out
}
