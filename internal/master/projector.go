package master

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"cloud.google.com/go/civil"

	"datamaps/internal/cleanser"
	"datamaps/internal/temporal"
	"datamaps/internal/workbook"
)

// Project reads the active sheet of src and folds it into a Projection
// tagged with period. Errors from the workbook loader and the cleanser are
// returned unchanged.
func Project(ctx context.Context, src Source, period temporal.Period, opts ...Option) (*Projection, error) {
	o := newOptions(opts)
	logger := o.logger.With(slog.String("component", "master_projector"), slog.String("source", src.String()))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wb, owned, err := src.open()
	if err != nil {
		return nil, err
	}
	if owned {
		defer wb.Close()
	}

	grid, err := wb.ActiveSheet()
	if err != nil {
		if errors.Is(err, workbook.ErrNoSheet) {
			return nil, fmt.Errorf("%s: %w", src, ErrEmptySheet)
		}
		return nil, err
	}

	p, err := projectGrid(grid, o.cleanser)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	p.Quarter = period.Quarter
	p.Month = period.Month
	p.Year = period.Year
	p.Source = src.String()

	logger.InfoContext(ctx, "master projected",
		slog.String("sheet", grid.Name()),
		slog.Int("projects", p.Len()),
		slog.Int("rows", grid.Rows()),
		slog.String("period", period.String()))
	return p, nil
}

// projectGrid cleanses the key column into its own slice and zips it against
// every data column. The grid is not modified.
func projectGrid(g *workbook.Grid, c cleanser.Cleanser) (*Projection, error) {
	if g.Rows() == 0 {
		return nil, ErrEmptySheet
	}

	keys := cleanKeys(g.Column(1), c)

	p := &Projection{Sheet: g.Name(), projects: make(map[string]*Fields)}
	for _, col := range g.ColumnsFrom(2) {
		name := cellString(col[0])
		if name == "" {
			continue
		}

		fields := newFields()
		for row := 1; row < len(col); row++ {
			if keys[row] == "" {
				continue
			}
			fields.set(keys[row], normalise(col[row]))
		}

		if _, dup := p.projects[name]; !dup {
			p.names = append(p.names, name)
		}
		p.projects[name] = fields
	}

	if len(p.names) == 0 {
		return nil, ErrEmptySheet
	}
	return p, nil
}

// cleanKeys returns the cleansed label of every row. Empty cells stay empty.
func cleanKeys(column []any, c cleanser.Cleanser) []string {
	keys := make([]string, len(column))
	for i, v := range column {
		s := cellString(v)
		if s == "" {
			continue
		}
		keys[i] = c.Clean(s)
	}
	return keys
}

// cellString renders a cell used as a label or project name.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return civil.DateOf(x).String()
	default:
		return fmt.Sprint(x)
	}
}

// normalise narrows timestamps to calendar dates.
func normalise(v any) any {
	if t, ok := v.(time.Time); ok {
		return civil.DateOf(t)
	}
	return v
}
