package master

import (
	"errors"
	"fmt"

	"datamaps/internal/workbook"
)

// Source supplies the workbook to project, either by path or as an open
// handle.
type Source interface {
	open() (wb *workbook.Workbook, owned bool, err error)
	fmt.Stringer
}

type pathSource string

// Path returns a Source that opens the workbook at path and closes it once
// the projection is built.
func Path(path string) Source { return pathSource(path) }

func (p pathSource) open() (*workbook.Workbook, bool, error) {
	wb, err := workbook.Open(string(p))
	if err != nil {
		if errors.Is(err, workbook.ErrNotFound) {
			return nil, false, fmt.Errorf("%w: %s", ErrSourceNotFound, string(p))
		}
		return nil, false, err
	}
	return wb, true, nil
}

func (p pathSource) String() string { return string(p) }

type openedSource struct {
	wb *workbook.Workbook
}

// Opened returns a Source over an already open workbook. The caller keeps
// ownership and must close it.
func Opened(wb *workbook.Workbook) Source { return openedSource{wb: wb} }

func (o openedSource) open() (*workbook.Workbook, bool, error) {
	if o.wb == nil {
		return nil, false, fmt.Errorf("%w: nil workbook", ErrSourceNotFound)
	}
	return o.wb, false, nil
}

func (o openedSource) String() string {
	if o.wb == nil || o.wb.Path() == "" {
		return "<open workbook>"
	}
	return o.wb.Path()
}
