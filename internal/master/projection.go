package master

import "datamaps/internal/temporal"

// Projection is the per-project data read from a master, tagged with the
// period it reports on.
type Projection struct {
	// Quarter is the financial quarter the data belongs to.
	Quarter temporal.Quarter
	// Month is set when the projection was requested for a calendar month.
	Month *temporal.Month
	// Year is the year supplied by the caller.
	Year int
	// Source names the workbook the data came from.
	Source string
	// Sheet is the name of the projected sheet.
	Sheet string

	projects map[string]*Fields
	names    []string
}

// Names returns the project names in column order.
func (p *Projection) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Len returns the number of projects.
func (p *Projection) Len() int { return len(p.names) }

// Project returns the fields of the named project.
func (p *Projection) Project(name string) (*Fields, bool) {
	f, ok := p.projects[name]
	return f, ok
}

// Value returns a single field of a project.
func (p *Projection) Value(project, field string) (any, bool) {
	f, ok := p.projects[project]
	if !ok {
		return nil, false
	}
	return f.Get(field)
}

// Period returns the period the projection is tagged with.
func (p *Projection) Period() temporal.Period {
	return temporal.Period{Quarter: p.Quarter, Month: p.Month, Year: p.Year}
}
