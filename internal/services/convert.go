package services

import (
	"datamaps/internal/master"
	"datamaps/internal/temporal"
	"datamaps/pkg/contracts/domain"
)

// ToDomain converts a projection into its API contract, keeping project
// and field order.
func ToDomain(p *master.Projection) domain.Projection {
	out := domain.Projection{
		Source:   p.Source,
		Sheet:    p.Sheet,
		Period:   PeriodToDomain(p.Period()),
		Projects: make([]domain.Project, 0, p.Len()),
	}

	for _, name := range p.Names() {
		fields, _ := p.Project(name)
		project := domain.Project{Name: name, Fields: make([]domain.Field, 0, fields.Len())}
		for _, key := range fields.Keys() {
			v, _ := fields.Get(key)
			project.Fields = append(project.Fields, domain.Field{Key: key, Value: v})
		}
		out.Projects = append(out.Projects, project)
	}
	return out
}

// PeriodToDomain converts a resolved period.
func PeriodToDomain(p temporal.Period) domain.Period {
	out := domain.Period{
		Quarter:      p.Quarter.Number(),
		QuarterLabel: p.Quarter.String(),
		QuarterYear:  p.Quarter.Year(),
		Start:        p.Quarter.StartDate(),
		End:          p.Quarter.EndDate(),
		Year:         p.Year,
	}
	if p.Month != nil {
		out.Month = p.Month.Number()
		out.MonthName = p.Month.Name()
	}
	return out
}
