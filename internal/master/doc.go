// Package master projects a master spreadsheet into per-project field data
// tagged with a reporting period.
//
// A master holds one project per column. Column A carries the field labels,
// row 1 carries the project names:
//
//	                        | Chutney Bridge.xlsm | Sea Wall.xlsm
//	Project/Programme Name  | Chutney Bridge Ltd  | Sea Wall Ltd
//	Start Date              | 2019-04-01          | 2020-01-15
//
// Projecting it gives
//
//	p, err := master.FromQuarter(ctx, master.Path("master.xlsx"), 1, 2019)
//	v, _ := p.Value("Chutney Bridge.xlsm", "Project/Programme Name")
//	// v == "Chutney Bridge Ltd", p.Quarter.EndDate() == 2019-06-30
//
// Field labels pass through a cleanser.Cleanser before they become keys.
// Dates are narrowed to civil.Date. Columns without a project name are
// dropped. The projection is a snapshot and holds no reference to the
// workbook it came from.
package master
