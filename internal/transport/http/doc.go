// Package http implements the HTTP handlers of the datamaps service. Handlers
// stay thin: they parse and validate the request, call a service, and render
// the result or hand the error to the RFC 7807 error handler.
//
// # Routes
//
//	GET /api/v1/projections/{file}?quarter=Q&year=Y   project one master for a quarter
//	GET /api/v1/projections/{file}?month=M&year=Y     project one master for a calendar month
//	GET /api/v1/projections?quarter=Q&year=Y          project every workbook in the input directory
//	GET /api/v1/workbooks                             list projectable workbooks
//	GET /healthz                                      service health
//
// # Errors
//
// Invalid periods render as 400, unknown workbooks as 404 and masters without
// project data as 422. See errors.ErrorHandler for the full mapping.
package http
