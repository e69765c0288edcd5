// Package api contains the request contracts of the datamaps HTTP API.
// Version v1 represents the current stable API version.
package api

// ProjectionRequest asks for one master workbook projected for a period.
// Exactly one of Quarter and Month is set.
type ProjectionRequest struct {
	File    string `json:"file" validate:"required,workbook"`
	Quarter int    `json:"quarter" validate:"required_without=Month,excluded_with=Month,min=0,max=4"`
	Month   int    `json:"month" validate:"required_without=Quarter,excluded_with=Quarter,min=0,max=12"`
	Year    int    `json:"year" validate:"required"`
}

// BatchRequest asks for every workbook in the input directory projected for
// a quarter.
type BatchRequest struct {
	Quarter int `json:"quarter" validate:"required,min=1,max=4"`
	Year    int `json:"year" validate:"required"`
}
