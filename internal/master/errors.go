package master

import "errors"

var (
	// ErrSourceNotFound is returned when the master path does not exist.
	ErrSourceNotFound = errors.New("master source not found")
	// ErrEmptySheet is returned when the sheet has no header row or no
	// project columns.
	ErrEmptySheet = errors.New("master sheet has no header row or project columns")
)
