// Package domain holds the response contracts of the datamaps API and CLI.
package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// Period describes the reporting period of a projection.
type Period struct {
	Quarter      int        `json:"quarter"`
	QuarterLabel string     `json:"quarter_label"`
	QuarterYear  int        `json:"quarter_year"`
	Start        civil.Date `json:"start"`
	End          civil.Date `json:"end"`
	Month        int        `json:"month,omitempty"`
	MonthName    string     `json:"month_name,omitempty"`
	Year         int        `json:"year"`
}

// Field is one key/value pair of a project, in master row order.
type Field struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Project is one master column.
type Project struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Projection is a master workbook folded into projects.
type Projection struct {
	Source   string    `json:"source"`
	Sheet    string    `json:"sheet"`
	Period   Period    `json:"period"`
	Projects []Project `json:"projects"`
}

// BatchItem is the outcome for one workbook of a batch.
type BatchItem struct {
	File     string `json:"file"`
	Projects int    `json:"projects"`
	Error    string `json:"error,omitempty"`
}

// BatchResult summarises a batch projection.
type BatchResult struct {
	Period    Period      `json:"period"`
	Items     []BatchItem `json:"items"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
}

// Workbook describes a file available for projection.
type Workbook struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// InputFile reports whether one expected input file is present.
type InputFile struct {
	Role   string `json:"role"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// Health reports service status. Files lists the master, datamap and blank
// template; a missing file does not degrade the status.
type Health struct {
	Status   string      `json:"status"`
	Version  string      `json:"version"`
	InputDir string      `json:"input_dir"`
	Files    []InputFile `json:"files"`
	Time     time.Time   `json:"time"`
}
