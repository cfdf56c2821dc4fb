package domain

import "time"

// Report represents a rendered regional statistics report
type Report struct {
	RunID       string
	Title       string
	GeneratedAt time.Time
	Years       YearRange
	Weights     Weights
	Weighting   string
	Sections    []ReportSection
}

// ReportSection represents the totals of one region
type ReportSection struct {
	Title   string
	Details []ReportDetail
}

// ReportDetail represents one statistic total within a section
type ReportDetail struct {
	Name        string
	Value       float64
	Weight      int
	Description string
}
