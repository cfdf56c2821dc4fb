package domain

import "fmt"

type AveragingMode string

const (
	// AveragingSpan divides the in-range sum by End-Start, or by 1 when both are equal.
	AveragingSpan AveragingMode = "span"
	// AveragingObserved divides the in-range sum by the number of values found.
	AveragingObserved AveragingMode = "observed"
)

// Weights maps a statistic code to its percentage of the report.
type Weights map[string]int

// Total returns the sum of all percentages.
func (w Weights) Total() int {
	total := 0
	for _, pct := range w {
		total += pct
	}
	return total
}

// YearRange is an inclusive range of years.
type YearRange struct {
	Start int `json:"start" validate:"required"`
	End   int `json:"end" validate:"required,gtefield=Start"`
}

// Span returns the width of the range as used by the span averaging mode.
func (y YearRange) Span() int {
	return y.End - y.Start
}

// Contains reports whether year lies inside the range, bounds included.
func (y YearRange) Contains(year int) bool {
	return year >= y.Start && year <= y.End
}

func (y YearRange) String() string {
	return fmt.Sprintf("%d-%d", y.Start, y.End)
}

// ReportConfig is the immutable selection a report run is computed for.
type ReportConfig struct {
	Years     YearRange
	Weights   Weights       `validate:"required,min=1,dive,keys,required,endkeys,gte=0,lte=100"`
	Regions   []string      `validate:"required,min=1,dive,required"`
	Averaging AveragingMode `validate:"omitempty,oneof=span observed"`
}

// HasRegion reports whether code is part of the selected regions.
func (c ReportConfig) HasRegion(code string) bool {
	for _, r := range c.Regions {
		if r == code {
			return true
		}
	}
	return false
}

// Preset is a named report configuration stored in a presets file.
type Preset struct {
	Name      string
	Weighting string
	Config    ReportConfig
}

func (p Preset) String() string {
	return fmt.Sprintf("%s:%s", p.Name, p.Config.Years)
}
