package report

import "errors"

var (
	// ErrConfiguration is returned for an unusable year range or region selection.
	ErrConfiguration = errors.New("invalid report configuration")
	// ErrInvalidWeights is returned when the weight percentages do not add up to 100.
	ErrInvalidWeights = errors.New("invalid report weights")
	// ErrEmptyResult is returned when no country belongs to the selected regions.
	ErrEmptyResult = errors.New("no countries matched the selected regions")
)
