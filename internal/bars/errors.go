package bars

import "errors"

var (
	// ErrInvalidRange indicates a random range whose minimum is not below its maximum.
	ErrInvalidRange = errors.New("bars: min value must be < the max value")

	// ErrInvalidCount indicates a bar count outside [0, MaxChildren].
	ErrInvalidCount = errors.New("bars: bar count out of range")
)
