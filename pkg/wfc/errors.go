package wfc

import "errors"

var (
	// ErrPatternSize reports a pattern dimension below 1 or larger than the sample.
	ErrPatternSize = errors.New("wfc: pattern size must be at least 1 and fit inside the sample")
	// ErrGridSize reports a zero or negative output grid dimension.
	ErrGridSize = errors.New("wfc: output grid dimensions must be positive")
	// ErrSampleData reports a pixel buffer that does not match the declared sample dimensions.
	ErrSampleData = errors.New("wfc: sample buffer does not match its dimensions")
)
