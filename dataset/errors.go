package dataset

import "errors"

var (
	ErrUnknownCity      = errors.New("unknown city")
	ErrMissingColumn    = errors.New("missing required column")
	ErrEmptyFile        = errors.New("file has no header")
	ErrInvalidTripData  = errors.New("invalid trip data")
	ErrInvalidDate      = errors.New("invalid start time")
	ErrInvalidDuration  = errors.New("invalid trip duration")
	ErrInvalidBirthYear = errors.New("invalid birth year")
)
