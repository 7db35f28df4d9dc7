package timeofday

import "errors"

var (
	ErrInvalidFormat    = errors.New("invalid time of day format")
	ErrHourOutOfRange   = errors.New("hour must be between 0 and 23")
	ErrMinuteOutOfRange = errors.New("minute must be between 0 and 59")
)
