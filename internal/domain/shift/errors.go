package shift

import "errors"

var (
	ErrShiftNotFound = errors.New("shift not found")
	ErrShiftOverlap  = errors.New("employee already has a shift overlapping this time")
)
