package absence

import "errors"

var (
	ErrAbsenceNotFound = errors.New("absence request not found")
	ErrAlreadyDecided  = errors.New("absence request has already been approved or declined")
)
