package attendance

import "errors"

var (
	ErrAlreadyBadgedIn = errors.New("employee already has an open session")
	ErrNotBadgedIn     = errors.New("employee has no open session")
	ErrRecordNotFound  = errors.New("clock record not found")
)
