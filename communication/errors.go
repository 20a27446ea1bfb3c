package communication

import "errors"

var (
	ErrInvalidState = errors.New("invalid state")
	ErrMissingField = errors.New("missing field")
)
