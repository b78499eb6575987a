package leave

import "errors"

var (
	ErrInvalidYear = errors.New("invalid allocation year")
)
