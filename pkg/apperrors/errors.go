package apperrors

import "errors"

var (
	ErrEmptySeed     = errors.New("seed table has no data rows")
	ErrMissingColumn = errors.New("required column missing from seed")
	ErrBadIdentifier = errors.New("identifier column is not numeric")
	ErrInvalidConfig = errors.New("invalid configuration")
)
