package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownCollection = errors.New("unknown collection")
	ErrEmptyName         = errors.New("name is required")
	ErrEmptyLocation     = errors.New("location is required")
	ErrEmptyDate         = errors.New("date is required")
	ErrInvalidDate       = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidStatus     = errors.New("invalid status")
)
