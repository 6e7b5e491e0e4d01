package internal

import "errors"

var (
	ErrUnsupportedFormat     = errors.New("unsupported file format")
	ErrSchemaMismatch        = errors.New("schema mismatch")
	ErrInvalidNumericLiteral = errors.New("invalid numeric literal")
	ErrInvalidRegionCode     = errors.New("invalid region code")
	ErrColumnNotFound        = errors.New("column not found")
	ErrInvalidOption         = errors.New("invalid option")
)
