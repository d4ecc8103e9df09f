package factory

import "errors"

var (
	// ErrInvalidArgument repetition count is negative
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownVariant no family is declared for the variant
	ErrUnknownVariant = errors.New("unknown variant")
)
