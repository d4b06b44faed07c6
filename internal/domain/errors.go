package domain

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
)

var (
	ErrValidation = errors.New("validation error")
)

var (
	ErrInvalidCatalog = errors.New("invalid catalog")
)
