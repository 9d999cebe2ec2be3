package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound    = errors.New("order not found")
	ErrMalformedID = errors.New("invalid order ID format")
)

type FieldError struct {
	// Field is a dotted path into the request body, i.e. "items.0.price".
	Field   string
	Message string
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return "validation failed: " + strings.Join(parts, ", ")
}
