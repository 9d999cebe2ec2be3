package domain

import (
	"time"
)

type Order struct {
	ID         OrderID
	UserID     string
	Items      []Item
	TotalPrice float64
	Status     OrderStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item is embedded in its Order and has no identity of its own.
type Item struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

// Validate checks the fields that a zero value cannot stand in for.
// UserID is opaque: an empty string is a valid value.
func (o Order) Validate() error {
	var fields []FieldError

	if o.Items == nil {
		fields = append(fields, FieldError{Field: "items", Message: "field required"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	return nil
}
