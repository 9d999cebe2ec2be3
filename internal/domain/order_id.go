package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderID is the store-native handle of an order: 12 bytes, rendered as 24 hex characters.
type OrderID = primitive.ObjectID

var NilOrderID = primitive.NilObjectID

func NewOrderID() OrderID {
	return primitive.NewObjectID()
}

func ParseOrderID(s string) (OrderID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return NilOrderID, fmt.Errorf("primitive.ObjectIDFromHex[%s]: %w", s, ErrMalformedID)
	}

	return id, nil
}
