// Package handler is the HTTP surface of the order service.
//
// It binds and validates request bodies, calls port.OrderService,
// renders orders with string identifiers and maps domain errors to status codes:
// validation 422, malformed id 400, not found 404, anything else 500.
package handler
