package order

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// Order represents a customer purchase order.
type Order struct {
	ID       string            `json:"id"`
	Items    []json.RawMessage `json:"items"`
	Customer Customer          `json:"customer"`
}

// Customer holds the contact details submitted with an order.
type Customer struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Street     string `json:"street"`
	PostalCode string `json:"postal-code"`
	City       string `json:"city"`
}

// Store defines whole-document persistence for orders.
type Store interface {
	LoadAll(ctx context.Context) ([]Order, error)
	SaveAll(ctx context.Context, orders []Order) error
	Append(ctx context.Context, o Order) error
	Clear(ctx context.Context) error
}

// Validation errors. Their text doubles as the client-facing response
// message, so the wording is fixed.
var (
	ErrMissingItems    = errors.New("Missing data.")
	ErrMissingCustomer = errors.New("Missing data: Email, name, street, postal code, or city is missing.")
)

// Validate reports whether a submitted order may be persisted. Checks run
// in a fixed sequence and short-circuit on the first failure: items first,
// then the five customer fields.
func (o *Order) Validate() error {
	if o == nil || len(o.Items) == 0 {
		return ErrMissingItems
	}
	c := o.Customer
	if !strings.Contains(c.Email, "@") ||
		strings.TrimSpace(c.Name) == "" ||
		strings.TrimSpace(c.Street) == "" ||
		strings.TrimSpace(c.PostalCode) == "" ||
		strings.TrimSpace(c.City) == "" {
		return ErrMissingCustomer
	}
	return nil
}
