package order

import (
	"encoding/json"
	"errors"
	"testing"
)

func validOrder() Order {
	return Order{
		Items: []json.RawMessage{json.RawMessage(`{"id":"m1","name":"Mac & Cheese","amount":2}`)},
		Customer: Customer{
			Email:      "a@b.com",
			Name:       "Ann",
			Street:     "Main St 1",
			PostalCode: "12345",
			City:       "Springfield",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Order)
		want   error
	}{
		{"valid", func(o *Order) {}, nil},
		{"nil items", func(o *Order) { o.Items = nil }, ErrMissingItems},
		{"empty items", func(o *Order) { o.Items = []json.RawMessage{} }, ErrMissingItems},
		{"missing email", func(o *Order) { o.Customer.Email = "" }, ErrMissingCustomer},
		{"email without at", func(o *Order) { o.Customer.Email = "a.b.com" }, ErrMissingCustomer},
		{"missing name", func(o *Order) { o.Customer.Name = "" }, ErrMissingCustomer},
		{"blank name", func(o *Order) { o.Customer.Name = "   " }, ErrMissingCustomer},
		{"blank street", func(o *Order) { o.Customer.Street = " " }, ErrMissingCustomer},
		{"blank postal code", func(o *Order) { o.Customer.PostalCode = "\t" }, ErrMissingCustomer},
		{"blank city", func(o *Order) { o.Customer.City = "" }, ErrMissingCustomer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOrder()
			tt.mutate(&o)
			if err := o.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateNil(t *testing.T) {
	var o *Order
	if err := o.Validate(); !errors.Is(err, ErrMissingItems) {
		t.Fatalf("Validate() = %v, want %v", err, ErrMissingItems)
	}
}

func TestValidateItemsBeforeCustomer(t *testing.T) {
	// Both checks fail; the items check must win.
	o := Order{}
	if err := o.Validate(); !errors.Is(err, ErrMissingItems) {
		t.Fatalf("Validate() = %v, want %v", err, ErrMissingItems)
	}
}
