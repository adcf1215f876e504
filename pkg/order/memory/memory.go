// Package memory implements an in-memory order store.
package memory

import (
	"context"
	"sync"

	"foodorders/pkg/order"
)

// Store provides an in-memory implementation of order.Store. It keeps the
// same whole-document semantics as the file store and is used in tests and
// local development.
type Store struct {
	mu     sync.RWMutex
	orders []order.Order
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// LoadAll returns a copy of all stored orders.
func (s *Store) LoadAll(ctx context.Context) ([]order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]order.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

// SaveAll replaces the stored orders with a copy of the given sequence.
func (s *Store) SaveAll(ctx context.Context, orders []order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make([]order.Order, len(orders))
	copy(s.orders, orders)
	return nil
}

// Append adds one order to the end of the sequence.
func (s *Store) Append(ctx context.Context, o order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)
	return nil
}

// Clear removes all orders.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = nil
	return nil
}
