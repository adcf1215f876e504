// Package file implements a flat-file JSON order store.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"foodorders/pkg/order"
)

// Store persists orders as a single JSON array on disk. Every operation
// reads or rewrites the whole document; a mutex serializes access so
// concurrent appends cannot lose each other's writes.
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates a store bound to the given file path. The file must already
// exist and contain a JSON array.
func New(path string) *Store {
	return &Store{path: path}
}

// LoadAll reads and parses the entire document.
func (s *Store) LoadAll(ctx context.Context) ([]order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// SaveAll overwrites the document with the given orders.
func (s *Store) SaveAll(ctx context.Context, orders []order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(orders)
}

// Append adds one order to the end of the document.
func (s *Store) Append(ctx context.Context, o order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders, err := s.load()
	if err != nil {
		return err
	}
	return s.save(append(orders, o))
}

// Clear replaces the document with an empty array.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(nil)
}

func (s *Store) load() ([]order.Order, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	var orders []order.Order
	if err := json.Unmarshal(b, &orders); err != nil {
		return nil, fmt.Errorf("parse orders: %w", err)
	}
	return orders, nil
}

func (s *Store) save(orders []order.Order) error {
	if orders == nil {
		orders = []order.Order{}
	}
	b, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write orders: %w", err)
	}
	return nil
}
