package memory

import (
	"context"
	"encoding/json"
	"testing"

	"foodorders/pkg/order"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := New()

	o := order.Order{ID: "1", Items: []json.RawMessage{json.RawMessage(`{"id":"m1"}`)}}
	if err := s.Append(ctx, o); err != nil {
		t.Fatalf("append: %v", err)
	}
	orders, err := s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "1" {
		t.Fatalf("unexpected orders: %+v", orders)
	}

	if err := s.SaveAll(ctx, []order.Order{{ID: "a"}, {ID: "b"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	orders, err = s.LoadAll(ctx)
	if err != nil || len(orders) != 2 {
		t.Fatalf("load after save: %v len=%d", err, len(orders))
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	orders, err = s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty store, got %d", len(orders))
	}
}

func TestLoadAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New()
	if err := s.Append(ctx, order.Order{ID: "1"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	orders, _ := s.LoadAll(ctx)
	orders[0].ID = "mutated"
	again, _ := s.LoadAll(ctx)
	if again[0].ID != "1" {
		t.Fatal("LoadAll must return a copy")
	}
}
