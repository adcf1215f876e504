// Package meal provides read-only access to the meal catalog file.
package meal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Meal describes one catalog entry. It exists to document the record
// shape for the swagger annotations; List deliberately does not decode
// into it, so extra fields in the catalog file (such as an image path)
// pass through to clients untouched.
type Meal struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// Catalog reads meals from a JSON array file. The file is never written.
type Catalog struct {
	path string
}

// NewCatalog creates a catalog bound to the given file path.
func NewCatalog(path string) *Catalog {
	return &Catalog{path: path}
}

// List returns every catalog record verbatim. Records are decoded only far
// enough to confirm the document is a JSON array; their contents are not
// reshaped, so responses match the backing file.
func (c *Catalog) List(ctx context.Context) ([]json.RawMessage, error) {
	b, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read meals: %w", err)
	}
	var meals []json.RawMessage
	if err := json.Unmarshal(b, &meals); err != nil {
		return nil, fmt.Errorf("parse meals: %w", err)
	}
	return meals, nil
}
