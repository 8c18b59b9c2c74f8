package item

import (
	"encoding/json"
	"fmt"
	"io"
)

// Catalog is the read-only lookup of item definitions, built once at startup.
type Catalog struct {
	defs  map[ID]Definition
	order []ID
}

// NewCatalog validates and registers defs in order. Duplicate ids are rejected.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{defs: make(map[ID]Definition, len(defs))}
	for _, d := range defs {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.defs[d.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, d.ID)
		}
		c.defs[d.ID] = d
		c.order = append(c.order, d.ID)
	}
	return c, nil
}

// MustCatalog is NewCatalog for built-in tables; it panics on invalid input.
func MustCatalog(defs ...Definition) *Catalog {
	c, err := NewCatalog(defs...)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadCatalog reads a JSON array of definitions.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var defs []Definition
	if err := json.NewDecoder(r).Decode(&defs); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return NewCatalog(defs...)
}

// Get returns the definition for id.
func (c *Catalog) Get(id ID) (Definition, bool) {
	d, ok := c.defs[id]
	return d, ok
}

// Lookup is Get with an error for callers that propagate it.
func (c *Catalog) Lookup(id ID) (Definition, error) {
	d, ok := c.defs[id]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	return d, nil
}

// All returns every definition in registration order.
func (c *Catalog) All() []Definition {
	out := make([]Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.defs[id])
	}
	return out
}

// Len returns the number of definitions.
func (c *Catalog) Len() int { return len(c.order) }
