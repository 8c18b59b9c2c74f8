// Package item holds the immutable item catalog: one Definition per item kind,
// shared by value across every stack that references it.
package item

import (
	"errors"
	"fmt"
	"strings"
)

// ID is the stable catalog key of an item kind, e.g. "wood".
type ID string

// Category drives what using an item does.
type Category uint8

const (
	CategoryMaterial Category = iota
	CategoryTool
	CategoryWeapon
	CategoryConsumable
	CategoryBuildingBlock
)

var categoryNames = [...]string{
	CategoryMaterial:      "material",
	CategoryTool:          "tool",
	CategoryWeapon:        "weapon",
	CategoryConsumable:    "consumable",
	CategoryBuildingBlock: "building_block",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// MarshalText encodes the category by name so catalog files stay readable.
func (c Category) MarshalText() ([]byte, error) {
	if int(c) >= len(categoryNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, uint8(c))
	}
	return []byte(categoryNames[c]), nil
}

// UnmarshalText accepts the names produced by MarshalText, case-insensitively.
func (c *Category) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range categoryNames {
		if n == name {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

var (
	ErrMissingID          = errors.New("item: definition missing id")
	ErrInvalidMaxStack    = errors.New("item: max stack must be at least 1")
	ErrNegativeDurability = errors.New("item: durability must not be negative")
	ErrUnknownCategory    = errors.New("item: unknown category")
	ErrUnknownItem        = errors.New("item: unknown item")
	ErrDuplicateItem      = errors.New("item: duplicate item id")
)

// Definition is one catalog entry. Values are never mutated after the catalog
// is built.
type Definition struct {
	ID          ID       `json:"id"`
	Name        string   `json:"name"`
	Glyph       string   `json:"glyph,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category"`
	MaxStack    int      `json:"max_stack"`
	Stackable   bool     `json:"stackable"`

	// Durability is the starting durability of a fresh unit; 0 means the item
	// does not wear out.
	Durability float64 `json:"durability,omitempty"`

	Weight    float64 `json:"weight,omitempty"`
	Damage    int     `json:"damage,omitempty"`
	UseEffect string  `json:"use_effect,omitempty"`
}

// IsZero reports whether d is the zero Definition.
func (d Definition) IsZero() bool { return d.ID == "" }

// Limit is the largest quantity one slot may hold.
func (d Definition) Limit() int {
	if !d.Stackable {
		return 1
	}
	return d.MaxStack
}

// Degradable reports whether using the item wears it down.
func (d Definition) Degradable() bool { return d.Durability > 0 }

// Validate checks the invariants every catalog entry must satisfy.
func (d Definition) Validate() error {
	if d.ID == "" {
		return ErrMissingID
	}
	if d.MaxStack < 1 {
		return fmt.Errorf("%w: %s has %d", ErrInvalidMaxStack, d.ID, d.MaxStack)
	}
	if d.Durability < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeDurability, d.ID)
	}
	if int(d.Category) >= len(categoryNames) {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, d.ID)
	}
	return nil
}
