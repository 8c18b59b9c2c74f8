// Package inventory is the inventory state machine: fixed-size grids of item
// stacks, the cursor that carries items between them, and the transfer
// functions that are the only code allowed to mutate either.
package inventory

import "satchel/internal/item"

// Stack is a quantity of one item kind sitting in a slot.
// The zero value is the empty slot.
type Stack struct {
	Def      item.Definition
	Quantity int

	// Durability left on the stack; only meaningful when Def.Degradable().
	Durability float64
}

// NewStack returns qty fresh units of def.
func NewStack(def item.Definition, qty int) Stack {
	return Stack{Def: def, Quantity: qty, Durability: def.Durability}
}

// Empty reports whether the slot holding s is empty.
func (s Stack) Empty() bool { return s.Quantity <= 0 }

// Holds reports whether s is a non-empty stack of id.
func (s Stack) Holds(id item.ID) bool { return !s.Empty() && s.Def.ID == id }

// Full reports whether s cannot take another unit.
func (s Stack) Full() bool { return !s.Empty() && s.Quantity >= s.Def.Limit() }

// Space is how many more units s can take.
func (s Stack) Space() int {
	if s.Empty() {
		return 0
	}
	return max(s.Def.Limit()-s.Quantity, 0)
}
