package inventory

import (
	"errors"
	"fmt"

	"satchel/internal/item"
)

// GridID names a grid in change notifications.
type GridID string

const (
	GridMain   GridID = "main"
	GridHotbar GridID = "hotbar"
)

// ErrIndexOutOfRange is returned for slot indices outside [0, Len()).
var ErrIndexOutOfRange = errors.New("inventory: slot index out of range")

// Grid is an ordered, fixed-size array of slots. It exclusively owns the
// stacks it stores; callers only ever see copies.
type Grid struct {
	id       GridID
	slots    []Stack
	onChange func(GridID, int, Stack)
}

// NewGrid returns a grid of size empty slots.
func NewGrid(id GridID, size int) *Grid {
	return &Grid{id: id, slots: make([]Stack, max(size, 0))}
}

// ID returns the grid's identifier.
func (g *Grid) ID() GridID { return g.id }

// Len returns the number of slots.
func (g *Grid) Len() int { return len(g.slots) }

// OnChange registers fn to be called after every slot write.
// Passing nil removes the hook.
func (g *Grid) OnChange(fn func(GridID, int, Stack)) { g.onChange = fn }

// Valid reports whether index addresses a slot.
func (g *Grid) Valid(index int) bool { return index >= 0 && index < len(g.slots) }

func (g *Grid) rangeErr(index int) error {
	return fmt.Errorf("%w: %s[%d] (len %d)", ErrIndexOutOfRange, g.id, index, len(g.slots))
}

// Get returns a copy of the stack at index; the zero Stack means empty.
func (g *Grid) Get(index int) (Stack, error) {
	if !g.Valid(index) {
		return Stack{}, g.rangeErr(index)
	}
	return g.slots[index], nil
}

// set replaces a slot. A non-positive quantity stores the empty slot so the
// invariant holds no matter what the caller computed.
func (g *Grid) set(index int, s Stack) {
	if s.Quantity <= 0 {
		s = Stack{}
	}
	g.slots[index] = s
	if g.onChange != nil {
		g.onChange(g.id, index, s)
	}
}

// FirstEmpty returns the lowest empty slot index.
func (g *Grid) FirstEmpty() (int, bool) {
	for i, s := range g.slots {
		if s.Empty() {
			return i, true
		}
	}
	return -1, false
}

// FindStack returns the first slot holding id, skipping full stacks when
// notFull is set. Order is significant: the lowest index wins.
func (g *Grid) FindStack(id item.ID, notFull bool) (int, bool) {
	for i, s := range g.slots {
		if !s.Holds(id) {
			continue
		}
		if notFull && s.Full() {
			continue
		}
		return i, true
	}
	return -1, false
}

// Count returns the total quantity of id across all slots.
func (g *Grid) Count(id item.ID) int {
	n := 0
	for _, s := range g.slots {
		if s.Holds(id) {
			n += s.Quantity
		}
	}
	return n
}

// Snapshot returns a copy of every slot.
func (g *Grid) Snapshot() []Stack {
	out := make([]Stack, len(g.slots))
	copy(out, g.slots)
	return out
}

// Verify checks the slot invariant: every occupied slot holds between 1 and
// Def.Limit() units.
func (g *Grid) Verify() error {
	for i, s := range g.slots {
		if s == (Stack{}) {
			continue
		}
		if s.Quantity <= 0 {
			return fmt.Errorf("%s[%d]: non-empty slot with quantity %d", g.id, i, s.Quantity)
		}
		if s.Quantity > s.Def.Limit() {
			return fmt.Errorf("%s[%d]: %s quantity %d over limit %d", g.id, i, s.Def.ID, s.Quantity, s.Def.Limit())
		}
	}
	return nil
}
