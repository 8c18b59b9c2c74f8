package inventory

import "satchel/internal/item"

// Held is the public view of what a cursor carries. The zero value means the
// cursor is empty.
type Held struct {
	Def        item.Definition
	Quantity   int
	Durability float64
}

// Empty reports whether nothing is held.
func (h Held) Empty() bool { return h.Quantity <= 0 }

// Cursor is the item in hand during a click-transfer session. It belongs to
// whichever controller runs the session; there is no shared instance.
type Cursor struct {
	def        item.Definition
	qty        int
	durability float64

	origin      *Grid
	originIndex int

	onChange func(Held)
}

// NewCursor returns an empty cursor.
func NewCursor() *Cursor { return &Cursor{originIndex: -1} }

// OnChange registers fn to be called whenever the held quantity changes.
func (c *Cursor) OnChange(fn func(Held)) { c.onChange = fn }

// Held returns what the cursor carries.
func (c *Cursor) Held() Held {
	if c.qty <= 0 || c.def.IsZero() {
		return Held{}
	}
	return Held{Def: c.def, Quantity: c.qty, Durability: c.durability}
}

// Empty reports whether the cursor holds nothing.
func (c *Cursor) Empty() bool { return c.qty <= 0 }

// Quantity returns the number of units held.
func (c *Cursor) Quantity() int { return c.qty }

// Def returns the held definition; zero when empty.
func (c *Cursor) Def() item.Definition { return c.def }

// Origin returns the slot the first held unit was taken from.
func (c *Cursor) Origin() (*Grid, int, bool) {
	if c.Empty() || c.origin == nil {
		return nil, -1, false
	}
	return c.origin, c.originIndex, true
}

func (c *Cursor) hold(def item.Definition, durability float64, from *Grid, index int) {
	c.def = def
	c.qty = 1
	c.durability = durability
	c.origin = from
	c.originIndex = index
	c.notify()
}

// add adjusts the held quantity by delta, clearing the cursor at zero.
func (c *Cursor) add(delta int) {
	c.qty += delta
	if c.qty <= 0 {
		c.clear()
		return
	}
	c.notify()
}

func (c *Cursor) clear() {
	c.def = item.Definition{}
	c.qty = 0
	c.durability = 0
	c.origin = nil
	c.originIndex = -1
	c.notify()
}

func (c *Cursor) notify() {
	if c.onChange != nil {
		c.onChange(c.Held())
	}
}
