package inventory

import "satchel/internal/item"

// Outcome reports what TransferBetweenSlots did. OutcomeNone covers every
// normal refusal: empty source, same slot, full destination.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeMoved
	OutcomeMerged
	OutcomeSwapped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeMerged:
		return "merged"
	case OutcomeSwapped:
		return "swapped"
	}
	return "none"
}

// AddToGrid places amount units of def into g. Stackable items first top up
// existing non-full stacks left to right, then whatever remains fills empty
// slots left to right. Placed units stay placed when the tail overflows:
// added is true only if everything fit, and leftover is what did not.
func AddToGrid(g *Grid, def item.Definition, amount int) (added bool, leftover int) {
	return AddToGrids(def, amount, g)
}

// AddToGrids is AddToGrid over several grids treated as one: the top-up pass
// runs across all of them in order before any empty slot is used.
func AddToGrids(def item.Definition, amount int, grids ...*Grid) (added bool, leftover int) {
	return AddWornToGrids(def, amount, def.Durability, grids...)
}

// AddWornToGrids is AddToGrids for units that have already been used: stacks
// it creates start at durability instead of the definition's.
func AddWornToGrids(def item.Definition, amount int, durability float64, grids ...*Grid) (added bool, leftover int) {
	if amount <= 0 {
		return false, 0
	}
	left := place(def, amount, durability, grids)
	return left == 0, left
}

func place(def item.Definition, amount int, durability float64, grids []*Grid) int {
	if def.Stackable {
		for _, g := range grids {
			for g != nil && amount > 0 {
				i, ok := g.FindStack(def.ID, true)
				if !ok {
					break
				}
				s := g.slots[i]
				n := min(s.Space(), amount)
				s.Quantity += n
				g.set(i, s)
				amount -= n
			}
		}
	}
	limit := def.Limit()
	for _, g := range grids {
		for g != nil && amount > 0 {
			i, ok := g.FirstEmpty()
			if !ok {
				break
			}
			n := min(amount, limit)
			g.set(i, Stack{Def: def, Quantity: n, Durability: durability})
			amount -= n
		}
	}
	return amount
}

// RemoveFromSlot takes up to amount units out of a slot and returns how many
// were removed. Empty slots and bad indices remove nothing.
func RemoveFromSlot(g *Grid, index, amount int) int {
	if amount <= 0 || !g.Valid(index) {
		return 0
	}
	s := g.slots[index]
	if s.Empty() {
		return 0
	}
	n := min(amount, s.Quantity)
	s.Quantity -= n
	g.set(index, s)
	return n
}

// TransferBetweenSlots is the drag-and-drop primitive, directional from
// source to destination:
//
//   - empty destination: the whole source stack moves;
//   - same stackable item: merge up to the stack limit, the source keeps the
//     remainder;
//   - anything else: the two stacks swap completely.
//
// Only indices outside either grid produce an error.
func TransferBetweenSlots(src *Grid, srcIndex int, dst *Grid, dstIndex int) (Outcome, error) {
	if !src.Valid(srcIndex) {
		return OutcomeNone, src.rangeErr(srcIndex)
	}
	if !dst.Valid(dstIndex) {
		return OutcomeNone, dst.rangeErr(dstIndex)
	}
	from := src.slots[srcIndex]
	if from.Empty() || (src == dst && srcIndex == dstIndex) {
		return OutcomeNone, nil
	}
	to := dst.slots[dstIndex]

	switch {
	case to.Empty():
		dst.set(dstIndex, from)
		src.set(srcIndex, Stack{})
		return OutcomeMoved, nil

	case to.Def.ID == from.Def.ID && to.Def.Stackable:
		if to.Full() {
			return OutcomeNone, nil
		}
		limit := to.Def.Limit()
		total := from.Quantity + to.Quantity
		if total <= limit {
			to.Quantity = total
			dst.set(dstIndex, to)
			src.set(srcIndex, Stack{})
		} else {
			to.Quantity = limit
			from.Quantity = total - limit
			dst.set(dstIndex, to)
			src.set(srcIndex, from)
		}
		return OutcomeMerged, nil
	}

	src.set(srcIndex, to)
	dst.set(dstIndex, from)
	return OutcomeSwapped, nil
}

// TakeOne moves a single unit from a slot onto the cursor. It refuses when the
// slot is empty, the cursor holds a different item, or the cursor is already
// at the item's stack limit.
func TakeOne(g *Grid, index int, c *Cursor) bool {
	if !g.Valid(index) {
		return false
	}
	s := g.slots[index]
	if s.Empty() {
		return false
	}
	if !c.Empty() {
		if c.def.ID != s.Def.ID || c.qty >= c.def.Limit() {
			return false
		}
	}
	s.Quantity--
	g.set(index, s)
	if c.Empty() {
		c.hold(s.Def, s.Durability, g, index)
	} else {
		c.add(1)
	}
	return true
}

// PutOne moves a single unit from the cursor into a slot. It refuses when the
// cursor is empty, or the slot holds a different item or a full stack.
func PutOne(g *Grid, index int, c *Cursor) bool {
	if c.Empty() || !g.Valid(index) {
		return false
	}
	s := g.slots[index]
	switch {
	case s.Empty():
		g.set(index, Stack{Def: c.def, Quantity: 1, Durability: c.durability})
	case s.Def.ID == c.def.ID && !s.Full():
		s.Quantity++
		g.set(index, s)
	default:
		return false
	}
	c.add(-1)
	return true
}

// ReturnCursor cancels a click-transfer: the held units go back to the slot
// they came from, then anywhere else in that grid. The cursor is always
// cleared; the units that found no room are returned so the caller can drop
// them into the world.
func ReturnCursor(c *Cursor) (leftover int) {
	if c.Empty() {
		return 0
	}
	def, left, durability := c.def, c.qty, c.durability
	g, index, ok := c.Origin()
	c.clear()
	if !ok {
		return left
	}

	if g.Valid(index) {
		s := g.slots[index]
		switch {
		case s.Empty():
			n := min(left, def.Limit())
			g.set(index, Stack{Def: def, Quantity: n, Durability: durability})
			left -= n
		case s.Def.ID == def.ID && !s.Full():
			n := min(left, s.Space())
			s.Quantity += n
			g.set(index, s)
			left -= n
		}
	}
	if left > 0 {
		left = place(def, left, durability, []*Grid{g})
	}
	return left
}

// Wear takes cost off the durability of a degradable stack. When durability
// reaches zero one unit breaks and is removed; any units left behind start
// fresh. ok is false for empty slots and items that do not degrade.
func Wear(g *Grid, index int, cost float64) (broke, ok bool) {
	if !g.Valid(index) {
		return false, false
	}
	s := g.slots[index]
	if s.Empty() || !s.Def.Degradable() {
		return false, false
	}
	s.Durability -= cost
	if s.Durability <= 0 {
		s.Quantity--
		s.Durability = s.Def.Durability
		g.set(index, s)
		return true, true
	}
	g.set(index, s)
	return false, true
}
