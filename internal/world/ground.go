// Package world holds the items lying on the ground around the player:
// everything dropped out of the inventory and everything that can be picked
// back up.
package world

import "satchel/internal/item"

// EntityID uniquely identifies a ground pile.
type EntityID uint64

// NilEntity is the zero value; no valid pile has this ID.
const NilEntity EntityID = 0

// Position is a cell on the ground.
type Position struct {
	X, Y int
}

// Drop is a pile of one item kind on the ground.
type Drop struct {
	ID       EntityID
	Def      item.Definition
	Quantity int
	At       Position

	// Durability of a worn tool; the definition's value for fresh items.
	Durability float64
}

// Ground is the registry of piles. It is not safe for concurrent use; each
// sandbox owns one.
type Ground struct {
	nextID EntityID
	drops  map[EntityID]Drop
	order  []EntityID

	onChange func()
}

// NewGround creates an empty ground.
func NewGround() *Ground {
	return &Ground{
		nextID: 1,
		drops:  make(map[EntityID]Drop),
	}
}

// OnChange registers fn to be called after piles are added, shrunk or
// removed.
func (g *Ground) OnChange(fn func()) { g.onChange = fn }

// SpawnWorldItem places qty fresh units of def at the given position and
// returns the new pile's ID. Non-positive quantities spawn nothing.
func (g *Ground) SpawnWorldItem(def item.Definition, qty int, at Position) EntityID {
	return g.SpawnWorn(def, qty, def.Durability, at)
}

// SpawnWorn is SpawnWorldItem for units that keep a used durability.
func (g *Ground) SpawnWorn(def item.Definition, qty int, durability float64, at Position) EntityID {
	if qty <= 0 {
		return NilEntity
	}
	id := g.nextID
	g.nextID++
	g.drops[id] = Drop{ID: id, Def: def, Quantity: qty, At: at, Durability: durability}
	g.order = append(g.order, id)
	g.changed()
	return id
}

// Get returns the pile with the given ID.
func (g *Ground) Get(id EntityID) (Drop, bool) {
	d, ok := g.drops[id]
	return d, ok
}

// At returns the piles lying at pos in the order they were spawned.
func (g *Ground) At(pos Position) []Drop {
	var out []Drop
	for _, id := range g.order {
		if d := g.drops[id]; d.At == pos {
			out = append(out, d)
		}
	}
	return out
}

// All returns every pile in spawn order.
func (g *Ground) All() []Drop {
	out := make([]Drop, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.drops[id])
	}
	return out
}

// Len returns the number of piles.
func (g *Ground) Len() int { return len(g.order) }

// Take removes a pile from the ground and returns it.
func (g *Ground) Take(id EntityID) (Drop, bool) {
	d, ok := g.drops[id]
	if !ok {
		return Drop{}, false
	}
	delete(g.drops, id)
	for i, o := range g.order {
		if o == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	g.changed()
	return d, true
}

// Put sets the quantity left on a pile after a partial pickup. A quantity of
// zero or less removes the pile.
func (g *Ground) Put(id EntityID, qty int) bool {
	d, ok := g.drops[id]
	if !ok {
		return false
	}
	if qty <= 0 {
		g.Take(id)
		return true
	}
	d.Quantity = qty
	g.drops[id] = d
	g.changed()
	return true
}

func (g *Ground) changed() {
	if g.onChange != nil {
		g.onChange()
	}
}
