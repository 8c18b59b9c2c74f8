// Package usage resolves what happens when the player uses or drops the item
// in the active hotbar slot.
package usage

import (
	"satchel/internal/inventory"
	"satchel/internal/item"
	"satchel/internal/world"
)

//go:generate go tool mockgen -destination=./mocks/usage_mock.go -package=mocks . EffectHandler,Spawner

// EffectHandler applies a consumable's effect. The effect itself is opaque to
// the inventory; the handler decides what UseEffect means.
type EffectHandler interface {
	Consume(def item.Definition)
}

// Spawner puts items into the world.
type Spawner interface {
	SpawnWorldItem(def item.Definition, qty int, at world.Position) world.EntityID
}

// WornSpawner is implemented by spawners that keep the durability of used
// tools. Plain spawners get fresh items.
type WornSpawner interface {
	SpawnWorn(def item.Definition, qty int, durability float64, at world.Position) world.EntityID
}

// Result reports what Use or Drop did.
type Result uint8

const (
	ResultNone Result = iota
	ResultConsumed
	ResultWorn
	ResultBroke
	ResultDropped
)

func (r Result) String() string {
	switch r {
	case ResultConsumed:
		return "consumed"
	case ResultWorn:
		return "worn"
	case ResultBroke:
		return "broke"
	case ResultDropped:
		return "dropped"
	}
	return "none"
}

// DefaultUseCost is the durability a tool or weapon loses per use.
const DefaultUseCost = 1.0

// Resolver applies use and drop to slots of the hotbar grid.
type Resolver struct {
	hotbar  *inventory.Grid
	effects EffectHandler
	spawner Spawner
	useCost float64
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithUseCost overrides DefaultUseCost. Non-positive costs are ignored.
func WithUseCost(cost float64) Option {
	return func(r *Resolver) {
		if cost > 0 {
			r.useCost = cost
		}
	}
}

// NewResolver returns a resolver over hotbar.
func NewResolver(hotbar *inventory.Grid, effects EffectHandler, spawner Spawner, opts ...Option) *Resolver {
	r := &Resolver{hotbar: hotbar, effects: effects, spawner: spawner, useCost: DefaultUseCost}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Use applies the item in hotbar slot index.
func (r *Resolver) Use(index int) Result {
	s, err := r.hotbar.Get(index)
	if err != nil || s.Empty() {
		return ResultNone
	}
	switch s.Def.Category {
	case item.CategoryConsumable:
		if r.effects != nil {
			r.effects.Consume(s.Def)
		}
		inventory.RemoveFromSlot(r.hotbar, index, 1)
		return ResultConsumed
	case item.CategoryTool, item.CategoryWeapon:
		broke, ok := inventory.Wear(r.hotbar, index, r.useCost)
		switch {
		case !ok:
			return ResultNone
		case broke:
			return ResultBroke
		}
		return ResultWorn
	}
	return ResultNone
}

// Drop removes one unit from hotbar slot index and spawns it at the given
// position. The selection is left alone even if the slot empties.
func (r *Resolver) Drop(index int, at world.Position) Result {
	s, err := r.hotbar.Get(index)
	if err != nil || s.Empty() {
		return ResultNone
	}
	if inventory.RemoveFromSlot(r.hotbar, index, 1) == 0 {
		return ResultNone
	}
	r.spawn(s, 1, at)
	return ResultDropped
}

// DropAll throws the whole stack in slot index of g into the world.
func (r *Resolver) DropAll(g *inventory.Grid, index int, at world.Position) Result {
	s, err := g.Get(index)
	if err != nil || s.Empty() {
		return ResultNone
	}
	n := inventory.RemoveFromSlot(g, index, s.Quantity)
	r.spawn(s, n, at)
	return ResultDropped
}

func (r *Resolver) spawn(s inventory.Stack, qty int, at world.Position) {
	if r.spawner == nil {
		return
	}
	if ws, ok := r.spawner.(WornSpawner); ok && s.Durability != s.Def.Durability {
		ws.SpawnWorn(s.Def, qty, s.Durability, at)
		return
	}
	r.spawner.SpawnWorldItem(s.Def, qty, at)
}
