// Package assets holds the built-in item catalog and flavor text.
package assets

import "satchel/internal/item"

const (
	GlyphWood    = "🪵"
	GlyphStone   = "🪨"
	GlyphIron    = "🔩"
	GlyphApple   = "🍎"
	GlyphBread   = "🍞"
	GlyphPickaxe = "⛏"
	GlyphAxe     = "🪓"
	GlyphSword   = "🗡"
	GlyphPlank   = "🟫"
	GlyphTorch   = "🔦"
	GlyphRope    = "🪢"
)

// items is the default catalog, in display order.
var items = []item.Definition{
	{ID: "wood", Name: "Wood", Glyph: GlyphWood, Category: item.CategoryMaterial, MaxStack: 64, Stackable: true, Weight: 0.5,
		Description: "A rough log. Burns well."},
	{ID: "stone", Name: "Stone", Glyph: GlyphStone, Category: item.CategoryMaterial, MaxStack: 64, Stackable: true, Weight: 1,
		Description: "Grey and heavy."},
	{ID: "iron", Name: "Iron", Glyph: GlyphIron, Category: item.CategoryMaterial, MaxStack: 32, Stackable: true, Weight: 2,
		Description: "Smelted iron, ready for the anvil."},
	{ID: "rope", Name: "Rope", Glyph: GlyphRope, Category: item.CategoryMaterial, MaxStack: 16, Stackable: true, Weight: 0.3,
		Description: "Ten meters of braided hemp."},
	{ID: "apple", Name: "Apple", Glyph: GlyphApple, Category: item.CategoryConsumable, MaxStack: 16, Stackable: true, Weight: 0.1,
		UseEffect: "heal 4", Description: "Crisp and sweet."},
	{ID: "bread", Name: "Bread", Glyph: GlyphBread, Category: item.CategoryConsumable, MaxStack: 8, Stackable: true, Weight: 0.2,
		UseEffect: "feed 10", Description: "Still warm."},
	{ID: "pickaxe", Name: "Pickaxe", Glyph: GlyphPickaxe, Category: item.CategoryTool, MaxStack: 1, Durability: 100, Weight: 3, Damage: 2,
		Description: "Breaks stone, eventually itself."},
	{ID: "axe", Name: "Axe", Glyph: GlyphAxe, Category: item.CategoryTool, MaxStack: 1, Durability: 80, Weight: 2.5, Damage: 3,
		Description: "For trees and the occasional door."},
	{ID: "sword", Name: "Sword", Glyph: GlyphSword, Category: item.CategoryWeapon, MaxStack: 1, Durability: 60, Weight: 2, Damage: 6,
		Description: "Sharp on both edges."},
	{ID: "plank", Name: "Plank", Glyph: GlyphPlank, Category: item.CategoryBuildingBlock, MaxStack: 64, Stackable: true, Weight: 0.4,
		Description: "Sawn and squared."},
	{ID: "torch", Name: "Torch", Glyph: GlyphTorch, Category: item.CategoryBuildingBlock, MaxStack: 32, Stackable: true, Weight: 0.2,
		Description: "Keeps the dark at arm's length."},
}

// DefaultCatalog returns a fresh catalog of the built-in items.
func DefaultCatalog() *item.Catalog {
	return item.MustCatalog(items...)
}

// Grant is an amount of one item handed to a new sandbox.
type Grant struct {
	ID  item.ID
	Qty int
}

// StartingKit is what every new sandbox begins with.
var StartingKit = []Grant{
	{ID: "pickaxe", Qty: 1},
	{ID: "sword", Qty: 1},
	{ID: "apple", Qty: 5},
	{ID: "wood", Qty: 100},
	{ID: "torch", Qty: 12},
	{ID: "stone", Qty: 30},
}

// GroundItems are scattered around the sandbox at start so there is
// something to pick up.
var GroundItems = []Grant{
	{ID: "iron", Qty: 7},
	{ID: "bread", Qty: 3},
	{ID: "plank", Qty: 40},
	{ID: "axe", Qty: 1},
	{ID: "rope", Qty: 2},
}
