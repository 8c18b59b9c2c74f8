package inventory

import (
	"testing"

	"pgregory.net/rapid"

	"satchel/internal/item"
)

var propDefs = []item.Definition{wood, iron, pickaxe}

func drawDef(t *rapid.T, label string) item.Definition {
	return rapid.SampledFrom(propDefs).Draw(t, label)
}

// drawGrid fills a grid with random valid stacks.
func drawGrid(t *rapid.T, id GridID, size int) *Grid {
	g := NewGrid(id, size)
	for i := range size {
		if rapid.Bool().Draw(t, "occupied") {
			def := drawDef(t, "def")
			g.slots[i] = NewStack(def, rapid.IntRange(1, def.Limit()).Draw(t, "qty"))
		}
	}
	return g
}

func totals(c *Cursor, grids ...*Grid) map[item.ID]int {
	out := map[item.ID]int{}
	for _, g := range grids {
		for _, s := range g.slots {
			if !s.Empty() {
				out[s.Def.ID] += s.Quantity
			}
		}
	}
	if !c.Empty() {
		out[c.def.ID] += c.qty
	}
	return out
}

// inventoryMachine drives random operations over two grids and one cursor and
// keeps a ledger of how many units of each item should exist.
type inventoryMachine struct {
	main, hotbar *Grid
	cursor       *Cursor
	ledger       map[item.ID]int
}

func (m *inventoryMachine) grid(t *rapid.T) *Grid {
	if rapid.Bool().Draw(t, "hotbar") {
		return m.hotbar
	}
	return m.main
}

func (m *inventoryMachine) add(t *rapid.T) {
	def := drawDef(t, "def")
	amount := rapid.IntRange(-2, 150).Draw(t, "amount")
	added, left := AddToGrids(def, amount, m.hotbar, m.main)
	if amount <= 0 {
		if added || left != 0 {
			t.Fatalf("non-positive amount reported (%v, %d)", added, left)
		}
		return
	}
	if added != (left == 0) {
		t.Fatalf("added=%v inconsistent with leftover %d", added, left)
	}
	m.ledger[def.ID] += amount - left
}

func (m *inventoryMachine) remove(t *rapid.T) {
	g := m.grid(t)
	i := rapid.IntRange(0, g.Len()-1).Draw(t, "index")
	s := g.slots[i]
	n := RemoveFromSlot(g, i, rapid.IntRange(0, 80).Draw(t, "amount"))
	m.ledger[s.Def.ID] -= n
}

func (m *inventoryMachine) transfer(t *rapid.T) {
	src, dst := m.grid(t), m.grid(t)
	si := rapid.IntRange(0, src.Len()-1).Draw(t, "src")
	di := rapid.IntRange(0, dst.Len()-1).Draw(t, "dst")
	a, b := src.slots[si], dst.slots[di]

	out, err := TransferBetweenSlots(src, si, dst, di)
	if err != nil {
		t.Fatalf("valid indices returned error: %v", err)
	}
	switch out {
	case OutcomeMerged:
		before := a.Quantity + b.Quantity
		after := src.slots[si].Quantity + dst.slots[di].Quantity
		if before != after {
			t.Fatalf("merge changed total %d -> %d", before, after)
		}
	case OutcomeSwapped:
		if src.slots[si] != b || dst.slots[di] != a {
			t.Fatalf("swap did not exchange stacks fully")
		}
	}
}

func (m *inventoryMachine) takeOne(t *rapid.T) {
	g := m.grid(t)
	i := rapid.IntRange(0, g.Len()-1).Draw(t, "index")
	before := g.slots[i]
	held := m.cursor.Held()
	if !TakeOne(g, i, m.cursor) {
		if g.slots[i] != before || m.cursor.Held() != held {
			t.Fatalf("failed TakeOne mutated state")
		}
	}
}

func (m *inventoryMachine) putOne(t *rapid.T) {
	g := m.grid(t)
	i := rapid.IntRange(0, g.Len()-1).Draw(t, "index")
	before := g.slots[i]
	held := m.cursor.Held()
	if !PutOne(g, i, m.cursor) {
		if g.slots[i] != before || m.cursor.Held() != held {
			t.Fatalf("failed PutOne mutated state")
		}
	}
}

func (m *inventoryMachine) cancel(t *rapid.T) {
	def := m.cursor.def
	if left := ReturnCursor(m.cursor); left > 0 {
		m.ledger[def.ID] -= left
	}
}

func (m *inventoryMachine) check(t *rapid.T) {
	for _, g := range []*Grid{m.main, m.hotbar} {
		if err := g.Verify(); err != nil {
			t.Fatal(err)
		}
	}
	got := totals(m.cursor, m.main, m.hotbar)
	for id, want := range m.ledger {
		if got[id] != want {
			t.Fatalf("%s: have %d units, ledger says %d", id, got[id], want)
		}
	}
	for id, n := range got {
		if _, ok := m.ledger[id]; !ok && n != 0 {
			t.Fatalf("%s: %d units appeared from nowhere", id, n)
		}
	}
}

func TestInventoryProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := &inventoryMachine{
			main:   drawGrid(t, GridMain, rapid.IntRange(1, 8).Draw(t, "mainSize")),
			hotbar: drawGrid(t, GridHotbar, rapid.IntRange(1, 4).Draw(t, "hotbarSize")),
			cursor: NewCursor(),
		}
		m.ledger = totals(m.cursor, m.main, m.hotbar)
		t.Repeat(map[string]func(*rapid.T){
			"add":      m.add,
			"remove":   m.remove,
			"transfer": m.transfer,
			"takeOne":  m.takeOne,
			"putOne":   m.putOne,
			"cancel":   m.cancel,
			"":         m.check,
		})
	})
}

func TestTakePutRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := drawGrid(t, GridMain, rapid.IntRange(1, 6).Draw(t, "size"))
		i := rapid.IntRange(0, g.Len()-1).Draw(t, "index")
		before := g.slots[i]
		c := NewCursor()
		if !TakeOne(g, i, c) {
			if !before.Empty() {
				t.Fatalf("TakeOne refused occupied slot %+v", before)
			}
			return
		}
		if !PutOne(g, i, c) {
			t.Fatal("PutOne refused to undo TakeOne")
		}
		if g.slots[i] != before {
			t.Fatalf("slot %+v, want %+v", g.slots[i], before)
		}
	})
}

func TestFailedOperationsAreIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := drawGrid(t, GridMain, rapid.IntRange(1, 6).Draw(t, "size"))
		snapshot := g.Snapshot()
		c := NewCursor()
		for range rapid.IntRange(1, 5).Draw(t, "attempts") {
			if PutOne(g, rapid.IntRange(0, g.Len()-1).Draw(t, "index"), c) {
				t.Fatal("PutOne with empty cursor succeeded")
			}
		}
		for i, s := range snapshot {
			if s.Empty() && TakeOne(g, i, c) {
				t.Fatalf("TakeOne on empty slot %d succeeded", i)
			}
		}
		for i, s := range g.Snapshot() {
			if s != snapshot[i] {
				t.Fatalf("slot %d mutated by failed operation", i)
			}
		}
		if !c.Empty() {
			t.Fatal("cursor mutated by failed operation")
		}
	})
}
