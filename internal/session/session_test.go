package session_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"satchel/internal/inventory"
	"satchel/internal/item"
	"satchel/internal/session"
	"satchel/internal/session/mocks"
	"satchel/internal/usage"
	"satchel/internal/world"
)

var (
	wood  = item.Definition{ID: "wood", Name: "Wood", Category: item.CategoryMaterial, MaxStack: 64, Stackable: true}
	stone = item.Definition{ID: "stone", Name: "Stone", Category: item.CategoryMaterial, MaxStack: 64, Stackable: true}
	apple = item.Definition{ID: "apple", Name: "Apple", Category: item.CategoryConsumable, MaxStack: 16, Stackable: true}
)

// ─── helpers ─────────────────────────────────────────────────────────────────

func newSession(t *testing.T, main, hotbar int) *session.Session {
	t.Helper()
	return session.New(session.Options{MainSize: main, HotbarSize: hotbar, UseCost: 1}, nil, nil, nil, nil)
}

func slotQty(t *testing.T, g *inventory.Grid, i int) int {
	t.Helper()
	s, err := g.Get(i)
	if err != nil {
		t.Fatal(err)
	}
	return s.Quantity
}

func inHotbar(i int) session.SlotRef { return session.SlotRef{Grid: inventory.GridHotbar, Index: i} }
func inMain(i int) session.SlotRef { return session.SlotRef{Grid: inventory.GridMain, Index: i} }

// ─── pickup ──────────────────────────────────────────────────────────────────

func TestPickupFillsHotbarFirst(t *testing.T) {
	s := newSession(t, 2, 1)
	if left := s.Pickup(wood, 100); left != 0 {
		t.Fatalf("expected no leftover, got %d", left)
	}
	if slotQty(t, s.Hotbar(), 0) != 64 || slotQty(t, s.Main(), 0) != 36 {
		t.Fatalf("expected hotbar 64 / main 36, got %d / %d", slotQty(t, s.Hotbar(), 0), slotQty(t, s.Main(), 0))
	}
	if left := s.Pickup(stone, 200); left != 136 {
		t.Fatalf("expected 136 leftover, got %d", left)
	}
}

func TestPickupHereTakesWhatFits(t *testing.T) {
	s := newSession(t, 0, 1)
	here := s.Position()
	s.Ground().SpawnWorldItem(wood, 60, here)
	s.Ground().SpawnWorldItem(wood, 10, here)
	if n := s.PickupHere(); n != 64 {
		t.Fatalf("expected 64 picked up, got %d", n)
	}
	piles := s.Ground().At(here)
	if len(piles) != 1 || piles[0].Quantity != 6 {
		t.Fatalf("expected one pile of 6 left, got %+v", piles)
	}
}

func TestDroppedToolKeepsWearThroughPickup(t *testing.T) {
	pickaxe := item.Definition{ID: "pickaxe", Name: "Pickaxe", Category: item.CategoryTool, MaxStack: 1, Durability: 100}
	s := newSession(t, 0, 1)
	s.Pickup(pickaxe, 1)
	for range 40 {
		s.UseActive()
	}
	if r := s.DropActive(); r != usage.ResultDropped {
		t.Fatalf("expected dropped, got %s", r)
	}
	if n := s.PickupHere(); n != 1 {
		t.Fatalf("expected the pickaxe back, got %d", n)
	}
	got, _ := s.Hotbar().Get(0)
	if got.Durability != 60 {
		t.Fatalf("expected durability 60 after pickup, got %v", got.Durability)
	}
}

func TestCancelledToolOverflowKeepsWear(t *testing.T) {
	pickaxe := item.Definition{ID: "pickaxe", Name: "Pickaxe", Category: item.CategoryTool, MaxStack: 1, Durability: 100}
	s := newSession(t, 0, 1)
	s.Pickup(pickaxe, 1)
	for range 25 {
		s.UseActive()
	}
	s.TogglePanel()
	s.BeginHoldTransfer(inHotbar(0))
	s.EndHoldTransfer()
	if h := s.Held(); h.Quantity != 1 || h.Durability != 75 {
		t.Fatalf("expected a held pickaxe at 75, got %+v", h)
	}
	s.Pickup(wood, 1)

	if left := s.CancelCursor(); left != 1 {
		t.Fatalf("expected the pickaxe to overflow, got %d", left)
	}
	piles := s.Ground().All()
	if len(piles) != 1 || piles[0].Def.ID != "pickaxe" || piles[0].Durability != 75 {
		t.Fatalf("expected a pickaxe pile at 75, got %+v", piles)
	}
}

// ─── panel gating ────────────────────────────────────────────────────────────

func TestUseAndDropOnlyWithPanelClosed(t *testing.T) {
	s := newSession(t, 4, 9)
	s.Pickup(apple, 3)
	s.TogglePanel()
	if r := s.UseActive(); r != usage.ResultNone {
		t.Fatalf("use with panel open: expected none, got %s", r)
	}
	if r := s.DropActive(); r != usage.ResultNone {
		t.Fatalf("drop with panel open: expected none, got %s", r)
	}
	s.TogglePanel()
	if r := s.UseActive(); r != usage.ResultConsumed {
		t.Fatalf("expected consumed, got %s", r)
	}
	if r := s.DropActive(); r != usage.ResultDropped {
		t.Fatalf("expected dropped, got %s", r)
	}
	if slotQty(t, s.Hotbar(), 0) != 1 {
		t.Fatalf("expected 1 apple left, got %d", slotQty(t, s.Hotbar(), 0))
	}
	if piles := s.Ground().At(s.Position()); len(piles) != 1 || piles[0].Def.ID != "apple" {
		t.Fatalf("expected dropped apple on the ground, got %+v", piles)
	}
}

func TestDragAndHoldNeedPanelOpen(t *testing.T) {
	s := newSession(t, 4, 9)
	s.Pickup(wood, 5)
	if s.BeginDrag(inHotbar(0)) {
		t.Fatal("drag with panel closed should be refused")
	}
	if s.BeginHoldTransfer(inHotbar(0)) {
		t.Fatal("hold with panel closed should be refused")
	}
}

func TestMoveSuspendedWhilePanelOpen(t *testing.T) {
	s := session.New(session.Options{MainSize: 1, HotbarSize: 1, Width: 3, Height: 3}, nil, nil, nil, nil)
	if !s.Move(1, 0) {
		t.Fatal("expected move to succeed")
	}
	s.TogglePanel()
	if s.Move(1, 0) {
		t.Fatal("move should be ignored while the panel is open")
	}
	s.TogglePanel()
	s.Move(1, 0)
	if s.Move(1, 0) {
		t.Fatal("move past the edge should fail")
	}
	if s.Position() != (world.Position{X: 2}) {
		t.Fatalf("unexpected position %+v", s.Position())
	}
}

// ─── drag ────────────────────────────────────────────────────────────────────

func TestDragBetweenGrids(t *testing.T) {
	s := newSession(t, 4, 9)
	s.Pickup(wood, 40)
	s.TogglePanel()

	if !s.BeginDrag(inHotbar(0)) {
		t.Fatal("BeginDrag refused")
	}
	if out := s.EndDrag(inMain(2), true); out != inventory.OutcomeMoved {
		t.Fatalf("expected moved, got %s", out)
	}
	if slotQty(t, s.Main(), 2) != 40 || slotQty(t, s.Hotbar(), 0) != 0 {
		t.Fatal("stack did not move")
	}
	if _, dragging := s.Dragging(); dragging {
		t.Fatal("drag should be over")
	}
}

func TestDragOntoBackgroundDropsWholeStack(t *testing.T) {
	s := newSession(t, 4, 9)
	s.Pickup(stone, 12)
	s.TogglePanel()
	s.BeginDrag(inHotbar(0))
	s.EndDrag(session.SlotRef{}, false)
	if slotQty(t, s.Hotbar(), 0) != 0 {
		t.Fatal("stack should have left the hotbar")
	}
	piles := s.Ground().At(s.Position())
	if len(piles) != 1 || piles[0].Quantity != 12 {
		t.Fatalf("expected one pile of 12, got %+v", piles)
	}
}

func TestBeginDragRejectsEmptyOrBadSlot(t *testing.T) {
	s := newSession(t, 4, 9)
	s.TogglePanel()
	for _, ref := range []session.SlotRef{inHotbar(0), inMain(99), {Grid: "chest", Index: 0}} {
		if s.BeginDrag(ref) {
			t.Fatalf("BeginDrag(%+v) should be refused", ref)
		}
	}
	if out := s.EndDrag(inHotbar(1), true); out != inventory.OutcomeNone {
		t.Fatalf("EndDrag without drag: expected none, got %s", out)
	}
}

// ─── hold transfer ───────────────────────────────────────────────────────────

func TestHoldDrainsThenFills(t *testing.T) {
	s := newSession(t, 4, 9)
	s.Pickup(wood, 5)
	s.TogglePanel()

	if !s.BeginHoldTransfer(inHotbar(0)) {
		t.Fatal("first take should happen immediately")
	}
	s.HoldTick()
	s.HoldTick()
	s.EndHoldTransfer()
	if h := s.Held(); h.Quantity != 3 || h.Def.ID != "wood" {
		t.Fatalf("expected 3 wood held, got %+v", s.Held())
	}
	if slotQty(t, s.Hotbar(), 0) != 2 {
		t.Fatalf("expected 2 left in slot, got %d", slotQty(t, s.Hotbar(), 0))
	}

	if !s.BeginHoldTransfer(inMain(1)) {
		t.Fatal("fill should start with the cursor loaded")
	}
	s.HoldOver(inMain(3))
	s.HoldTick()
	s.HoldTick()
	s.HoldTick()
	s.EndHoldTransfer()
	if slotQty(t, s.Main(), 1) != 1 || slotQty(t, s.Main(), 3) != 2 {
		t.Fatalf("expected 1 in main[1] and 2 in main[3], got %d and %d", slotQty(t, s.Main(), 1), slotQty(t, s.Main(), 3))
	}
	if !s.Held().Empty() {
		t.Fatal("cursor should be empty")
	}
	if s.HoldTick() {
		t.Fatal("tick without a hold should do nothing")
	}
}

func TestHoldModeFixedAtStart(t *testing.T) {
	s := newSession(t, 4, 9)
	s.Pickup(wood, 1)
	s.TogglePanel()
	s.BeginHoldTransfer(inHotbar(0))
	if s.HoldTick() {
		t.Fatal("drain on an empty slot should fail rather than switch to fill")
	}
	if s.Held().Quantity != 1 {
		t.Fatalf("expected 1 held, got %d", s.Held().Quantity)
	}
}

func TestClosingPanelReturnsCursor(t *testing.T) {
	s := newSession(t, 4, 9)
	s.Pickup(wood, 5)
	s.TogglePanel()
	s.BeginHoldTransfer(inHotbar(0))
	s.HoldTick()
	s.BeginDrag(inMain(0))

	s.TogglePanel()
	if !s.Held().Empty() || s.Holding() {
		t.Fatal("closing the panel should end the hold and empty the cursor")
	}
	if slotQty(t, s.Hotbar(), 0) != 5 {
		t.Fatalf("expected all 5 back in the origin slot, got %d", slotQty(t, s.Hotbar(), 0))
	}
}

func TestCancelCursorOverflowGoesToGround(t *testing.T) {
	s := newSession(t, 1, 1)
	s.Pickup(wood, 5)
	s.TogglePanel()
	s.BeginHoldTransfer(inHotbar(0))
	s.EndHoldTransfer()
	s.BeginDrag(inHotbar(0))
	s.EndDrag(inMain(0), true)
	s.Pickup(stone, 1)

	if left := s.CancelCursor(); left != 1 {
		t.Fatalf("expected 1 unit of overflow, got %d", left)
	}
	piles := s.Ground().At(s.Position())
	if len(piles) != 1 || piles[0].Def.ID != "wood" || piles[0].Quantity != 1 {
		t.Fatalf("expected the held wood on the ground, got %+v", piles)
	}
}

// ─── notifications ───────────────────────────────────────────────────────────

func TestObserverSeesEveryChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := mocks.NewMockObserver(ctrl)
	s := session.New(session.Options{MainSize: 2, HotbarSize: 3}, obs, nil, nil, nil)

	gomock.InOrder(
		obs.EXPECT().StackChanged(inventory.GridHotbar, 0, inventory.NewStack(wood, 2)),
		obs.EXPECT().PanelToggled(true),
		obs.EXPECT().StackChanged(inventory.GridHotbar, 0, inventory.NewStack(wood, 1)),
		obs.EXPECT().CursorChanged(inventory.Held{Def: wood, Quantity: 1}),
		obs.EXPECT().SelectionChanged(2),
	)
	s.Pickup(wood, 2)
	s.TogglePanel()
	s.BeginHoldTransfer(inHotbar(0))
	s.SelectSlot(2)
}

func TestSelectionIntents(t *testing.T) {
	s := newSession(t, 0, 9)
	if s.SelectSlot(9) {
		t.Fatal("SelectSlot(9) should be rejected")
	}
	s.SelectSlot(8)
	s.Scroll(1)
	if s.Active() != 0 {
		t.Fatalf("expected wrap to 0, got %d", s.Active())
	}
	s.Scroll(-1)
	if s.Active() != 8 {
		t.Fatalf("expected wrap to 8, got %d", s.Active())
	}
}
