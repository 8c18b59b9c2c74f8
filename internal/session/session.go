// Package session wires the inventory pieces into one player's sandbox: the
// main and hotbar grids, the cursor, selection, usage and the ground around
// the player. Every input intent enters here and every change leaves through
// an Observer.
package session

import (
	"log/slog"

	"satchel/internal/inventory"
	"satchel/internal/item"
	"satchel/internal/selection"
	"satchel/internal/usage"
	"satchel/internal/world"
)

//go:generate go tool mockgen -destination=./mocks/observer_mock.go -package=mocks . Observer

// Observer receives read-only notifications of state changes.
type Observer interface {
	StackChanged(grid inventory.GridID, index int, s inventory.Stack)
	SelectionChanged(index int)
	PanelToggled(open bool)
	CursorChanged(h inventory.Held)
}

type nopObserver struct{}

func (nopObserver) StackChanged(inventory.GridID, int, inventory.Stack) {}
func (nopObserver) SelectionChanged(int) {}
func (nopObserver) PanelToggled(bool) {}
func (nopObserver) CursorChanged(inventory.Held) {}

// SlotRef addresses one slot of one grid.
type SlotRef struct {
	Grid  inventory.GridID
	Index int
}

// Options sizes the sandbox.
type Options struct {
	MainSize   int
	HotbarSize int
	UseCost    float64
	// Bounds of the ground the player may walk on; zero means unbounded.
	Width, Height int
}

// DefaultOptions matches the classic 27 + 9 slot layout.
func DefaultOptions() Options {
	return Options{MainSize: 27, HotbarSize: 9, UseCost: usage.DefaultUseCost}
}

type holdState struct {
	active bool
	fill   bool
	target SlotRef
}

// Session is one player's inventory sandbox. It is not safe for concurrent
// use; drive it from a single goroutine.
type Session struct {
	log    *slog.Logger
	opts   Options
	obs    Observer
	main   *inventory.Grid
	hotbar *inventory.Grid
	cursor *inventory.Cursor
	sel    *selection.Controller
	res    *usage.Resolver
	ground *world.Ground
	pos    world.Position

	dragging bool
	drag     SlotRef
	hold     holdState
}

// New builds a sandbox. obs, effects and logger may be nil.
func New(opts Options, obs Observer, effects usage.EffectHandler, ground *world.Ground, logger *slog.Logger) *Session {
	if obs == nil {
		obs = nopObserver{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if ground == nil {
		ground = world.NewGround()
	}
	s := &Session{
		log:    logger,
		opts:   opts,
		obs:    obs,
		main:   inventory.NewGrid(inventory.GridMain, opts.MainSize),
		hotbar: inventory.NewGrid(inventory.GridHotbar, opts.HotbarSize),
		cursor: inventory.NewCursor(),
		ground: ground,
	}
	s.main.OnChange(obs.StackChanged)
	s.hotbar.OnChange(obs.StackChanged)
	s.cursor.OnChange(obs.CursorChanged)
	s.sel = selection.New(opts.HotbarSize, obs)
	s.res = usage.NewResolver(s.hotbar, effects, ground, usage.WithUseCost(opts.UseCost))
	return s
}

// ─── accessors ───────────────────────────────────────────────────────────────

func (s *Session) Main() *inventory.Grid { return s.main }
func (s *Session) Hotbar() *inventory.Grid { return s.hotbar }
func (s *Session) Held() inventory.Held { return s.cursor.Held() }
func (s *Session) Active() int { return s.sel.Active() }
func (s *Session) PanelOpen() bool { return s.sel.Open() }
func (s *Session) Ground() *world.Ground { return s.ground }
func (s *Session) Position() world.Position { return s.pos }
func (s *Session) Holding() bool { return s.hold.active }
func (s *Session) Dragging() (SlotRef, bool) { return s.drag, s.dragging }

// Grid resolves a grid ID to the session's grid, or nil.
func (s *Session) Grid(id inventory.GridID) *inventory.Grid {
	switch id {
	case inventory.GridMain:
		return s.main
	case inventory.GridHotbar:
		return s.hotbar
	}
	return nil
}

func (s *Session) slot(ref SlotRef) (*inventory.Grid, bool) {
	g := s.Grid(ref.Grid)
	if g == nil || !g.Valid(ref.Index) {
		return nil, false
	}
	return g, true
}

// ─── selection ───────────────────────────────────────────────────────────────

// SelectSlot makes hotbar slot i active.
func (s *Session) SelectSlot(i int) bool {
	ok := s.sel.Select(i)
	s.log.Debug("select slot", "index", i, "ok", ok)
	return ok
}

// Scroll moves the active slot; dir > 0 selects the next slot.
func (s *Session) Scroll(dir int) {
	s.sel.Scroll(dir)
	s.log.Debug("scroll", "dir", dir, "active", s.sel.Active())
}

// TogglePanel opens or closes the inventory panel. Closing abandons any
// drag or hold in progress and puts the cursor's contents back.
func (s *Session) TogglePanel() bool {
	if s.sel.Open() {
		s.dragging = false
		s.hold = holdState{}
		s.CancelCursor()
	}
	open := s.sel.Toggle()
	s.log.Debug("toggle panel", "open", open)
	return open
}

// Move walks the player one step. It is ignored while the panel is open.
func (s *Session) Move(dx, dy int) bool {
	if s.sel.Suspended() {
		return false
	}
	next := world.Position{X: s.pos.X + dx, Y: s.pos.Y + dy}
	if next.X < 0 || next.Y < 0 {
		return false
	}
	if (s.opts.Width > 0 && next.X >= s.opts.Width) || (s.opts.Height > 0 && next.Y >= s.opts.Height) {
		return false
	}
	s.pos = next
	return true
}

// ─── use and drop ────────────────────────────────────────────────────────────

// UseActive uses the item in the active hotbar slot. Only with the panel
// closed.
func (s *Session) UseActive() usage.Result {
	if s.sel.Open() {
		return usage.ResultNone
	}
	r := s.res.Use(s.sel.Active())
	s.log.Debug("use", "index", s.sel.Active(), "result", r.String())
	return r
}

// DropActive drops one unit from the active hotbar slot at the player's
// feet. Only with the panel closed.
func (s *Session) DropActive() usage.Result {
	if s.sel.Open() {
		return usage.ResultNone
	}
	r := s.res.Drop(s.sel.Active(), s.pos)
	s.log.Debug("drop", "index", s.sel.Active(), "result", r.String())
	return r
}

// ─── drag and drop ───────────────────────────────────────────────────────────

// BeginDrag picks up the stack under ref for a drag. It needs the panel open,
// an occupied slot, and no hold transfer in progress.
func (s *Session) BeginDrag(ref SlotRef) bool {
	if !s.sel.Open() || s.hold.active {
		return false
	}
	g, ok := s.slot(ref)
	if !ok {
		return false
	}
	if st, _ := g.Get(ref.Index); st.Empty() {
		return false
	}
	s.dragging, s.drag = true, ref
	s.log.Debug("begin drag", "grid", ref.Grid, "index", ref.Index)
	return true
}

// EndDrag finishes a drag. With onSlot set the dragged stack moves, merges
// or swaps into target; otherwise it was released over the background and
// the whole stack is dropped into the world.
func (s *Session) EndDrag(target SlotRef, onSlot bool) inventory.Outcome {
	if !s.dragging {
		return inventory.OutcomeNone
	}
	src := s.drag
	s.dragging = false
	sg, ok := s.slot(src)
	if !ok {
		return inventory.OutcomeNone
	}
	if !onSlot {
		r := s.res.DropAll(sg, src.Index, s.pos)
		s.log.Debug("drag to world", "grid", src.Grid, "index", src.Index, "result", r.String())
		return inventory.OutcomeNone
	}
	dg, ok := s.slot(target)
	if !ok {
		return inventory.OutcomeNone
	}
	out, err := inventory.TransferBetweenSlots(sg, src.Index, dg, target.Index)
	if err != nil {
		s.log.Warn("drag transfer rejected", "error", err)
		return inventory.OutcomeNone
	}
	s.log.Debug("end drag", "from", src, "to", target, "outcome", out.String())
	return out
}

// CancelDrag abandons a drag and leaves the stack where it was.
func (s *Session) CancelDrag() {
	s.dragging = false
}

// ─── hold transfer ───────────────────────────────────────────────────────────

// BeginHoldTransfer starts moving units one at a time between ref and the
// cursor. The direction is fixed now: an empty cursor drains the slot,
// otherwise the cursor fills it. The first unit moves immediately; the caller
// drives the rest with HoldTick.
func (s *Session) BeginHoldTransfer(ref SlotRef) bool {
	if !s.sel.Open() || s.dragging {
		return false
	}
	if _, ok := s.slot(ref); !ok {
		return false
	}
	s.hold = holdState{active: true, fill: !s.cursor.Empty(), target: ref}
	s.log.Debug("begin hold", "grid", ref.Grid, "index", ref.Index, "fill", s.hold.fill)
	return s.HoldTick()
}

// HoldOver retargets a running hold transfer to the slot under the pointer.
func (s *Session) HoldOver(ref SlotRef) {
	if !s.hold.active {
		return
	}
	if _, ok := s.slot(ref); ok {
		s.hold.target = ref
	}
}

// HoldTick moves one unit for the running hold transfer.
func (s *Session) HoldTick() bool {
	if !s.hold.active {
		return false
	}
	g, ok := s.slot(s.hold.target)
	if !ok {
		return false
	}
	if s.hold.fill {
		return inventory.PutOne(g, s.hold.target.Index, s.cursor)
	}
	return inventory.TakeOne(g, s.hold.target.Index, s.cursor)
}

// EndHoldTransfer stops the hold. Whatever the cursor carries stays on it.
func (s *Session) EndHoldTransfer() {
	if !s.hold.active {
		return
	}
	s.hold = holdState{}
	s.log.Debug("end hold", "held", s.cursor.Quantity())
}

// CancelCursor returns the cursor's contents to where they came from. Units
// with nowhere to go are dropped at the player's feet; their count is
// returned.
func (s *Session) CancelCursor() int {
	if s.cursor.Empty() {
		return 0
	}
	held := s.cursor.Held()
	left := inventory.ReturnCursor(s.cursor)
	if left > 0 {
		s.ground.SpawnWorn(held.Def, left, held.Durability, s.pos)
	}
	s.log.Debug("cancel cursor", "item", held.Def.ID, "overflow", left)
	return left
}

// ─── world ───────────────────────────────────────────────────────────────────

// Pickup adds qty units of def to the inventory, hotbar first, and returns
// how many did not fit.
func (s *Session) Pickup(def item.Definition, qty int) int {
	return s.pickup(def, qty, def.Durability)
}

func (s *Session) pickup(def item.Definition, qty int, durability float64) int {
	_, left := inventory.AddWornToGrids(def, qty, durability, s.hotbar, s.main)
	s.log.Debug("pickup", "item", def.ID, "qty", qty, "durability", durability, "leftover", left)
	return left
}

// PickupHere picks up every pile at the player's position. Piles that do not
// fit entirely stay on the ground with what is left. It returns the number of
// units taken.
func (s *Session) PickupHere() int {
	taken := 0
	for _, d := range s.ground.At(s.pos) {
		left := s.pickup(d.Def, d.Quantity, d.Durability)
		taken += d.Quantity - left
		s.ground.Put(d.ID, left)
	}
	return taken
}
