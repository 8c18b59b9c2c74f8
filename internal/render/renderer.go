// Package render projects a session onto a tcell screen. The renderer keeps
// its own copy of everything it draws, fed by session notifications, so it
// never reads the inventory directly.
package render

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"satchel/internal/inventory"
	"satchel/internal/session"
	"satchel/internal/world"
)

const maxMessages = 50

// View is the per-frame state that does not arrive through notifications.
type View struct {
	Player        world.Position
	Drops         []world.Drop
	Width, Height int // ground bounds; zero draws only piles and the player

	// Drag is the stack being dragged, drawn under the mouse; empty when
	// no drag is in progress.
	Drag inventory.Stack
}

// Renderer draws the inventory, the ground and the HUD onto a tcell screen.
// It implements session.Observer.
type Renderer struct {
	screen tcell.Screen
	theme  Theme
	layout Layout
	camera *camera

	main   []inventory.Stack
	hotbar []inventory.Stack
	active int
	open   bool
	held   inventory.Held

	mouseX, mouseY int
	messages       []string
}

var _ session.Observer = (*Renderer)(nil)

// NewRenderer creates a Renderer for grids of the given sizes.
func NewRenderer(screen tcell.Screen, mainSize, hotbarSize int) *Renderer {
	r := &Renderer{
		screen: screen,
		theme:  DefaultTheme,
		main:   make([]inventory.Stack, mainSize),
		hotbar: make([]inventory.Stack, hotbarSize),
		mouseX: -1,
		mouseY: -1,
	}
	r.Resize()
	return r
}

// Resize recomputes the layout after the screen size changed.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.layout = NewLayout(w, h, len(r.main), len(r.hotbar))
	r.camera = newCamera(w, r.layout.ViewH)
}

// Layout returns the current layout for hit-testing.
func (r *Renderer) Layout() Layout { return r.layout }

// SetMouse records the pointer position.
func (r *Renderer) SetMouse(x, y int) { r.mouseX, r.mouseY = x, y }

// Log appends a line to the message log.
func (r *Renderer) Log(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
	if len(r.messages) > maxMessages {
		r.messages = r.messages[len(r.messages)-maxMessages:]
	}
}

// Messages returns the message log, oldest first.
func (r *Renderer) Messages() []string { return r.messages }

// ─── session.Observer ────────────────────────────────────────────────────────

func (r *Renderer) StackChanged(grid inventory.GridID, index int, s inventory.Stack) {
	slots := r.slots(grid)
	if index >= 0 && index < len(slots) {
		slots[index] = s
	}
}

func (r *Renderer) SelectionChanged(index int) { r.active = index }

func (r *Renderer) PanelToggled(open bool) { r.open = open }

func (r *Renderer) CursorChanged(h inventory.Held) { r.held = h }

func (r *Renderer) slots(grid inventory.GridID) []inventory.Stack {
	switch grid {
	case inventory.GridMain:
		return r.main
	case inventory.GridHotbar:
		return r.hotbar
	}
	return nil
}

func (r *Renderer) stack(grid inventory.GridID, index int) inventory.Stack {
	slots := r.slots(grid)
	if index < 0 || index >= len(slots) {
		return inventory.Stack{}
	}
	return slots[index]
}

// ─── drawing ─────────────────────────────────────────────────────────────────

// Draw renders one full frame.
func (r *Renderer) Draw(v View) {
	r.screen.Clear()
	r.drawGround(v)
	if r.open {
		r.drawPanel()
	}
	r.drawHotbar()
	r.drawHUD(v)
	r.drawPointer(v.Drag)
	r.screen.Show()
}

func (r *Renderer) drawGround(v View) {
	r.camera.follow(v.Player, v.Width, v.Height)
	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			if sx, sy, ok := r.camera.toScreen(world.Position{X: x, Y: y}); ok {
				r.putGlyph(sx, sy, r.theme.Floor, r.theme.Dim)
			}
		}
	}
	count := make(map[world.Position]int)
	for _, d := range v.Drops {
		count[d.At]++
	}
	for _, d := range v.Drops {
		sx, sy, ok := r.camera.toScreen(d.At)
		if !ok {
			continue
		}
		glyph := glyphOf(d.Def.Glyph, d.Def.Name)
		if count[d.At] > 1 {
			glyph = r.theme.Pile
		}
		r.putGlyph(sx, sy, glyph, r.theme.Slot)
	}
	if sx, sy, ok := r.camera.toScreen(v.Player); ok {
		r.putGlyph(sx, sy, r.theme.Player, r.theme.Slot)
	}
}

func (r *Renderer) drawHotbar() {
	for i, s := range r.hotbar {
		x, y := r.layout.HotbarCell(i)
		style := r.theme.Slot
		if i == r.active {
			style = r.theme.Selected
		}
		r.drawSlot(x, y, s, style)
	}
}

func (r *Renderer) drawPanel() {
	l := r.layout
	for y := l.PanelY; y < l.PanelY+l.PanelH; y++ {
		for x := l.PanelX; x < l.PanelX+l.PanelW; x++ {
			ch := ' '
			switch {
			case (y == l.PanelY || y == l.PanelY+l.PanelH-1) && (x == l.PanelX || x == l.PanelX+l.PanelW-1):
				ch = '+'
			case y == l.PanelY || y == l.PanelY+l.PanelH-1:
				ch = '─'
			case x == l.PanelX || x == l.PanelX+l.PanelW-1:
				ch = '│'
			}
			r.screen.SetContent(x, y, ch, nil, r.theme.Border)
		}
	}
	r.drawText(l.PanelX+2, l.PanelY, " Inventory ", r.theme.Status)

	hover, hovering := l.SlotAt(r.mouseX, r.mouseY, true)
	for i, s := range r.main {
		x, y := l.MainCell(i)
		style := r.theme.Panel
		if hovering && hover.Grid == inventory.GridMain && hover.Index == i {
			style = r.theme.Hover
		}
		r.drawSlot(x, y, s, style)
	}
}

// drawPointer shows the cursor's contents, or the dragged stack, next to the
// mouse.
func (r *Renderer) drawPointer(drag inventory.Stack) {
	if r.mouseX < 0 || r.mouseY < 0 {
		return
	}
	x := r.mouseX + 1
	switch {
	case !r.held.Empty():
		r.drawSlot(x, r.mouseY, inventory.Stack{Def: r.held.Def, Quantity: r.held.Quantity}, r.theme.Hover)
	case !drag.Empty():
		r.drawSlot(x, r.mouseY, drag, r.theme.Dim)
	}
}

// drawSlot draws one slot: glyph in the first two columns, quantity right
// aligned in the next three. Single units show no number.
func (r *Renderer) drawSlot(x, y int, s inventory.Stack, style tcell.Style) {
	for i := 0; i < SlotW-1; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
	if s.Empty() {
		r.screen.SetContent(x, y, '·', nil, style)
		return
	}
	r.putGlyph(x, y, glyphOf(s.Def.Glyph, s.Def.Name), style)
	if s.Quantity > 1 {
		q := strconv.Itoa(min(s.Quantity, 999))
		r.drawText(x+2+3-len(q), y, q, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// glyphOf falls back to the first letter of the name for items without a
// glyph.
func glyphOf(glyph, name string) string {
	if glyph != "" {
		return glyph
	}
	for _, ch := range name {
		return string(ch)
	}
	return "?"
}
