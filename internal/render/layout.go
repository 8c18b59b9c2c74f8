package render

import (
	"satchel/internal/inventory"
	"satchel/internal/session"
)

// SlotW is the width of one slot in terminal columns: a two-column glyph, a
// three-digit quantity and a gap.
const SlotW = 6

// Rows reserved at the bottom of the screen, top to bottom: separator,
// hotbar, status line, then the message log.
const (
	messageRows = 3
	hudRows     = 3 + messageRows
)

// Layout places the hotbar, the inventory panel and the HUD on a screen of a
// given size and maps screen cells back to slots.
type Layout struct {
	Width, Height int

	MainSize   int
	HotbarSize int
	Cols       int // slots per panel row

	ViewH      int // rows available to the ground view
	SeparatorY int
	HotbarX    int
	HotbarY    int
	StatusY    int
	MessageY   int

	PanelX, PanelY int
	PanelW, PanelH int
}

// NewLayout computes positions for a w×h screen.
func NewLayout(w, h, mainSize, hotbarSize int) Layout {
	l := Layout{
		Width:      w,
		Height:     h,
		MainSize:   mainSize,
		HotbarSize: hotbarSize,
		Cols:       max(hotbarSize, 1),
	}
	l.ViewH = max(h-hudRows, 0)
	l.SeparatorY = l.ViewH
	l.HotbarY = l.SeparatorY + 1
	l.StatusY = l.HotbarY + 1
	l.MessageY = l.StatusY + 1
	l.HotbarX = max((w-hotbarSize*SlotW)/2, 0)

	rows := (mainSize + l.Cols - 1) / l.Cols
	l.PanelW = l.Cols*SlotW + 2
	l.PanelH = rows + 2
	l.PanelX = max((w-l.PanelW)/2, 0)
	l.PanelY = max((l.ViewH-l.PanelH)/2, 0)
	return l
}

// HotbarCell returns the top-left screen cell of hotbar slot i.
func (l Layout) HotbarCell(i int) (x, y int) {
	return l.HotbarX + i*SlotW, l.HotbarY
}

// MainCell returns the top-left screen cell of main slot i.
func (l Layout) MainCell(i int) (x, y int) {
	return l.PanelX + 1 + (i%l.Cols)*SlotW, l.PanelY + 1 + i/l.Cols
}

// InPanel reports whether (x, y) falls inside the panel box.
func (l Layout) InPanel(x, y int) bool {
	return x >= l.PanelX && x < l.PanelX+l.PanelW && y >= l.PanelY && y < l.PanelY+l.PanelH
}

// SlotAt returns the slot under screen cell (x, y). Main slots only count
// while the panel is open.
func (l Layout) SlotAt(x, y int, open bool) (session.SlotRef, bool) {
	if y == l.HotbarY && x >= l.HotbarX && x < l.HotbarX+l.HotbarSize*SlotW {
		return session.SlotRef{Grid: inventory.GridHotbar, Index: (x - l.HotbarX) / SlotW}, true
	}
	if !open {
		return session.SlotRef{}, false
	}
	left, top := l.PanelX+1, l.PanelY+1
	if x < left || y < top || x >= left+l.Cols*SlotW {
		return session.SlotRef{}, false
	}
	i := (y-top)*l.Cols + (x-left)/SlotW
	if i >= l.MainSize {
		return session.SlotRef{}, false
	}
	return session.SlotRef{Grid: inventory.GridMain, Index: i}, true
}
