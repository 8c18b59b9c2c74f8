package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"satchel/internal/inventory"
	"satchel/internal/world"
)

// drawHUD renders the separator, the status line and the message log.
func (r *Renderer) drawHUD(v View) {
	l := r.layout
	r.drawHLine(l.SeparatorY, r.theme.Border)
	r.drawText(0, l.StatusY, r.statusLine(v), r.theme.Status)

	start := max(len(r.messages)-messageRows, 0)
	for i, msg := range r.messages[start:] {
		r.drawText(0, l.MessageY+i, msg, r.theme.Message)
	}
}

// statusLine describes the active slot and what lies on the ground here.
func (r *Renderer) statusLine(v View) string {
	var b strings.Builder
	s := r.stack(inventory.GridHotbar, r.active)
	if s.Empty() {
		fmt.Fprintf(&b, "[%d] empty", r.active+1)
	} else {
		fmt.Fprintf(&b, "[%d] %s x%d", r.active+1, s.Def.Name, s.Quantity)
		if s.Def.Degradable() {
			fmt.Fprintf(&b, "  durability %.0f/%.0f", s.Durability, s.Def.Durability)
		}
	}
	if here := pilesAt(v.Drops, v.Player); len(here) > 0 {
		b.WriteString("  | here:")
		for _, d := range here {
			fmt.Fprintf(&b, " %s x%d", glyphOf(d.Def.Glyph, d.Def.Name), d.Quantity)
		}
	}
	if r.open {
		b.WriteString("  | Tab to close")
	}
	return b.String()
}

func pilesAt(drops []world.Drop, pos world.Position) []world.Drop {
	var out []world.Drop
	for _, d := range drops {
		if d.At == pos {
			out = append(out, d)
		}
	}
	return out
}

func (r *Renderer) drawHLine(y int, style tcell.Style) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text starting at (x, y), advancing by each rune's display
// width, and returns the column after the last rune.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}
