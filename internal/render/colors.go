package render

import "github.com/gdamore/tcell/v2"

// Theme holds the glyphs and styles the renderer draws with.
// Emoji are rendered by the terminal with their own colors, so ground tiles
// use distinct glyphs rather than trying to tint them with FG color.
type Theme struct {
	Floor  string // empty ground cell
	Player string
	Pile   string // shown when several piles share a cell

	Slot     tcell.Style
	Selected tcell.Style // active hotbar slot
	Hover    tcell.Style // slot under the mouse while the panel is open
	Panel    tcell.Style
	Border   tcell.Style
	Status   tcell.Style
	Message  tcell.Style
	Dim      tcell.Style
}

// DefaultTheme is the theme used unless a caller supplies one.
var DefaultTheme = Theme{
	Floor:  "🟫",
	Player: "🧑",
	Pile:   "📦",

	Slot:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	Selected: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGold),
	Hover:    tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray),
	Panel:    tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	Border:   tcell.StyleDefault.Foreground(tcell.ColorGray),
	Status:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
	Message:  tcell.StyleDefault.Foreground(tcell.ColorLightYellow),
	Dim:      tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
}
