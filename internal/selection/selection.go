// Package selection tracks which hotbar slot is active and whether the
// inventory panel is open.
package selection

//go:generate go tool mockgen -destination=./mocks/listener_mock.go -package=mocks . Listener

// Listener receives selection notifications.
type Listener interface {
	SelectionChanged(index int)
	PanelToggled(open bool)
}

type nopListener struct{}

func (nopListener) SelectionChanged(int) {}
func (nopListener) PanelToggled(bool) {}

// Controller owns the active hotbar index and the panel flag.
type Controller struct {
	size     int
	active   int
	open     bool
	listener Listener
}

// New returns a controller over a hotbar of size slots with slot 0 active
// and the panel closed. A nil listener discards notifications.
func New(size int, l Listener) *Controller {
	if l == nil {
		l = nopListener{}
	}
	return &Controller{size: max(size, 1), listener: l}
}

// Active returns the selected hotbar index.
func (c *Controller) Active() int { return c.active }

// Size returns the hotbar size.
func (c *Controller) Size() int { return c.size }

// Open reports whether the inventory panel is open.
func (c *Controller) Open() bool { return c.open }

// Suspended reports whether look/move input should be ignored; true while
// the panel is open.
func (c *Controller) Suspended() bool { return c.open }

// Select makes index the active slot. Out-of-range indices are ignored.
func (c *Controller) Select(index int) bool {
	if index < 0 || index >= c.size {
		return false
	}
	c.active = index
	c.listener.SelectionChanged(index)
	return true
}

// Scroll moves the selection one slot: dir > 0 to the next slot, dir < 0 to
// the previous one, wrapping at both ends.
func (c *Controller) Scroll(dir int) {
	switch {
	case dir > 0:
		c.Select((c.active + 1) % c.size)
	case dir < 0:
		c.Select((c.active - 1 + c.size) % c.size)
	}
}

// Toggle flips the panel and returns the new state.
func (c *Controller) Toggle() bool {
	c.open = !c.open
	c.listener.PanelToggled(c.open)
	return c.open
}
