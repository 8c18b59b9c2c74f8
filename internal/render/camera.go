package render

import "satchel/internal/world"

// camera maps ground cells to screen cells. A ground cell is two columns
// wide so emoji line up.
type camera struct {
	cols, rows int // view size in terminal cells

	first world.Position // ground cell at the top-left of the view
	padX  int            // ground cells of margin when the field is narrower than the view
	padY  int
}

func newCamera(cols, rows int) *camera {
	return &camera{cols: cols, rows: rows}
}

// follow scrolls the view to keep pos visible inside a w×h field. Fields
// smaller than the view are centred; a zero size means unbounded.
func (c *camera) follow(pos world.Position, w, h int) {
	c.first.X, c.padX = fit(pos.X, w, c.cols/2)
	c.first.Y, c.padY = fit(pos.Y, h, c.rows)
}

// fit returns the first visible cell and the margin along one axis that
// shows n cells of a field of the given size.
func fit(p, size, n int) (first, pad int) {
	switch {
	case size <= 0:
		return p - n/2, 0
	case size <= n:
		return 0, (n - size) / 2
	}
	return min(max(p-n/2, 0), size-n), 0
}

// toScreen returns the screen cell of pos; ok is false when it is out of
// view.
func (c *camera) toScreen(pos world.Position) (sx, sy int, ok bool) {
	gx := pos.X - c.first.X + c.padX
	gy := pos.Y - c.first.Y + c.padY
	if gx < 0 || gy < 0 || gx >= c.cols/2 || gy >= c.rows {
		return 0, 0, false
	}
	return gx * 2, gy, true
}
