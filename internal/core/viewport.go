package core

// Viewport projects a pixel world onto an area of the character screen.
// Terminal cells are much larger than pixels, so the projection rounds
// outwards: anything covering part of a cell paints the whole cell.
type Viewport struct {
	WorldW, WorldH int  // World size in pixels
	Area           Rect // Destination area on the screen, in cells
}

// NewViewport creates a viewport mapping a worldW x worldH world onto area.
func NewViewport(worldW, worldH int, area Rect) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Area: area}
}

// Valid reports whether the viewport can project anything.
func (v Viewport) Valid() bool {
	return v.WorldW > 0 && v.WorldH > 0 && v.Area.Valid()
}

// ToScreen projects a world rectangle to screen cells.
// The result is at least one cell wide and tall.
func (v Viewport) ToScreen(r Rect) Rect {
	x0 := floorDiv(r.X*v.Area.W, v.WorldW)
	y0 := floorDiv(r.Y*v.Area.H, v.WorldH)
	x1 := ceilDiv(r.Right()*v.Area.W, v.WorldW)
	y1 := ceilDiv(r.Bottom()*v.Area.H, v.WorldH)

	w := max(1, x1-x0)
	h := max(1, y1-y0)
	return NewRect(v.Area.X+x0, v.Area.Y+y0, w, h)
}

// ToWorld maps a screen cell back to the world pixel at the cell's center.
func (v Viewport) ToWorld(cx, cy int) Point {
	lx := cx - v.Area.X
	ly := cy - v.Area.Y
	return Point{
		X: (2*lx + 1) * v.WorldW / (2 * v.Area.W),
		Y: (2*ly + 1) * v.WorldH / (2 * v.Area.H),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
