package core

// Viewport maps a world of WorldW x WorldH units onto a block of screen cells.
// Terminal cells are taller than wide, so the two axes scale independently.
type Viewport struct {
	Origin Point // Screen cell holding world (0, 0)
	Cols   int   // Cells covering the world width
	Rows   int   // Cells covering the world height
	WorldW int
	WorldH int
}

// ScaleX returns the number of cells per world unit on the x axis.
func (v Viewport) ScaleX() float64 {
	if v.WorldW <= 0 {
		return 0
	}
	return float64(v.Cols) / float64(v.WorldW)
}

// ScaleY returns the number of cells per world unit on the y axis.
func (v Viewport) ScaleY() float64 {
	if v.WorldH <= 0 {
		return 0
	}
	return float64(v.Rows) / float64(v.WorldH)
}

// ToCell converts a world position to the screen cell containing it.
func (v Viewport) ToCell(p Point) Point {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return v.Origin
	}
	return Point{
		X: v.Origin.X + floorDiv(p.X*v.Cols, v.WorldW),
		Y: v.Origin.Y + floorDiv(p.Y*v.Rows, v.WorldH),
	}
}

// ToWorld converts a screen cell to the world position at the cell's center.
func (v Viewport) ToWorld(c Point) Point {
	if v.Cols <= 0 || v.Rows <= 0 {
		return Point{}
	}
	cx := c.X - v.Origin.X
	cy := c.Y - v.Origin.Y
	return Point{
		X: floorDiv((2*cx+1)*v.WorldW, 2*v.Cols),
		Y: floorDiv((2*cy+1)*v.WorldH, 2*v.Rows),
	}
}

// CellRect converts a world rectangle to screen cells, at least one cell in
// each dimension.
func (v Viewport) CellRect(r Rect) Rect {
	tl := v.ToCell(Point{X: r.X, Y: r.Y})
	br := v.ToCell(Point{X: r.Right(), Y: r.Bottom()})
	return NewRect(tl.X, tl.Y, Max(br.X-tl.X, 1), Max(br.Y-tl.Y, 1))
}

// Bounds returns the screen rectangle covered by the world.
func (v Viewport) Bounds() Rect {
	return NewRect(v.Origin.X, v.Origin.Y, v.Cols, v.Rows)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
