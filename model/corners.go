package model

// Corners is the bounding box of a generation: minimum and maximum x and y
type Corners struct {
	BottomLeft Cell
	TopRight   Cell
}

// CornersOf computes the bounding box of the live cells.
// An empty generation yields (0,0)-(0,0), a single-cell viewport at the origin.
func CornersOf(g Generation) Corners {
	var (
		b     Corners
		valid bool
	)
	for c := range g.cells {
		if !valid {
			b = Corners{BottomLeft: c, TopRight: c}
			valid = true
			continue
		}
		b.BottomLeft.X = min(b.BottomLeft.X, c.X)
		b.BottomLeft.Y = min(b.BottomLeft.Y, c.Y)
		b.TopRight.X = max(b.TopRight.X, c.X)
		b.TopRight.Y = max(b.TopRight.Y, c.Y)
	}
	return b
}

// Expand grows the box by n cells on every side
func (b Corners) Expand(n int) Corners {
	return Corners{
		BottomLeft: Cell{X: b.BottomLeft.X - n, Y: b.BottomLeft.Y - n},
		TopRight:   Cell{X: b.TopRight.X + n, Y: b.TopRight.Y + n},
	}
}

// Width returns the number of columns covered, inclusive
func (b Corners) Width() int {
	return b.TopRight.X - b.BottomLeft.X + 1
}

// Height returns the number of rows covered, inclusive
func (b Corners) Height() int {
	return b.TopRight.Y - b.BottomLeft.Y + 1
}

// Area returns the number of cells inside the box
func (b Corners) Area() int {
	return b.Width() * b.Height()
}
