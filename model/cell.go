package model

import "fmt"

// Cell is a single position on the unbounded board
type Cell struct {
	X, Y int
}

// String formats the cell as (x,y)
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Same reports whether two cells refer to the same coordinates
func Same(a, b Cell) bool {
	return a.X == b.X && a.Y == b.Y
}

// mooreOffsets lists the eight neighbor offsets: orthogonal first, then diagonals
var mooreOffsets = [8][2]int{
	{1, 0}, {-1, 0},
	{0, 1}, {0, -1},
	{1, 1}, {-1, -1},
	{-1, 1}, {1, -1},
}

// NeighborsOf returns the eight cells of the Moore neighborhood around c
func NeighborsOf(c Cell) []Cell {
	neighbors := make([]Cell, 0, len(mooreOffsets))
	for _, off := range mooreOffsets {
		neighbors = append(neighbors, Cell{X: c.X + off[0], Y: c.Y + off[1]})
	}
	return neighbors
}
