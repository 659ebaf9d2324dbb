package model

import (
	"cmp"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"slices"
)

// Generation is the set of live cells at one point in simulated time.
// The zero value is the empty generation. A Generation is never mutated
// after construction; every transformation returns a new one.
type Generation struct {
	cells map[Cell]struct{}
}

// Seed builds a generation from the given cells, dropping duplicates
func Seed(cells ...Cell) Generation {
	g := Generation{cells: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		g.cells[c] = struct{}{}
	}
	return g
}

// FromPairs builds a generation from [x, y] coordinate pairs
func FromPairs(pairs [][2]int) Generation {
	cells := make([]Cell, 0, len(pairs))
	for _, p := range pairs {
		cells = append(cells, Cell{X: p[0], Y: p[1]})
	}
	return Seed(cells...)
}

// Contains reports whether c is alive in g
func Contains(g Generation, c Cell) bool {
	_, ok := g.cells[c]
	return ok
}

// Len returns the number of live cells
func (g Generation) Len() int {
	return len(g.cells)
}

// IsEmpty reports whether no cell is alive
func (g Generation) IsEmpty() bool {
	return len(g.cells) == 0
}

// Cells returns the live cells ordered by y, then x
func (g Generation) Cells() []Cell {
	cells := make([]Cell, 0, len(g.cells))
	for c := range g.cells {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, compareCells)
	return cells
}

// Equal reports whether both generations hold exactly the same cells
func (g Generation) Equal(other Generation) bool {
	if g.Len() != other.Len() {
		return false
	}
	for c := range g.cells {
		if !Contains(other, c) {
			return false
		}
	}
	return true
}

// Translate returns a copy of g shifted by (dx, dy)
func (g Generation) Translate(dx, dy int) Generation {
	cells := make([]Cell, 0, len(g.cells))
	for c := range g.cells {
		cells = append(cells, Cell{X: c.X + dx, Y: c.Y + dy})
	}
	return Seed(cells...)
}

// Union returns a generation holding the cells of both g and other
func (g Generation) Union(other Generation) Generation {
	cells := g.Cells()
	return Seed(append(cells, other.Cells()...)...)
}

// Hash returns an MD5 digest of the ordered cell set
func (g Generation) Hash() string {
	h := md5.New()
	buf := make([]byte, 16)
	for _, c := range g.Cells() {
		binary.BigEndian.PutUint64(buf[:8], uint64(c.X))
		binary.BigEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String lists the cells in order, e.g. [(1,1) (2,1)]
func (g Generation) String() string {
	return fmt.Sprint(g.Cells())
}

func compareCells(a, b Cell) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
