// Package patterns holds the named seed generations the simulator can start from.
package patterns

import (
	"slices"

	"github.com/sheikhrachel/go-life/model"
)

// Template is a named seeding pattern
type Template struct {
	Name        string   // template name
	Descr       string   // template descr
	Coordinates [][2]int // array of [x,y] coordinates
}

// Seed returns the template as a generation
func (t Template) Seed() model.Generation {
	return model.FromPairs(t.Coordinates)
}

var library = map[string]Template{
	"square": {
		Name:        "square",
		Descr:       "2x2 block, a still life",
		Coordinates: [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}},
	},
	"rpentomino": {
		Name:        "rpentomino",
		Descr:       "five cells that take 1103 generations to stabilise",
		Coordinates: [][2]int{{3, 2}, {2, 3}, {3, 3}, {3, 4}, {4, 4}},
	},
	"glider": {
		Name:  "glider",
		Descr: "a block beside a glider travelling away from it",
		Coordinates: [][2]int{
			{-2, -2}, {-1, -2}, {-2, -1}, {-1, -1},
			{1, 1}, {2, 1}, {3, 1}, {3, 2}, {2, 3},
		},
	},
	"blinker": {
		Name:        "blinker",
		Descr:       "period 2 oscillator",
		Coordinates: [][2]int{{0, 1}, {1, 1}, {2, 1}},
	},
	"toad": {
		Name:        "toad",
		Descr:       "period 2 oscillator",
		Coordinates: [][2]int{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}},
	},
	"beacon": {
		Name:        "beacon",
		Descr:       "period 2 oscillator made of two touching blocks",
		Coordinates: [][2]int{{0, 2}, {0, 3}, {1, 3}, {2, 0}, {3, 0}, {3, 1}},
	},
}

// Lookup returns the seed generation registered under name
func Lookup(name string) (model.Generation, bool) {
	t, ok := library[name]
	if !ok {
		return model.Generation{}, false
	}
	return t.Seed(), true
}

// Names lists the registered pattern names in sorted order
func Names() []string {
	names := make([]string, 0, len(library))
	for k := range library {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Templates returns every template, sorted by name
func Templates() []Template {
	names := Names()
	templates := make([]Template, 0, len(names))
	for _, n := range names {
		templates = append(templates, library[n])
	}
	return templates
}
