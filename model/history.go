package model

import (
	"iter"
	"math"

	"github.com/pkg/errors"
)

// ErrNegativeIterations is returned when asked to iterate a negative number of times
var ErrNegativeIterations = errors.New("model: iteration count must not be negative")

// StepFunc derives the next generation from the current one. It must be
// deterministic: a generation it maps to itself is treated as a fixed point.
type StepFunc func(Generation) (Generation, error)

// Serial is the StepFunc for CalculateNext
func Serial(g Generation) (Generation, error) {
	return CalculateNext(g), nil
}

// History is the ordered sequence of generations; index 0 is the seed.
// Once a step returns its input (a still life, or extinction) every later
// generation is that same one, so only the distinct prefix is stored.
type History struct {
	gens []Generation
	last int
}

// Iterate applies CalculateNext iterations times, yielding iterations+1 generations
func Iterate(seed Generation, iterations int) (History, error) {
	return IterateWith(seed, iterations, Serial)
}

// IterateWith is Iterate with a caller-chosen step function
func IterateWith(seed Generation, iterations int, step StepFunc) (History, error) {
	if iterations < 0 {
		return History{}, errors.Wrapf(ErrNegativeIterations, "[IterateWith] got %d", iterations)
	}
	h := History{gens: []Generation{seed}, last: iterations}
	for i := 0; i < iterations; i++ {
		prev := h.gens[len(h.gens)-1]
		next, err := step(prev)
		if err != nil {
			return History{}, errors.Wrapf(err, "[IterateWith] generation %d", i+1)
		}
		if next.Equal(prev) {
			break
		}
		h.gens = append(h.gens, next)
	}
	return h, nil
}

// Walk produces the same sequence as IterateWith but hands each generation to
// visit as soon as it exists instead of keeping them. It stops at the first
// error from step or visit.
func Walk(seed Generation, iterations int, step StepFunc, visit func(int, Generation) error) error {
	if iterations < 0 {
		return errors.Wrapf(ErrNegativeIterations, "[Walk] got %d", iterations)
	}
	g, fixed := seed, false
	if err := visit(0, g); err != nil {
		return err
	}
	for i := 0; i < iterations; i++ {
		if !fixed {
			next, err := step(g)
			if err != nil {
				return errors.Wrapf(err, "[Walk] generation %d", i+1)
			}
			fixed = next.Equal(g)
			g = next
		}
		if err := visit(i+1, g); err != nil {
			return err
		}
	}
	return nil
}

// Last returns the index of the final generation, the iteration count
func (h History) Last() int {
	return h.last
}

// Len returns the number of generations, saturating at math.MaxInt
func (h History) Len() int {
	if len(h.gens) == 0 {
		return 0
	}
	if h.last == math.MaxInt {
		return math.MaxInt
	}
	return h.last + 1
}

// At returns generation i
func (h History) At(i int) Generation {
	if i < 0 || i > h.last || len(h.gens) == 0 {
		panic(errors.Errorf("model: history index %d out of range [0,%d]", i, h.last))
	}
	if i < len(h.gens) {
		return h.gens[i]
	}
	return h.gens[len(h.gens)-1]
}

// All yields every generation in order
func (h History) All() iter.Seq2[int, Generation] {
	return func(yield func(int, Generation) bool) {
		if len(h.gens) == 0 {
			return
		}
		for i := 0; ; i++ {
			if !yield(i, h.At(i)) || i == h.last {
				return
			}
		}
	}
}

// Period finds the first generation that repeats an earlier one.
// start is the index of the earlier occurrence and period the distance between
// them: a still life has period 1, a blinker period 2. An extinct history
// repeats the empty generation with period 1.
func (h History) Period() (start, period int, ok bool) {
	seen := make(map[string][]int, len(h.gens))
	for i, g := range h.gens {
		key := g.Hash()
		for _, j := range seen[key] {
			// hash buckets are confirmed by set equality
			if h.gens[j].Equal(g) {
				return j, i - j, true
			}
		}
		seen[key] = append(seen[key], i)
	}
	if len(h.gens) > 0 && h.last >= len(h.gens) {
		return len(h.gens) - 1, 1, true
	}
	return 0, 0, false
}
