package model_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/utils"
)

var (
	blinkerHorizontal = model.FromPairs([][2]int{{0, 1}, {1, 1}, {2, 1}})
	blinkerVertical   = model.FromPairs([][2]int{{1, 0}, {1, 1}, {1, 2}})

	block        = model.FromPairs([][2]int{{-2, -2}, {-1, -2}, {-2, -1}, {-1, -1}})
	gliderSouth  = model.FromPairs([][2]int{{1, 1}, {2, 1}, {3, 1}, {3, 2}, {2, 3}})
	gliderNorth  = model.FromPairs([][2]int{{1, 3}, {2, 3}, {3, 3}, {3, 2}, {2, 1}})
	rpentomino   = model.FromPairs([][2]int{{3, 2}, {2, 3}, {3, 3}, {3, 4}, {4, 4}})
	emptyGen     model.Generation
	singleCellAt = model.Seed(model.Cell{X: 7, Y: 7})
)

func TestLivingNeighbors(t *testing.T) {
	assert.Empty(t, model.LivingNeighbors(model.Cell{}, emptyGen))

	living := model.LivingNeighbors(model.Cell{X: 1, Y: 1}, blinkerHorizontal)
	assert.ElementsMatch(t, []model.Cell{{X: 0, Y: 1}, {X: 2, Y: 1}}, living)

	living = model.LivingNeighbors(model.Cell{X: 1, Y: 0}, blinkerHorizontal)
	assert.Len(t, living, 3)

	assert.Len(t, model.LivingNeighbors(model.Cell{X: 1, Y: 1}, square), 3)
}

// TestWillBeAlive checks the rule against an independent neighbor count for
// every cell around several patterns.
func TestWillBeAlive(t *testing.T) {
	for _, g := range []model.Generation{emptyGen, singleCellAt, square, blinkerHorizontal, rpentomino, gliderSouth} {
		scan := model.CornersOf(g).Expand(2)
		for y := scan.BottomLeft.Y; y <= scan.TopRight.Y; y++ {
			for x := scan.BottomLeft.X; x <= scan.TopRight.X; x++ {
				c := model.Cell{X: x, Y: y}
				count := 0
				for dx := -1; dx <= 1; dx++ {
					for dy := -1; dy <= 1; dy++ {
						if (dx != 0 || dy != 0) && model.Contains(g, model.Cell{X: x + dx, Y: y + dy}) {
							count++
						}
					}
				}
				want := (model.Contains(g, c) && count == 2) || count == 3
				assert.Equal(t, want, model.WillBeAlive(c, g), "cell %v in %v", c, g)
			}
		}
	}
}

func TestWillBeAlive_Cases(t *testing.T) {
	cases := []struct {
		name string
		cell model.Cell
		g    model.Generation
		want bool
	}{
		{"Underpopulation", model.Cell{X: 7, Y: 7}, singleCellAt, false},
		{"SurvivesWithTwo", model.Cell{X: 1, Y: 1}, blinkerHorizontal, true},
		{"DeadWithTwoStaysDead", model.Cell{X: 0, Y: 0}, model.FromPairs([][2]int{{1, 0}, {0, 1}}), false},
		{"BirthWithThree", model.Cell{X: 1, Y: 0}, blinkerHorizontal, true},
		{"SurvivesWithThree", model.Cell{X: 1, Y: 1}, square, true},
		{"Overpopulation", model.Cell{X: 1, Y: 1}, model.FromPairs([][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}}), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, model.WillBeAlive(tc.cell, tc.g))
		})
	}
}

func TestCalculateNext_StillLife(t *testing.T) {
	next := model.CalculateNext(square)
	assert.True(t, next.Equal(square), "got %v", next)
}

func TestCalculateNext_Empty(t *testing.T) {
	assert.True(t, model.CalculateNext(emptyGen).IsEmpty())
	assert.True(t, model.CalculateNext(singleCellAt).IsEmpty())
}

func TestCalculateNext_Blinker(t *testing.T) {
	g := blinkerHorizontal
	for i := range 6 {
		g = model.CalculateNext(g)
		want := blinkerVertical
		if i%2 == 1 {
			want = blinkerHorizontal
		}
		require.True(t, g.Equal(want), "step %d: got %v", i+1, g)
	}
}

func TestCalculateNext_DoesNotMutateInput(t *testing.T) {
	before := blinkerHorizontal.Cells()
	_ = model.CalculateNext(blinkerHorizontal)
	assert.Equal(t, before, blinkerHorizontal.Cells())
}

// TestCalculateNext_Glider checks that four steps reproduce a glider one cell
// over diagonally, in the direction its full row points away from.
func TestCalculateNext_Glider(t *testing.T) {
	cases := []struct {
		name   string
		seed   model.Generation
		dx, dy int
	}{
		{"FullRowBelow", gliderSouth, 1, -1},
		{"FullRowAbove", gliderNorth, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.seed
			for range 4 {
				g = model.CalculateNext(g)
			}
			want := tc.seed.Translate(tc.dx, tc.dy)
			assert.True(t, g.Equal(want), "got %v, want %v", g, want)
		})
	}
}

func TestCalculateNext_LibraryGlider(t *testing.T) {
	seed, ok := patterns.Lookup("glider")
	require.True(t, ok)

	g := seed
	for range 4 {
		g = model.CalculateNext(g)
	}
	want := block.Union(gliderSouth.Translate(1, -1))
	assert.True(t, g.Equal(want), "block stays put while the glider moves: got %v", g)
}

func TestCalculateNextParallel_MatchesSerial(t *testing.T) {
	for _, tmpl := range patterns.Templates() {
		for _, workers := range []int{0, 1, 3, 64} {
			t.Run(fmt.Sprintf("%s/workers=%d", tmpl.Name, workers), func(t *testing.T) {
				serial, parallel := tmpl.Seed(), tmpl.Seed()
				for step := range 30 {
					serial = model.CalculateNext(serial)
					var err error
					parallel, err = model.CalculateNextParallel(context.Background(), parallel, workers)
					require.NoError(t, err)
					require.True(t, serial.Equal(parallel), "diverged at step %d", step+1)
				}
			})
		}
	}
}

func TestCalculateNextParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	next, err := model.CalculateNextParallel(ctx, rpentomino, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, next.IsEmpty())
}

func TestNextGeneration_UsesConfig(t *testing.T) {
	ctx := context.Background()
	config := utils.DefaultConfig()
	next, err := model.NextGeneration(ctx, blinkerHorizontal, config)
	require.NoError(t, err)
	assert.True(t, next.Equal(blinkerVertical))

	config.UseParallel = true
	config.Workers = 2
	next, err = model.NextGeneration(ctx, blinkerHorizontal, config)
	require.NoError(t, err)
	assert.True(t, next.Equal(blinkerVertical))
}

func benchmarkEngine(b *testing.B, step model.StepFunc) {
	seed, _ := patterns.Lookup("rpentomino")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := seed
		for range 50 {
			g, _ = step(g)
		}
	}
}

func Benchmark_CalculateNext(b *testing.B) {
	engines := map[string]model.StepFunc{
		"serial": model.Serial,
		"parallel": func(g model.Generation) (model.Generation, error) {
			return model.CalculateNextParallel(context.Background(), g, 0)
		},
	}
	for _, name := range []string{"parallel", "serial"} {
		b.Run(name, func(b *testing.B) {
			benchmarkEngine(b, engines[name])
		})
	}
}
