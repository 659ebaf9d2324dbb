package model

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// LivingNeighbors returns the neighbors of c that are alive in g
func LivingNeighbors(c Cell, g Generation) []Cell {
	var living []Cell
	for _, n := range NeighborsOf(c) {
		if Contains(g, n) {
			living = append(living, n)
		}
	}
	return living
}

// WillBeAlive reports whether c is alive in the generation after g
func WillBeAlive(c Cell, g Generation) bool {
	return rules.ApplyConwayRules(len(LivingNeighbors(c, g)), Contains(g, c))
}

// CalculateNext derives the next generation from g.
// Births can only happen one cell outside the current bounding box, so the
// scan covers exactly that expanded rectangle.
func CalculateNext(g Generation) Generation {
	scan := CornersOf(g).Expand(1)
	return Seed(nextRows(g, scan, scan.BottomLeft.Y, scan.TopRight.Y)...)
}

// CalculateNextParallel computes the same result as CalculateNext, splitting
// the scanned rows across workers. workers <= 0 means one per CPU. Workers
// stop between rows once ctx is done.
func CalculateNextParallel(ctx context.Context, g Generation, workers int) (Generation, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	scan := CornersOf(g).Expand(1)

	var (
		eg, egCtx     = errgroup.WithContext(ctx)
		height        = scan.Height()
		rowsPerWorker = (height + workers - 1) / workers // Ceiling division
		results       = make([][]Cell, workers)
	)

	for i := range workers {
		var (
			startRow = scan.BottomLeft.Y + i*rowsPerWorker
			endRow   = min(startRow+rowsPerWorker-1, scan.TopRight.Y)
		)
		if startRow > scan.TopRight.Y {
			break
		}

		eg.Go(func() error {
			for y := startRow; y <= endRow; y++ {
				if err := egCtx.Err(); err != nil {
					return err
				}
				results[i] = append(results[i], nextRows(g, scan, y, y)...)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return Generation{}, errors.Wrap(err, "[CalculateNextParallel] row workers failed")
	}

	var cells []Cell
	for _, part := range results {
		cells = append(cells, part...)
	}
	return Seed(cells...), nil
}

// NextGeneration calculates the next generation based on configuration
func NextGeneration(ctx context.Context, g Generation, config utils.Config) (Generation, error) {
	if config.UseParallel {
		return CalculateNextParallel(ctx, g, config.Workers)
	}
	return CalculateNext(g), nil
}

// nextRows evaluates the rule for every cell of scan in rows fromY..toY inclusive
func nextRows(g Generation, scan Corners, fromY, toY int) []Cell {
	var alive []Cell
	for y := fromY; y <= toY; y++ {
		for x := scan.BottomLeft.X; x <= scan.TopRight.X; x++ {
			c := Cell{X: x, Y: y}
			if WillBeAlive(c, g) {
				alive = append(alive, c)
			}
		}
	}
	return alive
}
