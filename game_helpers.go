package main

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Reasons a run stops
const (
	stopMaxGenerations = "reached maximum generations"
	stopExtinction     = "extinction"
	stopStagnation     = "stagnation detected"
	stopInterrupted    = "interrupted"
)

// frame is one generation snapshot handed to the renderer
type frame struct {
	generation int
	cells      [][]bool
}

// placementPattern resolves a placement's library pattern and applies its transforms
func placementPattern(p utils.Placement) (*model.Pattern, error) {
	pattern, err := model.Lookup(p.Pattern)
	if err != nil {
		return nil, err
	}
	if pattern, err = pattern.Rotate(p.Rotate); err != nil {
		return nil, err
	}
	if p.FlipVertical {
		pattern = pattern.FlipVertical()
	}
	if p.FlipHorizontal {
		pattern = pattern.FlipHorizontal()
	}
	if p.FlipDiag {
		pattern = pattern.FlipDiag()
	}
	return pattern, nil
}

// buildGrid creates the initial generation: optional random fill, then every placement in order
func buildGrid(config utils.Config) (*model.Grid, error) {
	sim := config.Simulation

	grid, err := model.NewGrid(sim.Size)
	if err != nil {
		return nil, err
	}

	if sim.RandomDensity > 0 {
		rng := rand.New(rand.NewPCG(uint64(sim.Seed), 0))
		grid.Randomize(rng, sim.RandomDensity)
	}

	for i, placement := range config.Placements {
		pattern, err := placementPattern(placement)
		if err != nil {
			return nil, errors.Wrapf(err, "[buildGrid] placement %d", i)
		}
		if _, err = grid.Insert(pattern, placement.Row, placement.Col); err != nil {
			return nil, errors.Wrapf(err, "[buildGrid] placement %d (%s)", i, placement.Pattern)
		}
		log.Printf("placed %s at (%d, %d)", placement.Pattern, placement.Row, placement.Col)
	}

	return grid, nil
}

// runGame steps the grid and renders every generation until a stop condition
// or ctx is cancelled. The grid is only touched by the stepping goroutine; the
// renderer sees copies and owns the frame pacing.
func runGame(
	ctx context.Context,
	sim utils.SimulationConfig,
	grid *model.Grid,
	renderer model.Renderer,
	stats *utils.Stats,
) (string, error) {
	var (
		eg, egCtx = errgroup.WithContext(ctx)
		frames    = make(chan frame)
		reason    string
	)

	eg.Go(func() error {
		defer close(frames)

		threshold := max(sim.StagnationThreshold, 1)
		stagnantCount := 0

		for generation := 0; ; generation++ {
			select {
			case frames <- frame{generation: generation, cells: grid.Cells()}:
			case <-egCtx.Done():
				reason = stopInterrupted
				return nil
			}

			if sim.MaxGenerations > 0 && generation >= sim.MaxGenerations {
				reason = stopMaxGenerations
				return nil
			}
			if grid.Population() == 0 {
				reason = stopExtinction
				return nil
			}

			if grid.UpdateHistory() {
				stagnantCount++
			} else {
				stagnantCount = 0
			}
			if sim.StopOnStagnation && stagnantCount >= threshold {
				reason = stopStagnation
				return nil
			}

			start := time.Now()
			grid.Step()
			stats.Update(generation+1, grid.Population(), time.Since(start))
		}
	})

	eg.Go(func() error {
		for f := range frames {
			if err := renderer.Render(f.generation, f.cells); err != nil {
				return err
			}
			if sim.FrameRate <= 0 {
				continue
			}
			select {
			case <-time.After(sim.FrameRate):
			case <-egCtx.Done():
				return nil
			}
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return reason, errors.Wrap(err, "[runGame] render failed")
	}
	return reason, nil
}
