package main

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

var errRender = errors.New("render failed")

type recordingRenderer struct {
	frames  []frame
	onFrame func(generation int) error
}

func (r *recordingRenderer) Render(generation int, cells [][]bool) error {
	r.frames = append(r.frames, frame{generation: generation, cells: cells})
	if r.onFrame != nil {
		return r.onFrame(generation)
	}
	return nil
}

func blinkerConfig(size int) utils.Config {
	return utils.Config{
		Simulation: utils.SimulationConfig{Size: size},
		Placements: []utils.Placement{{Pattern: model.PatternBlinker, Row: size / 2, Col: size / 2}},
	}
}

func mustBuildGrid(t *testing.T, config utils.Config) *model.Grid {
	t.Helper()
	grid, err := buildGrid(config)
	if err != nil {
		t.Fatalf("buildGrid: %v", err)
	}
	return grid
}

func TestPlacementPattern(t *testing.T) {
	got, err := placementPattern(utils.Placement{Pattern: model.PatternGlider, Rotate: 1, FlipVertical: true})
	if err != nil {
		t.Fatalf("placementPattern: %v", err)
	}
	rotated, _ := model.Glider().Rotate(1)
	if want := rotated.FlipVertical(); !got.Equal(want) {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}

	if _, err = placementPattern(utils.Placement{Pattern: "pulsar"}); !errors.Is(err, model.ErrUnknownPattern) {
		t.Fatalf("err = %v, want ErrUnknownPattern", err)
	}
	if _, err = placementPattern(utils.Placement{Pattern: model.PatternGlider, Rotate: -2}); !errors.Is(err, model.ErrInvalidRotationCount) {
		t.Fatalf("err = %v, want ErrInvalidRotationCount", err)
	}
}

func TestBuildGridDefaultConfig(t *testing.T) {
	grid := mustBuildGrid(t, utils.DefaultConfig())
	if grid.Size() != 50 {
		t.Fatalf("size = %d, want 50", grid.Size())
	}
	if grid.Population() != 36 {
		t.Fatalf("population = %d, want the 36 cells of the glider gun", grid.Population())
	}
}

func TestBuildGridErrors(t *testing.T) {
	outside := blinkerConfig(5)
	outside.Placements[0].Row = 0
	if _, err := buildGrid(outside); !errors.Is(err, model.ErrIndexOutOfBounds) {
		t.Fatalf("err = %v, want ErrIndexOutOfBounds", err)
	}

	if _, err := buildGrid(utils.Config{}); !errors.Is(err, model.ErrInvalidSize) {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}
}

func TestBuildGridRandomFill(t *testing.T) {
	config := utils.Config{Simulation: utils.SimulationConfig{Size: 6, RandomDensity: 1}}
	if got := mustBuildGrid(t, config).Population(); got != 36 {
		t.Fatalf("population = %d, want 36", got)
	}
}

func TestRunGameStopsAtMaxGenerations(t *testing.T) {
	config := blinkerConfig(5)
	config.Simulation.MaxGenerations = 3
	grid := mustBuildGrid(t, config)
	renderer := &recordingRenderer{}

	reason, err := runGame(context.Background(), config.Simulation, grid, renderer, utils.NewStats(nil))
	if err != nil {
		t.Fatalf("runGame: %v", err)
	}
	if reason != stopMaxGenerations {
		t.Fatalf("reason = %q, want %q", reason, stopMaxGenerations)
	}
	if len(renderer.frames) != 4 {
		t.Fatalf("rendered %d frames, want 4", len(renderer.frames))
	}

	for i, f := range renderer.frames {
		if f.generation != i {
			t.Fatalf("frame %d has generation %d", i, f.generation)
		}
		alive := f.cells[1][2]
		if want := i%2 == 1; alive != want {
			t.Fatalf("generation %d: cell (1,2) alive=%v, expected %v", i, alive, want)
		}
	}
	if !grid.Cells()[1][2] {
		t.Fatal("grid should be vertical after 3 generations")
	}
}

func TestRunGameStopsOnStagnation(t *testing.T) {
	config := blinkerConfig(5)
	config.Simulation.StopOnStagnation = true
	config.Simulation.StagnationThreshold = 2
	renderer := &recordingRenderer{}

	reason, err := runGame(context.Background(), config.Simulation, mustBuildGrid(t, config), renderer, utils.NewStats(nil))
	if err != nil {
		t.Fatalf("runGame: %v", err)
	}
	if reason != stopStagnation {
		t.Fatalf("reason = %q, want %q", reason, stopStagnation)
	}
	if len(renderer.frames) != 4 {
		t.Fatalf("rendered %d frames, want 4", len(renderer.frames))
	}
}

func TestRunGameStopsOnExtinction(t *testing.T) {
	grid, err := model.NewGrid(5)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if err = grid.Set(2, 2, true); err != nil {
		t.Fatalf("Set: %v", err)
	}
	stats := utils.NewStats(nil)
	renderer := &recordingRenderer{}

	reason, err := runGame(context.Background(), utils.SimulationConfig{Size: 5}, grid, renderer, stats)
	if err != nil {
		t.Fatalf("runGame: %v", err)
	}
	if reason != stopExtinction {
		t.Fatalf("reason = %q, want %q", reason, stopExtinction)
	}
	if len(renderer.frames) != 2 {
		t.Fatalf("rendered %d frames, want 2", len(renderer.frames))
	}
	if stats.TotalGenerations != 1 {
		t.Fatalf("TotalGenerations = %d, want 1", stats.TotalGenerations)
	}
}

func TestRunGameRenderError(t *testing.T) {
	config := blinkerConfig(5)
	renderer := &recordingRenderer{onFrame: func(generation int) error {
		if generation == 2 {
			return errRender
		}
		return nil
	}}

	_, err := runGame(context.Background(), config.Simulation, mustBuildGrid(t, config), renderer, utils.NewStats(nil))
	if !errors.Is(err, errRender) {
		t.Fatalf("err = %v, want errRender", err)
	}
}

func TestRunGameInterrupted(t *testing.T) {
	config := utils.Config{
		Simulation: utils.SimulationConfig{Size: 20, FrameRate: time.Hour},
		Placements: []utils.Placement{{Pattern: model.PatternGlider, Row: 5, Col: 5}},
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	renderer := &recordingRenderer{onFrame: func(int) error {
		cancel()
		return nil
	}}

	reason, err := runGame(ctx, config.Simulation, mustBuildGrid(t, config), renderer, utils.NewStats(nil))
	if err != nil {
		t.Fatalf("runGame: %v", err)
	}
	if reason != stopInterrupted {
		t.Fatalf("reason = %q, want %q", reason, stopInterrupted)
	}
	if len(renderer.frames) != 1 {
		t.Fatalf("rendered %d frames, want 1", len(renderer.frames))
	}
}
