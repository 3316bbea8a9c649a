package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// historySize is the number of recent generation hashes kept for cycle detection
const historySize = 5

// Grid represents a bounded square game board.
// Cells outside the board count as dead; there is no wraparound.
type Grid struct {
	size    int
	cells   [][]bool
	next    [][]bool
	history []string
}

// NewGrid creates a size x size grid with every cell dead
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewGrid] size must be positive, got %d", size)
	}
	return &Grid{
		size:  size,
		cells: newCells(size, size),
		next:  newCells(size, size),
	}, nil
}

func newCells(rows, cols int) [][]bool {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return cells
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) error {
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrIndexOutOfBounds, "[Set] cell (%d, %d) outside %dx%d grid", row, col, g.size, g.size)
	}
	g.cells[row][col] = alive
	return nil
}

// Alive returns the state of a cell
func (g *Grid) Alive(row, col int) (bool, error) {
	if !g.inBounds(row, col) {
		return false, errors.Wrapf(ErrIndexOutOfBounds, "[Alive] cell (%d, %d) outside %dx%d grid", row, col, g.size, g.size)
	}
	return g.cells[row][col], nil
}

// Cells returns a copy of the current generation, indexed [row][col]
func (g *Grid) Cells() [][]bool {
	snapshot := newCells(g.size, g.size)
	for row := range g.cells {
		copy(snapshot[row], g.cells[row])
	}
	return snapshot
}

// Clear kills every cell and forgets the generation history
func (g *Grid) Clear() {
	for row := range g.cells {
		clear(g.cells[row])
	}
	g.history = nil
}

// countNeighbors counts living neighbors, clamping the 3x3 window to the grid
func (g *Grid) countNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.size-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.size-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// Step advances the grid by one generation.
// Every next state is computed from the current generation before any cell is replaced.
func (g *Grid) Step() {
	for row := range g.size {
		for col := range g.size {
			g.next[row][col] = rules.ApplyConwayRules(g.countNeighbors(row, col), g.cells[row][col])
		}
	}
	g.cells, g.next = g.next, g.cells
}

// Insert copies p into the grid centered on (row, col) and returns the grid.
//
// The target region starts at (row - rows/2, col - cols/2) and spans exactly
// the pattern's dimensions. Dead pattern cells overwrite live grid cells. If
// any part of the region falls outside the grid nothing is written.
func (g *Grid) Insert(p *Pattern, row, col int) (*Grid, error) {
	if p == nil {
		return g, errors.Wrap(ErrInvalidPattern, "[Insert] nil pattern")
	}

	top := row - p.Rows()/2
	left := col - p.Cols()/2
	bottom := top + p.Rows() - 1
	right := left + p.Cols() - 1

	if !g.inBounds(top, left) || !g.inBounds(bottom, right) {
		return g, errors.Wrapf(ErrIndexOutOfBounds,
			"[Insert] %dx%d pattern at (%d, %d) covers rows %d..%d cols %d..%d of %dx%d grid",
			p.Rows(), p.Cols(), row, col, top, bottom, left, right, g.size, g.size)
	}

	for r, cells := range p.cells {
		copy(g.cells[top+r][left:left+p.Cols()], cells)
	}
	return g, nil
}

// Population returns the total number of living cells
func (g *Grid) Population() (count int) {
	for row := range g.size {
		for col := range g.size {
			if g.cells[row][col] {
				count++
			}
		}
	}
	return
}

// Randomize sets each cell alive with probability density
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for row := range g.size {
		for col := range g.size {
			g.cells[row][col] = rng.Float64() < density
		}
	}
}

// Hash returns an MD5 hash of the current generation
func (g *Grid) Hash() string {
	h := md5.New()
	row := make([]byte, g.size)
	for _, cells := range g.cells {
		for col, alive := range cells {
			row[col] = 0
			if alive {
				row[col] = 1
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory records the current generation and reports whether it repeats
// one of the last historySize recorded generations (a still life or a short cycle)
func (g *Grid) UpdateHistory() bool {
	current := g.Hash()

	repeated := false
	for _, seen := range g.history {
		if seen == current {
			repeated = true
			break
		}
	}

	g.history = append(g.history, current)
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
	return repeated
}
