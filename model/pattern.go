package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Pattern is an immutable rectangular stencil of cell states.
// Every transform returns a new Pattern.
type Pattern struct {
	cells [][]bool
}

// NewPattern builds a pattern from a copy of cells, indexed [row][col]
func NewPattern(cells [][]bool) (*Pattern, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidPattern, "[NewPattern] pattern must have at least one cell")
	}
	cols := len(cells[0])
	grid := newCells(len(cells), cols)
	for r, row := range cells {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrInvalidPattern, "[NewPattern] row %d has %d cells, want %d", r, len(row), cols)
		}
		copy(grid[r], row)
	}
	return &Pattern{cells: grid}, nil
}

// PatternFromBits builds a pattern from a 0/1 literal. Any other value is rejected.
func PatternFromBits(bits [][]uint8) (*Pattern, error) {
	cells := make([][]bool, len(bits))
	for r, row := range bits {
		cells[r] = make([]bool, len(row))
		for c, bit := range row {
			switch bit {
			case 0:
			case 1:
				cells[r][c] = true
			default:
				return nil, errors.Wrapf(ErrInvalidCellValue, "[PatternFromBits] cell (%d, %d) is %d", r, c, bit)
			}
		}
	}
	return NewPattern(cells)
}

// Rows returns the pattern height
func (p *Pattern) Rows() int { return len(p.cells) }

// Cols returns the pattern width
func (p *Pattern) Cols() int { return len(p.cells[0]) }

// Cells returns a copy of the pattern cells
func (p *Pattern) Cells() [][]bool {
	cells := newCells(p.Rows(), p.Cols())
	for r := range p.cells {
		copy(cells[r], p.cells[r])
	}
	return cells
}

// Equal reports whether both patterns have the same dimensions and cells
func (p *Pattern) Equal(other *Pattern) bool {
	if other == nil || p.Rows() != other.Rows() || p.Cols() != other.Cols() {
		return false
	}
	for r := range p.cells {
		for c := range p.cells[r] {
			if p.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// FlipVertical returns the pattern upside down
func (p *Pattern) FlipVertical() *Pattern {
	rows := p.Rows()
	cells := newCells(rows, p.Cols())
	for r := range p.cells {
		copy(cells[rows-1-r], p.cells[r])
	}
	return &Pattern{cells: cells}
}

// FlipHorizontal returns the pattern reversed left to right
func (p *Pattern) FlipHorizontal() *Pattern {
	cols := p.Cols()
	cells := newCells(p.Rows(), cols)
	for r, row := range p.cells {
		for c, alive := range row {
			cells[r][cols-1-c] = alive
		}
	}
	return &Pattern{cells: cells}
}

// FlipDiag returns the transpose of the pattern. A non-square pattern swaps its dimensions.
func (p *Pattern) FlipDiag() *Pattern {
	cells := newCells(p.Cols(), p.Rows())
	for r, row := range p.cells {
		for c, alive := range row {
			cells[c][r] = alive
		}
	}
	return &Pattern{cells: cells}
}

// rotateOnce turns the pattern 90 degrees counter-clockwise: transpose, then reverse the rows
func (p *Pattern) rotateOnce() *Pattern {
	return p.FlipDiag().FlipVertical()
}

// Rotate returns the pattern rotated n * 90 degrees counter-clockwise
func (p *Pattern) Rotate(n int) (*Pattern, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidRotationCount, "[Rotate] n must be non-negative, got %d", n)
	}

	rotated := p
	// four quarter turns are the identity
	for range n % 4 {
		rotated = rotated.rotateOnce()
	}
	return rotated, nil
}

// String renders the pattern one row per line, '#' alive and '.' dead
func (p *Pattern) String() string {
	var sb strings.Builder
	for r, row := range p.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, alive := range row {
			if alive {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
