package model

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// ansiClear moves the cursor home and clears the screen
	ansiClear = "\033[H\033[2J"
)

// Renderer consumes one generation snapshot at a time. It never mutates the grid.
type Renderer interface {
	Render(generation int, cells [][]bool) error
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
	// ClearScreen redraws each frame in place
	ClearScreen bool
}

// NewTerminalRenderer returns a renderer writing frames to out
func NewTerminalRenderer(out io.Writer, clearScreen bool) *TerminalRenderer {
	return &TerminalRenderer{Out: out, ClearScreen: clearScreen}
}

// Render draws a single generation
func (r *TerminalRenderer) Render(generation int, cells [][]bool) error {
	w := bufio.NewWriter(r.Out)
	if r.ClearScreen {
		w.WriteString(ansiClear)
	}
	fmt.Fprintf(w, "Gen: %d\n", generation)
	for _, row := range cells {
		for _, alive := range row {
			if alive {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "[Render] failed to write generation %d", generation)
	}
	return nil
}
