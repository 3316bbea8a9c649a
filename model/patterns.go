package model

import (
	"sort"

	"github.com/pkg/errors"
)

const (
	PatternGlider    = "glider"
	PatternBlinker   = "blinker"
	PatternGliderGun = "glider_gun"
)

var library = map[string]func() *Pattern{
	PatternGlider:    Glider,
	PatternBlinker:   Blinker,
	PatternGliderGun: GliderGun,
}

func mustPattern(bits [][]uint8) *Pattern {
	p, err := PatternFromBits(bits)
	if err != nil {
		panic(err)
	}
	return p
}

// Glider returns a new 3x3 glider travelling towards the bottom right
func Glider() *Pattern {
	return mustPattern([][]uint8{
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	})
}

// Blinker returns a new 3x3 horizontal blinker, a period 2 oscillator
func Blinker() *Pattern {
	return mustPattern([][]uint8{
		{0, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	})
}

// GliderGun returns a new 36x9 Gosper glider gun, laid out vertically
func GliderGun() *Pattern {
	return mustPattern([][]uint8{
		{0, 0, 0, 0, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 1, 0},
		{0, 0, 1, 0, 0, 0, 0, 0, 1},
		{0, 0, 1, 0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 1, 0, 0, 0, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 0, 0, 0, 0, 0},
	})
}

// Lookup returns a new copy of the named library pattern
func Lookup(name string) (*Pattern, error) {
	build, ok := library[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Lookup] %q", name)
	}
	return build(), nil
}

// Names lists the library pattern names in sorted order
func Names() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
