package model

import "github.com/pkg/errors"

var (
	// ErrInvalidSize is returned when a grid is constructed with a non-positive size
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrIndexOutOfBounds is returned when a read or write addresses a cell outside the grid
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrInvalidRotationCount is returned when a pattern is rotated a negative number of times
	ErrInvalidRotationCount = errors.New("invalid rotation count")
	// ErrInvalidPattern is returned for empty or ragged pattern cell arrays
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidCellValue is returned when a 0/1 literal holds any other value
	ErrInvalidCellValue = errors.New("invalid cell value")
	// ErrUnknownPattern is returned by Lookup for names outside the library
	ErrUnknownPattern = errors.New("unknown pattern")
)
