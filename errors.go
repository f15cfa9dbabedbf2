package maze

import "errors"

var (
	// ErrTooSmall is returned when a requested maze is not more than 2
	// pixels in either dimension, so it can't hold a single cell.
	ErrTooSmall = errors.New("maze: maze is too small to generate")
	// ErrUnexpectedDirection indicates an internal error: a direction other
	// than north, east, south or west was used.
	ErrUnexpectedDirection = errors.New("maze: unexpected value for direction")
	// ErrUnknownStrategy is returned by New for an undefined Strategy.
	ErrUnknownStrategy = errors.New("maze: unknown generation strategy")
	// ErrAsymmetricPassage is returned by Validate when a cell's connection
	// isn't mirrored by its neighbor.
	ErrAsymmetricPassage = errors.New("maze: connection is not mirrored")
	// ErrCycle is returned by Validate when the passages form a loop.
	ErrCycle = errors.New("maze: passages contain a cycle")
	// ErrDisconnected is returned by Validate when some cell can't be
	// reached from the others.
	ErrDisconnected = errors.New("maze: not every cell is reachable")
)
