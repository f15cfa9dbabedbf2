package network

import "errors"

var (
	// ErrUnexpectedDirection indicates a direction other than north, south,
	// east or west was used.
	ErrUnexpectedDirection = errors.New("network: unexpected value for direction")
	// ErrNoEntrance is returned when the top row of an image has no open
	// pixel.
	ErrNoEntrance = errors.New("network: no open pixel in the first row")
	// ErrNoExit is returned when the bottom row of an image has no open
	// pixel.
	ErrNoExit = errors.New("network: no open pixel in the last row")
)
