// Package scaffold writes a Pixel2HTML project skeleton from validated
// answers and a resolved dependency manifest.
package scaffold

import "errors"

// Sentinel errors for the scaffold package.
var (
	// ErrNotDirectory is returned when a skeleton directory path is occupied by a file.
	ErrNotDirectory = errors.New("path exists and is not a directory")
)
