// Package template renders and deploys the embedded boilerplate files of a
// Pixel2HTML project.
package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound is returned when a planned template is missing from the source FS.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateKey is returned when template execution references an unknown key.
	ErrMissingTemplateKey = errors.New("missing template key")

	// ErrUnexpandedToken is returned when rendered output still contains template tokens.
	ErrUnexpandedToken = errors.New("unexpanded template token")

	// ErrPathTraversal is returned when a destination path escapes the output root.
	ErrPathTraversal = errors.New("path traversal detected")
)
