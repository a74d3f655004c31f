package scaffold

import (
	"encoding/json"
	"fmt"

	"github.com/pixel2html/p2h/internal/resolver"
	"github.com/pixel2html/p2h/internal/slug"
)

// bowerPrefix is prepended to the project slug to form the bower package name.
const bowerPrefix = "pixel2html-"

// BowerFile is the content of the generated bower.json.
type BowerFile struct {
	Name         string                      `json:"name"`
	Private      bool                        `json:"private"`
	Dependencies resolver.DependencyManifest `json:"dependencies"`
}

// NewBowerFile builds the bower.json document for a project.
func NewBowerFile(projectName string, manifest resolver.DependencyManifest) BowerFile {
	return BowerFile{
		Name:         BowerName(projectName),
		Private:      true,
		Dependencies: manifest,
	}
}

// BowerName returns "pixel2html-" followed by the project slug.
func BowerName(projectName string) string {
	return bowerPrefix + slug.Make(projectName)
}

// Encode renders the document with 2-space indentation and a trailing newline.
func (b BowerFile) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode bower.json: %w", err)
	}
	return append(data, '\n'), nil
}
