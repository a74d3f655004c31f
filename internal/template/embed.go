package template

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var embedded embed.FS

// EmbeddedTemplates returns the boilerplate sources rooted at the templates
// directory.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embedded, "templates")
}
