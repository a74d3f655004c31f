package template

import (
	"strings"

	"github.com/pixel2html/p2h/internal/defs"
)

// FileSpec maps one template source to its destination in the project.
type FileSpec struct {
	Source string // Path inside the template FS
	Dest   string // Slash-separated path relative to the output root

	// When gates the file on the context. Nil means always deployed.
	When func(*TemplateContext) bool
}

// Render reports whether the source is a template that must be rendered.
func (f FileSpec) Render() bool {
	return strings.HasSuffix(f.Source, ".tmpl")
}

// FilePlan is the ordered list of files a scaffold run deploys.
type FilePlan []FileSpec

// DefaultPlan returns the Pixel2HTML boilerplate plan.
func DefaultPlan() FilePlan {
	return FilePlan{
		{Source: "base/_package.json.tmpl", Dest: defs.PackageJSON},
		{Source: "base/jshintrc", Dest: defs.JSHintRC},
		{Source: "git/gitignore", Dest: defs.GitIgnore},
		{Source: "git/gitattributes", Dest: defs.GitAttributes},
		{Source: "gulp/_gulpfile.js.tmpl", Dest: defs.GulpfileJS},
		vendorTask("basscss"),
		vendorTask("bootstrap"),
		vendorTask("foundation"),
		{Source: "bower/bowerrc", Dest: defs.BowerRC},
	}
}

// vendorTask plans the gulp vendor task of a single framework.
func vendorTask(framework string) FileSpec {
	return FileSpec{
		Source: "gulp/vendor/" + framework + ".js.tmpl",
		Dest:   defs.GulpVendorDir + "/" + framework + ".js",
		When: func(c *TemplateContext) bool {
			return c.Framework == framework
		},
	}
}

// For returns the files that apply to tmplCtx, in plan order.
func (p FilePlan) For(tmplCtx *TemplateContext) FilePlan {
	out := make(FilePlan, 0, len(p))
	for _, f := range p {
		if f.When != nil && (tmplCtx == nil || !f.When(tmplCtx)) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Destinations returns the destination paths of the plan.
func (p FilePlan) Destinations() []string {
	out := make([]string, len(p))
	for i, f := range p {
		out[i] = f.Dest
	}
	return out
}
