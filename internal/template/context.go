package template

import (
	"time"

	"github.com/pixel2html/p2h/internal/slug"
	"github.com/pixel2html/p2h/pkg/models"
)

// ModuleFlags exposes each optional jQuery module as a boolean so templates
// can emit per-module blocks.
type ModuleFlags struct {
	Parsley   bool
	Modernizr bool
	Slider    bool
	Tabs      bool
	Masonry   bool
}

// Any reports whether at least one module is enabled.
func (m ModuleFlags) Any() bool {
	return m.Parsley || m.Modernizr || m.Slider || m.Tabs || m.Masonry
}

// TemplateContext provides data for rendering the project boilerplate.
// All fields are exported for use with text/template.
type TemplateContext struct {
	// Project
	ProjectName  string
	Slug         string
	PageCount    int
	PageCountSet bool
	ProjectType  string // "desktop", "responsive", "mobile"

	// Styling
	Preprocessor string // "sass", "less", "stylus"
	StyleExt     string // "scss", "less", "styl"
	Framework    string // "basscss", "bootstrap", "foundation", "none"
	HasFramework bool

	// Scripts
	JQuery  bool
	Modules ModuleFlags

	// Meta
	Version   string
	CreatedAt string // RFC 3339
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext with defaults matching a
// framework-less Sass desktop project, then applies opts.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{
		Slug:         slug.Fallback,
		ProjectType:  string(models.ProjectTypeDesktop),
		Preprocessor: string(models.PreprocessorSass),
		StyleExt:     models.PreprocessorSass.Extension(),
		Framework:    string(models.FrameworkNone),
		Version:      "dev",
	}

	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// WithAnswers copies every collected answer into the context.
func WithAnswers(a models.ProjectAnswers) ContextOption {
	return func(c *TemplateContext) {
		c.ProjectName = a.ProjectName
		c.Slug = slug.Make(a.ProjectName)
		c.PageCount = a.PageCount
		c.PageCountSet = a.PageCountSet
		if a.ProjectType != "" {
			c.ProjectType = string(a.ProjectType)
		}
		if a.Preprocessor != "" {
			c.Preprocessor = string(a.Preprocessor)
			c.StyleExt = a.Preprocessor.Extension()
		}
		if a.Framework != "" {
			c.Framework = string(a.Framework)
		}
		c.HasFramework = !a.Framework.IsNone() && a.Framework != ""
		c.JQuery = a.UseJQuery
		c.Modules = ModuleFlags{
			Parsley:   a.HasModule(models.ModuleParsley),
			Modernizr: a.HasModule(models.ModuleModernizr),
			Slider:    a.HasModule(models.ModuleSlider),
			Tabs:      a.HasModule(models.ModuleTabs),
			Masonry:   a.HasModule(models.ModuleMasonry),
		}
	}
}

// WithVersion sets the generator version stamped into package.json.
func WithVersion(version string) ContextOption {
	return func(c *TemplateContext) {
		if version != "" {
			c.Version = version
		}
	}
}

// WithCreatedAt sets the creation timestamp.
func WithCreatedAt(t time.Time) ContextOption {
	return func(c *TemplateContext) {
		c.CreatedAt = t.UTC().Format(time.RFC3339)
	}
}
