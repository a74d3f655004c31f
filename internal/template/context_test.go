package template

import (
	"testing"
	"time"

	"github.com/pixel2html/p2h/pkg/models"
)

func TestNewTemplateContextDefaults(t *testing.T) {
	c := NewTemplateContext()
	if c.Slug != "untitled" {
		t.Errorf("Slug = %q, want untitled", c.Slug)
	}
	if c.Preprocessor != "sass" || c.StyleExt != "scss" {
		t.Errorf("Preprocessor/StyleExt = %q/%q, want sass/scss", c.Preprocessor, c.StyleExt)
	}
	if c.Framework != "none" || c.HasFramework {
		t.Errorf("Framework = %q HasFramework = %v, want none/false", c.Framework, c.HasFramework)
	}
	if c.Version != "dev" {
		t.Errorf("Version = %q, want dev", c.Version)
	}
}

func TestWithAnswers(t *testing.T) {
	a := models.ProjectAnswers{
		ProjectName:  "Café Landing",
		PageCount:    4,
		PageCountSet: true,
		ProjectType:  models.ProjectTypeResponsive,
		Preprocessor: models.PreprocessorStylus,
		Framework:    models.FrameworkNone,
		UseJQuery:    true,
		Modules:      []models.Module{models.ModuleParsley, models.ModuleTabs},
	}

	c := NewTemplateContext(
		WithAnswers(a),
		WithVersion("1.2.3"),
		WithCreatedAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)),
	)

	if c.Slug != "cafe-landing" {
		t.Errorf("Slug = %q, want cafe-landing", c.Slug)
	}
	if c.StyleExt != "styl" {
		t.Errorf("StyleExt = %q, want styl", c.StyleExt)
	}
	if !c.JQuery || !c.Modules.Parsley || !c.Modules.Tabs {
		t.Errorf("unexpected script flags: jquery=%v modules=%+v", c.JQuery, c.Modules)
	}
	if c.Modules.Modernizr || c.Modules.Slider || c.Modules.Masonry {
		t.Errorf("unexpected modules enabled: %+v", c.Modules)
	}
	if !c.Modules.Any() {
		t.Error("Modules.Any() = false, want true")
	}
	if c.Version != "1.2.3" || c.CreatedAt != "2024-05-01T12:00:00Z" {
		t.Errorf("meta = %q/%q", c.Version, c.CreatedAt)
	}
}

func TestWithAnswersFramework(t *testing.T) {
	c := NewTemplateContext(WithAnswers(models.ProjectAnswers{
		ProjectName:  "x",
		ProjectType:  models.ProjectTypeDesktop,
		Preprocessor: models.PreprocessorLess,
		Framework:    models.FrameworkBootstrap,
	}))
	if !c.HasFramework || c.Framework != "bootstrap" {
		t.Errorf("Framework = %q HasFramework = %v", c.Framework, c.HasFramework)
	}
	if c.Modules.Any() {
		t.Error("Modules.Any() = true without modules")
	}
}

func TestWithVersionIgnoresEmpty(t *testing.T) {
	c := NewTemplateContext(WithVersion(""))
	if c.Version != "dev" {
		t.Errorf("Version = %q, want dev", c.Version)
	}
}
