package template

import (
	"io/fs"
	"slices"
	"testing"
)

func TestFilePlanFor(t *testing.T) {
	tests := []struct {
		framework string
		want      []string
	}{
		{"none", []string{"package.json", ".jshintrc", ".gitignore", ".gitattributes", "gulpfile.js", ".bowerrc"}},
		{"bootstrap", []string{"package.json", ".jshintrc", ".gitignore", ".gitattributes", "gulpfile.js", "gulp/vendor/bootstrap.js", ".bowerrc"}},
		{"foundation", []string{"package.json", ".jshintrc", ".gitignore", ".gitattributes", "gulpfile.js", "gulp/vendor/foundation.js", ".bowerrc"}},
		{"basscss", []string{"package.json", ".jshintrc", ".gitignore", ".gitattributes", "gulpfile.js", "gulp/vendor/basscss.js", ".bowerrc"}},
	}
	for _, tt := range tests {
		t.Run(tt.framework, func(t *testing.T) {
			c := NewTemplateContext(func(c *TemplateContext) { c.Framework = tt.framework })
			got := DefaultPlan().For(c).Destinations()
			if !slices.Equal(got, tt.want) {
				t.Errorf("For(%s) = %v, want %v", tt.framework, got, tt.want)
			}
		})
	}
}

func TestFilePlanForNilContext(t *testing.T) {
	got := DefaultPlan().For(nil)
	for _, f := range got {
		if f.When != nil {
			t.Errorf("conditional file %q included without context", f.Dest)
		}
	}
}

func TestFileSpecRender(t *testing.T) {
	if !(FileSpec{Source: "gulp/_gulpfile.js.tmpl"}).Render() {
		t.Error("tmpl source should render")
	}
	if (FileSpec{Source: "base/jshintrc"}).Render() {
		t.Error("verbatim source should not render")
	}
}

func TestEmbeddedTemplatesCoverPlan(t *testing.T) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates error: %v", err)
	}
	for _, f := range DefaultPlan() {
		if _, err := fs.Stat(fsys, f.Source); err != nil {
			t.Errorf("planned source %q missing: %v", f.Source, err)
		}
	}
}
