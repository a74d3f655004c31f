package models_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/pixel2html/p2h/pkg/models"
)

func TestParseProjectType(t *testing.T) {
	tests := []struct {
		in      string
		want    models.ProjectType
		wantErr bool
	}{
		{"desktop", models.ProjectTypeDesktop, false},
		{"Responsive", models.ProjectTypeResponsive, false},
		{"  mobile ", models.ProjectTypeMobile, false},
		{"tablet", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := models.ParseProjectType(tt.in)
			if tt.wantErr {
				if !errors.Is(err, models.ErrInvalidChoice) {
					t.Fatalf("ParseProjectType(%q) error = %v, want ErrInvalidChoice", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseProjectType(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseProjectType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePreprocessor(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Preprocessor
		wantErr bool
	}{
		{"sass", models.PreprocessorSass, false},
		{"SCSS", models.PreprocessorSass, false},
		{"less", models.PreprocessorLess, false},
		{"styl", models.PreprocessorStylus, false},
		{"stylus", models.PreprocessorStylus, false},
		{"postcss", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := models.ParsePreprocessor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePreprocessor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePreprocessor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPreprocessorExtension(t *testing.T) {
	tests := map[models.Preprocessor]string{
		models.PreprocessorSass:   "scss",
		models.PreprocessorLess:   "less",
		models.PreprocessorStylus: "styl",
		"other":                   "",
	}
	for p, want := range tests {
		if got := p.Extension(); got != want {
			t.Errorf("Preprocessor(%q).Extension() = %q, want %q", p, got, want)
		}
	}
}

func TestParseFramework(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Framework
		wantErr bool
	}{
		{"bootstrap", models.FrameworkBootstrap, false},
		{"BassCss", models.FrameworkBasscss, false},
		{"foundation", models.FrameworkFoundation, false},
		{"none", models.FrameworkNone, false},
		{"false", models.FrameworkNone, false},
		{"tailwind", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := models.ParseFramework(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFramework(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFramework(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseModules(t *testing.T) {
	t.Run("catalog_order_and_dedup", func(t *testing.T) {
		got, err := models.ParseModules([]string{"masonry", "parsleyjs", "Masonry", " "})
		if err != nil {
			t.Fatalf("ParseModules error: %v", err)
		}
		want := []models.Module{models.ModuleParsley, models.ModuleMasonry}
		if !slices.Equal(got, want) {
			t.Errorf("ParseModules = %v, want %v", got, want)
		}
	})

	t.Run("parsley_alias", func(t *testing.T) {
		got, err := models.ParseModules([]string{"parsley"})
		if err != nil {
			t.Fatalf("ParseModules error: %v", err)
		}
		if !slices.Equal(got, []models.Module{models.ModuleParsley}) {
			t.Errorf("ParseModules = %v", got)
		}
	})

	t.Run("unknown_module", func(t *testing.T) {
		_, err := models.ParseModules([]string{"lightbox"})
		if !errors.Is(err, models.ErrInvalidChoice) {
			t.Errorf("expected ErrInvalidChoice, got %v", err)
		}
	})

	t.Run("empty_is_not_nil", func(t *testing.T) {
		got, err := models.ParseModules(nil)
		if err != nil {
			t.Fatalf("ParseModules error: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("ParseModules(nil) = %#v, want empty slice", got)
		}
	})
}

func TestModuleCatalogDefaults(t *testing.T) {
	catalog := models.ModuleCatalog()
	if len(catalog) != 5 {
		t.Fatalf("expected 5 catalog modules, got %d", len(catalog))
	}
	checked := map[models.Module]bool{
		models.ModuleParsley:   true,
		models.ModuleModernizr: true,
		models.ModuleSlider:    false,
		models.ModuleTabs:      false,
		models.ModuleMasonry:   false,
	}
	for _, e := range catalog {
		want, ok := checked[e.Module]
		if !ok {
			t.Errorf("unexpected catalog module %q", e.Module)
			continue
		}
		if e.Checked != want {
			t.Errorf("module %q Checked = %v, want %v", e.Module, e.Checked, want)
		}
		if e.Label == "" {
			t.Errorf("module %q has empty label", e.Module)
		}
	}
}
