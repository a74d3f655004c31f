package models_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/pixel2html/p2h/pkg/models"
)

func validAnswers() models.ProjectAnswers {
	return models.ProjectAnswers{
		ProjectName:  "acme",
		ProjectType:  models.ProjectTypeDesktop,
		Preprocessor: models.PreprocessorLess,
		Framework:    models.FrameworkBootstrap,
	}
}

func TestProjectAnswersValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(a *models.ProjectAnswers)
		wantErr string
	}{
		{"valid", func(a *models.ProjectAnswers) {}, ""},
		{"missing_name", func(a *models.ProjectAnswers) { a.ProjectName = "  " }, "project name is required"},
		{"newline_in_name", func(a *models.ProjectAnswers) { a.ProjectName = "Acme\nalert(1)" }, "control characters"},
		{"tab_in_name", func(a *models.ProjectAnswers) { a.ProjectName = "Acme\tCorp" }, "control characters"},
		{"negative_pages", func(a *models.ProjectAnswers) { a.PageCount = -1 }, "page count"},
		{"bad_type", func(a *models.ProjectAnswers) { a.ProjectType = "tablet" }, "project type"},
		{"bad_preprocessor", func(a *models.ProjectAnswers) { a.Preprocessor = "" }, "css preprocessor"},
		{"empty_framework", func(a *models.ProjectAnswers) { a.Framework = "" }, "front-end framework"},
		{"jquery_with_framework", func(a *models.ProjectAnswers) { a.UseJQuery = true }, "jquery can only be enabled"},
		{"modules_without_jquery", func(a *models.ProjectAnswers) {
			a.Framework = models.FrameworkNone
			a.Modules = []models.Module{models.ModuleTabs}
		}, "js modules require jquery"},
		{"duplicate_module", func(a *models.ProjectAnswers) {
			a.Framework = models.FrameworkNone
			a.UseJQuery = true
			a.Modules = []models.Module{models.ModuleTabs, models.ModuleTabs}
		}, "selected twice"},
		{"jquery_with_modules", func(a *models.ProjectAnswers) {
			a.Framework = models.FrameworkNone
			a.UseJQuery = true
			a.Modules = []models.Module{models.ModuleParsley, models.ModuleSlider}
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAnswers()
			tt.mutate(&a)
			err := a.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, models.ErrInvalidAnswers) {
				t.Fatalf("Validate() error = %v, want ErrInvalidAnswers", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestProjectAnswersHasModule(t *testing.T) {
	a := models.ProjectAnswers{Modules: []models.Module{models.ModuleModernizr}}
	if !a.HasModule(models.ModuleModernizr) {
		t.Error("HasModule(modernizr) = false, want true")
	}
	if a.HasModule(models.ModuleParsley) {
		t.Error("HasModule(parsleyjs) = true, want false")
	}
}
