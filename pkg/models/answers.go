package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Sentinel errors for the models package.
var (
	// ErrInvalidChoice indicates a value outside the closed set of a choice field.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrInvalidAnswers indicates a ProjectAnswers record breaks an invariant.
	ErrInvalidAnswers = errors.New("invalid project answers")
)

// ProjectAnswers holds the completed answers of one scaffold run.
// It is treated as immutable once returned by the collector.
type ProjectAnswers struct {
	ProjectName  string       `yaml:"project_name" json:"project_name"`
	PageCount    int          `yaml:"page_count" json:"page_count"`
	PageCountSet bool         `yaml:"-" json:"-"`
	ProjectType  ProjectType  `yaml:"project_type" json:"project_type"`
	Preprocessor Preprocessor `yaml:"css_preprocessor" json:"css_preprocessor"`
	Framework    Framework    `yaml:"front_end_framework" json:"front_end_framework"`
	UseJQuery    bool         `yaml:"jquery" json:"jquery"`
	Modules      []Module     `yaml:"js_modules" json:"js_modules"`
}

// HasModule reports whether the module was selected.
func (a ProjectAnswers) HasModule(m Module) bool {
	return slices.Contains(a.Modules, m)
}

// Validate checks every invariant of a completed answer record.
// All violations are joined into a single error wrapping ErrInvalidAnswers.
func (a ProjectAnswers) Validate() error {
	var problems []string

	if strings.TrimSpace(a.ProjectName) == "" {
		problems = append(problems, "project name is required")
	}
	if strings.IndexFunc(a.ProjectName, unicode.IsControl) >= 0 {
		problems = append(problems, "project name must not contain control characters")
	}
	if a.PageCount < 0 {
		problems = append(problems, fmt.Sprintf("page count must not be negative (got %d)", a.PageCount))
	}
	if !a.ProjectType.IsValid() {
		problems = append(problems, fmt.Sprintf("project type %q is not one of desktop, responsive, mobile", a.ProjectType))
	}
	if !a.Preprocessor.IsValid() {
		problems = append(problems, fmt.Sprintf("css preprocessor %q is not one of sass, less, stylus", a.Preprocessor))
	}
	if !a.Framework.IsValid() {
		problems = append(problems, fmt.Sprintf("front-end framework %q is not one of basscss, bootstrap, foundation, none", a.Framework))
	}
	if a.Framework.IsValid() && !a.Framework.IsNone() && a.UseJQuery {
		problems = append(problems, "jquery can only be enabled when no framework is chosen")
	}
	if !a.UseJQuery && len(a.Modules) > 0 {
		problems = append(problems, "js modules require jquery")
	}
	seen := make(map[Module]bool, len(a.Modules))
	for _, m := range a.Modules {
		if !m.IsValid() {
			problems = append(problems, fmt.Sprintf("js module %q is not in the catalog", m))
		}
		if seen[m] {
			problems = append(problems, fmt.Sprintf("js module %q selected twice", m))
		}
		seen[m] = true
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidAnswers, strings.Join(problems, "; "))
	}
	return nil
}
