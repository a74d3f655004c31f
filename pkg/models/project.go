package models

import (
	"fmt"
	"strings"
)

// ProjectType represents the layout target of the coded pages.
type ProjectType string

const (
	ProjectTypeDesktop    ProjectType = "desktop"
	ProjectTypeResponsive ProjectType = "responsive"
	ProjectTypeMobile     ProjectType = "mobile"
)

// ValidProjectTypes returns all valid project type values in prompt order.
func ValidProjectTypes() []ProjectType {
	return []ProjectType{ProjectTypeDesktop, ProjectTypeResponsive, ProjectTypeMobile}
}

// IsValid checks if the project type is a valid value.
func (t ProjectType) IsValid() bool {
	switch t {
	case ProjectTypeDesktop, ProjectTypeResponsive, ProjectTypeMobile:
		return true
	}
	return false
}

// Preprocessor is the CSS authoring language of the generated project.
type Preprocessor string

const (
	PreprocessorSass   Preprocessor = "sass"
	PreprocessorLess   Preprocessor = "less"
	PreprocessorStylus Preprocessor = "stylus"
)

// ValidPreprocessors returns all valid preprocessor values in prompt order.
func ValidPreprocessors() []Preprocessor {
	return []Preprocessor{PreprocessorSass, PreprocessorLess, PreprocessorStylus}
}

// IsValid checks if the preprocessor is a valid value.
func (p Preprocessor) IsValid() bool {
	switch p {
	case PreprocessorSass, PreprocessorLess, PreprocessorStylus:
		return true
	}
	return false
}

// Extension returns the stylesheet source extension for the preprocessor.
// Returns an empty string for invalid values.
func (p Preprocessor) Extension() string {
	switch p {
	case PreprocessorSass:
		return "scss"
	case PreprocessorLess:
		return "less"
	case PreprocessorStylus:
		return "styl"
	}
	return ""
}

// Framework is the optional front-end framework bundled into the project.
// FrameworkNone is an explicit choice, distinct from "not answered".
type Framework string

const (
	FrameworkBasscss    Framework = "basscss"
	FrameworkBootstrap  Framework = "bootstrap"
	FrameworkFoundation Framework = "foundation"
	FrameworkNone       Framework = "none"
)

// ValidFrameworks returns all valid framework values in prompt order.
func ValidFrameworks() []Framework {
	return []Framework{FrameworkBasscss, FrameworkBootstrap, FrameworkFoundation, FrameworkNone}
}

// IsValid checks if the framework is a valid value.
func (f Framework) IsValid() bool {
	switch f {
	case FrameworkBasscss, FrameworkBootstrap, FrameworkFoundation, FrameworkNone:
		return true
	}
	return false
}

// IsNone reports whether no framework was chosen.
func (f Framework) IsNone() bool {
	return f == FrameworkNone
}

// Module is an optional jQuery-based JS module.
type Module string

const (
	ModuleParsley   Module = "parsleyjs"
	ModuleModernizr Module = "modernizr"
	ModuleSlider    Module = "slider"
	ModuleTabs      Module = "tabs"
	ModuleMasonry   Module = "masonry"
)

// IsValid checks if the module is part of the catalog.
func (m Module) IsValid() bool {
	for _, e := range ModuleCatalog() {
		if e.Module == m {
			return true
		}
	}
	return false
}

// ModuleEntry describes one catalog module and its default-checked state.
type ModuleEntry struct {
	Module  Module
	Label   string
	Checked bool
}

// ModuleCatalog returns the fixed module catalog in display order.
func ModuleCatalog() []ModuleEntry {
	return []ModuleEntry{
		{Module: ModuleParsley, Label: "Form validation with Parsley.js", Checked: true},
		{Module: ModuleModernizr, Label: "Add modernizr.js", Checked: true},
		{Module: ModuleSlider, Label: "Add Slider.js", Checked: false},
		{Module: ModuleTabs, Label: "Add Tabs.js", Checked: false},
		{Module: ModuleMasonry, Label: "Add Masonry", Checked: false},
	}
}

// ParseProjectType parses a case-insensitive project type.
func ParseProjectType(s string) (ProjectType, error) {
	t := ProjectType(normalize(s))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: project type %q", ErrInvalidChoice, s)
	}
	return t, nil
}

// ParsePreprocessor parses a case-insensitive preprocessor name.
// "scss" and "styl" are accepted as aliases.
func ParsePreprocessor(s string) (Preprocessor, error) {
	v := normalize(s)
	switch v {
	case "scss":
		v = string(PreprocessorSass)
	case "styl":
		v = string(PreprocessorStylus)
	}
	p := Preprocessor(v)
	if !p.IsValid() {
		return "", fmt.Errorf("%w: css preprocessor %q", ErrInvalidChoice, s)
	}
	return p, nil
}

// ParseFramework parses a case-insensitive framework name.
// "false" is accepted as an alias for none.
func ParseFramework(s string) (Framework, error) {
	v := normalize(s)
	if v == "false" {
		v = string(FrameworkNone)
	}
	f := Framework(v)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: front-end framework %q", ErrInvalidChoice, s)
	}
	return f, nil
}

// ParseModules parses module names, dropping duplicates and returning
// them in catalog order.
func ParseModules(names []string) ([]Module, error) {
	seen := make(map[Module]bool, len(names))
	for _, n := range names {
		v := normalize(n)
		if v == "" {
			continue
		}
		if v == "parsley" {
			v = string(ModuleParsley)
		}
		m := Module(v)
		if !m.IsValid() {
			return nil, fmt.Errorf("%w: js module %q", ErrInvalidChoice, n)
		}
		seen[m] = true
	}
	return SortModules(seen), nil
}

// SortModules returns the set members in catalog order.
func SortModules(set map[Module]bool) []Module {
	out := []Module{}
	for _, e := range ModuleCatalog() {
		if set[e.Module] {
			out = append(out, e.Module)
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
