// Package resolver maps completed project answers to the bower dependency
// manifest of the generated project. Resolution is a pure table lookup: it
// performs no I/O and returns the same manifest for equal answers.
package resolver

import (
	"maps"

	"github.com/pixel2html/p2h/pkg/models"
)

// Dependency is a single bower package pinned to a version range.
type Dependency struct {
	Name  string
	Range string
}

// tableKey is the composite lookup key of the framework table.
type tableKey struct {
	Framework    models.Framework
	Preprocessor models.Preprocessor
}

// frameworkTable maps (framework, preprocessor) to the dependencies it adds.
// FrameworkNone has no rows and contributes nothing.
// basscss+stylus has no stylus port and shares the less row.
var frameworkTable = map[tableKey][]Dependency{
	{models.FrameworkBootstrap, models.PreprocessorSass}:   {{Name: "bootstrap-sass", Range: "~3.3.*"}},
	{models.FrameworkBootstrap, models.PreprocessorLess}:   {{Name: "bootstrap", Range: "~3.3.*"}},
	{models.FrameworkBootstrap, models.PreprocessorStylus}: {{Name: "bootstrap-stylus", Range: "~4.0.*"}},

	{models.FrameworkBasscss, models.PreprocessorSass}:   {{Name: "basscss-sass", Range: "~3.0.*"}},
	{models.FrameworkBasscss, models.PreprocessorLess}:   {{Name: "basscss", Range: "~7.0.*"}},
	{models.FrameworkBasscss, models.PreprocessorStylus}: {{Name: "basscss", Range: "~7.0.*"}},

	{models.FrameworkFoundation, models.PreprocessorSass}:   {{Name: "foundation", Range: "~5.5.*"}},
	{models.FrameworkFoundation, models.PreprocessorLess}:   {{Name: "foundation", Range: "~5.5.*"}},
	{models.FrameworkFoundation, models.PreprocessorStylus}: {{Name: "foundation", Range: "~5.5.*"}},
}

// jqueryDependency is added whenever jQuery was confirmed.
var jqueryDependency = Dependency{Name: "jquery", Range: "~2.1.*"}

// moduleTable maps JS modules to bower packages. slider, tabs and masonry
// are project-local scripts emitted by the gulp template, not bower packages.
var moduleTable = map[models.Module]Dependency{
	models.ModuleParsley:   {Name: "parsleyjs", Range: "~2.1.*"},
	models.ModuleModernizr: {Name: "modernizr", Range: "~2.8.*"},
}

// Resolve computes the dependency manifest for a completed answer record.
// Rules are applied in order: framework table, jQuery, modules. A later rule
// overwrites an earlier one only when both target the same package name.
func Resolve(answers models.ProjectAnswers) DependencyManifest {
	entries := make(map[string]string)

	for _, dep := range frameworkTable[tableKey{answers.Framework, answers.Preprocessor}] {
		entries[dep.Name] = dep.Range
	}

	if answers.UseJQuery {
		entries[jqueryDependency.Name] = jqueryDependency.Range

		for _, m := range answers.Modules {
			if dep, ok := moduleTable[m]; ok {
				entries[dep.Name] = dep.Range
			}
		}
	}

	return DependencyManifest{entries: entries}
}

// TableRow is one cell of the framework resolution table.
type TableRow struct {
	Framework    models.Framework
	Preprocessor models.Preprocessor
	Dependencies []Dependency
}

// Table returns a copy of the framework resolution table in prompt order.
// Cells without dependencies (the none framework) are included with an
// empty dependency list.
func Table() []TableRow {
	var rows []TableRow
	for _, fw := range models.ValidFrameworks() {
		for _, pp := range models.ValidPreprocessors() {
			deps := frameworkTable[tableKey{fw, pp}]
			rows = append(rows, TableRow{
				Framework:    fw,
				Preprocessor: pp,
				Dependencies: append([]Dependency(nil), deps...),
			})
		}
	}
	return rows
}

// ModuleDependencies returns a copy of the module-to-package mapping.
func ModuleDependencies() map[models.Module]Dependency {
	return maps.Clone(moduleTable)
}
