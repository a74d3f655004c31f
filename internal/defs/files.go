// Package defs holds the file and directory names shared by the generator,
// the template plan and the settings loader.
package defs

// Generated project files.
const (
	// PackageJSON is the npm manifest carrying the gulp toolchain.
	PackageJSON = "package.json"

	// BowerJSON is the bower manifest carrying the resolved dependencies.
	BowerJSON = "bower.json"

	// BowerRC points bower at the vendor directory.
	BowerRC = ".bowerrc"

	// GulpfileJS is the build pipeline entry point.
	GulpfileJS = "gulpfile.js"

	// JSHintRC is the JSHint configuration.
	JSHintRC = ".jshintrc"

	// GitIgnore lists paths git should not track.
	GitIgnore = ".gitignore"

	// GitAttributes sets git line-ending and diff attributes.
	GitAttributes = ".gitattributes"
)

// Generated project directories.
const (
	AssetsDir = "assets"
	SourceDir = AssetsDir + "/src"
	VendorDir = SourceDir + "/vendor"

	// GulpVendorDir holds the per-framework gulp tasks.
	GulpVendorDir = "gulp/vendor"
)

// SettingsBase is the base name of the global settings file (.p2h.yaml).
const SettingsBase = ".p2h"
