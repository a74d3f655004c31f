// Package models provides the shared data model for p2h.
//
// # Choice Enums
//
// Every single-choice answer of the scaffold wizard is a string type with a
// closed set of values:
//   - [ProjectType]: desktop, responsive, mobile
//   - [Preprocessor]: sass, less, stylus
//   - [Framework]: basscss, bootstrap, foundation, none
//   - [Module]: parsleyjs, modernizr, slider, tabs, masonry
//
// Use the Parse helpers to turn user input into a checked value:
//
//	fw, err := models.ParseFramework("Bootstrap")
//	if err != nil {
//	    return err
//	}
//
// # Answers
//
// [ProjectAnswers] is the completed answer record of one scaffold run. It is
// built once by the collector, validated with [ProjectAnswers.Validate], and
// passed by value to the resolver and generator.
package models
