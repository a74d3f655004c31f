package collector

import "strings"

// Presets holds answers supplied before the prompt flow starts, from
// command-line flags or an answers file. A nil pointer means "not supplied";
// an explicit false or zero is a real answer.
type Presets struct {
	ProjectName  *string
	PageCount    *int
	ProjectType  *string
	Preprocessor *string
	Framework    *string
	JQuery       *bool
	Modules      []string
	ModulesSet   bool
}

// Merge returns p overlaid with every field supplied in over.
func (p Presets) Merge(over Presets) Presets {
	out := p
	if over.ProjectName != nil {
		out.ProjectName = over.ProjectName
	}
	if over.PageCount != nil {
		out.PageCount = over.PageCount
	}
	if over.ProjectType != nil {
		out.ProjectType = over.ProjectType
	}
	if over.Preprocessor != nil {
		out.Preprocessor = over.Preprocessor
	}
	if over.Framework != nil {
		out.Framework = over.Framework
	}
	if over.JQuery != nil {
		out.JQuery = over.JQuery
	}
	if over.ModulesSet {
		out.Modules = append([]string(nil), over.Modules...)
		out.ModulesSet = true
	}
	return out
}

// String returns a pointer to s, or nil when s is blank.
// Blank strings count as "not supplied".
func String(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// Int returns a pointer to n.
func Int(n int) *int {
	return &n
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}
