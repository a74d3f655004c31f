package collector

import (
	"slices"

	"github.com/pixel2html/p2h/pkg/models"
)

// Draft is the in-progress answer record of a single Collect call.
// Each field carries an explicit answered marker, so "not answered" is never
// inferred from a zero value.
type Draft struct {
	answers  models.ProjectAnswers
	answered map[string]bool
}

func newDraft() *Draft {
	return &Draft{answered: make(map[string]bool)}
}

// Answered reports whether the step's field already holds an answer.
func (d *Draft) Answered(stepID string) bool {
	return d.answered[stepID]
}

// Framework returns the framework answer, empty until answered.
func (d *Draft) Framework() models.Framework {
	return d.answers.Framework
}

// UseJQuery returns the jQuery answer.
func (d *Draft) UseJQuery() bool {
	return d.answers.UseJQuery
}

func (d *Draft) mark(stepID string) {
	d.answered[stepID] = true
}

// settle fixes fields whose steps were unreachable and enforces the
// framework/jQuery/module invariants. It runs after the last step.
func (d *Draft) settle() {
	if d.answers.Framework != models.FrameworkNone {
		d.answers.UseJQuery = false
	}
	if !d.answers.UseJQuery {
		d.answers.Modules = []models.Module{}
	}
	if d.answers.Modules == nil {
		d.answers.Modules = []models.Module{}
	}
}

// build returns a copy of the answers detached from the draft.
func (d *Draft) build() models.ProjectAnswers {
	a := d.answers
	a.Modules = slices.Clone(d.answers.Modules)
	return a
}
