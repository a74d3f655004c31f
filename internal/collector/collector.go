package collector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pixel2html/p2h/pkg/models"
)

// Prompter asks the user a single step's question. Implementations return
// ErrCancelled when the user aborts.
type Prompter interface {
	Input(ctx context.Context, s *Step) (string, error)
	Select(ctx context.Context, s *Step) (string, error)
	Confirm(ctx context.Context, s *Step) (bool, error)
	MultiSelect(ctx context.Context, s *Step) ([]string, error)
}

// Collector runs the question flow.
type Collector struct {
	prompter Prompter
	steps    []Step
	logger   *slog.Logger
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger sets the logger used for skip and gating decisions.
func WithLogger(l *slog.Logger) Option {
	return func(c *Collector) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSteps replaces the default flow.
func WithSteps(steps []Step) Option {
	return func(c *Collector) {
		c.steps = steps
	}
}

// New creates a Collector that asks questions through p.
func New(p Prompter, opts ...Option) *Collector {
	c := &Collector{
		prompter: p,
		steps:    Steps(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect applies the presets, runs every reachable step whose field is not
// yet answered, and returns the validated answers. On any error the zero
// ProjectAnswers is returned.
func (c *Collector) Collect(ctx context.Context, presets Presets) (models.ProjectAnswers, error) {
	if len(c.steps) == 0 {
		return models.ProjectAnswers{}, ErrNoSteps
	}

	d := newDraft()
	if err := c.applyPresets(d, presets); err != nil {
		return models.ProjectAnswers{}, err
	}

	for i := range c.steps {
		s := &c.steps[i]

		if err := ctx.Err(); err != nil {
			return models.ProjectAnswers{}, err
		}

		if s.Supplied(d) {
			c.logger.Debug("step supplied, skipping prompt", "step", s.ID)
			continue
		}
		if s.Reachable != nil && !s.Reachable(d) {
			c.logger.Debug("step unreachable", "step", s.ID)
			continue
		}

		if s.apply == nil {
			return models.ProjectAnswers{}, fmt.Errorf("step %q has no answer handler", s.ID)
		}
		answer, err := c.ask(ctx, s)
		if err != nil {
			return models.ProjectAnswers{}, err
		}
		ok, err := s.apply(d, answer)
		if err != nil {
			return models.ProjectAnswers{}, err
		}
		if ok {
			d.mark(s.ID)
		}
		if s.Required && !d.Answered(s.ID) {
			return models.ProjectAnswers{}, invalid(s.ID, "required answer missing", nil)
		}
	}

	d.settle()
	answers := d.build()
	if err := answers.Validate(); err != nil {
		return models.ProjectAnswers{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	c.logger.Info("answers collected",
		"project", answers.ProjectName,
		"type", answers.ProjectType,
		"preprocessor", answers.Preprocessor,
		"framework", answers.Framework,
		"jquery", answers.UseJQuery,
		"modules", answers.Modules,
	)
	return answers, nil
}

// ask dispatches the step to the Prompter method for its kind.
func (c *Collector) ask(ctx context.Context, s *Step) (Answer, error) {
	var (
		a   Answer
		err error
	)
	switch s.Kind {
	case KindInput:
		a.Text, err = c.prompter.Input(ctx, s)
	case KindSelect:
		a.Text, err = c.prompter.Select(ctx, s)
	case KindConfirm:
		a.Bool, err = c.prompter.Confirm(ctx, s)
	case KindMultiSelect:
		a.Values, err = c.prompter.MultiSelect(ctx, s)
	default:
		return a, fmt.Errorf("step %q: unknown kind %d", s.ID, s.Kind)
	}
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			return a, ErrCancelled
		}
		return a, fmt.Errorf("step %q: %w", s.ID, err)
	}
	return a, nil
}

// applyPresets stores every supplied preset through the owning step's
// validation, marking the field answered.
func (c *Collector) applyPresets(d *Draft, p Presets) error {
	type preset struct {
		id     string
		set    bool
		answer Answer
	}

	presets := []preset{
		{id: StepProjectName, set: p.ProjectName != nil, answer: Answer{Text: deref(p.ProjectName)}},
		{id: StepProjectType, set: p.ProjectType != nil, answer: Answer{Text: deref(p.ProjectType)}},
		{id: StepPreprocessor, set: p.Preprocessor != nil, answer: Answer{Text: deref(p.Preprocessor)}},
		{id: StepFramework, set: p.Framework != nil, answer: Answer{Text: deref(p.Framework)}},
		{id: StepJQuery, set: p.JQuery != nil, answer: Answer{Bool: p.JQuery != nil && *p.JQuery}},
		{id: StepModules, set: p.ModulesSet, answer: Answer{Values: p.Modules}},
	}
	if p.PageCount != nil {
		presets = append(presets, preset{id: StepPageCount, set: true, answer: Answer{Text: fmt.Sprint(*p.PageCount)}})
	}

	for _, ps := range presets {
		if !ps.set {
			continue
		}
		s := c.step(ps.id)
		if s == nil || s.apply == nil {
			continue
		}
		ok, err := s.apply(d, ps.answer)
		if err != nil {
			return err
		}
		if ok {
			d.mark(ps.id)
			c.logger.Debug("preset applied", "step", ps.id)
		}
	}

	if d.Answered(StepFramework) && d.Framework() != models.FrameworkNone {
		if d.Answered(StepJQuery) || d.Answered(StepModules) {
			c.logger.Debug("framework chosen, ignoring jquery and module presets", "framework", d.Framework())
		}
	}
	return nil
}

func (c *Collector) step(id string) *Step {
	for i := range c.steps {
		if c.steps[i].ID == id {
			return &c.steps[i]
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
