package wizard

import (
	"context"
	"log/slog"

	"github.com/pixel2html/p2h/internal/collector"
)

// HeadlessPrompter answers every step with its default without reading
// input. A required step without a default gets an empty answer, which the
// collector rejects.
type HeadlessPrompter struct {
	logger *slog.Logger
}

// NewHeadlessPrompter creates a HeadlessPrompter. A nil logger is allowed.
func NewHeadlessPrompter(logger *slog.Logger) *HeadlessPrompter {
	return &HeadlessPrompter{logger: logger}
}

var _ collector.Prompter = (*HeadlessPrompter)(nil)

// Input returns the step default.
func (p *HeadlessPrompter) Input(ctx context.Context, s *collector.Step) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.log(s, s.Default)
	return s.Default, nil
}

// Select returns the step default.
func (p *HeadlessPrompter) Select(ctx context.Context, s *collector.Step) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.log(s, s.Default)
	return s.Default, nil
}

// Confirm returns the step default.
func (p *HeadlessPrompter) Confirm(ctx context.Context, s *collector.Step) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	v := s.DefaultBool()
	p.log(s, v)
	return v, nil
}

// MultiSelect returns the initially checked choices.
func (p *HeadlessPrompter) MultiSelect(ctx context.Context, s *collector.Step) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	values := []string{}
	for _, c := range s.Choices {
		if c.Checked {
			values = append(values, c.Value)
		}
	}
	p.log(s, values)
	return values, nil
}

func (p *HeadlessPrompter) log(s *collector.Step, v any) {
	if p.logger != nil {
		p.logger.Debug("headless default used", "step", s.ID, "value", v)
	}
}
