package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/pixel2html/p2h/internal/collector"
)

// FormPrompter asks each step through its own huh.Form.
// Each question runs as an independent form to avoid the huh v0.8.x YOffset
// scroll bug that occurs when multiple groups share a single viewport.
type FormPrompter struct {
	theme      *huh.Theme
	input      io.Reader
	output     io.Writer
	accessible bool
}

// FormOption configures a FormPrompter.
type FormOption func(*FormPrompter)

// WithIO redirects form input and output. Used by tests and accessible mode.
func WithIO(in io.Reader, out io.Writer) FormOption {
	return func(p *FormPrompter) {
		p.input = in
		p.output = out
	}
}

// WithAccessible switches huh to its line-based accessible mode.
func WithAccessible(on bool) FormOption {
	return func(p *FormPrompter) {
		p.accessible = on
	}
}

// WithNoColor drops the branded theme in favour of huh's plain base theme.
func WithNoColor() FormOption {
	return func(p *FormPrompter) {
		p.theme = huh.ThemeBase()
	}
}

// NewFormPrompter creates an interactive Prompter.
func NewFormPrompter(opts ...FormOption) *FormPrompter {
	p := &FormPrompter{theme: newP2HWizardTheme()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ collector.Prompter = (*FormPrompter)(nil)

// Input asks a free-text question.
func (p *FormPrompter) Input(ctx context.Context, s *collector.Step) (string, error) {
	value := s.Default
	if err := p.run(ctx, buildInputField(s, &value)); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// Select asks a single-choice question.
func (p *FormPrompter) Select(ctx context.Context, s *collector.Step) (string, error) {
	selected := s.Default
	if err := p.run(ctx, buildSelectField(s, &selected)); err != nil {
		return "", err
	}
	return selected, nil
}

// Confirm asks a yes/no question.
func (p *FormPrompter) Confirm(ctx context.Context, s *collector.Step) (bool, error) {
	value := s.DefaultBool()
	if err := p.run(ctx, buildConfirmField(s, &value)); err != nil {
		return false, err
	}
	return value, nil
}

// MultiSelect asks a checkbox question.
func (p *FormPrompter) MultiSelect(ctx context.Context, s *collector.Step) ([]string, error) {
	var values []string
	if err := p.run(ctx, buildMultiSelectField(s, &values)); err != nil {
		return nil, err
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// run shows a single-field form and maps huh's abort to collector.ErrCancelled.
func (p *FormPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithAccessible(p.accessible)
	if p.input != nil {
		form = form.WithInput(p.input)
	}
	if p.output != nil {
		form = form.WithOutput(p.output)
	}

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return collector.ErrCancelled
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}

// buildInputField creates a huh.Input bound to value.
func buildInputField(s *collector.Step, value *string) *huh.Input {
	inp := huh.NewInput().
		Title(s.Title).
		Description(s.Description).
		Value(value)

	if s.Default != "" {
		inp = inp.Placeholder(s.Default)
	}

	return inp.Validate(requiredValidator(s.Required))
}

// requiredValidator rejects blank input for required steps.
func requiredValidator(required bool) func(string) error {
	return func(val string) error {
		if required && strings.TrimSpace(val) == "" {
			return errors.New("this field is required")
		}
		return nil
	}
}

// buildSelectField creates a huh.Select bound to selected.
//
// Options are built eagerly with no Height() call. huh v0.8.x OptionsFunc
// forces a fixed height, which makes the viewport reset YOffset to the cursor
// on every update and hides options above it.
func buildSelectField(s *collector.Step, selected *string) *huh.Select[string] {
	opts := make([]huh.Option[string], len(s.Choices))
	for i, c := range s.Choices {
		key := c.Label
		if c.Desc != "" {
			key = c.Label + " - " + c.Desc
		}
		opts[i] = huh.NewOption(key, c.Value)
	}

	return huh.NewSelect[string]().
		Title(s.Title).
		Description(s.Description).
		Options(opts...).
		Value(selected)
}

// buildConfirmField creates a huh.Confirm bound to value.
func buildConfirmField(s *collector.Step, value *bool) *huh.Confirm {
	return huh.NewConfirm().
		Title(s.Title).
		Description(s.Description).
		Affirmative("Yes").
		Negative("No").
		Value(value)
}

// buildMultiSelectField creates a huh.MultiSelect with the step's checked
// choices preselected.
func buildMultiSelectField(s *collector.Step, values *[]string) *huh.MultiSelect[string] {
	opts := make([]huh.Option[string], len(s.Choices))
	for i, c := range s.Choices {
		opts[i] = huh.NewOption(c.Label, c.Value).Selected(c.Checked)
	}

	return huh.NewMultiSelect[string]().
		Title(s.Title).
		Description(s.Description).
		Options(opts...).
		Value(values)
}

// newP2HWizardTheme creates a huh.Theme with Pixel2HTML branding.
func newP2HWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#C2410C", Dark: ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: ColorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("› ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("[x] ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("[ ] ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})
	t.Focused.Next = t.Focused.FocusedButton

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
