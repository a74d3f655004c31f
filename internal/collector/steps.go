package collector

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pixel2html/p2h/pkg/models"
)

// Step identifiers, in flow order.
const (
	StepProjectName  = "project_name"
	StepPageCount    = "page_count"
	StepProjectType  = "project_type"
	StepPreprocessor = "css_preprocessor"
	StepFramework    = "front_end_framework"
	StepJQuery       = "jquery"
	StepModules      = "js_modules"
)

// Kind is the input shape a step asks for.
type Kind int

const (
	// KindInput is a free-text question.
	KindInput Kind = iota
	// KindSelect is a single-choice question.
	KindSelect
	// KindConfirm is a yes/no question.
	KindConfirm
	// KindMultiSelect is a checkbox question.
	KindMultiSelect
)

// Choice is one selectable value of a select or multi-select step.
type Choice struct {
	Label   string // Display label
	Value   string // Stored value
	Desc    string // Optional description
	Checked bool   // Initially checked (multi-select only)
}

// Answer is the raw value a Prompter returned for a step.
type Answer struct {
	Text   string
	Bool   bool
	Values []string
}

// Step defines a single question of the flow.
type Step struct {
	ID          string
	Kind        Kind
	Title       string
	Description string
	Choices     []Choice
	Default     string // Initial value; "true"/"false" for confirm steps
	Required    bool

	// Reachable gates the step on earlier answers. Nil means always reachable.
	Reachable func(*Draft) bool

	// apply validates the raw answer and stores it in the draft.
	// It returns (false, nil) when an optional answer was left empty.
	apply func(d *Draft, a Answer) (bool, error)
}

// Supplied reports whether the step's field was already answered, in which
// case the step runs no prompt.
func (s *Step) Supplied(d *Draft) bool {
	return d.Answered(s.ID)
}

// DefaultBool returns the confirm default.
func (s *Step) DefaultBool() bool {
	return s.Default == "true"
}

// Steps returns the fixed question flow. Steps run strictly in this order and
// may only depend on answers collected by earlier steps.
func Steps() []Step {
	return []Step{
		{
			ID:          StepProjectName,
			Kind:        KindInput,
			Title:       "Give me the Project Name!",
			Description: "Used for package.json and the bower package name.",
			Required:    true,
			apply:       applyProjectName,
		},
		{
			ID:          StepPageCount,
			Kind:        KindInput,
			Title:       "How many pages will you code?",
			Description: "Homepage plus inner pages. Press Enter to skip.",
			Required:    false,
			apply:       applyPageCount,
		},
		{
			ID:          StepProjectType,
			Kind:        KindSelect,
			Title:       "What type of page will you code? Pick one",
			Choices: []Choice{
				{Label: "Desktop", Value: string(models.ProjectTypeDesktop)},
				{Label: "Responsive", Value: string(models.ProjectTypeResponsive)},
				{Label: "Mobile", Value: string(models.ProjectTypeMobile)},
			},
			Default:  string(models.ProjectTypeDesktop),
			Required: true,
			apply:    applyProjectType,
		},
		{
			ID:    StepPreprocessor,
			Kind:  KindSelect,
			Title: "What preprocessor would you like to use? Pick one",
			Choices: []Choice{
				{Label: "Sass", Value: string(models.PreprocessorSass)},
				{Label: "Less", Value: string(models.PreprocessorLess)},
				{Label: "Stylus", Value: string(models.PreprocessorStylus)},
			},
			Default:  string(models.PreprocessorSass),
			Required: true,
			apply:    applyPreprocessor,
		},
		{
			ID:    StepFramework,
			Kind:  KindSelect,
			Title: "What front-end framework would you like to include?",
			// Default option must be first: huh selects by index and scrolls the
			// viewport to it, hiding options above the default.
			Choices: []Choice{
				{Label: "None", Value: string(models.FrameworkNone), Desc: "Plain stylesheets, optional jQuery"},
				{Label: "BassCss", Value: string(models.FrameworkBasscss)},
				{Label: "Bootstrap", Value: string(models.FrameworkBootstrap)},
				{Label: "Foundation", Value: string(models.FrameworkFoundation)},
			},
			Default:  string(models.FrameworkNone),
			Required: true,
			apply:    applyFramework,
		},
		{
			ID:       StepJQuery,
			Kind:     KindConfirm,
			Title:    "Would you like to use jQuery?",
			Default:  "true",
			Required: true,
			Reachable: func(d *Draft) bool {
				return d.Framework() == models.FrameworkNone
			},
			apply: applyJQuery,
		},
		{
			ID:       StepModules,
			Kind:     KindMultiSelect,
			Title:    "Which modules would you like to include?",
			Choices:  moduleChoices(),
			Required: false,
			Reachable: func(d *Draft) bool {
				return d.UseJQuery()
			},
			apply: applyModules,
		},
	}
}

func moduleChoices() []Choice {
	catalog := models.ModuleCatalog()
	choices := make([]Choice, len(catalog))
	for i, e := range catalog {
		choices[i] = Choice{Label: e.Label, Value: string(e.Module), Checked: e.Checked}
	}
	return choices
}

func applyProjectName(d *Draft, a Answer) (bool, error) {
	name := strings.TrimSpace(a.Text)
	if name == "" {
		return false, invalid(StepProjectName, "project name is required", nil)
	}
	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return false, invalid(StepProjectName, "project name must not contain control characters", name)
	}
	d.answers.ProjectName = name
	return true, nil
}

func applyPageCount(d *Draft, a Answer) (bool, error) {
	raw := strings.TrimSpace(a.Text)
	if raw == "" {
		return false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return false, invalid(StepPageCount, "must be a non-negative whole number", raw)
	}
	d.answers.PageCount = n
	d.answers.PageCountSet = true
	return true, nil
}

func applyProjectType(d *Draft, a Answer) (bool, error) {
	t, err := models.ParseProjectType(a.Text)
	if err != nil {
		return false, invalid(StepProjectType, "must be one of desktop, responsive, mobile", a.Text)
	}
	d.answers.ProjectType = t
	return true, nil
}

func applyPreprocessor(d *Draft, a Answer) (bool, error) {
	p, err := models.ParsePreprocessor(a.Text)
	if err != nil {
		return false, invalid(StepPreprocessor, "must be one of sass, less, stylus", a.Text)
	}
	d.answers.Preprocessor = p
	return true, nil
}

func applyFramework(d *Draft, a Answer) (bool, error) {
	f, err := models.ParseFramework(a.Text)
	if err != nil {
		return false, invalid(StepFramework, "must be one of basscss, bootstrap, foundation, none", a.Text)
	}
	d.answers.Framework = f
	return true, nil
}

func applyJQuery(d *Draft, a Answer) (bool, error) {
	d.answers.UseJQuery = a.Bool
	return true, nil
}

func applyModules(d *Draft, a Answer) (bool, error) {
	mods, err := models.ParseModules(a.Values)
	if err != nil {
		return false, invalid(StepModules, "unknown module", strings.Join(a.Values, ","))
	}
	d.answers.Modules = mods
	return true, nil
}
