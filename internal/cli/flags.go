package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/pixel2html/p2h/internal/collector"
	"github.com/pixel2html/p2h/internal/config"
	"github.com/pixel2html/p2h/pkg/models"
)

// addAnswerFlags registers the flags that pre-answer wizard questions.
func addAnswerFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Project name")
	cmd.Flags().Int("pages", 0, "Number of pages to code")
	cmd.Flags().String("type", "", "Project type: desktop, responsive or mobile")
	cmd.Flags().String("css", "", "CSS preprocessor: sass, less or stylus")
	cmd.Flags().String("framework", "", "Front-end framework: basscss, bootstrap, foundation or none")
	cmd.Flags().Bool("jquery", false, "Include jQuery (only without a framework)")
	cmd.Flags().StringSlice("modules", nil, "jQuery modules: parsleyjs, modernizr, slider, tabs, masonry")
	cmd.Flags().String("answers", "", "YAML file with pre-supplied answers")
}

// validateAnswerFlags validates enum flag values before execution and
// suggests the closest valid value on a typo.
func validateAnswerFlags(cmd *cobra.Command, _ []string) error {
	if v := getStringFlag(cmd, "type"); v != "" {
		if _, err := models.ParseProjectType(v); err != nil {
			return invalidFlag("type", v, enumNames(models.ValidProjectTypes()))
		}
	}
	if v := getStringFlag(cmd, "css"); v != "" {
		if _, err := models.ParsePreprocessor(v); err != nil {
			return invalidFlag("css", v, enumNames(models.ValidPreprocessors()))
		}
	}
	if v := getStringFlag(cmd, "framework"); v != "" {
		if _, err := models.ParseFramework(v); err != nil {
			return invalidFlag("framework", v, enumNames(models.ValidFrameworks()))
		}
	}
	if cmd.Flags().Changed("modules") {
		names, _ := cmd.Flags().GetStringSlice("modules")
		catalog := moduleNames()
		for _, n := range names {
			if _, err := models.ParseModules([]string{n}); err != nil {
				return invalidFlag("modules", n, catalog)
			}
		}
	}
	if cmd.Flags().Changed("pages") {
		if n, _ := cmd.Flags().GetInt("pages"); n < 0 {
			return fmt.Errorf("invalid --pages value %d: must not be negative", n)
		}
	}
	return nil
}

// invalidFlag builds the error for an enum flag outside valid.
func invalidFlag(flag, value string, valid []string) error {
	msg := fmt.Sprintf("invalid --%s value %q: must be one of: %s", flag, value, strings.Join(valid, ", "))
	if s := suggest(value, valid); s != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", s)
	}
	return errors.New(msg)
}

// suggest returns the best fuzzy match of value among candidates, or "".
func suggest(value string, candidates []string) string {
	matches := fuzzy.Find(strings.ToLower(strings.TrimSpace(value)), candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

func enumNames[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func moduleNames() []string {
	var out []string
	for _, e := range models.ModuleCatalog() {
		out = append(out, string(e.Module))
	}
	return out
}

// answerPresets builds the presets from the answers file and the flags.
// Only flags set on the command line override the file.
func answerPresets(cmd *cobra.Command) (collector.Presets, error) {
	var presets collector.Presets
	if path := getStringFlag(cmd, "answers"); path != "" {
		fromFile, err := config.LoadAnswers(path)
		if err != nil {
			return collector.Presets{}, err
		}
		presets = fromFile
	}

	var fromFlags collector.Presets
	flags := cmd.Flags()
	if flags.Changed("name") {
		fromFlags.ProjectName = collector.String(getStringFlag(cmd, "name"))
	}
	if flags.Changed("pages") {
		n, _ := flags.GetInt("pages")
		fromFlags.PageCount = collector.Int(n)
	}
	if flags.Changed("type") {
		fromFlags.ProjectType = collector.String(getStringFlag(cmd, "type"))
	}
	if flags.Changed("css") {
		fromFlags.Preprocessor = collector.String(getStringFlag(cmd, "css"))
	}
	if flags.Changed("framework") {
		fromFlags.Framework = collector.String(getStringFlag(cmd, "framework"))
	}
	if flags.Changed("jquery") {
		fromFlags.JQuery = collector.Bool(getBoolFlag(cmd, "jquery"))
	}
	if flags.Changed("modules") {
		names, _ := flags.GetStringSlice("modules")
		fromFlags.Modules = names
		fromFlags.ModulesSet = true
	}

	return presets.Merge(fromFlags), nil
}
