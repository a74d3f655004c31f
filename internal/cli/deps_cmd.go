package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pixel2html/p2h/internal/cli/wizard"
	"github.com/pixel2html/p2h/internal/collector"
	"github.com/pixel2html/p2h/internal/resolver"
)

func newDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Print the bower dependencies for a set of answers",
		Long: `Print the bower.json "dependencies" object that init would write
for the given answers. Never prompts; unanswered questions take their
defaults.

Examples:
  p2h deps --name demo --css less --framework bootstrap
  p2h deps --name demo --jquery --modules parsleyjs,modernizr
  p2h deps --table`,
		Args:    cobra.NoArgs,
		PreRunE: validateAnswerFlags,
		RunE:    runDeps,
	}
	addAnswerFlags(cmd)
	cmd.Flags().Bool("table", false, "Print the full framework resolution table")
	return cmd
}

func runDeps(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if getBoolFlag(cmd, "table") {
		_, err := fmt.Fprintln(out, renderTable(resolver.Table(), deps.Theme.NoColor))
		return err
	}

	presets, err := answerPresets(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	answers, err := collector.New(wizard.NewHeadlessPrompter(deps.Logger), collector.WithLogger(deps.Logger)).
		Collect(ctx, presets)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(resolver.Resolve(answers), "", "  ")
	if err != nil {
		return fmt.Errorf("encode dependencies: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// renderTable formats the resolution table as a bordered grid.
func renderTable(rows []resolver.TableRow, noColor bool) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FRAMEWORK", "CSS", "DEPENDENCIES")
	if !noColor {
		t = t.BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#4B5563")))
	}
	for _, r := range rows {
		t = t.Row(string(r.Framework), string(r.Preprocessor), formatDependencies(r.Dependencies))
	}
	return t.String()
}

func formatDependencies(list []resolver.Dependency) string {
	if len(list) == 0 {
		return "-"
	}
	parts := make([]string, len(list))
	for i, dep := range list {
		parts[i] = dep.Name + "@" + dep.Range
	}
	return strings.Join(parts, ", ")
}
