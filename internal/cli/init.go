package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5"
	"github.com/spf13/cobra"

	"github.com/pixel2html/p2h/internal/cli/wizard"
	"github.com/pixel2html/p2h/internal/collector"
	"github.com/pixel2html/p2h/internal/resolver"
	"github.com/pixel2html/p2h/internal/scaffold"
	"github.com/pixel2html/p2h/internal/ui"
	"github.com/pixel2html/p2h/pkg/models"
	"github.com/pixel2html/p2h/pkg/version"
)

// cancelledMessage is printed when the user aborts the wizard.
const cancelledMessage = "Scaffolding cancelled."

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [destination]",
		Short: "Scaffold a new Pixel2HTML project",
		Long: `Scaffold a new Pixel2HTML project.

Questions answered by flags or an answers file are not asked again.
With --non-interactive, or when no terminal is attached, unanswered
questions take their defaults; the project name has no default.

Examples:
  p2h init                         Scaffold into the configured destination
  p2h init landing-page            Create ./landing-page/ and scaffold inside
  p2h init site --name "Acme" --css less --framework bootstrap --non-interactive
  p2h init --answers answers.yaml --git`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: validateAnswerFlags,
		RunE:    runInit,
	}

	addAnswerFlags(cmd)
	cmd.Flags().Bool("non-interactive", false, "Never prompt; use flags, the answers file and defaults")
	cmd.Flags().Bool("force", false, "Overwrite files that already exist")
	cmd.Flags().Bool("skip-welcome-message", false, "Do not print the welcome banner")
	cmd.Flags().Bool("git", false, "Initialize a git repository in the destination")
	return cmd
}

// runInit executes the scaffold workflow: collect, resolve, generate,
// optionally git init, then summarize.
func runInit(cmd *cobra.Command, args []string) error {
	d := deps
	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	presets, err := answerPresets(cmd)
	if err != nil {
		return err
	}

	dest := d.Settings.Destination
	if len(args) > 0 {
		dest = args[0]
	}

	interactive := !getBoolFlag(cmd, "non-interactive") && !d.Headless.IsHeadless()
	skipWelcome := getBoolFlag(cmd, "skip-welcome-message") || d.Settings.SkipWelcome
	if interactive && !skipWelcome {
		_, _ = fmt.Fprintln(out, ui.Banner(d.Theme, version.GetVersion()))
	}

	answers, err := collector.New(newPrompter(cmd, d, interactive), collector.WithLogger(d.Logger)).
		Collect(ctx, presets)
	if err != nil {
		if errors.Is(err, collector.ErrCancelled) {
			_, _ = fmt.Fprintln(out, cancelledMessage)
			return nil
		}
		return err
	}
	manifest := resolver.Resolve(answers)
	d.Logger.Debug("answers collected",
		"project", answers.ProjectName,
		"framework", answers.Framework,
		"preprocessor", answers.Preprocessor,
		"dependencies", manifest.Len(),
	)

	absDest, err := filepath.Abs(dest)
	if err != nil {
		return fmt.Errorf("resolve destination %q: %w", dest, err)
	}
	if err := os.MkdirAll(absDest, 0o755); err != nil {
		return fmt.Errorf("create destination %q: %w", dest, err)
	}

	progress := d.Progress(out)
	var bar ui.ProgressBar
	gen, err := scaffold.New(osfs.New(absDest),
		scaffold.WithLogger(d.Logger),
		scaffold.WithForce(getBoolFlag(cmd, "force")),
		scaffold.WithVersion(version.GetVersion()),
		scaffold.WithProgress(func(e scaffold.Event) {
			bar.Advance(e.Path)
		}),
	)
	if err != nil {
		return err
	}

	bar = progress.Start("Generating "+answers.ProjectName, gen.TotalSteps(answers))
	res, err := gen.Generate(ctx, answers, manifest)
	bar.Done()
	if err != nil {
		return fmt.Errorf("generate project: %w", err)
	}

	gitInit := false
	if getBoolFlag(cmd, "git") || d.Settings.GitInit {
		gitInit, err = initRepository(absDest, progress, d)
		if err != nil {
			return err
		}
	}

	summary := ui.Summary{
		ProjectName:  answers.ProjectName,
		Destination:  dest,
		Lines:        summaryLines(answers),
		Dirs:         len(res.CreatedDirs),
		Files:        len(res.CreatedFiles),
		Skipped:      len(res.SkippedFiles),
		Bytes:        res.Bytes,
		Dependencies: dependencyList(manifest),
		GitInit:      gitInit,
	}
	_, _ = fmt.Fprintln(out, ui.SummaryCard(d.Theme, summary))
	return printNextSteps(out, summary, interactive && ui.StdoutIsTerminal(), d)
}

// newPrompter picks the huh form prompter for terminals and the headless
// prompter otherwise.
func newPrompter(cmd *cobra.Command, d *Dependencies, interactive bool) collector.Prompter {
	if d.Prompter != nil {
		return d.Prompter
	}
	if !interactive {
		return wizard.NewHeadlessPrompter(d.Logger)
	}
	opts := []wizard.FormOption{wizard.WithIO(cmd.InOrStdin(), cmd.OutOrStdout())}
	if d.Theme.NoColor {
		opts = append(opts, wizard.WithNoColor())
	}
	return wizard.NewFormPrompter(opts...)
}

// initRepository runs git init in dir. An existing repository is left alone
// and reported as not initialized.
func initRepository(dir string, progress *ui.Progress, d *Dependencies) (bool, error) {
	spinner := progress.Spinner("Initializing git repository")
	_, err := git.PlainInit(dir, false)
	spinner.Stop()

	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		d.Logger.Info("git repository already exists", "dir", dir)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("git init %s: %w", dir, err)
	}
	return true, nil
}

// printNextSteps writes the next-steps markdown, rendered by glamour when
// stdout is a terminal and raw otherwise.
func printNextSteps(w io.Writer, s ui.Summary, render bool, d *Dependencies) error {
	md := ui.NextSteps(s)
	if !render {
		_, err := fmt.Fprint(w, md)
		return err
	}
	rendered, err := ui.RenderMarkdown(md, 80, d.Theme.NoColor)
	if err != nil {
		d.Logger.Warn("markdown render failed", "error", err)
		rendered = md
	}
	_, err = fmt.Fprint(w, rendered)
	return err
}

func summaryLines(a models.ProjectAnswers) []ui.SummaryLine {
	lines := []ui.SummaryLine{
		{Label: "Type", Value: string(a.ProjectType)},
		{Label: "CSS", Value: string(a.Preprocessor)},
		{Label: "Framework", Value: string(a.Framework)},
		{Label: "jQuery", Value: yesNo(a.UseJQuery)},
	}
	if a.PageCountSet {
		lines = append([]ui.SummaryLine{{Label: "Pages", Value: strconv.Itoa(a.PageCount)}}, lines...)
	}
	if len(a.Modules) > 0 {
		names := make([]string, len(a.Modules))
		for i, m := range a.Modules {
			names[i] = string(m)
		}
		lines = append(lines, ui.SummaryLine{Label: "Modules", Value: strings.Join(names, ", ")})
	}
	return lines
}

func dependencyList(m resolver.DependencyManifest) []string {
	var out []string
	for _, name := range m.Names() {
		rng, _ := m.Get(name)
		out = append(out, name+"@"+rng)
	}
	return out
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
