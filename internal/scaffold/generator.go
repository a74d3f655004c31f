package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/go-git/go-billy/v5"

	"github.com/pixel2html/p2h/internal/defs"
	"github.com/pixel2html/p2h/internal/resolver"
	"github.com/pixel2html/p2h/internal/template"
	"github.com/pixel2html/p2h/pkg/models"
)

// BowerFileName is the manifest written at the project root.
const BowerFileName = defs.BowerJSON

// Skeleton lists the directories every project gets, parents first.
var Skeleton = []string{
	defs.AssetsDir,
	defs.SourceDir,
	defs.SourceDir + "/fonts",
	defs.SourceDir + "/icons",
	defs.SourceDir + "/images",
	defs.VendorDir,
	defs.SourceDir + "/js",
}

// Result reports what a Generate call did.
type Result struct {
	CreatedDirs  []string
	CreatedFiles []string
	SkippedFiles []string
	Bytes        int64
}

// EventKind classifies a progress event.
type EventKind int

const (
	// EventDir is reported for each skeleton directory.
	EventDir EventKind = iota
	// EventFile is reported for each planned file, bower.json included.
	EventFile
)

// Event is passed to the progress hook after each unit of work.
type Event struct {
	Kind    EventKind
	Path    string
	Skipped bool // File existed and was left alone, or directory already existed
	Done    int
	Total   int
}

// ProgressFunc receives progress events.
type ProgressFunc func(Event)

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the generator logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithProgress registers a progress hook.
func WithProgress(fn ProgressFunc) Option {
	return func(g *Generator) {
		g.progress = fn
	}
}

// WithForce overwrites existing files instead of skipping them.
func WithForce(force bool) Option {
	return func(g *Generator) {
		g.force = force
	}
}

// WithSources replaces the embedded template sources.
func WithSources(fsys fs.FS) Option {
	return func(g *Generator) {
		g.sources = fsys
	}
}

// WithVersion sets the version stamped into generated files.
func WithVersion(v string) Option {
	return func(g *Generator) {
		g.version = v
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// Generator writes a project into an output filesystem.
type Generator struct {
	out      billy.Filesystem
	sources  fs.FS
	logger   *slog.Logger
	progress ProgressFunc
	force    bool
	version  string
	now      func() time.Time
}

// New creates a Generator writing into out.
func New(out billy.Filesystem, opts ...Option) (*Generator, error) {
	g := &Generator{
		out:    out,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.sources == nil {
		fsys, err := template.EmbeddedTemplates()
		if err != nil {
			return nil, fmt.Errorf("load embedded templates: %w", err)
		}
		g.sources = fsys
	}
	return g, nil
}

// TotalSteps returns the number of progress events Generate emits for answers.
func (g *Generator) TotalSteps(answers models.ProjectAnswers) int {
	tmplCtx := template.NewTemplateContext(template.WithAnswers(answers))
	return len(Skeleton) + len(template.DefaultPlan().For(tmplCtx)) + 1
}

// Generate validates the inputs, creates the directory skeleton, deploys the
// templates and writes bower.json. Invalid answers or an invalid manifest
// return an error before anything is written. The first write error aborts
// the run.
func (g *Generator) Generate(ctx context.Context, answers models.ProjectAnswers, manifest resolver.DependencyManifest) (*Result, error) {
	if err := answers.Validate(); err != nil {
		return nil, err
	}
	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("dependency manifest: %w", err)
	}

	result := &Result{}
	total := g.TotalSteps(answers)
	done := 0
	report := func(ev Event) {
		done++
		ev.Done, ev.Total = done, total
		if g.progress != nil {
			g.progress(ev)
		}
	}

	for _, dir := range Skeleton {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		created, err := g.ensureDir(dir)
		if err != nil {
			return result, err
		}
		if created {
			result.CreatedDirs = append(result.CreatedDirs, dir)
		}
		report(Event{Kind: EventDir, Path: dir, Skipped: !created})
	}

	tmplCtx := template.NewTemplateContext(
		template.WithAnswers(answers),
		template.WithVersion(g.version),
		template.WithCreatedAt(g.now()),
	)
	deployer := template.NewDeployer(g.sources,
		template.WithForceUpdate(g.force),
		template.WithDeployLogger(g.logger),
		template.WithFileHook(func(ev template.FileEvent) {
			report(Event{Kind: EventFile, Path: ev.Dest, Skipped: ev.Skipped})
		}),
	)
	deployed, err := deployer.Deploy(ctx, g.out, tmplCtx)
	if deployed != nil {
		result.CreatedFiles = append(result.CreatedFiles, deployed.Written...)
		result.SkippedFiles = append(result.SkippedFiles, deployed.Skipped...)
		result.Bytes += deployed.Bytes
	}
	if err != nil {
		return result, err
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	written, n, err := g.writeBower(answers, manifest)
	if err != nil {
		return result, err
	}
	if written {
		result.CreatedFiles = append(result.CreatedFiles, BowerFileName)
		result.Bytes += int64(n)
	} else {
		result.SkippedFiles = append(result.SkippedFiles, BowerFileName)
	}
	report(Event{Kind: EventFile, Path: BowerFileName, Skipped: !written})

	g.logger.Info("project generated",
		"project", answers.ProjectName,
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
		"skipped", len(result.SkippedFiles),
		"bytes", result.Bytes,
	)
	return result, nil
}

// ensureDir creates dir unless it already exists. It reports whether the
// directory was created.
func (g *Generator) ensureDir(dir string) (bool, error) {
	info, err := g.out.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		g.logger.Debug("directory exists", "path", dir)
		return false, nil
	case err == nil:
		return false, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	case !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("stat %q: %w", dir, err)
	}

	if err := g.out.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create directory %q: %w", dir, err)
	}
	g.logger.Debug("directory created", "path", dir)
	return true, nil
}

// writeBower writes bower.json, skipping an existing file unless forced.
func (g *Generator) writeBower(answers models.ProjectAnswers, manifest resolver.DependencyManifest) (bool, int, error) {
	if !g.force {
		if _, err := g.out.Stat(BowerFileName); err == nil {
			g.logger.Debug("file exists, skipping", "path", BowerFileName)
			return false, 0, nil
		}
	}

	data, err := NewBowerFile(answers.ProjectName, manifest).Encode()
	if err != nil {
		return false, 0, err
	}
	if err := template.WriteFile(g.out, BowerFileName, data); err != nil {
		return false, 0, fmt.Errorf("write %s: %w", BowerFileName, err)
	}
	return true, len(data), nil
}
