package template

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
)

// FileEvent describes the outcome for one planned file.
type FileEvent struct {
	Dest    string
	Skipped bool
	Bytes   int
}

// Report summarises a Deploy call.
type Report struct {
	Written []string // Destinations written, in plan order
	Skipped []string // Destinations left untouched because they already existed
	Bytes   int64    // Total bytes written
}

// Deployer renders the planned templates and writes them to an output
// filesystem.
type Deployer interface {
	// Deploy writes every file of the plan that applies to tmplCtx.
	// Existing files are skipped unless the deployer forces updates.
	// The first write error aborts the remaining files.
	Deploy(ctx context.Context, out billy.Filesystem, tmplCtx *TemplateContext) (*Report, error)

	// Plan returns the files Deploy would consider for tmplCtx.
	Plan(tmplCtx *TemplateContext) FilePlan
}

// DeployOption configures a deployer.
type DeployOption func(*deployer)

// WithPlan replaces the default file plan.
func WithPlan(p FilePlan) DeployOption {
	return func(d *deployer) {
		d.plan = p
	}
}

// WithForceUpdate overwrites existing files instead of skipping them.
func WithForceUpdate(force bool) DeployOption {
	return func(d *deployer) {
		d.forceUpdate = force
	}
}

// WithFileHook registers a callback invoked after each planned file.
func WithFileHook(fn func(FileEvent)) DeployOption {
	return func(d *deployer) {
		d.onFile = fn
	}
}

// WithDeployLogger sets the deployer logger.
func WithDeployLogger(l *slog.Logger) DeployOption {
	return func(d *deployer) {
		if l != nil {
			d.logger = l
		}
	}
}

type deployer struct {
	fsys        fs.FS
	renderer    Renderer
	plan        FilePlan
	forceUpdate bool
	onFile      func(FileEvent)
	logger      *slog.Logger
}

// NewDeployer creates a Deployer reading sources from fsys.
// In production fsys comes from EmbeddedTemplates; in tests use testing/fstest.MapFS.
func NewDeployer(fsys fs.FS, opts ...DeployOption) Deployer {
	d := &deployer{
		fsys:     fsys,
		renderer: NewRenderer(fsys),
		plan:     DefaultPlan(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Plan returns the files that apply to tmplCtx.
func (d *deployer) Plan(tmplCtx *TemplateContext) FilePlan {
	return d.plan.For(tmplCtx)
}

// Deploy renders and writes each applicable file.
func (d *deployer) Deploy(ctx context.Context, out billy.Filesystem, tmplCtx *TemplateContext) (*Report, error) {
	report := &Report{}

	for _, f := range d.plan.For(tmplCtx) {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		dest, err := validateDeployPath(f.Dest)
		if err != nil {
			return report, err
		}

		if !d.forceUpdate {
			if _, statErr := out.Stat(dest); statErr == nil {
				d.logger.Debug("file exists, skipping", "path", dest)
				report.Skipped = append(report.Skipped, dest)
				d.emit(FileEvent{Dest: dest, Skipped: true})
				continue
			}
		}

		content, err := d.content(f, tmplCtx)
		if err != nil {
			return report, err
		}

		if err := writeFileAtomic(out, dest, content, 0o644); err != nil {
			return report, fmt.Errorf("template deploy write %q: %w", dest, err)
		}

		d.logger.Debug("file written", "path", dest, "bytes", len(content))
		report.Written = append(report.Written, dest)
		report.Bytes += int64(len(content))
		d.emit(FileEvent{Dest: dest, Bytes: len(content)})
	}

	return report, nil
}

// content renders templated sources and reads verbatim ones.
func (d *deployer) content(f FileSpec, tmplCtx *TemplateContext) ([]byte, error) {
	if f.Render() {
		if tmplCtx == nil {
			return nil, fmt.Errorf("template render %q: no template context", f.Source)
		}
		rendered, err := d.renderer.Render(f.Source, tmplCtx)
		if err != nil {
			return nil, fmt.Errorf("template render %q: %w", f.Source, err)
		}
		return rendered, nil
	}

	raw, err := fs.ReadFile(d.fsys, f.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, f.Source)
	}
	return raw, nil
}

func (d *deployer) emit(ev FileEvent) {
	if d.onFile != nil {
		d.onFile(ev)
	}
}

// chmoder is the subset of billy.Change needed to fix temp file permissions.
type chmoder interface {
	Chmod(name string, mode os.FileMode) error
}

// writeFileAtomic writes data to a temp file in the destination directory and
// renames it into place, so readers never see a partial file.
func writeFileAtomic(out billy.Filesystem, dest string, data []byte, perm fs.FileMode) error {
	dir := path.Dir(dest)
	if dir != "." {
		if err := out.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %q: %w", dir, err)
		}
	}

	tmp, err := out.TempFile(dir, ".p2h-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = out.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = out.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if ch, ok := out.(chmoder); ok {
		_ = ch.Chmod(tmpName, perm)
	}

	if err := out.Rename(tmpName, dest); err != nil {
		_ = out.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// WriteFile atomically writes data at rel inside out after the same path
// checks Deploy applies.
func WriteFile(out billy.Filesystem, rel string, data []byte) error {
	dest, err := validateDeployPath(rel)
	if err != nil {
		return err
	}
	return writeFileAtomic(out, dest, data, 0o644)
}

// validateDeployPath ensures a destination stays inside the output root and
// returns its cleaned slash form.
func validateDeployPath(relPath string) (string, error) {
	if relPath == "" {
		return "", fmt.Errorf("%w: empty path", ErrPathTraversal)
	}
	if strings.HasPrefix(relPath, "/") || strings.HasPrefix(relPath, `\`) || (len(relPath) > 1 && relPath[1] == ':') {
		return "", fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	cleaned := path.Clean(strings.ReplaceAll(relPath, `\`, "/"))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %q escapes the output root", ErrPathTraversal, relPath)
	}
	return cleaned, nil
}
