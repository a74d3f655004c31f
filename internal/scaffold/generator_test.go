package scaffold

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixel2html/p2h/internal/resolver"
	"github.com/pixel2html/p2h/pkg/models"
)

func jqueryAnswers() models.ProjectAnswers {
	return models.ProjectAnswers{
		ProjectName:  "Acme Corp",
		ProjectType:  models.ProjectTypeDesktop,
		Preprocessor: models.PreprocessorSass,
		Framework:    models.FrameworkNone,
		UseJQuery:    true,
		Modules:      []models.Module{models.ModuleParsley, models.ModuleModernizr},
	}
}

func fixedClock() time.Time {
	return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestGenerateWritesProject(t *testing.T) {
	out := memfs.New()
	g, err := New(out, WithVersion("1.0.0"), WithClock(fixedClock))
	require.NoError(t, err)

	answers := jqueryAnswers()
	res, err := g.Generate(context.Background(), answers, resolver.Resolve(answers))
	require.NoError(t, err)

	assert.Equal(t, Skeleton, res.CreatedDirs)
	assert.Contains(t, res.CreatedFiles, "package.json")
	assert.Contains(t, res.CreatedFiles, "gulpfile.js")
	assert.Contains(t, res.CreatedFiles, BowerFileName)
	assert.Empty(t, res.SkippedFiles)
	assert.Positive(t, res.Bytes)

	for _, dir := range Skeleton {
		info, err := out.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	data, err := util.ReadFile(out, BowerFileName)
	require.NoError(t, err)

	var bower struct {
		Name         string            `json:"name"`
		Private      bool              `json:"private"`
		Dependencies map[string]string `json:"dependencies"`
	}
	require.NoError(t, json.Unmarshal(data, &bower))
	assert.Equal(t, "pixel2html-acme-corp", bower.Name)
	assert.True(t, bower.Private)
	assert.Equal(t, map[string]string{
		"jquery":    "~2.1.*",
		"parsleyjs": "~2.1.*",
		"modernizr": "~2.8.*",
	}, bower.Dependencies)
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestGenerateBowerFormatting(t *testing.T) {
	out := memfs.New()
	g, err := New(out)
	require.NoError(t, err)

	answers := models.ProjectAnswers{
		ProjectName:  "Shop",
		ProjectType:  models.ProjectTypeMobile,
		Preprocessor: models.PreprocessorLess,
		Framework:    models.FrameworkBootstrap,
		Modules:      []models.Module{},
	}
	_, err = g.Generate(context.Background(), answers, resolver.Resolve(answers))
	require.NoError(t, err)

	data, err := util.ReadFile(out, BowerFileName)
	require.NoError(t, err)
	want := "{\n  \"name\": \"pixel2html-shop\",\n  \"private\": true,\n  \"dependencies\": {\n    \"bootstrap\": \"~3.3.*\"\n  }\n}\n"
	assert.Equal(t, want, string(data))

	_, err = out.Stat("gulp/vendor/bootstrap.js")
	assert.NoError(t, err)
}

func TestGenerateTokenLikeProjectName(t *testing.T) {
	for _, name := range []string{"Acme <% beta %>", "Site {{ .Draft }}"} {
		t.Run(name, func(t *testing.T) {
			out := memfs.New()
			g, err := New(out)
			require.NoError(t, err)

			answers := models.ProjectAnswers{
				ProjectName:  name,
				ProjectType:  models.ProjectTypeDesktop,
				Preprocessor: models.PreprocessorSass,
				Framework:    models.FrameworkBootstrap,
			}
			res, err := g.Generate(context.Background(), answers, resolver.Resolve(answers))
			require.NoError(t, err)
			assert.Contains(t, res.CreatedFiles, BowerFileName)

			pkgData, err := util.ReadFile(out, "package.json")
			require.NoError(t, err)
			var pkg struct {
				Description string `json:"description"`
			}
			require.NoError(t, json.Unmarshal(pkgData, &pkg))
			assert.Equal(t, name+" | Pixel2HTML", pkg.Description)

			gulpfile, err := util.ReadFile(out, "gulpfile.js")
			require.NoError(t, err)
			assert.Contains(t, string(gulpfile), "// "+name+"\n")
		})
	}
}

func TestGenerateControlCharacterNameWritesNothing(t *testing.T) {
	out := memfs.New()
	g, err := New(out)
	require.NoError(t, err)

	answers := jqueryAnswers()
	answers.ProjectName = "line1\nvar x = 1"
	res, err := g.Generate(context.Background(), answers, resolver.Resolve(answers))
	require.ErrorIs(t, err, models.ErrInvalidAnswers)
	assert.Nil(t, res)

	assertEmptyOutput(t, out)
}

func TestGenerateInvalidAnswersWritesNothing(t *testing.T) {
	out := memfs.New()
	g, err := New(out)
	require.NoError(t, err)

	answers := jqueryAnswers()
	answers.ProjectName = ""
	res, err := g.Generate(context.Background(), answers, resolver.Resolve(answers))
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidAnswers))
	assert.Nil(t, res)

	assertEmptyOutput(t, out)
}

func TestGenerateJQueryWithFrameworkRejected(t *testing.T) {
	out := memfs.New()
	g, err := New(out)
	require.NoError(t, err)

	answers := jqueryAnswers()
	answers.Framework = models.FrameworkFoundation
	_, err = g.Generate(context.Background(), answers, resolver.DependencyManifest{})
	assert.ErrorIs(t, err, models.ErrInvalidAnswers)
	assertEmptyOutput(t, out)
}

// assertEmptyOutput checks that nothing from the skeleton or plan exists.
func assertEmptyOutput(t *testing.T, out billy.Filesystem) {
	t.Helper()
	for _, p := range append([]string{"package.json", "gulpfile.js", BowerFileName}, Skeleton...) {
		_, err := out.Stat(p)
		assert.Error(t, err, "%s should not exist", p)
	}
}

func TestGenerateIsIdempotentForDirectories(t *testing.T) {
	out := memfs.New()
	g, err := New(out)
	require.NoError(t, err)

	answers := jqueryAnswers()
	manifest := resolver.Resolve(answers)

	_, err = g.Generate(context.Background(), answers, manifest)
	require.NoError(t, err)

	res, err := g.Generate(context.Background(), answers, manifest)
	require.NoError(t, err)
	assert.Empty(t, res.CreatedDirs)
	assert.Empty(t, res.CreatedFiles)
	assert.Contains(t, res.SkippedFiles, "package.json")
	assert.Contains(t, res.SkippedFiles, BowerFileName)
	assert.Zero(t, res.Bytes)
}

func TestGenerateForceOverwrites(t *testing.T) {
	out := memfs.New()
	require.NoError(t, util.WriteFile(out, BowerFileName, []byte("{}\n"), 0o644))
	require.NoError(t, util.WriteFile(out, "package.json", []byte("{}\n"), 0o644))

	g, err := New(out, WithForce(true))
	require.NoError(t, err)

	answers := jqueryAnswers()
	res, err := g.Generate(context.Background(), answers, resolver.Resolve(answers))
	require.NoError(t, err)
	assert.Empty(t, res.SkippedFiles)

	data, err := util.ReadFile(out, BowerFileName)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pixel2html-acme-corp")
}

func TestGenerateSkeletonPathIsFile(t *testing.T) {
	out := memfs.New()
	require.NoError(t, util.WriteFile(out, "assets", []byte("x"), 0o644))

	g, err := New(out)
	require.NoError(t, err)

	answers := jqueryAnswers()
	_, err = g.Generate(context.Background(), answers, resolver.Resolve(answers))
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestGenerateProgressEvents(t *testing.T) {
	var events []Event
	g, err := New(memfs.New(), WithProgress(func(ev Event) { events = append(events, ev) }))
	require.NoError(t, err)

	answers := jqueryAnswers()
	_, err = g.Generate(context.Background(), answers, resolver.Resolve(answers))
	require.NoError(t, err)

	total := g.TotalSteps(answers)
	require.Len(t, events, total)
	for i, ev := range events {
		assert.Equal(t, i+1, ev.Done)
		assert.Equal(t, total, ev.Total)
	}
	assert.Equal(t, EventDir, events[0].Kind)
	assert.Equal(t, BowerFileName, events[len(events)-1].Path)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := memfs.New()
	g, err := New(out)
	require.NoError(t, err)

	answers := jqueryAnswers()
	_, err = g.Generate(ctx, answers, resolver.Resolve(answers))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateOnDisk(t *testing.T) {
	root := t.TempDir()
	g, err := New(osfs.New(root))
	require.NoError(t, err)

	answers := jqueryAnswers()
	res, err := g.Generate(context.Background(), answers, resolver.Resolve(answers))
	require.NoError(t, err)
	assert.Contains(t, res.CreatedFiles, ".bowerrc")

	info, err := osfs.New(root).Stat("package.json")
	require.NoError(t, err)
	assert.Equal(t, "package.json", info.Name())
	assert.Equal(t, 0o644, int(info.Mode().Perm()))
}

func TestBowerName(t *testing.T) {
	assert.Equal(t, "pixel2html-acme-corp", BowerName("Acme Corp"))
	assert.Equal(t, "pixel2html-untitled", BowerName("!!!"))
}
