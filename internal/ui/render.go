package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"
)

// Banner returns the welcome message shown before the questions.
func Banner(t *Theme, version string) string {
	title := t.Title().Render("Pixel2HTML")
	body := title + " " + t.Muted().Render("boilerplate generator "+version) +
		"\n\nWelcome! Answer a few questions and your project skeleton\nwill be ready for bower and gulp."
	return t.Card().Render(body)
}

// Summary is the data shown after a successful run.
type Summary struct {
	ProjectName  string
	Destination  string
	Lines        []SummaryLine // Answer recap, in display order
	Dirs         int
	Files        int
	Skipped      int
	Bytes        int64
	Dependencies []string // "name@range", sorted
	GitInit      bool
}

// SummaryLine is one labelled value of the answer recap.
type SummaryLine struct {
	Label string
	Value string
}

// SummaryCard renders the success card.
func SummaryCard(t *Theme, s Summary) string {
	var b strings.Builder
	b.WriteString(t.Success().Render("✓") + " " + t.Title().Render(s.ProjectName) + " scaffolded in " + s.Destination)
	b.WriteString("\n")

	width := 0
	for _, l := range s.Lines {
		width = max(width, len(l.Label))
	}
	for _, l := range s.Lines {
		b.WriteString("\n")
		b.WriteString(t.Muted().Render(fmt.Sprintf("%-*s", width, l.Label)))
		b.WriteString("  " + l.Value)
	}

	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%d directories, %d files (%s)", s.Dirs, s.Files, humanize.Bytes(uint64(max(s.Bytes, 0))))
	if s.Skipped > 0 {
		b.WriteString(t.Muted().Render(fmt.Sprintf(", %d existing files kept", s.Skipped)))
	}
	if len(s.Dependencies) > 0 {
		b.WriteString("\nbower: " + strings.Join(s.Dependencies, ", "))
	}
	if s.GitInit {
		b.WriteString("\ngit repository initialized")
	}

	return t.Card().Render(b.String())
}

// NextSteps returns the post-generation instructions as markdown.
func NextSteps(s Summary) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n")
	if s.Destination != "" && s.Destination != "." {
		fmt.Fprintf(&b, "1. `cd %s`\n", s.Destination)
	} else {
		b.WriteString("1. Stay in this directory\n")
	}
	b.WriteString("2. `npm install` to fetch the gulp toolchain\n")
	if len(s.Dependencies) > 0 {
		b.WriteString("3. `bower install` to fetch the front-end dependencies\n")
		b.WriteString("4. `gulp` to build and serve the project\n")
	} else {
		b.WriteString("3. `gulp` to build and serve the project\n")
	}
	return b.String()
}

// RenderMarkdown renders md for the terminal. Without color it uses glamour's
// plain notty style.
func RenderMarkdown(md string, width int, noColor bool) (string, error) {
	style := glamour.WithAutoStyle()
	if noColor {
		style = glamour.WithStandardStyle("notty")
	}
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
