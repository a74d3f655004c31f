package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar tracks a determinate task.
type ProgressBar interface {
	// Advance moves one step forward and shows label as the current item.
	Advance(label string)
	// Done completes the bar. Safe to call more than once.
	Done()
}

// Spinner tracks an indeterminate task.
type Spinner interface {
	// Stop halts the spinner. Safe to call more than once.
	Stop()
}

// Progress creates progress bars and spinners that match the terminal.
type Progress struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress writing to w, or os.Stdout when w is nil.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) *Progress {
	if w == nil {
		w = os.Stdout
	}
	return &Progress{theme: theme, headless: hm, writer: w}
}

// Start creates a progress bar with total steps.
// In headless or no-color mode it returns a log-line bar.
func (p *Progress) Start(title string, total int) ProgressBar {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return &headlessProgressBar{title: title, total: total, writer: p.writer}
	}
	return newInteractiveProgressBar(p.theme, title, total, p.writer)
}

// Spinner creates an indeterminate spinner.
// In headless or no-color mode it prints the title once.
func (p *Progress) Spinner(title string) Spinner {
	if p.headless.IsHeadless() || p.theme.NoColor {
		_, _ = fmt.Fprintf(p.writer, "%s\n", title)
		return &headlessSpinner{}
	}
	return newInteractiveSpinner(p.theme, title, p.writer)
}

// --- interactive progress bar ---

type progressAdvanceMsg string

type progressDoneMsg struct{}

type progressModel struct {
	bar     progress.Model
	title   string
	label   string
	current int
	total   int
	done    bool
}

func newProgressModel(theme *Theme, title string, total int) progressModel {
	opts := []progress.Option{progress.WithWidth(40)}
	if theme.NoColor {
		opts = append(opts, progress.WithoutPercentage(), progress.WithFillCharacters('#', '-'))
	} else {
		opts = append(opts, progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary))
	}
	return progressModel{bar: progress.New(opts...), title: title, total: total}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressAdvanceMsg:
		if m.current < m.total {
			m.current++
		}
		m.label = string(msg)
		return m, nil
	case progressDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.current) / float64(m.total)
	}
	return fmt.Sprintf("%s\n%s [%d/%d] %s\n", m.title, m.bar.ViewAs(pct), m.current, m.total, m.label)
}

type interactiveProgressBar struct {
	program *tea.Program
	once    sync.Once
}

// newInteractiveProgressBar runs the bar model in its own goroutine until Done.
func newInteractiveProgressBar(theme *Theme, title string, total int, w io.Writer) *interactiveProgressBar {
	p := tea.NewProgram(newProgressModel(theme, title, total), tea.WithOutput(w), tea.WithInput(nil))
	pb := &interactiveProgressBar{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return pb
}

func (b *interactiveProgressBar) Advance(label string) {
	b.program.Send(progressAdvanceMsg(label))
}

func (b *interactiveProgressBar) Done() {
	b.once.Do(func() {
		b.program.Send(progressDoneMsg{})
		b.program.Wait()
	})
}

// --- headless progress bar ---

type headlessProgressBar struct {
	title   string
	total   int
	current int
	writer  io.Writer
	done    bool
}

func (b *headlessProgressBar) Advance(label string) {
	if b.current < b.total {
		b.current++
	}
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, label)
}

func (b *headlessProgressBar) Done() {
	if b.done {
		return
	}
	b.done = true
	_, _ = fmt.Fprintf(b.writer, "%s: done\n", b.title)
}

// --- spinners ---

type spinnerStopMsg struct{}

type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

type interactiveSpinner struct {
	program *tea.Program
	once    sync.Once
}

func newInteractiveSpinner(theme *Theme, title string, w io.Writer) *interactiveSpinner {
	p := tea.NewProgram(newSpinnerModel(theme, title), tea.WithOutput(w), tea.WithInput(nil))
	s := &interactiveSpinner{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return s
}

func (s *interactiveSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
	})
}

type headlessSpinner struct{}

func (headlessSpinner) Stop() {}
