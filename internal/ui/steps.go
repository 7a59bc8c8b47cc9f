package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/learnquest/internal/meter"
)

// StepStatus represents the current state of a step
type StepStatus int

const (
	StepPending StepStatus = iota
	StepRunning
	StepComplete
	StepFailed
)

// Step is one line of a StepList
type Step struct {
	Name    string
	Status  StepStatus
	Message string // optional note, e.g. the state after the step
}

// StepList tracks a sequence of steps and renders them with a progress bar.
type StepList struct {
	Label string
	Steps []Step
	bar   progress.Model
}

// NewStepList creates a list with every step pending
func NewStepList(label string, names ...string) *StepList {
	steps := make([]Step, len(names))
	for i, n := range names {
		steps[i] = Step{Name: n}
	}
	return &StepList{
		Label: label,
		Steps: steps,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
		),
	}
}

// Set updates step i (0-based). Out of range indexes are ignored.
func (l *StepList) Set(i int, status StepStatus, message string) {
	if i < 0 || i >= len(l.Steps) {
		return
	}
	l.Steps[i].Status = status
	l.Steps[i].Message = message
}

// Done returns the number of completed steps
func (l *StepList) Done() int {
	n := 0
	for _, s := range l.Steps {
		if s.Status == StepComplete {
			n++
		}
	}
	return n
}

// Fraction is the share of completed steps, 0..1
func (l *StepList) Fraction() float64 {
	return meter.Fraction(float64(l.Done()), float64(len(l.Steps)))
}

// Render returns the styled step list
func (l *StepList) Render() string {
	var b strings.Builder

	if l.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(TextColor).PaddingLeft(2).Render(l.Label))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(
		fmt.Sprintf("%s  [%d/%d]", l.bar.ViewAs(l.Fraction()), l.Done(), len(l.Steps))))
	b.WriteString("\n\n")

	lines := make([]string, len(l.Steps))
	for i, s := range l.Steps {
		lines[i] = l.renderStep(i, s)
	}
	b.WriteString(strings.Join(lines, "\n"))

	return b.String()
}

func (l *StepList) renderStep(i int, s Step) string {
	marker, style := MarkerPending, StepPendingStyle
	switch s.Status {
	case StepComplete:
		marker, style = MarkerComplete, StepCompleteStyle
	case StepRunning:
		marker, style = MarkerRunning, StepRunningStyle
	case StepFailed:
		marker, style = MarkerFailed, ErrorTitleStyle
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  [%d/%d] ", i+1, len(l.Steps)))
	b.WriteString(style.Render(s.Name))

	pad := 32 - lipgloss.Width(s.Name)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(style.Render(marker))

	if s.Message != "" {
		b.WriteString("  ")
		b.WriteString(StepNoteStyle.Render("(" + s.Message + ")"))
	}
	return b.String()
}

// String implements fmt.Stringer
func (l *StepList) String() string {
	return l.Render()
}
