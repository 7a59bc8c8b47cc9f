package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/learnquest/internal/meter"
)

const playbackTick = 50 * time.Millisecond

type playbackTickMsg time.Time

// PlaybackModel shows a progress bar for a sound of fixed length and quits
// when it has finished. It needs no input.
type PlaybackModel struct {
	Label    string
	Duration time.Duration

	start   time.Time
	elapsed time.Duration
	done    bool
	bar     progress.Model
}

// NewPlaybackModel creates a model that starts counting at start.
func NewPlaybackModel(label string, d time.Duration, start time.Time) PlaybackModel {
	return PlaybackModel{
		Label:    label,
		Duration: d,
		start:    start,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
		),
	}
}

func playbackTickCmd() tea.Cmd {
	return tea.Tick(playbackTick, func(t time.Time) tea.Msg {
		return playbackTickMsg(t)
	})
}

// Init implements tea.Model
func (m PlaybackModel) Init() tea.Cmd {
	return playbackTickCmd()
}

// Update implements tea.Model
func (m PlaybackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case playbackTickMsg:
		m.elapsed = time.Time(msg).Sub(m.start)
		if m.elapsed >= m.Duration {
			m.elapsed = m.Duration
			m.done = true
			return m, tea.Quit
		}
		return m, playbackTickCmd()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// Done reports whether playback has finished
func (m PlaybackModel) Done() bool {
	return m.done
}

// View implements tea.Model
func (m PlaybackModel) View() string {
	bar := m.bar.ViewAs(meter.Fraction(float64(m.elapsed), float64(m.Duration)))
	line := fmt.Sprintf("%s  %.1fs", bar, m.elapsed.Seconds())
	out := lipgloss.JoinVertical(lipgloss.Left,
		HeaderTitleStyle.Render(m.Label),
		lipgloss.NewStyle().PaddingLeft(2).Render(line),
	)
	if m.done {
		out += "\n"
	}
	return out
}

// RunPlayback calls play, then shows a progress bar on w until d has passed.
func RunPlayback(w io.Writer, label string, d time.Duration, play func()) error {
	if play != nil {
		play()
	}
	model := NewPlaybackModel(label, d, time.Now())
	p := tea.NewProgram(model, tea.WithOutput(w), tea.WithInput(nil))
	_, err := p.Run()
	return err
}
