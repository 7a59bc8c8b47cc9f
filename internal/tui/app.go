package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/learnquest/internal/catalog"
	"github.com/muurk/learnquest/internal/logging"
	"github.com/muurk/learnquest/internal/ui"
	"github.com/muurk/learnquest/internal/viewstate"
)

// celebrationDoneMsg is delivered when a celebration's display time is up.
type celebrationDoneMsg struct {
	token uint64
}

// Options configures NewAppModel.
type Options struct {
	Catalog *catalog.Catalog
	Start   viewstate.Section    // ignored when the theme has no such tab
	Tones   viewstate.TonePlayer // nil keeps the UI silent
}

// AppModel is the top-level model. All screen content is derived from the
// catalog plus State.
type AppModel struct {
	Catalog *catalog.Catalog
	State   viewstate.State

	// Cursor is the highlighted row of list sections. It resets on tab change.
	Cursor int

	Width  int
	Height int

	ShowingHelp bool
	Keys        keyMap
	Help        help.Model

	XPBar     progress.Model
	EnergyBar progress.Model
	RowBar    progress.Model // course progress rows

	palette Palette
	tones   viewstate.TonePlayer
	detail  string // rendered description of the selected crystal
}

// NewAppModel creates the application model.
func NewAppModel(opts Options) AppModel {
	theme := opts.Catalog.Theme
	start := opts.Start
	if !viewstate.Offers(theme, start) {
		start = viewstate.DefaultSection(theme)
	}

	p := PaletteFor(theme)

	return AppModel{
		Catalog: opts.Catalog,
		State:   viewstate.New(start),
		Keys:    newKeyMap(),
		Help:    help.New(),
		XPBar: progress.New(
			progress.WithGradient(string(p.Primary), string(p.Secondary)),
			progress.WithWidth(30),
		),
		EnergyBar: progress.New(
			progress.WithGradient(string(p.Secondary), string(p.Accent)),
			progress.WithWidth(30),
		),
		RowBar: progress.New(
			progress.WithSolidFill(string(p.Secondary)),
			progress.WithWidth(20),
		),
		palette: p,
		tones:   opts.Tones,
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		if m.State.Selected != nil {
			m.detail = m.renderDescription(m.State.Selected)
		}
		return m, nil

	case celebrationDoneMsg:
		return m.dispatch(viewstate.DismissCelebration{Token: msg.token})

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.ShowingHelp {
		// Any key closes the help modal
		m.ShowingHelp = false
		return m, nil
	}

	switch m.State.Modal() {
	case viewstate.ModalCrystal:
		switch {
		case key.Matches(msg, m.Keys.Back, m.Keys.Enter):
			return m.dispatch(viewstate.ClearSelection{})
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		}
		return m, nil

	case viewstate.ModalCelebration:
		switch {
		case key.Matches(msg, m.Keys.Back, m.Keys.Enter):
			return m.dispatch(viewstate.DismissCelebration{Token: m.State.CelebrationToken})
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Help):
		m.ShowingHelp = true
	case key.Matches(msg, m.Keys.NextTab):
		return m.moveTab(1)
	case key.Matches(msg, m.Keys.PrevTab):
		return m.moveTab(-1)
	case key.Matches(msg, m.Keys.Jump):
		return m.jumpTab(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < m.rowCount()-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Enter):
		return m.activate()
	}

	return m, nil
}

// sections returns the tabs of the current theme.
func (m AppModel) sections() []viewstate.Section {
	return viewstate.SectionsFor(m.Catalog.Theme)
}

func (m AppModel) activeTab() int {
	for i, s := range m.sections() {
		if s == m.State.Section {
			return i
		}
	}
	return 0
}

func (m AppModel) moveTab(delta int) (tea.Model, tea.Cmd) {
	n := len(m.sections())
	return m.jumpTab(((m.activeTab()+delta)%n + n) % n)
}

func (m AppModel) jumpTab(i int) (tea.Model, tea.Cmd) {
	tabs := m.sections()
	if i < 0 || i >= len(tabs) {
		return m, nil
	}
	next, cmd := m.dispatch(viewstate.SetSection{Section: tabs[i]})
	next.Cursor = 0
	return next, cmd
}

// rowCount is the number of selectable rows in the current section.
func (m AppModel) rowCount() int {
	c := m.Catalog
	switch m.State.Section {
	case viewstate.SectionGames:
		return len(c.Games)
	case viewstate.SectionCourses:
		return len(c.Courses)
	case viewstate.SectionAchievements:
		return len(c.Achievements)
	case viewstate.SectionLeaderboard:
		return len(c.Leaderboard)
	case viewstate.SectionShop:
		return len(c.Shop)
	case viewstate.SectionMap:
		return len(c.Map)
	case viewstate.SectionCollection:
		return len(c.Crystals)
	case viewstate.SectionPractices:
		return len(c.Practices)
	case viewstate.SectionAffirmations:
		return len(c.Affirmations)
	}
	return 0
}

// activate handles enter on the highlighted row.
func (m AppModel) activate() (tea.Model, tea.Cmd) {
	c := m.Catalog
	if m.Cursor >= m.rowCount() {
		return m, nil
	}

	switch m.State.Section {
	case viewstate.SectionCollection:
		return m.dispatch(viewstate.SelectCrystal{Crystal: &c.Crystals[m.Cursor]})
	case viewstate.SectionMap:
		return m.dispatch(viewstate.SelectCrystal{Crystal: c.CrystalByID(c.Map[m.Cursor].CrystalID)})
	case viewstate.SectionGames, viewstate.SectionPractices:
		return m.dispatch(viewstate.TriggerCelebration{})
	case viewstate.SectionAchievements:
		if c.Achievements[m.Cursor].Unlocked {
			return m.dispatch(viewstate.TriggerCelebration{})
		}
	}
	return m, nil
}

// dispatch runs the reducer and turns its effects into commands.
func (m AppModel) dispatch(a viewstate.Action) (AppModel, tea.Cmd) {
	prev := m.State
	next, effects := viewstate.Reduce(prev, a)
	viewstate.Trace(prev, next, a)
	m.State = next

	if next.Selected != nil && next.Selected != prev.Selected {
		m.detail = m.renderDescription(next.Selected)
	}

	var cmds []tea.Cmd
	for _, e := range effects {
		switch e := e.(type) {
		case viewstate.StartTimer:
			cmds = append(cmds, celebrationTimer(e.Token, e.After))
		case viewstate.StopTimer:
			// The pending tick still arrives but carries a stale token.
			logging.Debug("Celebration timer superseded")
		case viewstate.PlayTone:
			cmds = append(cmds, playTone(m.tones, e.Frequency))
		}
	}
	return m, tea.Batch(cmds...)
}

func celebrationTimer(token uint64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return celebrationDoneMsg{token: token}
	})
}

func playTone(p viewstate.TonePlayer, frequency float64) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		p.Play(frequency)
		return nil
	}
}

func (m AppModel) renderDescription(cr *catalog.Crystal) string {
	return ui.RenderMarkdown(cr.Description, SafeModalWidth(ModalWidth, m.Width)-6)
}
