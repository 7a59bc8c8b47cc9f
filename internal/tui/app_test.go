package tui

import (
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/learnquest/internal/catalog"
	"github.com/muurk/learnquest/internal/viewstate"
)

type recordingTones struct {
	mu     sync.Mutex
	played []float64
}

func (r *recordingTones) Play(f float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.played = append(r.played, f)
}

func newModel(t *testing.T, theme catalog.Theme, tones viewstate.TonePlayer) AppModel {
	t.Helper()
	cat, err := catalog.Load(theme)
	if err != nil {
		t.Fatalf("catalog.Load(%s) error = %v", theme, err)
	}
	m := NewAppModel(Options{Catalog: cat, Tones: tones})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(AppModel)
}

func press(t *testing.T, m AppModel, msgs ...tea.KeyMsg) (AppModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(AppModel)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestNewAppModelStartSection(t *testing.T) {
	cat, err := catalog.Load(catalog.ThemeCrystals)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		start viewstate.Section
		want  viewstate.Section
	}{
		{"theme default", "", viewstate.SectionMap},
		{"offered section", viewstate.SectionPractices, viewstate.SectionPractices},
		{"section from other theme", viewstate.SectionShop, viewstate.SectionMap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAppModel(Options{Catalog: cat, Start: tt.start})
			if m.State.Section != tt.want {
				t.Errorf("Section = %q, want %q", m.State.Section, tt.want)
			}
		})
	}
}

func TestTabNavigation(t *testing.T) {
	m := newModel(t, catalog.ThemeEducation, nil)

	m, _ = press(t, m, keyTab)
	if m.State.Section != viewstate.SectionGames {
		t.Errorf("after tab Section = %q, want games", m.State.Section)
	}

	m, _ = press(t, m, keyShiftTab, keyShiftTab)
	if m.State.Section != viewstate.SectionProfile {
		t.Errorf("shift+tab should wrap to profile, got %q", m.State.Section)
	}

	m, _ = press(t, m, runes("3"))
	if m.State.Section != viewstate.SectionCourses {
		t.Errorf("key 3 Section = %q, want courses", m.State.Section)
	}

	m, _ = press(t, m, runes("9"))
	if m.State.Section != viewstate.SectionCourses {
		t.Errorf("unknown jump changed section to %q", m.State.Section)
	}

	for i := 0; i < len(viewstate.SectionsFor(catalog.ThemeEducation)); i++ {
		m, _ = press(t, m, keyTab)
	}
	if m.State.Section != viewstate.SectionCourses {
		t.Errorf("a full cycle of tabs should return to courses, got %q", m.State.Section)
	}
}

func TestCursorResetsOnTabChange(t *testing.T) {
	m := newModel(t, catalog.ThemeEducation, nil)
	m, _ = press(t, m, runes("2"), keyDown, keyDown)
	if m.Cursor != 2 {
		t.Fatalf("Cursor = %d, want 2", m.Cursor)
	}

	m, _ = press(t, m, keyDown, keyDown, keyDown)
	if m.Cursor != len(m.Catalog.Games)-1 {
		t.Errorf("Cursor = %d, should stop at the last game", m.Cursor)
	}

	m, _ = press(t, m, keyTab)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after tab change, want 0", m.Cursor)
	}
}

func TestSelectCrystal(t *testing.T) {
	tones := &recordingTones{}
	m := newModel(t, catalog.ThemeCrystals, tones)

	// Collection tab, fourth crystal (level 7, profile level 8).
	m, _ = press(t, m, runes("2"), keyDown, keyDown, keyDown)
	m, cmd := press(t, m, keyEnter)

	want := &m.Catalog.Crystals[3]
	if m.State.Selected != want {
		t.Fatalf("Selected = %v, want %s", m.State.Selected, want.Name)
	}
	if cmd == nil {
		t.Fatal("selecting a crystal should return a tone command")
	}
	cmd()
	if len(tones.played) != 1 || tones.played[0] != 341.3 {
		t.Errorf("played = %v, want [341.3]", tones.played)
	}

	view := m.View()
	if !strings.Contains(view, want.Name) || !strings.Contains(view, "341.3") {
		t.Error("crystal modal should show the name and frequency")
	}

	// Tabs are inert while the modal is open.
	m, _ = press(t, m, keyTab)
	if m.State.Section != viewstate.SectionCollection {
		t.Errorf("tab changed section to %q under a modal", m.State.Section)
	}

	m, _ = press(t, m, keyEsc)
	if m.State.Selected != nil {
		t.Error("esc should clear the selection")
	}
}

func TestSelectLockedCrystal(t *testing.T) {
	m := newModel(t, catalog.ThemeCrystals, nil)

	// Fifth crystal needs level 10.
	m, _ = press(t, m, runes("2"), keyDown, keyDown, keyDown, keyDown)
	m, cmd := press(t, m, keyEnter)

	if m.State.Selected != nil {
		t.Errorf("locked crystal selected: %v", m.State.Selected.Name)
	}
	if cmd != nil {
		t.Error("locked crystal should not produce a command")
	}
}

func TestSelectFromMap(t *testing.T) {
	m := newModel(t, catalog.ThemeCrystals, nil)

	m, _ = press(t, m, keyEnter)
	if m.State.Selected == nil || m.State.Selected.ID != m.Catalog.Map[0].CrystalID {
		t.Errorf("Selected = %v, want the first map crystal", m.State.Selected)
	}
}

func TestCelebration(t *testing.T) {
	m := newModel(t, catalog.ThemeCrystals, nil)

	m, cmd := press(t, m, runes("3"), keyEnter)
	if !m.State.Celebrating {
		t.Fatal("completing a practice should start a celebration")
	}
	if cmd == nil {
		t.Fatal("celebration should schedule its dismissal")
	}
	token := m.State.CelebrationToken

	if !strings.Contains(m.View(), "Отлично") {
		t.Error("celebration modal not rendered")
	}

	next, _ := m.Update(celebrationDoneMsg{token: token - 1})
	m = next.(AppModel)
	if !m.State.Celebrating {
		t.Error("stale tick dismissed the celebration")
	}

	next, _ = m.Update(celebrationDoneMsg{token: token})
	m = next.(AppModel)
	if m.State.Celebrating {
		t.Error("live tick did not dismiss the celebration")
	}
}

func TestCelebrationDismissedByKey(t *testing.T) {
	m := newModel(t, catalog.ThemeEducation, nil)

	m, _ = press(t, m, runes("2"), keyEnter)
	if !m.State.Celebrating {
		t.Fatal("playing a game should start a celebration")
	}
	m, _ = press(t, m, keyEsc)
	if m.State.Celebrating {
		t.Error("esc should dismiss the celebration")
	}
}

func TestLockedAchievementDoesNotCelebrate(t *testing.T) {
	m := newModel(t, catalog.ThemeEducation, nil)
	m, _ = press(t, m, runes("4"))

	for i, a := range m.Catalog.Achievements {
		m.Cursor = i
		next, _ := m.activate()
		got := next.(AppModel).State.Celebrating
		if got != a.Unlocked {
			t.Errorf("achievement %q celebrating = %v, want %v", a.Title, got, a.Unlocked)
		}
	}
}

func TestHelpModal(t *testing.T) {
	m := newModel(t, catalog.ThemeEducation, nil)

	m, _ = press(t, m, runes("?"))
	if !m.ShowingHelp {
		t.Fatal("? should open help")
	}
	if !strings.Contains(m.View(), "СПРАВКА") {
		t.Error("help modal not rendered")
	}

	m, _ = press(t, m, runes("x"))
	if m.ShowingHelp {
		t.Error("any key should close help")
	}
}

func TestViewEverySection(t *testing.T) {
	for _, theme := range catalog.Themes {
		m := newModel(t, theme, nil)
		for _, s := range viewstate.SectionsFor(theme) {
			m.State.Section = s
			view := m.View()
			if !strings.Contains(view, s.Label()) {
				t.Errorf("%s/%s view missing tab label", theme, s)
			}
		}
	}
}
