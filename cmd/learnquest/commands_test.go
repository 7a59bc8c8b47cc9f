package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/muurk/learnquest/internal/catalog"
	"github.com/muurk/learnquest/internal/tone"
	"github.com/muurk/learnquest/internal/viewstate"
)

func crystalsCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(catalog.ThemeCrystals)
	if err != nil {
		t.Fatalf("catalog.Load() error = %v", err)
	}
	return cat
}

func TestParseAction(t *testing.T) {
	cat := crystalsCatalog(t)

	tests := []struct {
		raw     string
		wantErr bool
		check   func(t *testing.T, s scriptStep)
	}{
		{raw: "section:practices", check: func(t *testing.T, s scriptStep) {
			if a, ok := s.action.(viewstate.SetSection); !ok || a.Section != viewstate.SectionPractices {
				t.Errorf("action = %#v", s.action)
			}
		}},
		{raw: "section:shop", wantErr: true},
		{raw: "select:4", check: func(t *testing.T, s scriptStep) {
			a, ok := s.action.(viewstate.SelectCrystal)
			if !ok || a.Crystal != cat.CrystalByID(4) {
				t.Errorf("action = %#v", s.action)
			}
		}},
		{raw: "select:99", wantErr: true},
		{raw: "select:x", wantErr: true},
		{raw: "clear", check: func(t *testing.T, s scriptStep) {
			if _, ok := s.action.(viewstate.ClearSelection); !ok {
				t.Errorf("action = %#v", s.action)
			}
		}},
		{raw: "celebrate", check: func(t *testing.T, s scriptStep) {
			if _, ok := s.action.(viewstate.TriggerCelebration); !ok {
				t.Errorf("action = %#v", s.action)
			}
		}},
		{raw: "wait:1500ms", check: func(t *testing.T, s scriptStep) {
			if s.action != nil || s.wait.Milliseconds() != 1500 {
				t.Errorf("step = %#v", s)
			}
		}},
		{raw: "wait:-1s", wantErr: true},
		{raw: "wait:soon", wantErr: true},
		{raw: "dance", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			step, err := parseAction(cat, tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAction(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, step)
			}
		})
	}
}

func TestRunScript(t *testing.T) {
	cat := crystalsCatalog(t)

	var steps []scriptStep
	for _, raw := range []string{"section:collection", "select:4", "select:5", "clear", "celebrate", "wait:1ms"} {
		s, err := parseAction(cat, raw)
		if err != nil {
			t.Fatalf("parseAction(%q) error = %v", raw, err)
		}
		steps = append(steps, s)
	}

	ctrl := viewstate.NewController(viewstate.SectionMap, nil, nil)
	defer ctrl.Close()

	var buf bytes.Buffer
	if err := runScript(context.Background(), &buf, ctrl, steps); err != nil {
		t.Fatalf("runScript() error = %v", err)
	}

	got := ctrl.State()
	if got.Section != viewstate.SectionCollection || got.Selected != nil || !got.Celebrating {
		t.Errorf("final state = %+v", got)
	}

	out := buf.String()
	for _, want := range []string{"[6/6]", "crystal=Розовый кварц", "celebrating #1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRunScriptCancelled(t *testing.T) {
	cat := crystalsCatalog(t)
	step, err := parseAction(cat, "wait:1h")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ctrl := viewstate.NewController(viewstate.SectionMap, nil, nil)
	defer ctrl.Close()

	var buf bytes.Buffer
	if err := runScript(ctx, &buf, ctrl, []scriptStep{step}); err != context.Canceled {
		t.Errorf("runScript() error = %v, want context.Canceled", err)
	}
	if !strings.Contains(buf.String(), "interrupted") {
		t.Errorf("output should mark the wait interrupted\n%s", buf.String())
	}
}

func TestDescribeState(t *testing.T) {
	cr := &catalog.Crystal{Name: "Аметист"}
	tests := []struct {
		state viewstate.State
		want  string
	}{
		{viewstate.State{Section: viewstate.SectionMap}, "section=map"},
		{viewstate.State{Section: viewstate.SectionMap, Selected: cr}, "section=map crystal=Аметист"},
		{viewstate.State{Section: viewstate.SectionPractices, Celebrating: true, CelebrationToken: 2}, "section=practices celebrating #2"},
	}
	for _, tt := range tests {
		if got := describeState(tt.state); got != tt.want {
			t.Errorf("describeState() = %q, want %q", got, tt.want)
		}
	}
}

func TestSectionHelpers(t *testing.T) {
	for _, theme := range catalog.Themes {
		cat, err := catalog.Load(theme)
		if err != nil {
			t.Fatal(err)
		}
		for _, s := range viewstate.SectionsFor(theme) {
			if sectionText(cat, s) == "" {
				t.Errorf("%s/%s: empty text", theme, s)
			}
			if sectionData(cat, s) == nil {
				t.Errorf("%s/%s: nil data", theme, s)
			}
		}
	}
}

type fakeDrainer struct {
	calls    int
	deadline time.Time
	err      error
}

func (f *fakeDrainer) Drain(ctx context.Context) error {
	f.calls++
	f.deadline, _ = ctx.Deadline()
	return f.err
}

func TestLetTonesFinish(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"drained", nil, false},
		{"tone outlived the wait", context.DeadlineExceeded, false},
		{"interrupted", context.Canceled, true},
		{"other failure", errors.New("device lost"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &fakeDrainer{err: tt.err}
			start := time.Now()

			err := letTonesFinish(context.Background(), d)
			if (err != nil) != tt.wantErr {
				t.Fatalf("letTonesFinish() error = %v, wantErr %v", err, tt.wantErr)
			}
			if d.calls != 1 {
				t.Fatalf("Drain called %d times, want 1", d.calls)
			}
			if limit := start.Add(tone.Duration + drainSlack); d.deadline.IsZero() || d.deadline.After(limit.Add(time.Second)) {
				t.Errorf("deadline = %v, want at most one tone from now", d.deadline)
			}
			if d.deadline.Before(start.Add(tone.Duration)) {
				t.Errorf("deadline = %v leaves less than a full tone", d.deadline)
			}
		})
	}
}
