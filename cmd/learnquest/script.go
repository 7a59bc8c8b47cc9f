package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/learnquest/internal/catalog"
	"github.com/muurk/learnquest/internal/logging"
	"github.com/muurk/learnquest/internal/tone"
	"github.com/muurk/learnquest/internal/ui"
	"github.com/muurk/learnquest/internal/viewstate"
)

// scriptCmd drives the view state without a terminal UI
var scriptCmd = &cobra.Command{
	Use:   "script <action>...",
	Short: "Run a sequence of UI actions headlessly",
	Long: `Run UI actions against the view state in order and print the state
after each one. Timers and tones behave as in the interactive interface.

Actions:
  section:<name>   switch tab
  select:<id>      open a crystal (locked crystals are ignored)
  clear            close the crystal detail
  celebrate        show the celebration
  wait:<duration>  sleep, e.g. wait:3s`,
	Example: `  # Celebration that dismisses itself after three seconds
  learnquest --theme crystals script celebrate wait:3s

  # Open rose quartz, then close it
  learnquest --theme crystals script section:collection select:4 clear`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScriptCmd,
}

// scriptStep is one parsed action. A zero action with a wait sleeps.
type scriptStep struct {
	raw    string
	action viewstate.Action
	wait   time.Duration
}

// parseAction parses one script argument against the catalog.
func parseAction(cat *catalog.Catalog, raw string) (scriptStep, error) {
	name, arg, _ := strings.Cut(raw, ":")
	step := scriptStep{raw: raw}

	switch name {
	case "section":
		s := viewstate.Section(arg)
		if !viewstate.Offers(cat.Theme, s) {
			return step, fmt.Errorf("%s: theme %s has no section %q", raw, cat.Theme, arg)
		}
		step.action = viewstate.SetSection{Section: s}
	case "select":
		id, err := strconv.Atoi(arg)
		if err != nil {
			return step, fmt.Errorf("%s: invalid crystal id: %w", raw, err)
		}
		cr := cat.CrystalByID(id)
		if cr == nil {
			return step, fmt.Errorf("%s: no crystal with id %d", raw, id)
		}
		step.action = viewstate.SelectCrystal{Crystal: cr}
	case "clear":
		step.action = viewstate.ClearSelection{}
	case "celebrate":
		step.action = viewstate.TriggerCelebration{}
	case "wait":
		d, err := time.ParseDuration(arg)
		if err != nil {
			return step, fmt.Errorf("%s: %w", raw, err)
		}
		if d < 0 {
			return step, fmt.Errorf("%s: negative duration", raw)
		}
		step.wait = d
	default:
		return step, fmt.Errorf("unknown action %q", raw)
	}
	return step, nil
}

func runScriptCmd(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(settings.ThemeValue())
	if err != nil {
		return err
	}

	steps := make([]scriptStep, len(args))
	for i, raw := range args {
		if steps[i], err = parseAction(cat, raw); err != nil {
			return err
		}
	}

	player := openTones()
	defer player.Close()

	ctrl := viewstate.NewController(settings.Section(), nil, tonePlayer(player))
	defer ctrl.Close()

	if err := runScript(cmd.Context(), cmd.OutOrStdout(), ctrl, steps); err != nil {
		return err
	}
	return letTonesFinish(cmd.Context(), player)
}

// drainSlack covers audio buffering beyond the tone itself.
const drainSlack = 250 * time.Millisecond

// drainer is satisfied by *speaker.Player.
type drainer interface {
	Drain(ctx context.Context) error
}

// letTonesFinish waits for tones still sounding so the last one is not cut
// off by Close. It never waits longer than one tone.
func letTonesFinish(ctx context.Context, d drainer) error {
	ctx, cancel := context.WithTimeout(ctx, tone.Duration+drainSlack)
	defer cancel()

	if err := d.Drain(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

// runScript executes steps on ctrl, printing progress to w.
func runScript(ctx context.Context, w io.Writer, ctrl *viewstate.Controller, steps []scriptStep) error {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.raw
	}
	list := ui.NewStepList("Script", names...)
	printer := ui.NewPrinter(w)

	for i, step := range steps {
		if step.action == nil {
			list.Set(i, ui.StepRunning, "")
			timer := time.NewTimer(step.wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				list.Set(i, ui.StepFailed, "interrupted")
				printer.Println(list.Render())
				return ctx.Err()
			case <-timer.C:
			}
		} else {
			prev := ctrl.State()
			next := ctrl.Dispatch(step.action)
			if prev == next {
				logging.Debug("Script action had no effect", zap.String("action", step.raw))
			}
		}
		list.Set(i, ui.StepComplete, describeState(ctrl.State()))
	}

	printer.Println(list.Render())
	return nil
}

// describeState renders the visible state on one line.
func describeState(s viewstate.State) string {
	parts := []string{"section=" + string(s.Section)}
	switch s.Modal() {
	case viewstate.ModalCrystal:
		parts = append(parts, "crystal="+s.Selected.Name)
	case viewstate.ModalCelebration:
		parts = append(parts, fmt.Sprintf("celebrating #%d", s.CelebrationToken))
	}
	return strings.Join(parts, " ")
}
