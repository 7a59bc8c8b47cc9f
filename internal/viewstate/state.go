package viewstate

import (
	"time"

	"github.com/muurk/learnquest/internal/catalog"
	"github.com/muurk/learnquest/internal/logging"
	"github.com/muurk/learnquest/internal/tone"
)

// CelebrationDelay is how long the celebration stays on screen.
const CelebrationDelay = 3000 * time.Millisecond

// State is everything the UI shows beyond static catalog data.
type State struct {
	Section     Section
	Selected    *catalog.Crystal // crystal open in the detail view, nil when closed
	Celebrating bool

	// CelebrationToken identifies the live dismiss timer. Timers carrying an
	// older token are stale and ignored.
	CelebrationToken uint64
}

// Modal is the overlay currently shown. At most one is visible.
type Modal int

const (
	ModalNone Modal = iota
	ModalCrystal
	ModalCelebration
)

// New returns the initial state, opened on start.
func New(start Section) State {
	return State{Section: start}
}

// Modal reports which overlay is visible.
func (s State) Modal() Modal {
	switch {
	case s.Selected != nil:
		return ModalCrystal
	case s.Celebrating:
		return ModalCelebration
	default:
		return ModalNone
	}
}

// Action is an input to Reduce.
type Action interface{ isAction() }

// SetSection switches tabs. Values outside the closed set are ignored.
type SetSection struct{ Section Section }

// SelectCrystal opens a crystal. Locked or nil crystals are ignored.
type SelectCrystal struct{ Crystal *catalog.Crystal }

// ClearSelection closes the crystal detail view.
type ClearSelection struct{}

// TriggerCelebration shows the celebration and schedules its dismissal.
type TriggerCelebration struct{}

// DismissCelebration ends the celebration started with Token.
type DismissCelebration struct{ Token uint64 }

func (SetSection) isAction()         {}
func (SelectCrystal) isAction()      {}
func (ClearSelection) isAction()     {}
func (TriggerCelebration) isAction() {}
func (DismissCelebration) isAction() {}

// Effect is a side effect requested by Reduce. The caller performs it.
type Effect interface{ isEffect() }

// PlayTone asks for a tone at Frequency hertz.
type PlayTone struct {
	Frequency float64
	Chakra    string // empty for celebrations
}

// StartTimer asks for DismissCelebration{Token} to be dispatched After from now.
type StartTimer struct {
	Token uint64
	After time.Duration
}

// StopTimer cancels the timer started for Token.
type StopTimer struct{ Token uint64 }

func (PlayTone) isEffect()   {}
func (StartTimer) isEffect() {}
func (StopTimer) isEffect()  {}

// Reduce applies a to s and returns the new state plus the effects to run.
// It performs no I/O.
func Reduce(s State, a Action) (State, []Effect) {
	switch a := a.(type) {
	case SetSection:
		if a.Section.Valid() {
			s.Section = a.Section
		}
		return s, nil

	case SelectCrystal:
		if a.Crystal == nil || !a.Crystal.Unlocked {
			return s, nil
		}
		var effects []Effect
		s, effects = endCelebration(s)
		s.Selected = a.Crystal
		effects = append(effects, PlayTone{
			Frequency: tone.FrequencyFor(a.Crystal.Chakra),
			Chakra:    a.Crystal.Chakra,
		})
		return s, effects

	case ClearSelection:
		s.Selected = nil
		return s, nil

	case TriggerCelebration:
		var effects []Effect
		s, effects = endCelebration(s)
		s.Selected = nil
		s.Celebrating = true
		s.CelebrationToken++
		effects = append(effects,
			StartTimer{Token: s.CelebrationToken, After: CelebrationDelay},
			PlayTone{Frequency: tone.DefaultFrequency},
		)
		return s, effects

	case DismissCelebration:
		if s.Celebrating && a.Token == s.CelebrationToken {
			s.Celebrating = false
		}
		return s, nil
	}

	return s, nil
}

// endCelebration clears a running celebration and cancels its timer.
func endCelebration(s State) (State, []Effect) {
	if !s.Celebrating {
		return s, nil
	}
	s.Celebrating = false
	return s, []Effect{StopTimer{Token: s.CelebrationToken}}
}

// Trace logs the interesting part of a transition.
func Trace(prev, next State, a Action) {
	switch a := a.(type) {
	case SetSection:
		if prev.Section != next.Section {
			logging.LogSectionChange(string(prev.Section), string(next.Section))
		}
	case SelectCrystal:
		if a.Crystal == nil {
			return
		}
		if !a.Crystal.Unlocked {
			logging.LogLockedSelection(a.Crystal.ID, a.Crystal.LevelRequirement)
			return
		}
		logging.LogCrystalSelected(a.Crystal.ID, a.Crystal.Name, a.Crystal.Chakra, tone.FrequencyFor(a.Crystal.Chakra))
	case TriggerCelebration:
		logging.LogCelebration("started", next.CelebrationToken)
	case DismissCelebration:
		if prev.Celebrating && !next.Celebrating {
			logging.LogCelebration("dismissed", a.Token)
		} else {
			logging.LogCelebration("stale timer ignored", a.Token)
		}
	}
}
