package viewstate

import (
	"sync"
	"time"

	"github.com/muurk/learnquest/internal/catalog"
)

// Clock schedules callbacks. Tests substitute a manual clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	Stop() bool
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock schedules with time.AfterFunc.
var SystemClock Clock = systemClock{}

// TonePlayer plays a one-shot tone. *speaker.Player satisfies it.
type TonePlayer interface {
	Play(frequency float64)
}

// Controller runs the reducer outside the terminal UI: it owns the state,
// executes timer effects on a Clock and hands tones to a TonePlayer.
// It is safe for concurrent use.
type Controller struct {
	mu     sync.Mutex
	state  State
	clock  Clock
	tones  TonePlayer
	timers map[uint64]Timer
	closed bool
}

// NewController creates a controller opened on start.
// A nil clock means SystemClock; a nil tone player stays silent.
func NewController(start Section, clock Clock, tones TonePlayer) *Controller {
	if clock == nil {
		clock = SystemClock
	}
	return &Controller{
		state:  New(start),
		clock:  clock,
		tones:  tones,
		timers: make(map[uint64]Timer),
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dispatch applies a and runs its effects. After Close it does nothing.
func (c *Controller) Dispatch(a Action) State {
	c.mu.Lock()
	if c.closed {
		s := c.state
		c.mu.Unlock()
		return s
	}

	prev := c.state
	next, effects := Reduce(prev, a)
	c.state = next
	Trace(prev, next, a)

	if d, ok := a.(DismissCelebration); ok {
		delete(c.timers, d.Token)
	}

	var tones []float64
	for _, e := range effects {
		switch e := e.(type) {
		case StartTimer:
			token := e.Token
			c.timers[token] = c.clock.AfterFunc(e.After, func() {
				c.Dispatch(DismissCelebration{Token: token})
			})
		case StopTimer:
			if t, ok := c.timers[e.Token]; ok {
				t.Stop()
				delete(c.timers, e.Token)
			}
		case PlayTone:
			tones = append(tones, e.Frequency)
		}
	}
	c.mu.Unlock()

	if c.tones != nil {
		for _, f := range tones {
			c.tones.Play(f)
		}
	}
	return next
}

// SetSection switches the active tab.
func (c *Controller) SetSection(s Section) State {
	return c.Dispatch(SetSection{Section: s})
}

// SelectCrystal opens crystal if it is unlocked and plays its tone.
func (c *Controller) SelectCrystal(crystal *catalog.Crystal) State {
	return c.Dispatch(SelectCrystal{Crystal: crystal})
}

// ClearSelection closes the crystal detail view.
func (c *Controller) ClearSelection() State {
	return c.Dispatch(ClearSelection{})
}

// TriggerCelebration shows the celebration for CelebrationDelay.
func (c *Controller) TriggerCelebration() State {
	return c.Dispatch(TriggerCelebration{})
}

// Close stops pending timers. Callbacks that race with Close are dropped.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	for token, t := range c.timers {
		t.Stop()
		delete(c.timers, token)
	}
}
