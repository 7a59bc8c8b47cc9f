// Package speaker plays tones from package tone through ebiten's audio
// context. It is the only package that links the native audio stack.
package speaker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/muurk/learnquest/internal/logging"
	"github.com/muurk/learnquest/internal/tone"
)

// drainPoll is how often Drain checks for tones still sounding.
const drainPoll = 20 * time.Millisecond

// ebiten allows exactly one audio context per process; a second
// audio.NewContext call panics.
var (
	sharedContext     *audio.Context
	sharedContextErr  error
	sharedContextOnce sync.Once
)

func acquireContext(sampleRate int) (*audio.Context, error) {
	sharedContextOnce.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				sharedContextErr = fmt.Errorf("audio context unavailable: %v", r)
			}
		}()
		sharedContext = audio.NewContext(sampleRate)
	})
	return sharedContext, sharedContextErr
}

// Player plays chakra tones through an ebiten audio context.
//
// The context is acquired once by Open and reused by every Play call.
// A nil *Player, or one whose context failed or was released, plays nothing.
type Player struct {
	mu      sync.Mutex
	ctx     *audio.Context
	volume  float64
	playing []*audio.Player
}

// Open acquires the process audio context.
// On failure it returns a usable Player with no context alongside the error,
// so callers may log the error and carry on silently.
func Open(sampleRate int, volume float64) (*Player, error) {
	if sampleRate <= 0 {
		sampleRate = tone.DefaultRate
	}
	p := &Player{volume: volume}

	ctx, err := acquireContext(sampleRate)
	if err != nil {
		return p, err
	}
	p.ctx = ctx
	return p, nil
}

// Available reports whether Play can produce sound.
func (p *Player) Available() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctx != nil && p.ctx.Err() == nil
}

// Play starts a tone at frequency hertz and returns immediately.
// The PCM buffer is exactly tone.Duration long, so playback stops on its own.
func (p *Player) Play(frequency float64) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctx == nil {
		logging.LogToneSkipped(frequency, "audio unavailable")
		return
	}
	if err := p.ctx.Err(); err != nil {
		logging.LogToneSkipped(frequency, err.Error())
		return
	}

	p.reap()

	pcm := tone.Render(frequency, p.ctx.SampleRate(), p.volume)
	player := p.ctx.NewPlayerFromBytes(pcm)
	player.Play()
	p.playing = append(p.playing, player)
}

// PlayChakra plays the tone for a chakra name.
func (p *Player) PlayChakra(chakra string) {
	p.Play(tone.FrequencyFor(chakra))
}

// Playing reports how many tones are still sounding.
func (p *Player) Playing() int {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reap()
	return len(p.playing)
}

// Drain blocks until every sounding tone has finished or ctx is done.
// Call it before Close when the last tone should be heard in full.
func (p *Player) Drain(ctx context.Context) error {
	if p.Playing() == 0 {
		return nil
	}
	ticker := time.NewTicker(drainPoll)
	defer ticker.Stop()
	for p.Playing() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// Close stops any sounding tones and releases the context handle.
// Later Play calls are no-ops.
func (p *Player) Close() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for _, pl := range p.playing {
		if err := pl.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	p.playing = nil
	p.ctx = nil
	return firstErr
}

// reap closes players whose tone has finished. Callers hold p.mu.
func (p *Player) reap() {
	live := p.playing[:0]
	for _, pl := range p.playing {
		if pl.IsPlaying() {
			live = append(live, pl)
			continue
		}
		_ = pl.Close()
	}
	p.playing = live
}
