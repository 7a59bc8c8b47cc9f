package speaker

import (
	"context"
	"testing"
	"time"
)

func TestNilPlayerIsNoop(t *testing.T) {
	var p *Player
	p.Play(440)
	p.PlayChakra("Анахата")
	if p.Available() {
		t.Error("nil player should not be available")
	}
	if got := p.Playing(); got != 0 {
		t.Errorf("Playing() = %d, want 0", got)
	}
	if err := p.Drain(context.Background()); err != nil {
		t.Errorf("Drain() on nil player = %v, want nil", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close() on nil player = %v, want nil", err)
	}
}

func TestPlayerWithoutContextIsNoop(t *testing.T) {
	p := &Player{volume: 1}
	p.Play(440)
	if p.Available() {
		t.Error("player without context should not be available")
	}
	if got := p.Playing(); got != 0 {
		t.Errorf("Playing() = %d, want 0", got)
	}
}

func TestDrainReturnsWhenSilent(t *testing.T) {
	p := &Player{volume: 1}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	start := time.Now()
	if err := p.Drain(ctx); err != nil {
		t.Fatalf("Drain() = %v, want nil", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("Drain() took %v with nothing playing", elapsed)
	}
}
