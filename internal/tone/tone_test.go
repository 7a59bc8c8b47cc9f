package tone

import (
	"encoding/binary"
	"math"
	"testing"
	"time"
)

func TestFrequencyFor(t *testing.T) {
	tests := []struct {
		chakra string
		want   float64
	}{
		{"Муладхара", 256},
		{"Свадхистана", 288},
		{"Манипура", 320},
		{"Анахата", 341.3},
		{"Вишудха", 384},
		{"Аджна", 426.7},
		{"Сахасрара", 480},
		{"unknown-key", 440},
		{"", 440},
	}

	for _, tt := range tests {
		if got := FrequencyFor(tt.chakra); got != tt.want {
			t.Errorf("FrequencyFor(%q) = %v, want %v", tt.chakra, got, tt.want)
		}
	}
}

func TestChakrasCoverTable(t *testing.T) {
	if len(Chakras) != 7 {
		t.Fatalf("len(Chakras) = %d, want 7", len(Chakras))
	}
	for _, c := range Chakras {
		if !IsChakra(c) {
			t.Errorf("IsChakra(%q) = false, want true", c)
		}
	}
	if IsChakra("Анахата ") {
		t.Error("IsChakra should not trim input")
	}
}

func TestGain(t *testing.T) {
	const eps = 1e-9

	tests := []struct {
		name string
		at   time.Duration
		want float64
	}{
		{"before start", -time.Millisecond, 0},
		{"start", 0, 0},
		{"mid attack", Attack / 2, PeakGain / 2},
		{"peak", Attack, PeakGain},
		{"end of decay", Duration, FloorGain},
		{"after end", Duration + time.Millisecond, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Gain(tt.at); math.Abs(got-tt.want) > eps {
				t.Errorf("Gain(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestGainDecaysMonotonically(t *testing.T) {
	prev := Gain(Attack)
	for at := Attack + 10*time.Millisecond; at <= Duration; at += 10 * time.Millisecond {
		g := Gain(at)
		if g >= prev {
			t.Fatalf("Gain(%v) = %v, not below previous %v", at, g, prev)
		}
		prev = g
	}
}

func TestRenderLength(t *testing.T) {
	pcm := Render(440, 48000, 1)
	wantFrames := 72000
	if got := len(pcm); got != wantFrames*bytesPerFrame {
		t.Errorf("len(Render) = %d bytes, want %d", got, wantFrames*bytesPerFrame)
	}
}

func TestRenderStereoAndBounded(t *testing.T) {
	pcm := Render(341.3, 8000, 1)
	limit := int16(math.Ceil(PeakGain * math.MaxInt16))

	for off := 0; off < len(pcm); off += bytesPerFrame {
		left := int16(binary.LittleEndian.Uint16(pcm[off:]))
		right := int16(binary.LittleEndian.Uint16(pcm[off+2:]))
		if left != right {
			t.Fatalf("frame at byte %d: left %d != right %d", off, left, right)
		}
		if left > limit || left < -limit {
			t.Fatalf("frame at byte %d: sample %d exceeds peak %d", off, left, limit)
		}
	}
}

func TestRenderSilentAtZeroVolume(t *testing.T) {
	for i, b := range Render(440, 8000, 0) {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0 at zero volume", i, b)
		}
	}
}

func TestRenderInvalidRate(t *testing.T) {
	if got := Render(440, 0, 1); got != nil {
		t.Errorf("Render with zero sample rate = %d bytes, want nil", len(got))
	}
}
