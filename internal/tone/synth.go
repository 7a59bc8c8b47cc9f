package tone

import (
	"encoding/binary"
	"math"
	"time"
)

// Envelope constants for the one-shot tone.
const (
	Duration    = 1500 * time.Millisecond
	Attack      = 10 * time.Millisecond
	PeakGain    = 0.3
	FloorGain   = 0.01
	DefaultRate = 48000

	bytesPerFrame = 4 // 16-bit stereo
)

// Gain returns the envelope amplitude t after the tone starts: a linear ramp
// to PeakGain over Attack, then an exponential decay reaching FloorGain at
// Duration. Outside [0, Duration] the gain is 0.
func Gain(t time.Duration) float64 {
	switch {
	case t < 0 || t > Duration:
		return 0
	case t < Attack:
		return PeakGain * float64(t) / float64(Attack)
	default:
		progress := float64(t-Attack) / float64(Duration-Attack)
		return PeakGain * math.Pow(FloorGain/PeakGain, progress)
	}
}

// FrameCount is the number of sample frames in one tone at sampleRate.
func FrameCount(sampleRate int) int {
	return int(int64(sampleRate) * int64(Duration) / int64(time.Second))
}

// Render synthesizes one tone as signed 16-bit little-endian stereo PCM,
// the format ebiten's audio players consume. volume scales the envelope
// and is clamped to [0, 1].
func Render(frequency float64, sampleRate int, volume float64) []byte {
	if sampleRate <= 0 {
		return nil
	}
	volume = math.Max(0, math.Min(1, volume))

	frames := FrameCount(sampleRate)
	buf := make([]byte, frames*bytesPerFrame)

	for i := 0; i < frames; i++ {
		t := time.Duration(int64(i) * int64(time.Second) / int64(sampleRate))
		v := math.Sin(2*math.Pi*frequency*float64(i)/float64(sampleRate)) * Gain(t) * volume
		s := uint16(int16(v * math.MaxInt16))

		off := i * bytesPerFrame
		binary.LittleEndian.PutUint16(buf[off:], s)
		binary.LittleEndian.PutUint16(buf[off+2:], s)
	}

	return buf
}
