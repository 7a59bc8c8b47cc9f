// Package tone holds the chakra frequency table and synthesises the
// one-shot sine tone as PCM. It has no audio dependency; package speaker
// plays the result.
package tone

// DefaultFrequency is played for unknown chakras and for celebrations (A4).
const DefaultFrequency = 440.0

// chakraFrequencies tunes the seven chakras to a C major scale with C4 = 256 Hz.
var chakraFrequencies = map[string]float64{
	"Муладхара":   256,
	"Свадхистана": 288,
	"Манипура":    320,
	"Анахата":     341.3,
	"Вишудха":     384,
	"Аджна":       426.7,
	"Сахасрара":   480,
}

// Chakras lists the chakra names from root to crown.
var Chakras = []string{
	"Муладхара",
	"Свадхистана",
	"Манипура",
	"Анахата",
	"Вишудха",
	"Аджна",
	"Сахасрара",
}

// FrequencyFor returns the tone frequency in hertz for a chakra name.
// Unknown names fall back to DefaultFrequency.
func FrequencyFor(chakra string) float64 {
	if f, ok := chakraFrequencies[chakra]; ok {
		return f
	}
	return DefaultFrequency
}

// IsChakra reports whether name is one of the seven known chakras.
func IsChakra(name string) bool {
	_, ok := chakraFrequencies[name]
	return ok
}
