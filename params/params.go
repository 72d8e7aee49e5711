package params

import (
	"math"

	"github.com/jsphweid/bartail/chord"
	"github.com/jsphweid/bartail/util"
)

// ReportOptions configures the bar chord logger output.
type ReportOptions struct {
	Style            chord.NameStyle
	LogEmptyBars     bool
	IncludeNotesList bool
}

// TailParams configures the decaying tail generator. Spacing between
// repeats is Numerator/Denominator beats; Attack/Hold/Decay/Release are
// beat durations taken from the duration catalog.
type TailParams struct {
	Numerator            float64
	Denominator          float64
	Quantity             float64
	TailDecay            float64 // per-repeat velocity multiplier
	Gate                 float64 // fraction of spacing a repeat sounds for
	PitchDecay           float64
	PitchDecayMultiplier float64 // semitone scale for PitchDecay
	HighpassHz           float64
	LowpassHz            float64
	DelayBeats           float64
	Attack               float64
	Hold                 float64
	Decay                float64
	Sustain              float64
	Release              float64
	Voices               float64
}

func NewDefaultTailParams() TailParams {
	return TailParams{
		Numerator:            1,
		Denominator:          4,
		Quantity:             8,
		TailDecay:            0.8,
		Gate:                 0.5,
		PitchDecay:           0,
		PitchDecayMultiplier: 12,
		HighpassHz:           20,
		LowpassHz:            20000,
		DelayBeats:           0,
		Attack:               0,
		Hold:                 DurationValue(DurationIndexOf("1/4")),
		Decay:                DurationValue(DurationIndexOf("1/2")),
		Sustain:              0.5,
		Release:              DurationValue(DurationIndexOf("1/1")),
		Voices:               16,
	}
}

// Clamp normalizes every field to its documented range. Out-of-range
// values degrade, they never error.
func (p TailParams) Clamp() TailParams {
	p.Quantity = clampFinite(p.Quantity, 1, 64)
	p.TailDecay = clampFinite(p.TailDecay, 0, 1)
	p.Gate = clampFinite(p.Gate, 0.05, 1)
	p.PitchDecay = clampFinite(p.PitchDecay, 0, 1)
	p.PitchDecayMultiplier = clampFinite(p.PitchDecayMultiplier, 1, 60)
	p.HighpassHz = clampFinite(p.HighpassHz, 20, 20000)
	p.LowpassHz = clampFinite(p.LowpassHz, 1, 20000)
	p.DelayBeats = clampFinite(p.DelayBeats, 0, 1)
	p.Sustain = clampFinite(p.Sustain, 0, 1)
	p.Voices = clampFinite(p.Voices, 1, 64)
	return p
}

func clampFinite(v, lo, hi float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return lo
	}
	return util.Clamp(v, lo, hi)
}
