package params

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationMenuLookupClampsIndices(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0.0, DurationValue(-5))
	assert.Equal(DurationMenu[len(DurationMenu)-1].Beats, DurationValue(1000))
	assert.Equal(1.0, DurationValue(DurationIndexOf("1/4")))
	assert.Equal(0.5, DurationValue(DurationIndexOf("1/8")))
	assert.Equal(4.0, DurationValue(DurationIndexOf("1/1")))
}

func TestDurationMenuIsOrderedShortestToLongest(t *testing.T) {
	for i := 1; i < len(DurationMenu); i++ {
		assert.Greater(t, DurationMenu[i].Beats, DurationMenu[i-1].Beats,
			"menu entry %v (%v) out of order", i, DurationMenu[i].Label)
	}
}

func TestUnknownDurationLabelFallsBackToFirstEntry(t *testing.T) {
	assert.Equal(t, 0, DurationIndexOf("nope"))
}

func TestClampNormalizesRanges(t *testing.T) {
	p := TailParams{
		Quantity:             1000,
		TailDecay:            -2,
		Gate:                 0,
		PitchDecayMultiplier: 0,
		HighpassHz:           1,
		LowpassHz:            99999,
		DelayBeats:           5,
		Sustain:              2,
		Voices:               0,
	}.Clamp()

	assert := assert.New(t)
	assert.Equal(64.0, p.Quantity)
	assert.Equal(0.0, p.TailDecay)
	assert.Equal(0.05, p.Gate)
	assert.Equal(1.0, p.PitchDecayMultiplier)
	assert.Equal(20.0, p.HighpassHz)
	assert.Equal(20000.0, p.LowpassHz)
	assert.Equal(1.0, p.DelayBeats)
	assert.Equal(1.0, p.Sustain)
	assert.Equal(1.0, p.Voices)
}

func TestClampReplacesNonFiniteValues(t *testing.T) {
	p := TailParams{Quantity: math.NaN(), Sustain: math.Inf(1)}.Clamp()
	assert.Equal(t, 1.0, p.Quantity)
	assert.Equal(t, 0.0, p.Sustain)
}
