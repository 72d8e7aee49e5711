package lifecycle

import (
	"testing"

	"github.com/jsphweid/bartail/model"
	"github.com/stretchr/testify/assert"
)

func noteOn(pitch, channel uint8, beat float64) model.Note {
	return model.Note{Pitch: pitch, Velocity: 100, Channel: channel, OriginBeat: beat}
}

func TestHeldBeatsRoundTrip(t *testing.T) {
	tr := NewTracker()
	tr.OnNoteOn(noteOn(60, 0, 2.5))

	rel, ok := tr.OnNoteOff(60, 0, 6.25)

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(3.75, rel.HeldBeats)
	assert.Equal(uint8(60), rel.Note.Pitch)
	assert.Equal(uint8(100), rel.Note.Velocity)
}

func TestUnmatchedNoteOffIsDropped(t *testing.T) {
	tr := NewTracker()
	_, ok := tr.OnNoteOff(60, 0, 1)
	assert.False(t, ok)
}

func TestKeyedByPitchAndChannel(t *testing.T) {
	tr := NewTracker()
	tr.OnNoteOn(noteOn(60, 0, 1))
	tr.OnNoteOn(noteOn(60, 1, 2))

	assert := assert.New(t)
	_, ok := tr.OnNoteOff(60, 2, 3)
	assert.False(ok)

	rel, ok := tr.OnNoteOff(60, 1, 3)
	assert.True(ok)
	assert.Equal(1.0, rel.HeldBeats)
	assert.Equal(1, tr.OpenCount())
}

func TestRetriggerLastOnWins(t *testing.T) {
	tr := NewTracker()
	tr.OnNoteOn(noteOn(60, 0, 1))
	tr.OnNoteOn(noteOn(60, 0, 3))

	rel, ok := tr.OnNoteOff(60, 0, 4)

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(1.0, rel.HeldBeats)

	// No stacking: the first on was replaced, not queued.
	_, ok = tr.OnNoteOff(60, 0, 5)
	assert.False(ok)
}

func TestHeldBeatsFlooredAtZero(t *testing.T) {
	tr := NewTracker()
	tr.OnNoteOn(noteOn(60, 0, 10))

	rel, ok := tr.OnNoteOff(60, 0, 8)
	assert.True(t, ok)
	assert.Equal(t, 0.0, rel.HeldBeats)
}

func TestResetDropsOpenNotes(t *testing.T) {
	tr := NewTracker()
	tr.OnNoteOn(noteOn(60, 0, 1))
	tr.OnNoteOn(noteOn(64, 0, 1))
	assert.Equal(t, 2, tr.OpenCount())

	tr.Reset()
	assert.Equal(t, 0, tr.OpenCount())
	_, ok := tr.OnNoteOff(60, 0, 2)
	assert.False(t, ok)
}
