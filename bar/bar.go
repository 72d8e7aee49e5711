package bar

import "github.com/jsphweid/bartail/model"

// Accumulator collects every note-on pitch sounded while a bar is open.
// Note-offs are ignored on purpose: a note sustained across a bar line
// counts in every bar it overlaps.
type Accumulator struct {
	pitches model.Notes
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

func (a *Accumulator) OnNoteOn(pitch uint8) {
	a.pitches = append(a.pitches, pitch)
}

// Close returns the accumulated pitches and opens a fresh bar.
func (a *Accumulator) Close() model.Notes {
	out := a.pitches
	a.pitches = nil
	return out
}

// Reset discards the open bar without reporting it (transport stop).
func (a *Accumulator) Reset() {
	a.pitches = nil
}
