package lifecycle

import "github.com/jsphweid/bartail/model"

// Tracker pairs note-ons with their note-offs, keyed by (pitch, channel).
// Retriggering a key before release replaces the tracked note; a note-off
// with no open note is dropped.
type Tracker struct {
	open map[model.NoteKey]model.Note
}

// Released is a completed note with how long it was held, in beats.
type Released struct {
	Note      model.Note
	HeldBeats float64
}

func NewTracker() *Tracker {
	return &Tracker{open: make(map[model.NoteKey]model.Note)}
}

func (t *Tracker) OnNoteOn(n model.Note) {
	t.open[model.NoteKey{Pitch: n.Pitch, Channel: n.Channel}] = n
}

// OnNoteOff closes the matching note, if any. Held time is floored at
// zero in case the timing source handed us inconsistent positions.
func (t *Tracker) OnNoteOff(pitch, channel uint8, currentBeat float64) (Released, bool) {
	key := model.NoteKey{Pitch: pitch, Channel: channel}
	n, ok := t.open[key]
	if !ok {
		return Released{}, false
	}
	delete(t.open, key)

	held := currentBeat - n.OriginBeat
	if held < 0 {
		held = 0
	}
	return Released{Note: n, HeldBeats: held}, true
}

// OpenCount reports how many notes are currently held.
func (t *Tracker) OpenCount() int {
	return len(t.open)
}

// OpenPitches returns the pitches currently held, unordered.
func (t *Tracker) OpenPitches() model.Notes {
	var out model.Notes
	for key := range t.open {
		out = append(out, key.Pitch)
	}
	return out
}

// Reset drops every open note (transport stop).
func (t *Tracker) Reset() {
	t.open = make(map[model.NoteKey]model.Note)
}
