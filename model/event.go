package model

type EventKind uint8

const (
	NoteOn EventKind = iota
	NoteOff
	Other
)

// Event is one host-delivered (or host-bound) MIDI event. BeatPos may be
// absent for incoming events; the engine backfills it from the last tick.
type Event struct {
	Kind     EventKind
	Pitch    uint8
	Velocity uint8
	Channel  uint8
	BeatPos  float64
	HasBeat  bool
}

// TransportSnapshot is the per-block timing state polled from the host.
type TransportSnapshot struct {
	IsPlaying        bool
	BlockStartBeat   float64
	MeterNumerator   int
	MeterDenominator int
}

// NoteKey identifies an open note. Last-on-wins: retriggering the same
// key before release replaces the tracked note.
type NoteKey struct {
	Pitch   uint8
	Channel uint8
}

// Note is a tracked note-on awaiting its note-off.
type Note struct {
	Pitch      uint8
	Velocity   uint8
	Channel    uint8
	OriginBeat float64
}
