package model

// TailEvent is one synthesized repeat of a released note. OffBeat is
// always strictly greater than OnBeat.
type TailEvent struct {
	Pitch    uint8
	Velocity uint8
	OnBeat   float64
	OffBeat  float64
}
