package tail

import (
	"math"

	"github.com/jsphweid/bartail/envelope"
	"github.com/jsphweid/bartail/host"
	"github.com/jsphweid/bartail/lifecycle"
	"github.com/jsphweid/bartail/model"
	"github.com/jsphweid/bartail/params"
	"github.com/jsphweid/bartail/util"
)

// Scheduler turns a released note into a decaying sequence of future note
// events. Degenerate parameters produce no events, never an error: this
// runs inline in a real-time pipeline and must not fail audibly.
type Scheduler struct {
	sink host.EventSink
}

func NewScheduler(sink host.EventSink) *Scheduler {
	return &Scheduler{sink: sink}
}

// Schedule computes the tail for a released note, submits each event to
// the sink tagged with its beat position, and returns the list.
func (s *Scheduler) Schedule(rel lifecycle.Released, releaseBeat float64, p params.TailParams) []model.TailEvent {
	// The gate fraction is taken as given; a non-positive gate falls back
	// to half the spacing below instead of being clamped away.
	gateFraction := p.Gate
	p = p.Clamp()

	if p.Denominator == 0 {
		return nil
	}
	spacing := p.Numerator / p.Denominator
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return nil
	}

	repeats := int(math.Round(p.Quantity))
	if repeats < 1 {
		repeats = 1
	}
	voices := int(math.Round(p.Voices))
	if voices < 1 {
		voices = 1
	}
	repeats = util.Min(repeats, voices)

	gateBeats := spacing * gateFraction
	if gateBeats <= 0 {
		gateBeats = spacing * 0.5
	}

	stages := envelope.Stages{
		Attack:  p.Attack,
		Hold:    p.Hold,
		Decay:   p.Decay,
		Sustain: p.Sustain,
		Release: p.Release,
	}
	totalSpan := spacing*float64(repeats-1) + p.Release

	loHz, hiHz := p.HighpassHz, p.LowpassHz
	if hiHz < loHz {
		loHz, hiHz = hiHz, loHz
	}

	pitchStep := p.PitchDecay * p.PitchDecayMultiplier

	var events []model.TailEvent
	for i := 0; i < repeats; i++ {
		onBeat := releaseBeat + p.DelayBeats + spacing*float64(i)

		amp := envelope.Amplitude(float64(i)*spacing, stages, totalSpan)
		vel := math.Round(float64(rel.Note.Velocity) * math.Pow(p.TailDecay, float64(i)) * amp)
		vel = util.Clamp(vel, 1, 127)

		pitch := math.Round(float64(rel.Note.Pitch) + pitchStep*float64(i))
		pitch = util.Clamp(pitch, 0, 127)

		// Repeats transposed out of the band are skipped, not a break:
		// later repeats may fall back inside it.
		hz := pitchToHz(pitch)
		if hz < loHz || hz > hiHz {
			continue
		}

		ev := model.TailEvent{
			Pitch:    uint8(pitch),
			Velocity: uint8(vel),
			OnBeat:   onBeat,
			OffBeat:  onBeat + gateBeats,
		}
		events = append(events, ev)

		if s.sink != nil {
			s.sink.SendAt(model.Event{
				Kind:     model.NoteOn,
				Pitch:    ev.Pitch,
				Velocity: ev.Velocity,
				Channel:  rel.Note.Channel,
				BeatPos:  ev.OnBeat,
				HasBeat:  true,
			}, ev.OnBeat)
			s.sink.SendAt(model.Event{
				Kind:    model.NoteOff,
				Pitch:   ev.Pitch,
				Channel: rel.Note.Channel,
				BeatPos: ev.OffBeat,
				HasBeat: true,
			}, ev.OffBeat)
		}
	}
	return events
}

// pitchToHz converts a MIDI pitch to equal-tempered frequency, A4=440.
func pitchToHz(pitch float64) float64 {
	return 440 * math.Pow(2, (pitch-69)/12)
}
