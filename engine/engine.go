package engine

import (
	"github.com/jsphweid/bartail/bar"
	"github.com/jsphweid/bartail/host"
	"github.com/jsphweid/bartail/lifecycle"
	"github.com/jsphweid/bartail/model"
	"github.com/jsphweid/bartail/params"
	"github.com/jsphweid/bartail/tail"
	"github.com/jsphweid/bartail/timing"
)

// Processor runs both pipelines over the host's event/tick callbacks. All
// mutable state lives here and is touched only from the single callback
// goroutine, so there is no locking.
type Processor struct {
	timing   *timing.Tracker
	bars     *bar.Accumulator
	reporter *bar.Reporter
	notes    *lifecycle.Tracker
	tails    *tail.Scheduler

	TailParams params.TailParams

	sink host.EventSink
	log  host.Logger

	onFlush func(model.BarSummary)
}

func NewProcessor(sink host.EventSink, log host.Logger, opts params.ReportOptions, tp params.TailParams) *Processor {
	return &Processor{
		timing:     timing.NewTracker(),
		bars:       bar.NewAccumulator(),
		reporter:   bar.NewReporter(opts),
		notes:      lifecycle.NewTracker(),
		tails:      tail.NewScheduler(sink),
		TailParams: tp,
		sink:       sink,
		log:        log,
	}
}

// SetFlushHook registers an observer for flushed-bar summaries (used by
// the HTTP reporting surface). Called from the callback goroutine.
func (p *Processor) SetFlushHook(fn func(model.BarSummary)) {
	p.onFlush = fn
}

// OnTick advances timing by one host block, flushing any bars that
// closed since the last block.
func (p *Processor) OnTick(ts model.TransportSnapshot) {
	res := p.timing.OnTick(ts)
	if res.DidReset {
		p.Reset()
	}
	for _, idx := range res.ClosedBars {
		summary := p.reporter.Report(idx, p.bars.Close())
		for _, line := range summary.Lines {
			p.log.Println(line)
		}
		if p.onFlush != nil {
			p.onFlush(summary)
		}
		// A note held across the bar line counts in every bar it
		// overlaps: seed the new bar with the still-open notes.
		for _, pitch := range p.notes.OpenPitches() {
			p.bars.OnNoteOn(pitch)
		}
	}
}

// OnEvent handles one host-delivered MIDI event. Every incoming event is
// passed through to the sink unchanged; note events additionally feed the
// two pipelines.
func (p *Processor) OnEvent(ev model.Event) {
	if !ev.HasBeat {
		ev.BeatPos = p.timing.LastBeat()
		ev.HasBeat = true
	}

	switch ev.Kind {
	case model.NoteOn:
		p.bars.OnNoteOn(ev.Pitch)
		p.notes.OnNoteOn(model.Note{
			Pitch:      ev.Pitch,
			Velocity:   ev.Velocity,
			Channel:    ev.Channel,
			OriginBeat: ev.BeatPos,
		})
	case model.NoteOff:
		if rel, ok := p.notes.OnNoteOff(ev.Pitch, ev.Channel, ev.BeatPos); ok {
			p.tails.Schedule(rel, ev.BeatPos, p.TailParams)
		}
	}

	p.sink.SendNow(ev)
}

// HeldNotes reports how many notes are currently open.
func (p *Processor) HeldNotes() int {
	return p.notes.OpenCount()
}

// HeldPitches returns the currently open pitches (live chord preview).
func (p *Processor) HeldPitches() model.Notes {
	return p.notes.OpenPitches()
}

// Reset clears all accumulation state. Called on transport stop so no
// stale bar or open note leaks into the next playback session.
func (p *Processor) Reset() {
	p.bars.Reset()
	p.notes.Reset()
}
