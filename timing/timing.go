package timing

import (
	"math"

	"github.com/jsphweid/bartail/model"
)

// Tracker derives a bar index from the host-reported beat position and
// meter, and turns transitions into flush/reset signals. All state is
// owned here; it is only ever touched from the host callback.
type Tracker struct {
	playing  bool
	haveBar  bool
	curBar   int
	lastBeat float64
}

// TickResult reports what happened on one timing tick. ClosedBars holds
// every bar index that finished since the previous tick, in ascending
// order; a timeline jump can close several at once.
type TickResult struct {
	ClosedBars []int
	DidReset   bool
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// CurrentBar returns the open bar index, or -1 when no bar is anchored.
func (t *Tracker) CurrentBar() int {
	if !t.haveBar {
		return -1
	}
	return t.curBar
}

// LastBeat is the most recent usable block-start beat, for backfilling
// events that arrive without their own beat position.
func (t *Tracker) LastBeat() float64 {
	return t.lastBeat
}

// BeatsPerBar computes the bar length for a meter, substituting 4 when
// the host hands us a meter that would divide by zero.
func BeatsPerBar(numerator, denominator int) float64 {
	if denominator <= 0 || numerator <= 0 {
		return 4
	}
	return float64(numerator) * 4 / float64(denominator)
}

// OnTick advances the tracker by one host timing block.
func (t *Tracker) OnTick(ts model.TransportSnapshot) TickResult {
	var res TickResult

	if !ts.IsPlaying {
		if t.playing {
			// Stop clears the open bar so a restart re-anchors at
			// wherever playback resumes.
			t.playing = false
			t.haveBar = false
			res.DidReset = true
		}
		return res
	}

	beat := ts.BlockStartBeat
	if math.IsNaN(beat) || math.IsInf(beat, 0) {
		beat = t.lastBeat
	} else {
		t.lastBeat = beat
	}

	bar := int(math.Floor(beat / BeatsPerBar(ts.MeterNumerator, ts.MeterDenominator)))
	if bar < 0 {
		bar = 0
	}

	if !t.playing || !t.haveBar {
		t.playing = true
		t.haveBar = true
		t.curBar = bar
		return res
	}

	switch {
	case bar > t.curBar:
		for b := t.curBar; b < bar; b++ {
			res.ClosedBars = append(res.ClosedBars, b)
		}
		t.curBar = bar
	case bar < t.curBar:
		// Backward seek (e.g. cycle mode). The abandoned bar never
		// closes; re-anchor and let the caller drop its accumulation.
		t.curBar = bar
		res.DidReset = true
	}
	return res
}
