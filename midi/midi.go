package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/jsphweid/bartail/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// ExtractEvents flattens an SMF into beat-stamped note events, merged
// across tracks and sorted by beat (note-offs first on ties, so a
// retrigger at the same instant pairs correctly).
func ExtractEvents(s *smf.SMF) []model.Event {
	ticksPerQuarter := 960.0
	if mt, ok := s.TimeFormat.(smf.MetricTicks); ok {
		ticksPerQuarter = float64(mt.Ticks4th())
	}

	var events []model.Event
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			beat := float64(absTicks) / ticksPerQuarter
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				kind := model.NoteOn
				if velocity == 0 {
					// running-status note-off
					kind = model.NoteOff
				}
				events = append(events, model.Event{
					Kind:     kind,
					Pitch:    key,
					Velocity: velocity,
					Channel:  channel,
					BeatPos:  beat,
					HasBeat:  true,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, model.Event{
					Kind:    model.NoteOff,
					Pitch:   key,
					Channel: channel,
					BeatPos: beat,
					HasBeat: true,
				})
			}
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].BeatPos != events[j].BeatPos {
			return events[i].BeatPos < events[j].BeatPos
		}
		return events[i].Kind == model.NoteOff && events[j].Kind != model.NoteOff
	})
	return events
}
