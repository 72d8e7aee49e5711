package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/bartail/chord"
	"github.com/jsphweid/bartail/engine"
	"github.com/jsphweid/bartail/model"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var playReport reportFlags
var playTail tailFlags
var playBpm float64
var playMeterNum int
var playMeterDen int
var playInPort int
var playOutPort int

func init() {
	playReport.register(playCmd)
	playTail.register(playCmd)
	playCmd.Flags().Float64Var(&playBpm, "bpm", 120, "tempo for the beat clock")
	playCmd.Flags().IntVar(&playMeterNum, "meter-num", 4, "meter numerator")
	playCmd.Flags().IntVar(&playMeterDen, "meter-den", 4, "meter denominator")
	playCmd.Flags().IntVar(&playInPort, "in", 0, "MIDI input port number")
	playCmd.Flags().IntVar(&playOutPort, "out", 0, "MIDI output port number")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Runs live against a MIDI input",
	Long:  `Runs live against a MIDI input, logging bar chords and sending tails to a MIDI output`,
	Run: func(cmd *cobra.Command, args []string) {
		play()
	},
}

// beatClock converts wall-clock time to beats at a fixed tempo. The CLI
// is the host here, so it owns the transport.
type beatClock struct {
	start time.Time
	bpm   float64
}

func (c beatClock) now() float64 {
	return time.Since(c.start).Minutes() * c.bpm
}

func (c beatClock) until(beat float64) time.Duration {
	return time.Duration((beat - c.now()) / c.bpm * float64(time.Minute))
}

// midiSink delivers engine output to a MIDI out port. Deferred events use
// process-local timers since there is no external host to hand them to.
type midiSink struct {
	clock beatClock
	send  func(midi.Message) error
}

func (s *midiSink) deliver(ev model.Event) {
	if s.send == nil {
		return
	}
	var err error
	switch ev.Kind {
	case model.NoteOn:
		err = s.send(midi.NoteOn(ev.Channel, ev.Pitch, ev.Velocity))
	case model.NoteOff:
		err = s.send(midi.NoteOff(ev.Channel, ev.Pitch))
	}
	if err != nil {
		fmt.Printf("ERROR sending: %s\n", err)
	}
}

func (s *midiSink) SendNow(ev model.Event) {
	s.deliver(ev)
}

func (s *midiSink) SendAt(ev model.Event, beat float64) {
	wait := s.clock.until(beat)
	if wait <= 0 {
		s.deliver(ev)
		return
	}
	time.AfterFunc(wait, func() { s.deliver(ev) })
}

func play() {
	defer midi.CloseDriver()

	in, err := midi.InPort(playInPort)
	if err != nil {
		fmt.Println("can't find MIDI input port")
		return
	}

	clock := beatClock{start: time.Now(), bpm: playBpm}
	sink := &midiSink{clock: clock}
	if out, err := midi.OutPort(playOutPort); err == nil {
		if send, err := midi.SendTo(out); err == nil {
			sink.send = send
		}
	}

	proc := engine.NewProcessor(sink, consoleLog{}, playReport.options(), playTail.params())

	// ListenTo calls back from the driver goroutine while the ticker runs
	// on its own; the mutex serializes them into the engine's
	// single-callback-thread contract.
	var mu sync.Mutex

	preview := debounce.New(150 * time.Millisecond)
	style := playReport.options().Style

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		var ev model.Event
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			ev = model.Event{Kind: model.NoteOn, Pitch: key, Velocity: vel, Channel: ch}
		case msg.GetNoteEnd(&ch, &key):
			ev = model.Event{Kind: model.NoteOff, Pitch: key, Channel: ch}
		default:
			return
		}
		ev.BeatPos = clock.now()
		ev.HasBeat = true

		mu.Lock()
		proc.OnEvent(ev)
		held := proc.HeldPitches()
		mu.Unlock()

		preview(func() {
			if len(held) > 0 {
				fmt.Printf("now sounding: %v\n", chord.Name(held, style).Label)
			}
		})
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}
	defer stop()

	ticker := time.NewTicker(25 * time.Millisecond)
	defer ticker.Stop()
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt)

	for {
		select {
		case <-ticker.C:
			mu.Lock()
			proc.OnTick(model.TransportSnapshot{
				IsPlaying:        true,
				BlockStartBeat:   clock.now(),
				MeterNumerator:   playMeterNum,
				MeterDenominator: playMeterDen,
			})
			mu.Unlock()
		case <-done:
			return
		}
	}
}
