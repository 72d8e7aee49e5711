package cmd

import (
	"fmt"

	"github.com/jsphweid/bartail/engine"
	"github.com/jsphweid/bartail/host"
	"github.com/jsphweid/bartail/midi"
	"github.com/jsphweid/bartail/model"
	"github.com/spf13/cobra"
)

var simulateReport reportFlags
var simulateTail tailFlags
var simulateMeterNum int
var simulateMeterDen int
var simulateBlockBeats float64
var simulateShowTails bool

func init() {
	simulateReport.register(simulateCmd)
	simulateTail.register(simulateCmd)
	simulateCmd.Flags().IntVar(&simulateMeterNum, "meter-num", 4, "meter numerator")
	simulateCmd.Flags().IntVar(&simulateMeterDen, "meter-den", 4, "meter denominator")
	simulateCmd.Flags().Float64Var(&simulateBlockBeats, "block", 0.25, "processing block length in beats")
	simulateCmd.Flags().BoolVar(&simulateShowTails, "show-tails", true, "print scheduled tail events")
	rootCmd.AddCommand(simulateCmd)
}

var simulateCmd = &cobra.Command{
	Use:   "simulate <file.mid>",
	Short: "Replays a MIDI file through the processor",
	Long:  `Replays a MIDI file through the processor, printing the per-bar chord log and the scheduled tail events`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		simulate(args[0])
	},
}

func simulate(path string) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}
	events := midi.ExtractEvents(parsed)

	recorder := host.NewRecorder()
	proc := engine.NewProcessor(recorder, consoleLog{}, simulateReport.options(), simulateTail.params())

	var endBeat float64
	for _, ev := range events {
		if ev.BeatPos > endBeat {
			endBeat = ev.BeatPos
		}
	}

	block := simulateBlockBeats
	if block <= 0 {
		block = 0.25
	}

	// One tick per block, delivering the events that fall inside it, the
	// same order a live host would.
	next := 0
	for blockStart := 0.0; blockStart <= endBeat+block; blockStart += block {
		proc.OnTick(model.TransportSnapshot{
			IsPlaying:        true,
			BlockStartBeat:   blockStart,
			MeterNumerator:   simulateMeterNum,
			MeterDenominator: simulateMeterDen,
		})
		for next < len(events) && events[next].BeatPos < blockStart+block {
			proc.OnEvent(events[next])
			next++
		}
	}
	// Stop flushes nothing, but resets state like a real transport stop.
	proc.OnTick(model.TransportSnapshot{
		MeterNumerator:   simulateMeterNum,
		MeterDenominator: simulateMeterDen,
	})

	if simulateShowTails {
		fmt.Printf("scheduled %v tail events\n", len(recorder.Deferred))
		for _, s := range recorder.Deferred {
			if s.Event.Kind == model.NoteOn {
				fmt.Printf("  beat=%.3f pitch=%d vel=%d\n", s.Beat, s.Event.Pitch, s.Event.Velocity)
			}
		}
	}
}
