package cmd

import (
	"github.com/jsphweid/bartail/chord"
	"github.com/jsphweid/bartail/params"
	"github.com/spf13/cobra"
)

type reportFlags struct {
	style        string
	logEmptyBars bool
	includeNotes bool
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.style, "style", "sharps", "pitch class spelling: sharps or flats")
	cmd.Flags().BoolVar(&f.logEmptyBars, "log-empty-bars", false, "log bars with no notes")
	cmd.Flags().BoolVar(&f.includeNotes, "include-notes", false, "append the raw pitch list to each bar line")
}

func (f *reportFlags) options() params.ReportOptions {
	style := chord.Sharps
	if f.style == "flats" {
		style = chord.Flats
	}
	return params.ReportOptions{
		Style:            style,
		LogEmptyBars:     f.logEmptyBars,
		IncludeNotesList: f.includeNotes,
	}
}

type tailFlags struct {
	numerator   float64
	denominator float64
	quantity    float64
	tailDecay   float64
	gate        float64
	pitchDecay  float64
	pitchMult   float64
	highpassHz  float64
	lowpassHz   float64
	delayBeats  float64
	attack      string
	hold        string
	decay       string
	release     string
	sustain     float64
	voices      float64
}

func (f *tailFlags) register(cmd *cobra.Command) {
	def := params.NewDefaultTailParams()
	cmd.Flags().Float64Var(&f.numerator, "numerator", def.Numerator, "repeat spacing numerator (beats)")
	cmd.Flags().Float64Var(&f.denominator, "denominator", def.Denominator, "repeat spacing denominator")
	cmd.Flags().Float64Var(&f.quantity, "quantity", def.Quantity, "number of tail repeats")
	cmd.Flags().Float64Var(&f.tailDecay, "tail-decay", def.TailDecay, "per-repeat velocity multiplier (0-1)")
	cmd.Flags().Float64Var(&f.gate, "gate", def.Gate, "repeat gate as a fraction of spacing (0.05-1)")
	cmd.Flags().Float64Var(&f.pitchDecay, "pitch-decay", def.PitchDecay, "per-repeat pitch drift amount (0-1)")
	cmd.Flags().Float64Var(&f.pitchMult, "pitch-decay-multiplier", def.PitchDecayMultiplier, "semitone scale for pitch drift (1-60)")
	cmd.Flags().Float64Var(&f.highpassHz, "highpass", def.HighpassHz, "lowest allowed repeat frequency (Hz)")
	cmd.Flags().Float64Var(&f.lowpassHz, "lowpass", def.LowpassHz, "highest allowed repeat frequency (Hz)")
	cmd.Flags().Float64Var(&f.delayBeats, "delay", def.DelayBeats, "delay before the first repeat (beats)")
	cmd.Flags().StringVar(&f.attack, "attack", "Off", "envelope attack (duration menu label)")
	cmd.Flags().StringVar(&f.hold, "hold", "1/4", "envelope hold (duration menu label)")
	cmd.Flags().StringVar(&f.decay, "decay", "1/2", "envelope decay (duration menu label)")
	cmd.Flags().StringVar(&f.release, "release", "1/1", "envelope release (duration menu label)")
	cmd.Flags().Float64Var(&f.sustain, "sustain", def.Sustain, "envelope sustain level (0-1)")
	cmd.Flags().Float64Var(&f.voices, "voices", def.Voices, "maximum tail voices (1-64)")
}

func (f *tailFlags) params() params.TailParams {
	p := params.TailParams{
		Numerator:            f.numerator,
		Denominator:          f.denominator,
		Quantity:             f.quantity,
		TailDecay:            f.tailDecay,
		Gate:                 f.gate,
		PitchDecay:           f.pitchDecay,
		PitchDecayMultiplier: f.pitchMult,
		HighpassHz:           f.highpassHz,
		LowpassHz:            f.lowpassHz,
		DelayBeats:           f.delayBeats,
		Attack:               params.DurationValue(params.DurationIndexOf(f.attack)),
		Hold:                 params.DurationValue(params.DurationIndexOf(f.hold)),
		Decay:                params.DurationValue(params.DurationIndexOf(f.decay)),
		Sustain:              f.sustain,
		Release:              params.DurationValue(params.DurationIndexOf(f.release)),
		Voices:               f.voices,
	}
	return p.Clamp()
}
