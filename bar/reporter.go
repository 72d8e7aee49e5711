package bar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/bartail/chord"
	"github.com/jsphweid/bartail/model"
	"github.com/jsphweid/bartail/params"
)

// Reporter turns a flushed bar into log lines. Bars are tracked 0-based
// but reported 1-based.
type Reporter struct {
	Opts params.ReportOptions
}

func NewReporter(opts params.ReportOptions) *Reporter {
	return &Reporter{Opts: opts}
}

// Report summarizes one flushed bar. For an empty bar the summary carries
// no lines unless empty-bar logging is on.
func (r *Reporter) Report(barIndex int, pitches model.Notes) model.BarSummary {
	summary := model.BarSummary{BarNumber: barIndex + 1}

	if len(pitches) == 0 {
		summary.Label = "(no notes)"
		if r.Opts.LogEmptyBars {
			summary.Lines = []string{fmt.Sprintf("Bar %d: (no notes)", summary.BarNumber)}
		}
		return summary
	}

	res := chord.Name(pitches, r.Opts.Style)
	summary.Label = res.Label
	summary.BassPitch = res.BassPitch
	summary.Notes = dedupedAscending(pitches)

	var pcNames []string
	for _, pc := range res.PitchClasses {
		pcNames = append(pcNames, chord.PitchClassName(pc, r.Opts.Style))
	}

	line := fmt.Sprintf("Bar %d: %v  | bass=%d  | PCs=%v",
		summary.BarNumber, res.Label, res.BassPitch, strings.Join(pcNames, "-"))
	if r.Opts.IncludeNotesList {
		line += fmt.Sprintf("  | notes=%v", joinInts(summary.Notes))
	}

	summary.Lines = []string{
		line,
		fmt.Sprintf("          semitones=%v", joinInts(res.Intervals)),
	}
	return summary
}

func dedupedAscending(pitches model.Notes) model.Notes {
	seen := make(map[uint8]bool)
	var out model.Notes
	for _, p := range pitches {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func joinInts(nums []uint8) string {
	var parts []string
	for _, n := range nums {
		parts = append(parts, fmt.Sprintf("%d", n))
	}
	return strings.Join(parts, ",")
}
