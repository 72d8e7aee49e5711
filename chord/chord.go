package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/bartail/model"
)

// NameStyle selects how pitch classes are spelled.
type NameStyle uint8

const (
	Sharps NameStyle = iota
	Flats
)

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// PitchClassName spells a pitch class in the given style.
func PitchClassName(pc uint8, style NameStyle) string {
	if style == Flats {
		return flatNames[pc%12]
	}
	return sharpNames[pc%12]
}

// Name identifies the chord formed by the given pitches. The root is the
// pitch class of the lowest-sounding note, deliberately: this names what
// the ear hears over the bass, not the textbook root. Total: every
// non-empty input yields a non-empty label, falling back to an
// interval-list description for shapes no rule recognizes.
func Name(pitches model.Notes, style NameStyle) model.ChordResult {
	var res model.ChordResult
	if len(pitches) == 0 {
		res.Label = "(no notes)"
		return res
	}

	bass := pitches[0]
	for _, p := range pitches {
		if p < bass {
			bass = p
		}
	}
	root := bass % 12

	pcSet := make(map[uint8]bool)
	for _, p := range pitches {
		pcSet[p%12] = true
	}
	var pcs []uint8
	has := make(map[uint8]bool)
	for pc := range pcSet {
		pcs = append(pcs, pc)
		has[(pc+12-root)%12] = true
	}
	sort.Slice(pcs, func(i, j int) bool { return pcs[i] < pcs[j] })

	var intervals []uint8
	for iv := range has {
		intervals = append(intervals, iv)
	}
	sort.Slice(intervals, func(i, j int) bool { return intervals[i] < intervals[j] })

	quality, classified := classify(has)
	tokens := extensions(has, quality, classified)
	suffix := strings.Join(tokens, "")

	label := PitchClassName(root, style) + quality + suffix
	if !classified && suffix == "" && len(pcs) > 1 {
		// Nothing matched: describe the shape instead of naming it.
		var parts []string
		for _, iv := range intervals {
			if iv != 0 {
				parts = append(parts, fmt.Sprintf("%d", iv))
			}
		}
		label = fmt.Sprintf("%v (%v)", PitchClassName(root, style), strings.Join(parts, ","))
	}

	res.Label = label
	res.RootPitchClass = root
	res.BassPitch = bass
	res.Quality = quality
	res.SuffixTokens = tokens
	res.PitchClasses = pcs
	res.Intervals = intervals
	return res
}

// classify picks the triad/sus quality by interval presence, first match
// wins. Major's token is the empty string, so recognition is reported
// separately.
func classify(has map[uint8]bool) (string, bool) {
	switch {
	case has[4] && has[7]:
		return "", true
	case has[3] && has[7]:
		return "m", true
	case has[3] && has[6]:
		return "dim", true
	case has[4] && has[8]:
		return "aug", true
	case has[2] && has[7]:
		return "sus2", true
	case has[5] && has[7]:
		return "sus4", true
	}
	return "", false
}

// extensions appends suffix tokens in a fixed order. The checks are not
// mutually exclusive and later checks see what earlier ones appended; this
// is a best-effort heuristic, not a formal chord grammar.
func extensions(has map[uint8]bool, quality string, classified bool) []string {
	var tokens []string
	suffix := func() string { return strings.Join(tokens, "") }
	add := func(t string) { tokens = append(tokens, t) }

	if has[10] {
		add("7")
	} else if has[11] {
		add("maj7")
	}

	if has[9] {
		if !strings.Contains(suffix(), "7") {
			add("6")
		} else if suffix() == "maj7" {
			add("(add6)")
		}
	}

	if has[2] {
		s := suffix()
		if s == "" && classified {
			add("(add9)")
		} else if s != "" && s != "6" {
			add("add9")
		} else {
			add("9")
		}
	}

	if has[5] && quality != "sus4" {
		add("add11")
	}

	if has[9] && (has[10] || has[11]) {
		add("13")
	}

	if has[6] && quality != "dim" {
		add("b5")
	}
	if has[8] && quality != "aug" {
		add("#5")
	}
	if has[1] {
		add("b9")
	}
	if has[3] && quality == "" {
		// The minor third reads as a sharp nine whenever no minor/dim
		// quality claimed it; this includes major shapes like 7#9.
		add("#9")
	}

	return tokens
}
