package model

type Notes = []uint8

// ChordResult describes the chord identified for one bar's pitch content.
// BassPitch is the literal lowest MIDI pitch, not just its class;
// BassPitch%12 == RootPitchClass always holds.
type ChordResult struct {
	Label          string
	RootPitchClass uint8
	BassPitch      uint8
	Quality        string
	SuffixTokens   []string

	// Ascending and unique. Intervals are semitone offsets from the
	// root, always including 0.
	PitchClasses []uint8
	Intervals    []uint8
}

// BarSummary is one flushed bar as reported downstream. BarNumber is
// 1-based; tracking is 0-based internally.
type BarSummary struct {
	BarNumber int      `json:"bar"`
	Label     string   `json:"label"`
	BassPitch uint8    `json:"bass"`
	Notes     Notes    `json:"notes"`
	Lines     []string `json:"-"`
}
