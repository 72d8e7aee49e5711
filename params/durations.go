package params

// Duration is one entry in the fixed catalog of musical-time-synced
// note lengths, in beats (quarter note = 1).
type Duration struct {
	Label string
	Beats float64
}

// DurationMenu is the enumerated menu the envelope stage controls select
// from. The exact values matter: they are note-length fractions, ordered
// shortest to longest, not freely computed numbers.
var DurationMenu = []Duration{
	{"Off", 0},
	{"1/64 T", 0.0625 * 2.0 / 3.0},
	{"1/64", 0.0625},
	{"1/32 T", 0.125 * 2.0 / 3.0},
	{"1/64 D", 0.0625 * 3.0 / 2.0},
	{"1/32", 0.125},
	{"1/16 T", 0.25 * 2.0 / 3.0},
	{"1/32 D", 0.125 * 3.0 / 2.0},
	{"1/16", 0.25},
	{"1/8 T", 0.5 * 2.0 / 3.0},
	{"1/16 D", 0.25 * 3.0 / 2.0},
	{"1/8", 0.5},
	{"1/4 T", 1.0 * 2.0 / 3.0},
	{"1/8 D", 0.5 * 3.0 / 2.0},
	{"1/4", 1},
	{"1/2 T", 2.0 * 2.0 / 3.0},
	{"1/4 D", 1.0 * 3.0 / 2.0},
	{"1/2", 2},
	{"1/1 T", 4.0 * 2.0 / 3.0},
	{"1/2 D", 2.0 * 3.0 / 2.0},
	{"1/1", 4},
	{"2/1", 8},
}

// DurationValue returns the beat value for a menu index, clamping
// out-of-range indices to the catalog bounds.
func DurationValue(idx int) float64 {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(DurationMenu) {
		idx = len(DurationMenu) - 1
	}
	return DurationMenu[idx].Beats
}

// DurationIndexOf finds a menu entry by label, 0 if unknown.
func DurationIndexOf(label string) int {
	for i, d := range DurationMenu {
		if d.Label == label {
			return i
		}
	}
	return 0
}
