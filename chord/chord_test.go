package chord

import (
	"fmt"
	"testing"

	"github.com/jsphweid/bartail/model"
	"github.com/stretchr/testify/assert"
)

func TestNamesBasicTriads(t *testing.T) {
	cases := []struct {
		pitches model.Notes
		label   string
	}{
		{model.Notes{60, 64, 67}, "C"},
		{model.Notes{62, 65, 69}, "Dm"},
		{model.Notes{60, 63, 66}, "Cdim"},
		{model.Notes{60, 64, 68}, "Caug"},
		// The add9 rule fires for any recognized shape with interval 2,
		// sus2 included; preserved as observed.
		{model.Notes{60, 62, 67}, "Csus2(add9)"},
		{model.Notes{60, 65, 67}, "Csus4"},
	}

	for _, c := range cases {
		t.Run(c.label, func(t *testing.T) {
			assert.Equal(t, c.label, Name(c.pitches, Sharps).Label)
		})
	}
}

func TestCMajorTriadResultBundle(t *testing.T) {
	res := Name(model.Notes{60, 64, 67}, Sharps)

	assert := assert.New(t)
	assert.Equal("C", res.Label)
	assert.Equal(uint8(60), res.BassPitch)
	assert.Equal(uint8(0), res.RootPitchClass)
	assert.Equal([]uint8{0, 4, 7}, res.PitchClasses)
	assert.Equal([]uint8{0, 4, 7}, res.Intervals)
}

func TestDMinorBass(t *testing.T) {
	res := Name(model.Notes{62, 65, 69}, Sharps)

	assert := assert.New(t)
	assert.Equal("Dm", res.Label)
	assert.Equal(uint8(62), res.BassPitch)
	assert.Equal(uint8(2), res.RootPitchClass)
}

func TestSingleNoteIsBarePitchClassName(t *testing.T) {
	res := Name(model.Notes{67}, Sharps)

	assert := assert.New(t)
	assert.Equal("G", res.Label)
	assert.Equal(uint8(67), res.BassPitch)
	assert.Equal([]uint8{0}, res.Intervals)
}

func TestRootIsLowestPitchNotTheoreticalRoot(t *testing.T) {
	// First-inversion C major: E in the bass, so it names from E.
	res := Name(model.Notes{64, 67, 72}, Sharps)
	assert.Equal(t, uint8(64), res.BassPitch)
	assert.Equal(t, uint8(4), res.RootPitchClass)
}

func TestSeventhSuffixes(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C7", Name(model.Notes{60, 64, 67, 70}, Sharps).Label)
	assert.Equal("Cmaj7", Name(model.Notes{60, 64, 67, 71}, Sharps).Label)
	assert.Equal("Cm7", Name(model.Notes{60, 63, 67, 70}, Sharps).Label)
	assert.Equal("C6", Name(model.Notes{60, 64, 67, 69}, Sharps).Label)
	// The 13 rule also sees the sixth next to a major seventh.
	assert.Equal("Cmaj7(add6)13", Name(model.Notes{60, 64, 67, 69, 71}, Sharps).Label)
}

func TestNinthAndThirteenth(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C(add9)", Name(model.Notes{60, 62, 64, 67}, Sharps).Label)
	assert.Equal("C7add9", Name(model.Notes{60, 62, 64, 67, 70}, Sharps).Label)
	// 6 plus 9 with no seventh takes the bare-9 path after "6".
	assert.Equal("C69", Name(model.Notes{60, 62, 64, 67, 69}, Sharps).Label)
	assert.Equal("C713", Name(model.Notes{60, 64, 67, 69, 70}, Sharps).Label)
}

func TestAlterations(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Cadd11", Name(model.Notes{60, 64, 65, 67}, Sharps).Label)
	// sus4 already implies the fourth
	assert.Equal("Csus4", Name(model.Notes{60, 65, 67}, Sharps).Label)
	assert.Equal("Cb5", Name(model.Notes{60, 64, 66, 67}, Sharps).Label)
	assert.Equal("C#5", Name(model.Notes{60, 64, 67, 68}, Sharps).Label)
	assert.Equal("Cb9", Name(model.Notes{60, 61, 64, 67}, Sharps).Label)
	// Major quality's token is empty, so a major shape carrying a minor
	// third picks up the sharp-nine reading too.
	assert.Equal("C7#9", Name(model.Notes{60, 63, 64, 67, 70}, Sharps).Label)
	assert.Equal("C#9", Name(model.Notes{60, 63, 64, 67}, Sharps).Label)
}

func TestUnclassifiableShapes(t *testing.T) {
	assert := assert.New(t)

	// These miss every triad rule but still pick up a suffix.
	assert.Equal("Cb9", Name(model.Notes{60, 61}, Sharps).Label)
	assert.Equal("Cadd11", Name(model.Notes{60, 65}, Sharps).Label)
	assert.Equal("C9", Name(model.Notes{60, 62}, Sharps).Label)
	assert.Equal("C#9", Name(model.Notes{60, 63}, Sharps).Label)

	// Nothing fires at all: fall back to the interval list.
	assert.Equal("C (4)", Name(model.Notes{60, 64}, Sharps).Label)
	assert.Equal("C (7)", Name(model.Notes{60, 67}, Sharps).Label)
}

func TestFlatsStyle(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Bbm", Name(model.Notes{58, 61, 65}, Flats).Label)
	assert.Equal("A#m", Name(model.Notes{58, 61, 65}, Sharps).Label)
}

func TestTotalityAndInvariants(t *testing.T) {
	// Every pitch-class pair rooted at middle C must produce a label and
	// hold the structural invariants.
	for a := uint8(0); a < 12; a++ {
		for b := uint8(0); b < 12; b++ {
			pitches := model.Notes{60, 60 + a, 60 + b}
			name := fmt.Sprintf("pcs %v %v", a, b)
			t.Run(name, func(t *testing.T) {
				res := Name(pitches, Sharps)

				assert := assert.New(t)
				assert.NotEmpty(res.Label)
				assert.Equal(uint8(60), res.BassPitch)
				assert.Equal(res.BassPitch%12, res.RootPitchClass)
				assert.Equal(uint8(0), res.Intervals[0])
				for i, iv := range res.Intervals {
					assert.Less(iv, uint8(12))
					if i > 0 {
						assert.Greater(iv, res.Intervals[i-1])
					}
				}
			})
		}
	}
}

func TestEmptyInputLabel(t *testing.T) {
	assert.Equal(t, "(no notes)", Name(nil, Sharps).Label)
}

func TestDuplicatePitchesCollapse(t *testing.T) {
	doubled := Name(model.Notes{60, 60, 64, 64, 67, 72}, Sharps)
	plain := Name(model.Notes{60, 64, 67}, Sharps)
	assert.Equal(t, plain.Label, doubled.Label)
	assert.Equal(t, plain.Intervals, doubled.Intervals)
}
