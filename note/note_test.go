package note

import (
	"testing"

	"github.com/jsphweid/fretdex/model"
	"github.com/stretchr/testify/assert"
)

func TestPitchNamesRoundTrip(t *testing.T) {
	for _, flats := range []bool{false, true} {
		for p := model.MinPitch; p <= model.MaxPitch; p++ {
			name := PitchName(p, flats)
			parsed, err := ParsePitch(name)
			if err != nil {
				t.Fatalf("ParsePitch(%s) error: %v", name, err)
			}
			if parsed != p {
				t.Fatalf("round trip: %d => %s => %d", p, name, parsed)
			}
		}
	}
}

func TestKnownPitches(t *testing.T) {
	assert := assert.New(t)
	cases := map[string]model.Pitch{
		"C4":   60,
		"A4":   69,
		"A3":   57,
		"E2":   40,
		"C-1":  0,
		"G9":   127,
		"F#6":  90,
		"F♯6":  90,
		"Bb5":  82,
		"B♭5":  82,
		"Cb4":  59,
		"B#3":  60,
		"Db4":  61,
		"C#4":  61,
	}
	for name, want := range cases {
		got, err := ParsePitch(name)
		assert.NoError(err, name)
		assert.Equal(want, got, name)
	}
}

func TestParseFailures(t *testing.T) {
	for _, name := range []string{"", "b5", "G#9", "C-2", "G♯#4", "F", "F#", "♭A5", "H4", "C4x"} {
		_, err := ParsePitch(name)
		assert.Error(t, err, name)
	}
}

func TestNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C#", Name(1, false))
	assert.Equal("Db", Name(1, true))
	assert.Equal("C#4", PitchName(61, false))
	assert.Equal("Db4", PitchName(61, true))
	assert.Equal("B-1", PitchName(11, false))
}

func TestParseClass(t *testing.T) {
	assert := assert.New(t)
	c, err := ParseClass("Eb")
	assert.NoError(err)
	assert.Equal(model.PitchClass(3), c)

	c, err = ParseClass("Cb")
	assert.NoError(err)
	assert.Equal(model.PitchClass(11), c)

	_, err = ParseClass("E4")
	assert.Error(err)
}

func TestParsePitchOrNumber(t *testing.T) {
	assert := assert.New(t)
	p, err := ParsePitchOrNumber("64")
	assert.NoError(err)
	assert.Equal(model.Pitch(64), p)

	p, err = ParsePitchOrNumber("E4")
	assert.NoError(err)
	assert.Equal(model.Pitch(64), p)

	_, err = ParsePitchOrNumber("128")
	assert.Error(err)
}
