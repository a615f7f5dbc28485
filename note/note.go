package note

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/fretdex/model"
	"github.com/pkg/errors"
)

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var letterClass = map[byte]model.PitchClass{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

func Name(class model.PitchClass, preferFlats bool) string {
	c := ((int(class) % 12) + 12) % 12
	if preferFlats {
		return flatNames[c]
	}
	return sharpNames[c]
}

func PitchName(pitch model.Pitch, preferFlats bool) string {
	n := model.NoteOf(pitch)
	return fmt.Sprintf("%s%d", Name(n.Class, preferFlats), n.Octave)
}

// ParseClass parses a bare pitch-class name such as "F#" or "B♭".
func ParseClass(name string) (model.PitchClass, error) {
	class, rest, err := parseClassPrefix(name)
	if err != nil {
		return 0, err
	}
	if rest != "" {
		return 0, errors.Errorf("unexpected %q after pitch class in %q", rest, name)
	}
	return (class + 12) % 12, nil
}

// ParsePitch parses names like "C4", "Eb3", "F♯-1". The octave is required
// and the result must fit in the MIDI range.
func ParsePitch(name string) (model.Pitch, error) {
	class, rest, err := parseClassPrefix(name)
	if err != nil {
		return 0, err
	}
	if rest == "" {
		return 0, errors.Errorf("missing octave in %q", name)
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, errors.Wrapf(err, "bad octave in %q", name)
	}
	pitch := model.Note{Class: class, Octave: model.Octave(octave)}.Pitch()
	if pitch < model.MinPitch || pitch > model.MaxPitch {
		return 0, errors.Errorf("%q is outside the midi range", name)
	}
	return pitch, nil
}

// ParsePitchOrNumber accepts either a note name or a raw midi number.
func ParsePitchOrNumber(s string) (model.Pitch, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < int(model.MinPitch) || n > int(model.MaxPitch) {
			return 0, errors.Errorf("%d is outside the midi range", n)
		}
		return model.Pitch(n), nil
	}
	return ParsePitch(s)
}

func parseClassPrefix(name string) (model.PitchClass, string, error) {
	if name == "" {
		return 0, "", errors.New("empty note name")
	}
	class, ok := letterClass[name[0]]
	if !ok {
		return 0, "", errors.Errorf("invalid note letter in %q", name)
	}
	rest := name[1:]
	switch {
	case strings.HasPrefix(rest, "#"):
		class++
		rest = rest[1:]
	case strings.HasPrefix(rest, "♯"):
		class++
		rest = rest[len("♯"):]
	case strings.HasPrefix(rest, "b"):
		class--
		rest = rest[1:]
	case strings.HasPrefix(rest, "♭"):
		class--
		rest = rest[len("♭"):]
	}
	if strings.HasPrefix(rest, "#") || strings.HasPrefix(rest, "♯") ||
		strings.HasPrefix(rest, "b") || strings.HasPrefix(rest, "♭") {
		return 0, "", errors.Errorf("double accidental in %q", name)
	}
	return class, rest, nil
}
