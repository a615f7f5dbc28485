package model

// Selection is the interval-mode state of one fretboard or keyboard.
// The zero value is the empty selection.
type Selection struct {
	Root            PitchClass
	ReferenceOctave Octave

	// sorted, no duplicates
	Intervals []Interval
	Octaves   []Octave
}

func (s Selection) IsEmpty() bool {
	return len(s.Intervals) == 0
}

type ViewMode string

const (
	ViewScale    ViewMode = "scale"
	ViewChord    ViewMode = "chord"
	ViewInterval ViewMode = "interval"
)

func (m ViewMode) Valid() bool {
	switch m {
	case ViewScale, ViewChord, ViewInterval:
		return true
	}
	return false
}
