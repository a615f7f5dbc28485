package model

// Pitch is an absolute semitone index (MIDI note number, C4 == 60).
type Pitch int

// Interval is a signed semitone offset from the current root.
type Interval int

type Octave int

// PitchClass is a chromatic degree, 0 (C) through 11 (B).
type PitchClass int

const (
	MinPitch Pitch = 0
	MaxPitch Pitch = 127
)

type Note struct {
	Class  PitchClass
	Octave Octave
}

func (n Note) Pitch() Pitch {
	return Pitch(int(n.Octave+1)*12 + int(n.Class))
}

// NoteOf uses floor division so pitches below 0 still map to a note.
func NoteOf(p Pitch) Note {
	octave := int(p) / 12
	class := int(p) % 12
	if class < 0 {
		class += 12
		octave--
	}
	return Note{Class: PitchClass(class), Octave: Octave(octave - 1)}
}

func (p Pitch) Class() PitchClass {
	return NoteOf(p).Class
}

func (p Pitch) Octave() Octave {
	return NoteOf(p).Octave
}
