package fretboard

import (
	"sort"

	"github.com/jsphweid/fretdex/model"
	"github.com/pkg/errors"
)

// Tuning holds the open pitch of each string, lowest string first.
type Tuning []model.Pitch

// E2 A2 D3 G3 B3 E4
var StandardTuning = Tuning{40, 45, 50, 55, 59, 64}

const DefaultFrets = 22

type Position struct {
	String int
	Fret   int
}

type Fretboard struct {
	Tuning Tuning
	Frets  int
}

func New(tuning Tuning, frets int) *Fretboard {
	if len(tuning) == 0 {
		tuning = StandardTuning
	}
	if frets <= 0 {
		frets = DefaultFrets
	}
	return &Fretboard{Tuning: tuning, Frets: frets}
}

func (f *Fretboard) PitchAt(pos Position) (model.Pitch, error) {
	if pos.String < 0 || pos.String >= len(f.Tuning) {
		return 0, errors.Errorf("string %d out of range (0-%d)", pos.String, len(f.Tuning)-1)
	}
	if pos.Fret < 0 || pos.Fret > f.Frets {
		return 0, errors.Errorf("fret %d out of range (0-%d)", pos.Fret, f.Frets)
	}
	return f.Tuning[pos.String] + model.Pitch(pos.Fret), nil
}

// Positions lists every place pitch can be played, by fret then string.
func (f *Fretboard) Positions(pitch model.Pitch) []Position {
	var res []Position
	for s, open := range f.Tuning {
		fret := int(pitch - open)
		if fret >= 0 && fret <= f.Frets {
			res = append(res, Position{String: s, Fret: fret})
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Fret != res[j].Fret {
			return res[i].Fret < res[j].Fret
		}
		return res[i].String < res[j].String
	})
	return res
}

func (f *Fretboard) Lowest() model.Pitch {
	low := f.Tuning[0]
	for _, p := range f.Tuning {
		if p < low {
			low = p
		}
	}
	return low
}

func (f *Fretboard) Highest() model.Pitch {
	high := f.Tuning[0]
	for _, p := range f.Tuning {
		if p > high {
			high = p
		}
	}
	return high + model.Pitch(f.Frets)
}
