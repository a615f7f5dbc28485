// Package interval keeps a root note, its selected intervals and the octaves
// they span consistent while notes are tapped on and off.
package interval

import (
	"fmt"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/util"
	"golang.org/x/exp/slices"
)

// State is the coarse shape of a selection.
type State int

const (
	Empty State = iota
	SingleRoot
	MultiNote
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case SingleRoot:
		return "single_root"
	case MultiNote:
		return "multi_note"
	}
	return "unknown"
}

// StateOf classifies sel by how many intervals it holds.
func StateOf(sel model.Selection) State {
	switch len(sel.Intervals) {
	case 0:
		return Empty
	case 1:
		return SingleRoot
	}
	return MultiNote
}

// Reference is the absolute pitch interval 0 refers to.
func Reference(sel model.Selection) model.Pitch {
	return model.Note{Class: sel.Root, Octave: sel.ReferenceOctave}.Pitch()
}

// Pitches returns the selected absolute pitches, lowest first.
func Pitches(sel model.Selection) []model.Pitch {
	ref := Reference(sel)
	res := make([]model.Pitch, len(sel.Intervals))
	for i, v := range sel.Intervals {
		res[i] = ref + model.Pitch(v)
	}
	return res
}

func rooted(p model.Pitch) model.Selection {
	n := model.NoteOf(p)
	return model.Selection{
		Root:            n.Class,
		ReferenceOctave: n.Octave,
		Intervals:       []model.Interval{0},
		Octaves:         []model.Octave{n.Octave},
	}
}

// ApplyTap returns the selection that results from tapping pitch p. The
// input selection is never modified.
func ApplyTap(sel model.Selection, p model.Pitch) model.Selection {
	if sel.IsEmpty() {
		return rooted(p)
	}

	ref := Reference(sel)
	ext := model.Interval(p - ref)

	if util.Contains(sel.Intervals, ext) {
		return toggleOff(sel, ref, ext)
	}
	return toggleOn(sel, ext, p)
}

// ApplyTaps applies each pitch in order, as if tapped one after another.
func ApplyTaps(sel model.Selection, pitches ...model.Pitch) model.Selection {
	for _, p := range pitches {
		sel = ApplyTap(sel, p)
	}
	return sel
}

func toggleOn(sel model.Selection, ext model.Interval, p model.Pitch) model.Selection {
	if ext >= 0 {
		return model.Selection{
			Root:            sel.Root,
			ReferenceOctave: sel.ReferenceOctave,
			Intervals:       util.Insert(sel.Intervals, ext),
			Octaves:         util.Insert(sel.Octaves, p.Octave()),
		}
	}

	octavesDown := (int(-ext)-1)/12 + 1
	shift := model.Interval(12 * octavesDown)

	octaves := slices.Clone(sel.Octaves)
	for i := 1; i <= octavesDown; i++ {
		octaves = util.Insert(octaves, sel.ReferenceOctave-model.Octave(i))
	}

	return model.Selection{
		Root:            sel.Root,
		ReferenceOctave: sel.ReferenceOctave - model.Octave(octavesDown),
		Intervals:       util.Insert(util.Shift(sel.Intervals, shift), ext+shift),
		Octaves:         octaves,
	}
}

func toggleOff(sel model.Selection, ref model.Pitch, ext model.Interval) model.Selection {
	remaining := util.Remove(sel.Intervals, ext)

	switch {
	case len(remaining) == 0:
		return model.Selection{}
	case ext == 0 || !soundsRoot(remaining):
		return reroot(ref, remaining)
	case len(remaining) == 1:
		return rooted(ref + model.Pitch(remaining[0]))
	}

	// the lowest note may have left the reference octave
	ref += model.Pitch(12 * util.FloorDiv(int(remaining[0]), 12))
	return rebuild(sel.Root, ref, remaining, ref-Reference(sel))
}

// soundsRoot reports whether some interval lands on the root pitch class.
func soundsRoot(intervals []model.Interval) bool {
	for _, v := range intervals {
		if v%12 == 0 {
			return true
		}
	}
	return false
}

// reroot makes the lowest remaining note the root.
func reroot(ref model.Pitch, remaining []model.Interval) model.Selection {
	low := remaining[0]
	newRoot := ref + model.Pitch(low)
	return rebuild(newRoot.Class(), newRoot, remaining, model.Pitch(low))
}

// rebuild re-expresses intervals against newRef, which lies delta
// semitones above the old reference pitch. The reference octave always
// stays in the octave set, even when the root there is not sounded.
func rebuild(root model.PitchClass, newRef model.Pitch, intervals []model.Interval, delta model.Pitch) model.Selection {
	shifted := util.Shift(intervals, -model.Interval(delta))
	octaves := []model.Octave{newRef.Octave()}
	for _, v := range shifted {
		octaves = append(octaves, (newRef + model.Pitch(v)).Octave())
	}
	return model.Selection{
		Root:            root,
		ReferenceOctave: newRef.Octave(),
		Intervals:       shifted,
		Octaves:         util.SortedSet(octaves),
	}
}

// Check reports the first invariant a selection violates, if any. It is
// meant for selections that arrive from outside, e.g. over HTTP.
func Check(sel model.Selection) error {
	if sel.IsEmpty() {
		if len(sel.Octaves) != 0 {
			return fmt.Errorf("empty selection has octaves %v", sel.Octaves)
		}
		return nil
	}
	if len(sel.Octaves) == 0 {
		return fmt.Errorf("selection %v has no octaves", sel.Intervals)
	}
	if sel.Root < 0 || sel.Root > 11 {
		return fmt.Errorf("root %d is not a pitch class", sel.Root)
	}
	if !slices.Equal(util.SortedSet(sel.Intervals), sel.Intervals) {
		return fmt.Errorf("intervals %v are not a sorted set", sel.Intervals)
	}
	if !slices.Equal(util.SortedSet(sel.Octaves), sel.Octaves) {
		return fmt.Errorf("octaves %v are not a sorted set", sel.Octaves)
	}
	if !soundsRoot(sel.Intervals) {
		return fmt.Errorf("intervals %v never sound the root", sel.Intervals)
	}
	if sel.Octaves[0] != sel.ReferenceOctave {
		return fmt.Errorf("reference octave %d is not the lowest of %v", sel.ReferenceOctave, sel.Octaves)
	}
	// a root above the lowest note's class puts the reference one octave lower
	low, high := model.MinPitch.Octave()-1, model.MaxPitch.Octave()
	if sel.Octaves[0] < low || sel.Octaves[len(sel.Octaves)-1] > high {
		return fmt.Errorf("octaves %v fall outside %d..%d", sel.Octaves, low, high)
	}
	for _, p := range Pitches(sel) {
		if p < model.MinPitch || p > model.MaxPitch {
			return fmt.Errorf("pitch %d is outside %d..%d", p, model.MinPitch, model.MaxPitch)
		}
		if !util.Contains(sel.Octaves, p.Octave()) {
			return fmt.Errorf("octave of pitch %d missing from %v", p, sel.Octaves)
		}
	}
	return nil
}
