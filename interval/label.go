package interval

import (
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
)

var labels = [12]string{"R", "b2", "2", "b3", "3", "4", "b5", "5", "b6", "6", "b7", "7"}

// Label names an interval by its degree within the octave; compound
// intervals fold down, so 12 and 0 are both "R".
func Label(v model.Interval) string {
	return labels[((int(v)%12)+12)%12]
}

func Labels(sel model.Selection) []string {
	res := make([]string, len(sel.Intervals))
	for i, v := range sel.Intervals {
		res[i] = Label(v)
	}
	return res
}

// Notes names every selected pitch, e.g. ["A3", "C4"].
func Notes(sel model.Selection, preferFlats bool) []string {
	pitches := Pitches(sel)
	res := make([]string, len(pitches))
	for i, p := range pitches {
		res[i] = note.PitchName(p, preferFlats)
	}
	return res
}
