package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/util"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// CreateChordKey returns the canonical "57-60-64" key of a pitch set. The
// input is not reordered.
func CreateChordKey(pitches []model.Pitch) string {
	sorted := util.SortedSet(pitches)
	parts := make([]string, len(sorted))
	for i, p := range sorted {
		parts[i] = fmt.Sprint(int(p))
	}
	return strings.Join(parts, "-")
}

type reducedEvent struct {
	ticks     int64
	isNoteOff bool
	note      uint8
}

// GetChords returns the sounding pitch sets of a file, one per onset tick,
// in time order. Ticks where a note is only released are skipped.
func GetChords(s *smf.SMF) ([][]model.Pitch, error) {
	if s == nil {
		return nil, errors.New("no midi data")
	}
	var reducedEvents []reducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			msg := midi.Message(event.Message)
			var channel, key, velocity uint8
			switch {
			case msg.GetNoteStart(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{ticks: absTicks, note: key})
			case msg.GetNoteEnd(&channel, &key):
				reducedEvents = append(reducedEvents, reducedEvent{ticks: absTicks, isNoteOff: true, note: key})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].ticks != reducedEvents[j].ticks {
			return reducedEvents[i].ticks < reducedEvents[j].ticks
		}
		return reducedEvents[i].isNoteOff && !reducedEvents[j].isNoteOff
	})

	ticksToChord := make(map[int64][]model.Pitch)
	pressed := make(map[uint8]bool)
	for _, evt := range reducedEvents {
		if evt.isNoteOff {
			delete(pressed, evt.note)
			continue
		}
		pressed[evt.note] = true
		ticksToChord[evt.ticks] = pressedPitches(pressed)
	}

	var chords [][]model.Pitch
	for _, ticks := range util.GetKeys(ticksToChord) {
		chords = append(chords, ticksToChord[ticks])
	}
	return chords, nil
}

func pressedPitches(pressed map[uint8]bool) []model.Pitch {
	keys := util.GetKeys(pressed)
	res := make([]model.Pitch, len(keys))
	for i, k := range keys {
		res[i] = model.Pitch(k)
	}
	return res
}
