package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/fretdex/interval"
	"github.com/jsphweid/fretdex/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerQuarter = 960
	velocity        = 100
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = errors.Errorf("midi parser panicked on %s: %v", filepath, r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "Error reading midi file")
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrapf(err, "Error parsing midi file %s", filepath)
	}
	return res, nil
}

// SelectionToSMF renders the selection as a single chord held for a whole
// note, every pitch on channel 0.
func SelectionToSMF(sel model.Selection) (*smf.SMF, error) {
	pitches := interval.Pitches(sel)
	for _, p := range pitches {
		if p < model.MinPitch || p > model.MaxPitch {
			return nil, errors.Errorf("pitch %d is outside the midi range", p)
		}
	}

	res := smf.New()
	res.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(fmt.Sprintf("selection %v", pitches)))
	for _, p := range pitches {
		track.Add(0, midi.NoteOn(0, uint8(p), velocity))
	}
	for i, p := range pitches {
		var delta uint32
		if i == 0 {
			delta = 4 * ticksPerQuarter
		}
		track.Add(delta, midi.NoteOff(0, uint8(p)))
	}
	track.Close(0)

	if err := res.Add(track); err != nil {
		return nil, errors.Wrap(err, "could not add track")
	}
	return res, nil
}

func WriteSelection(w io.Writer, sel model.Selection) error {
	s, err := SelectionToSMF(sel)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return errors.Wrap(err, "could not write midi data")
}

func WriteSelectionFile(path string, sel model.Selection) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", path)
	}
	defer f.Close()
	return WriteSelection(f, sel)
}
