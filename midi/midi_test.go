package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/interval"
	"github.com/jsphweid/fretdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestSelectionBecomesOneChord(t *testing.T) {
	sel := interval.ApplyTaps(model.Selection{}, 60, 57, 64)

	var buf bytes.Buffer
	require.NoError(t, WriteSelection(&buf, sel))

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	chords, err := chord.GetChords(s)
	require.NoError(t, err)
	assert.Equal(t, [][]model.Pitch{{57, 60, 64}}, chords)
}

func TestEmptySelectionWritesNoNotes(t *testing.T) {
	s, err := SelectionToSMF(model.Selection{})
	require.NoError(t, err)
	chords, err := chord.GetChords(s)
	require.NoError(t, err)
	assert.Empty(t, chords)
}

func TestOutOfRangeSelectionFails(t *testing.T) {
	sel := model.Selection{Root: 0, ReferenceOctave: 9, Intervals: []model.Interval{0, 12}, Octaves: []model.Octave{9, 10}}
	_, err := SelectionToSMF(sel)
	assert.Error(t, err)
}

func TestWriteAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sel.mid")
	sel := interval.ApplyTaps(model.Selection{}, 48, 52, 55)
	require.NoError(t, WriteSelectionFile(path, sel))

	s, err := ReadMidiFile(path)
	require.NoError(t, err)
	chords, err := chord.GetChords(s)
	require.NoError(t, err)
	assert.Equal(t, [][]model.Pitch{{48, 52, 55}}, chords)
}

func TestReadMissingOrBrokenFile(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "nope.mid"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.mid")
	require.NoError(t, os.WriteFile(path, []byte("not midi"), 0644))
	_, err = ReadMidiFile(path)
	assert.Error(t, err)
}
