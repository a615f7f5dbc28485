package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/interval"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tapCmd)
}

var tapCmd = &cobra.Command{
	Use:   "tap <note|pitch>...",
	Short: "Taps notes in order and prints the selection",
	Long: `Starts from an empty selection and taps each note in turn. Notes are
names like C4, Eb3, F#2 or raw midi numbers.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pitches, err := parsePitches(args)
		if err != nil {
			return err
		}
		sel := interval.ApplyTaps(model.Selection{}, pitches...)
		printSelection(cmd.OutOrStdout(), sel)
		return nil
	},
}

func parsePitches(args []string) ([]model.Pitch, error) {
	res := make([]model.Pitch, 0, len(args))
	for _, arg := range args {
		p, err := note.ParsePitchOrNumber(arg)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

func newFretboard() *fretboard.Fretboard {
	return fretboard.New(fretboard.StandardTuning, frets)
}

func printSelection(w io.Writer, sel model.Selection) {
	slog.Debug("selection", "root", sel.Root, "ref_octave", sel.ReferenceOctave,
		"intervals", sel.Intervals, "octaves", sel.Octaves)

	if sel.IsEmpty() {
		fmt.Fprintln(w, "(empty)")
		return
	}
	fmt.Fprintf(w, "root:      %s (reference octave %d)\n", note.Name(sel.Root, preferFlats), sel.ReferenceOctave)
	fmt.Fprintf(w, "intervals: %v\n", sel.Intervals)
	fmt.Fprintf(w, "octaves:   %v\n", sel.Octaves)
	fmt.Fprintf(w, "notes:     %s\n", strings.Join(interval.Notes(sel, preferFlats), " "))
	fmt.Fprintf(w, "labels:    %s\n", strings.Join(interval.Labels(sel), " "))
	fmt.Fprintf(w, "key:       %s\n", chord.CreateChordKey(interval.Pitches(sel)))

	board := newFretboard()
	var off []string
	for _, p := range interval.Pitches(sel) {
		if p < board.Lowest() || p > board.Highest() {
			off = append(off, note.PitchName(p, preferFlats))
		}
	}
	if len(off) > 0 {
		fmt.Fprintf(w, "off board: %s\n", strings.Join(off, " "))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, board.Render(sel, preferFlats))
}
