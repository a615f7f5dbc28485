package cmd

import (
	"strconv"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/interval"
	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file.mid> [chord number]",
	Short: "Builds a selection from a chord in a midi file",
	Long: `Reads a midi file, picks one of its chords (the first by default) and
taps its notes lowest first, so the bass note becomes the root.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var num int
		if len(args) == 2 {
			arg1, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Wrap(err, "chord number")
			}
			num = arg1
		}

		sel, err := importChord(args[0], num)
		if err != nil {
			return err
		}
		printSelection(cmd.OutOrStdout(), sel)
		return nil
	},
}

func importChord(path string, num int) (model.Selection, error) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return model.Selection{}, err
	}
	chords, err := chord.GetChords(parsed)
	if err != nil {
		return model.Selection{}, err
	}
	if num < 0 || num >= len(chords) {
		return model.Selection{}, errors.Errorf("%s has %d chords, no chord %d", path, len(chords), num)
	}
	return interval.ApplyTaps(model.Selection{}, chords[num]...), nil
}
