package cmd

import (
	"fmt"
	"log/slog"

	"github.com/jsphweid/fretdex/interval"
	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <out.mid> <note|pitch>...",
	Short: "Taps notes and writes the selection as a midi chord",
	Long:  `Taps notes and writes the selection as a midi chord`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pitches, err := parsePitches(args[1:])
		if err != nil {
			return err
		}
		sel := interval.ApplyTaps(model.Selection{}, pitches...)
		if err := midi.WriteSelectionFile(args[0], sel); err != nil {
			return err
		}
		slog.Info("export: wrote selection", "path", args[0], "notes", len(sel.Intervals))
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
		return nil
	},
}
