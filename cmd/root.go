package cmd

import (
	"log/slog"
	"os"

	"github.com/jsphweid/fretdex/constants"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	debug       bool
	preferFlats bool
	frets       int
)

var rootCmd = &cobra.Command{
	Use:   "fretdex",
	Short: "Interval selection on a fretboard",
	Long: `fretdex keeps a root note plus a set of selected intervals consistent
while notes are tapped on and off a fretboard or keyboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initLogger(debug)
		return checkFrets(frets)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", constants.Debug(), "debug logging")
	rootCmd.PersistentFlags().BoolVar(&preferFlats, "flats", constants.PreferFlats(), "name notes with flats")
	rootCmd.PersistentFlags().IntVar(&frets, "frets", constants.GetFrets(), "number of frets on the board")
}

func checkFrets(n int) error {
	if n < 1 || n > constants.MaxFrets {
		return errors.Errorf("frets must be between 1 and %d, got %d", constants.MaxFrets, n)
	}
	return nil
}

// initLogger routes slog (and the stdlib log package) to stderr.
func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	slog.SetDefault(slog.New(h))
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
