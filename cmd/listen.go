package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/session"
	"github.com/spf13/cobra"
)

var midiPort string

func init() {
	listenCmd.Flags().StringVar(&midiPort, "port", constants.GetMidiPort(), "midi input port name (first port if empty)")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Taps notes played on a midi keyboard",
	Long: `Every note-on from the midi input toggles that note in the selection.
The board is redrawn once a burst of notes (a played chord) settles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listen()
	},
}

// tapper applies live midi taps to one session and redraws after each
// burst settles.
type tapper struct {
	store    *session.Store
	id       string
	debounce func(func())
	mu       sync.Mutex
}

func newTapper(store *session.Store, wait time.Duration) (*tapper, error) {
	sess, err := store.Create(model.ViewInterval)
	if err != nil {
		return nil, err
	}
	return &tapper{store: store, id: sess.Id, debounce: debounce.New(wait)}, nil
}

func (t *tapper) tap(p model.Pitch) {
	sess, err := t.store.Tap(t.id, p)
	if err != nil {
		slog.Error("listen: tap failed", "pitch", p, "err", err)
		return
	}
	slog.Debug("listen: tapped", "pitch", p, "intervals", sess.Selection.Intervals)
	t.debounce(t.render)
}

func (t *tapper) render() {
	sess, err := t.store.Get(t.id)
	if err != nil {
		slog.Error("listen: render failed", "err", err)
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Println()
	printSelection(os.Stdout, sess.Selection)
}

func listen() error {
	defer midi.Close()

	t, err := newTapper(session.NewStore(), time.Duration(constants.GetDebounceMs())*time.Millisecond)
	if err != nil {
		return err
	}
	stop, err := midi.Listen(midiPort, t.tap)
	if err != nil {
		return err
	}
	defer stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	slog.Info("listen: stopping")
	return nil
}
