package midi

import (
	"log/slog"

	"github.com/jsphweid/fretdex/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Listen calls onTap for every note-on arriving at the named input port, or
// at the first port when name is empty. A driver must be registered by the
// caller. The returned func stops listening.
func Listen(name string, onTap func(model.Pitch)) (func(), error) {
	var in drivers.In
	var err error
	if name == "" {
		in, err = midi.InPort(0)
	} else {
		in, err = midi.FindInPort(name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "can't find midi input %q", name)
	}
	slog.Info("midi: listening", "port", in.String())

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		if msg.GetNoteStart(&ch, &key, &vel) {
			slog.Debug("midi: note start", "channel", ch, "key", key, "velocity", vel)
			onTap(model.Pitch(key))
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not listen to midi input")
	}
	return stop, nil
}

func Close() {
	midi.CloseDriver()
}
