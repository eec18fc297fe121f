// Package midiin turns raw MIDI messages into analyzer note events. Opening
// ports and running drivers is left to the embedding application, which
// passes Decoder.Callback to midi.ListenTo.
//
// The analyzer knows keys, not channels. The decoder remembers which
// channels hold each key and only releases a key once no channel holds it.
package midiin

import (
	"sync"
	"sync/atomic"

	"gitlab.com/gomidi/midi/v2"

	"github.com/RyanBlaney/sonido-clave/analyzer"
	"github.com/RyanBlaney/sonido-clave/analyzer/config"
	"github.com/RyanBlaney/sonido-clave/logging"
)

// Channel-mode controllers that silence everything
const (
	allSoundOff = 120
	allNotesOff = 123
)

// NoteSink receives decoded note events. *analyzer.Analyzer satisfies it.
type NoteSink interface {
	NoteOn(index, velocity int) analyzer.Snapshot
	NoteOff(index int) analyzer.Snapshot
	Reset() analyzer.Snapshot
}

// Stats counts what a decoder has seen
type Stats struct {
	NoteOns   uint64
	NoteOffs  uint64
	Resets    uint64
	Filtered  uint64 // dropped by the channel filter
	Unhandled uint64
}

// Decoder feeds a NoteSink from MIDI messages
type Decoder struct {
	sink        NoteSink
	accepts     func(ch uint8) bool
	minVelocity int
	logger      logging.Logger

	mu   sync.Mutex
	held [256]uint16 // bit per channel holding each key byte

	noteOns, noteOffs, resets, filtered, unhandled atomic.Uint64
}

// NewDecoder builds a decoder. The channel filter comes from cfg; a nil cfg
// accepts every channel.
func NewDecoder(sink NoteSink, cfg *config.AnalyzerConfig) *Decoder {
	if cfg == nil {
		cfg = config.DefaultAnalyzerConfig()
	}
	return &Decoder{
		sink:        sink,
		accepts:     cfg.AcceptsChannel,
		minVelocity: cfg.MinVelocity,
		logger:      logging.WithFields(logging.Fields{"component": "midi_decoder"}),
	}
}

// Handle decodes one message and reports whether it reached the sink
func (d *Decoder) Handle(msg midi.Message) bool {
	var ch, key, vel, controller, value uint8

	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		if !d.allow(ch) {
			return false
		}
		if int(vel) < d.minVelocity {
			d.release(ch, key)
			return true
		}
		d.noteOns.Add(1)
		d.mu.Lock()
		defer d.mu.Unlock()
		d.held[key] |= 1 << ch
		d.sink.NoteOn(int(key), int(vel))
		return true

	case msg.GetNoteEnd(&ch, &key):
		if !d.allow(ch) {
			return false
		}
		d.release(ch, key)
		return true

	case msg.GetControlChange(&ch, &controller, &value):
		if controller != allNotesOff && controller != allSoundOff {
			break
		}
		if !d.allow(ch) {
			return false
		}
		d.resets.Add(1)
		d.logger.Debug("channel mode reset", logging.Fields{"channel": ch, "controller": controller})
		d.releaseChannel(ch)
		return true
	}

	d.unhandled.Add(1)
	d.logger.Debug("unhandled MIDI message", logging.Fields{"msg": msg.String()})
	return false
}

// Callback adapts Handle to the listener signature midi.ListenTo expects
func (d *Decoder) Callback() func(msg midi.Message, timestampms int32) {
	return func(msg midi.Message, _ int32) {
		d.Handle(msg)
	}
}

// Stats returns the decoder's counters
func (d *Decoder) Stats() Stats {
	return Stats{
		NoteOns:   d.noteOns.Load(),
		NoteOffs:  d.noteOffs.Load(),
		Resets:    d.resets.Load(),
		Filtered:  d.filtered.Load(),
		Unhandled: d.unhandled.Load(),
	}
}

// release drops ch's hold on key and forwards the note-off once no other
// channel holds it
func (d *Decoder) release(ch, key uint8) {
	d.noteOffs.Add(1)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.held[key] &^= 1 << ch
	if d.held[key] != 0 {
		d.logger.Debug("key still held on another channel", logging.Fields{"channel": ch, "key": key})
		return
	}
	d.sink.NoteOff(int(key))
}

// releaseChannel drops every hold on ch. When nothing is left held the sink
// is reset outright; otherwise only the freed keys are released.
func (d *Decoder) releaseChannel(ch uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var freed []int
	anyHeld := false
	for key, channels := range d.held {
		if channels&(1<<ch) != 0 {
			channels &^= 1 << ch
			d.held[key] = channels
			if channels == 0 {
				freed = append(freed, key)
			}
		}
		if channels != 0 {
			anyHeld = true
		}
	}

	if !anyHeld {
		d.sink.Reset()
		return
	}
	for _, key := range freed {
		d.sink.NoteOff(key)
	}
}

func (d *Decoder) allow(ch uint8) bool {
	if d.accepts(ch) {
		return true
	}
	d.filtered.Add(1)
	return false
}
