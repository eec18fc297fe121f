package midiin

import (
	"reflect"
	"testing"

	"gitlab.com/gomidi/midi/v2"

	"github.com/RyanBlaney/sonido-clave/analyzer"
	"github.com/RyanBlaney/sonido-clave/analyzer/config"
	"github.com/RyanBlaney/sonido-clave/logging"
)

func init() {
	logging.SetGlobalLogger(nil)
}

type recorder struct {
	events []string
}

func (r *recorder) NoteOn(index, velocity int) analyzer.Snapshot {
	r.events = append(r.events, "on")
	return analyzer.Snapshot{}
}

func (r *recorder) NoteOff(index int) analyzer.Snapshot {
	r.events = append(r.events, "off")
	return analyzer.Snapshot{}
}

func (r *recorder) Reset() analyzer.Snapshot {
	r.events = append(r.events, "reset")
	return analyzer.Snapshot{}
}

func TestDecoderRoutesNoteMessages(t *testing.T) {
	rec := &recorder{}
	d := NewDecoder(rec, nil)

	msgs := []midi.Message{
		midi.NoteOn(0, 60, 100),
		midi.NoteOn(0, 60, 0), // running-status note-off
		midi.NoteOff(3, 64),
		midi.ControlChange(0, 7, 90), // volume
		midi.ControlChange(0, allNotesOff, 0),
		midi.ProgramChange(0, 5),
	}
	for _, m := range msgs {
		d.Handle(m)
	}

	if want := []string{"on", "off", "off", "reset"}; !reflect.DeepEqual(rec.events, want) {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
	if got := d.Stats(); got != (Stats{NoteOns: 1, NoteOffs: 2, Resets: 1, Unhandled: 2}) {
		t.Errorf("stats = %+v", got)
	}
}

func TestDecoderChannelFilter(t *testing.T) {
	rec := &recorder{}
	cfg := config.DefaultAnalyzerConfig()
	cfg.Channels = []uint8{9}
	d := NewDecoder(rec, cfg)

	if d.Handle(midi.NoteOn(0, 60, 100)) {
		t.Errorf("channel 0 should be filtered")
	}
	if !d.Handle(midi.NoteOn(9, 36, 100)) {
		t.Errorf("channel 9 should pass")
	}
	d.Handle(midi.ControlChange(1, allSoundOff, 0))

	if want := []string{"on"}; !reflect.DeepEqual(rec.events, want) {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
	if got := d.Stats().Filtered; got != 2 {
		t.Errorf("filtered = %d, want 2", got)
	}
}

func TestDecoderDrivesAnalyzer(t *testing.T) {
	a, err := analyzer.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	d := NewDecoder(a, nil)
	listen := d.Callback()

	for _, key := range []uint8{60, 64, 67} {
		listen(midi.NoteOn(0, key, 100), 0)
	}
	snap := a.Snapshot()
	if len(snap.Top) != 1 || snap.Top[0].Group.Name(a.Config().SpellingPolicy) != "C" {
		t.Errorf("top after C major triad = %+v", snap.Top)
	}

	listen(midi.ControlChange(0, allNotesOff, 0), 0)
	if got := a.Sounding(); len(got) != 0 {
		t.Errorf("sounding after all-notes-off = %v", got)
	}
}

func TestDecoderTracksChannelsPerKey(t *testing.T) {
	cfg := config.DefaultAnalyzerConfig()
	cfg.MinVelocity = 20
	a, err := analyzer.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	d := NewDecoder(a, cfg)

	sounding := func() []int {
		var keys []int
		for _, tn := range a.Sounding() {
			keys = append(keys, tn.MIDI())
		}
		return keys
	}

	tests := []struct {
		name string
		msg  midi.Message
		want []int
	}{
		{"first channel", midi.NoteOn(0, 60, 100), []int{60}},
		{"second channel same key", midi.NoteOn(1, 60, 100), []int{60}},
		{"release on second channel", midi.NoteOff(1, 60), []int{60}},
		{"quiet note-on still held elsewhere", midi.NoteOn(2, 60, 5), []int{60}},
		{"other key on second channel", midi.NoteOn(1, 64, 100), []int{60, 64}},
		{"all notes off on second channel", midi.ControlChange(1, allNotesOff, 0), []int{60}},
		{"release on first channel", midi.NoteOff(0, 60), nil},
	}
	for _, tt := range tests {
		d.Handle(tt.msg)
		if got := sounding(); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("%s: sounding = %v, want %v", tt.name, got, tt.want)
		}
	}
}
