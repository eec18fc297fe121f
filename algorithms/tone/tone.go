package tone

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"

	"github.com/RyanBlaney/sonido-clave/algorithms/pitch"
)

// Octave bounds in scientific pitch notation. MIDI 0 is C-1 and MIDI 60 is C4;
// the range covers 12 octave bands.
const (
	MinOctave = -1
	MaxOctave = 10
)

// MIDI note number range
const (
	MinMIDI = 0
	MaxMIDI = 127
)

// Reference tuning: A4 = 440 Hz, MIDI 69
const (
	ReferenceFrequency = 440.0
	ReferenceMIDI      = 69
)

var (
	ErrOctaveRange   = errors.New("octave out of range")
	ErrMIDIRange     = errors.New("MIDI note number out of range")
	ErrInvalidTone   = errors.New("invalid tone")
	ErrPitchMismatch = errors.New("tone arithmetic changed pitch class")
)

// Tone is a spelled note pinned to an octave. The octave belongs to the
// letter, so B#3 and C4 sound the same key but are different tones.
type Tone struct {
	Octave int
	Note   pitch.Note
}

// New builds a tone, checking the octave band and the spelling
func New(octave int, n pitch.Note) (Tone, error) {
	if !n.Valid() {
		return Tone{}, fmt.Errorf("%w: note %+v", ErrInvalidTone, n)
	}
	if octave < MinOctave || octave > MaxOctave {
		return Tone{}, fmt.Errorf("%w: %d", ErrOctaveRange, octave)
	}
	return Tone{Octave: octave, Note: n}, nil
}

// FromMIDI converts a MIDI note number to a tone with keyless spelling
// (sharps unless dir asks for flats)
func FromMIDI(index int, dir pitch.Direction) (Tone, error) {
	if index < MinMIDI || index > MaxMIDI {
		return Tone{}, fmt.Errorf("%w: %d", ErrMIDIRange, index)
	}
	n := pitch.ChromaticName(pitch.PitchClassFromIndex(index), dir)
	return Tone{Octave: index/pitch.PitchClassCount - 1, Note: n}, nil
}

// MIDI returns the MIDI note number, or -1 for an invalid spelling. Octave
// 10 lies above the MIDI range, so the result is not clamped; see InMIDIRange.
func (t Tone) MIDI() int {
	if !t.Note.Valid() {
		return -1
	}
	return (t.Octave+1)*pitch.PitchClassCount + t.Note.Semitone()
}

// InMIDIRange reports whether the tone has a MIDI note number
func (t Tone) InMIDIRange() bool {
	m := t.MIDI()
	return m >= MinMIDI && m <= MaxMIDI
}

func (t Tone) PitchClass() pitch.PitchClass {
	return t.Note.PitchClass()
}

// Frequency returns the equal-tempered frequency in Hz
func (t Tone) Frequency() float64 {
	if !t.Note.Valid() {
		return 0
	}
	return ReferenceFrequency * math.Pow(2, float64(t.MIDI()-ReferenceMIDI)/12.0)
}

// Add returns the tone an interval above t. The note part matches
// Note.Add exactly; the octave rolls over at C.
func (t Tone) Add(i pitch.Interval) (Tone, error) {
	n, err := t.Note.Add(i)
	if err != nil {
		return Tone{}, fault.Wrap(err, fmsg.With(fmt.Sprintf("tone %s + %s", t, i)), ftag.With(ftag.InvalidArgument))
	}
	return t.settle(n, t.MIDI()+i.Steps())
}

// Sub returns the tone an interval below t
func (t Tone) Sub(i pitch.Interval) (Tone, error) {
	n, err := t.Note.Sub(i)
	if err != nil {
		return Tone{}, fault.Wrap(err, fmsg.With(fmt.Sprintf("tone %s - %s", t, i)), ftag.With(ftag.InvalidArgument))
	}
	return t.settle(n, t.MIDI()-i.Steps())
}

// settle places n in the octave that makes it sound at absolute semitone target
func (t Tone) settle(n pitch.Note, target int) (Tone, error) {
	offset := target - n.Semitone()
	if offset%pitch.PitchClassCount != 0 {
		return Tone{}, fault.Wrap(fmt.Errorf("%w: %s at %d", ErrPitchMismatch, n, target), ftag.With(ftag.Internal))
	}
	out, err := New(offset/pitch.PitchClassCount-1, n)
	if err != nil {
		return Tone{}, fault.Wrap(err, fmsg.With(fmt.Sprintf("from %s", t)), ftag.With(ftag.InvalidArgument))
	}
	return out, nil
}

// Compare orders tones by sounding pitch, then by spelling
func Compare(a, b Tone) int {
	if c := cmp.Compare(a.MIDI(), b.MIDI()); c != 0 {
		return c
	}
	return pitch.Compare(a.Note, b.Note)
}

func (t Tone) String() string {
	return t.Note.String() + strconv.Itoa(t.Octave)
}

// Parse reads scientific pitch notation such as "C4", "F#3", "Bb-1" or "Ebb5"
func Parse(s string) (Tone, error) {
	s = strings.TrimSpace(s)
	cut := strings.IndexFunc(s, func(r rune) bool { return r == '-' || (r >= '0' && r <= '9') })
	if cut <= 0 {
		return Tone{}, fmt.Errorf("%w: %q", ErrInvalidTone, s)
	}
	n, err := pitch.ParseNote(s[:cut])
	if err != nil {
		return Tone{}, fmt.Errorf("%w: %v", ErrInvalidTone, err)
	}
	octave, err := strconv.Atoi(s[cut:])
	if err != nil {
		return Tone{}, fmt.Errorf("%w: octave in %q", ErrInvalidTone, s)
	}
	return New(octave, n)
}
