package pitch

// PitchClass is one of the 12 semitone identities of the octave.
// The "n"/"s" suffixes name the natural and sharp keyboard slots; they say
// nothing about how a note in that slot is spelled.
type PitchClass int

const (
	Cn PitchClass = iota
	Cs
	Dn
	Ds
	En
	Fn
	Fs
	Gn
	Gs
	An
	As
	Bn
)

// PitchClassCount is the number of pitch classes in an octave
const PitchClassCount = 12

var pitchClassNames = [PitchClassCount]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// AllPitchClasses returns the 12 pitch classes in ascending order from C
func AllPitchClasses() [PitchClassCount]PitchClass {
	return [PitchClassCount]PitchClass{Cn, Cs, Dn, Ds, En, Fn, Fs, Gn, Gs, An, As, Bn}
}

// PitchClassFromIndex reduces any integer (including negatives and MIDI
// note numbers) to its pitch class
func PitchClassFromIndex(index int) PitchClass {
	return PitchClass(mod(index, PitchClassCount))
}

// Index returns the semitone index of the pitch class (0=C, ..., 11=B)
func (p PitchClass) Index() int {
	return int(p)
}

// Valid reports whether p is one of the 12 defined pitch classes
func (p PitchClass) Valid() bool {
	return p >= Cn && p <= Bn
}

// Add moves the pitch class up by steps semitones, wrapping around the octave
func (p PitchClass) Add(steps int) PitchClass {
	return PitchClassFromIndex(int(p) + steps)
}

// Sub moves the pitch class down by steps semitones, wrapping around the octave
func (p PitchClass) Sub(steps int) PitchClass {
	return PitchClassFromIndex(int(p) - steps)
}

// Distance returns the number of ascending semitones from p to to, in [0, 11].
// It is not symmetric: Cn.Distance(Dn) is 2 while Dn.Distance(Cn) is 10.
func (p PitchClass) Distance(to PitchClass) int {
	return mod(int(to)-int(p), PitchClassCount)
}

// IsNaturalSlot reports whether the pitch class sits on a white key
func (p PitchClass) IsNaturalSlot() bool {
	switch p {
	case Cs, Ds, Fs, Gs, As:
		return false
	}
	return true
}

func (p PitchClass) String() string {
	if !p.Valid() {
		return "?"
	}
	return pitchClassNames[p]
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
