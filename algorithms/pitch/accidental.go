package pitch

// Letter is one of the seven note names. Letters are ordered from C so that
// stepping by scale degree is a walk around this list.
type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

// LetterCount is the number of letter names
const LetterCount = 7

// letterBase holds the pitch class of each letter with no accidental
var letterBase = [LetterCount]PitchClass{Cn, Dn, En, Fn, Gn, An, Bn}

var letterNames = [LetterCount]string{"C", "D", "E", "F", "G", "A", "B"}

// AllLetters returns the seven letters in order from C
func AllLetters() [LetterCount]Letter {
	return [LetterCount]Letter{C, D, E, F, G, A, B}
}

// Valid reports whether l is one of the seven letters
func (l Letter) Valid() bool {
	return l >= C && l <= B
}

// Base returns the pitch class of the unaltered letter. An invalid letter
// reports C; callers that care check Valid.
func (l Letter) Base() PitchClass {
	if !l.Valid() {
		return Cn
	}
	return letterBase[l]
}

func (l Letter) String() string {
	if !l.Valid() {
		return "?"
	}
	return letterNames[l]
}

// Accidental is the chromatic modifier applied to a letter. Its integer value
// is the semitone offset it applies.
type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// Direction classifies an accidental by which way it alters the letter
type Direction int

const (
	DirectionNatural Direction = iota
	DirectionSharp
	DirectionFlat
)

func (d Direction) String() string {
	switch d {
	case DirectionSharp:
		return "sharp"
	case DirectionFlat:
		return "flat"
	default:
		return "natural"
	}
}

// Valid reports whether a is within double-flat..double-sharp
func (a Accidental) Valid() bool {
	return a >= DoubleFlat && a <= DoubleSharp
}

// Offset returns the semitone offset applied by the accidental
func (a Accidental) Offset() int {
	return int(a)
}

// Direction returns whether the accidental raises, lowers or leaves the letter
func (a Accidental) Direction() Direction {
	switch {
	case a > Natural:
		return DirectionSharp
	case a < Natural:
		return DirectionFlat
	default:
		return DirectionNatural
	}
}

// Symbol returns the ASCII form used by ParseNote and String ("", "#", "b", "##", "bb")
func (a Accidental) Symbol() string {
	switch a {
	case DoubleFlat:
		return "bb"
	case Flat:
		return "b"
	case Sharp:
		return "#"
	case DoubleSharp:
		return "##"
	default:
		return ""
	}
}

// Glyph returns the musical symbol for the accidental
func (a Accidental) Glyph() string {
	switch a {
	case DoubleFlat:
		return "𝄫"
	case Flat:
		return "♭"
	case Sharp:
		return "♯"
	case DoubleSharp:
		return "𝄪"
	default:
		return ""
	}
}

func (a Accidental) String() string {
	switch a {
	case DoubleFlat:
		return "double-flat"
	case Flat:
		return "flat"
	case Natural:
		return "natural"
	case Sharp:
		return "sharp"
	case DoubleSharp:
		return "double-sharp"
	default:
		return "invalid"
	}
}
