package pitch

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrAccidentalOverflow is returned when a spelling would need an
	// accidental beyond double-flat or double-sharp
	ErrAccidentalOverflow = errors.New("accidental out of range")

	// ErrInvalidNote is returned when a note name cannot be parsed
	ErrInvalidNote = errors.New("invalid note name")
)

// Note is a spelled note: a letter plus an accidental. Two notes are equal
// only when both letter and accidental match, so C# and Db are different
// notes that share a pitch class.
type Note struct {
	Letter     Letter
	Accidental Accidental
}

// Every spelling between double-flat and double-sharp
var (
	CDoubleFlat  = Note{C, DoubleFlat}
	CFlat        = Note{C, Flat}
	CNatural     = Note{C, Natural}
	CSharp       = Note{C, Sharp}
	CDoubleSharp = Note{C, DoubleSharp}

	DDoubleFlat  = Note{D, DoubleFlat}
	DFlat        = Note{D, Flat}
	DNatural     = Note{D, Natural}
	DSharp       = Note{D, Sharp}
	DDoubleSharp = Note{D, DoubleSharp}

	EDoubleFlat  = Note{E, DoubleFlat}
	EFlat        = Note{E, Flat}
	ENatural     = Note{E, Natural}
	ESharp       = Note{E, Sharp}
	EDoubleSharp = Note{E, DoubleSharp}

	FDoubleFlat  = Note{F, DoubleFlat}
	FFlat        = Note{F, Flat}
	FNatural     = Note{F, Natural}
	FSharp       = Note{F, Sharp}
	FDoubleSharp = Note{F, DoubleSharp}

	GDoubleFlat  = Note{G, DoubleFlat}
	GFlat        = Note{G, Flat}
	GNatural     = Note{G, Natural}
	GSharp       = Note{G, Sharp}
	GDoubleSharp = Note{G, DoubleSharp}

	ADoubleFlat  = Note{A, DoubleFlat}
	AFlat        = Note{A, Flat}
	ANatural     = Note{A, Natural}
	ASharp       = Note{A, Sharp}
	ADoubleSharp = Note{A, DoubleSharp}

	BDoubleFlat  = Note{B, DoubleFlat}
	BFlat        = Note{B, Flat}
	BNatural     = Note{B, Natural}
	BSharp       = Note{B, Sharp}
	BDoubleSharp = Note{B, DoubleSharp}
)

// NewNote builds a note, rejecting letters or accidentals out of range
func NewNote(letter Letter, accidental Accidental) (Note, error) {
	n := Note{Letter: letter, Accidental: accidental}
	if !n.Valid() {
		return Note{}, fmt.Errorf("%w: letter %d accidental %d", ErrInvalidNote, letter, accidental)
	}
	return n, nil
}

// Valid reports whether both letter and accidental are in range
func (n Note) Valid() bool {
	return n.Letter.Valid() && n.Accidental.Valid()
}

// PitchClass derives the sounding pitch class from the spelling
func (n Note) PitchClass() PitchClass {
	return n.Letter.Base().Add(n.Accidental.Offset())
}

// Semitone returns the letter base plus the accidental offset without
// wrapping, so Cb is -1 and B# is 12. Octave arithmetic relies on this.
func (n Note) Semitone() int {
	return n.Letter.Base().Index() + n.Accidental.Offset()
}

// IsEnharmonic reports whether n and o sound the same but are spelled differently
func (n Note) IsEnharmonic(o Note) bool {
	return n != o && n.PitchClass() == o.PitchClass()
}

// Compare orders notes structurally: by letter from C, then by accidental
// from double-flat to double-sharp. Sounding pitch plays no part.
func Compare(a, b Note) int {
	if c := cmp.Compare(a.Letter, b.Letter); c != 0 {
		return c
	}
	return cmp.Compare(a.Accidental, b.Accidental)
}

// Less reports whether n sorts before o under Compare
func (n Note) Less(o Note) bool {
	return Compare(n, o) < 0
}

// Respell returns the note spelled on letter that sounds the same as n
func (n Note) Respell(letter Letter) (Note, error) {
	return spellOnLetter(letter, n.PitchClass())
}

func (n Note) String() string {
	return n.Letter.String() + n.Accidental.Symbol()
}

// Pretty renders the note with musical accidental glyphs
func (n Note) Pretty() string {
	return n.Letter.String() + n.Accidental.Glyph()
}

// spellOnLetter solves for the accidental that puts letter on target
func spellOnLetter(letter Letter, target PitchClass) (Note, error) {
	diff := letter.Base().Distance(target)
	if diff > PitchClassCount/2 {
		diff -= PitchClassCount
	}
	acc := Accidental(diff)
	if !acc.Valid() {
		return Note{}, fmt.Errorf("%w: %s cannot be spelled on %s", ErrAccidentalOverflow, target, letter)
	}
	return Note{Letter: letter, Accidental: acc}, nil
}

// ParseNote reads a note name such as "C", "c#", "Db", "Fx", "Gbb", "E♭" or "Cs"
func ParseNote(name string) (Note, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return Note{}, fmt.Errorf("%w: empty", ErrInvalidNote)
	}
	runes := []rune(s)

	letter, ok := parseLetter(runes[0])
	if !ok {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}

	acc, ok := parseAccidental(string(runes[1:]))
	if !ok {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}

	return Note{Letter: letter, Accidental: acc}, nil
}

// MustParseNote is ParseNote for literals known to be valid
func MustParseNote(name string) Note {
	n, err := ParseNote(name)
	if err != nil {
		panic(err)
	}
	return n
}

func parseLetter(r rune) (Letter, bool) {
	switch unicode.ToUpper(r) {
	case 'C':
		return C, true
	case 'D':
		return D, true
	case 'E':
		return E, true
	case 'F':
		return F, true
	case 'G':
		return G, true
	case 'A':
		return A, true
	case 'B':
		return B, true
	}
	return 0, false
}

func parseAccidental(s string) (Accidental, bool) {
	switch s {
	case "", "n", "♮":
		return Natural, true
	case "#", "s", "♯":
		return Sharp, true
	case "##", "x", "ss", "♯♯", "𝄪":
		return DoubleSharp, true
	case "b", "f", "♭":
		return Flat, true
	case "bb", "ff", "♭♭", "𝄫":
		return DoubleFlat, true
	}
	return 0, false
}
