package key

import (
	"fmt"
	"strings"
)

// Policy selects between the conventional spellings of keys that can be
// written either way within seven accidentals (B/Cb, F#/Gb, C#/Db).
// Every other key has a single spelling and reads the same under all three.
type Policy int

const (
	// PreferNatural picks the spelling with fewer accidentals, F# on the tie
	PreferNatural Policy = iota
	PreferSharp
	PreferFlat
)

// Policies lists every spelling policy
func Policies() []Policy {
	return []Policy{PreferNatural, PreferSharp, PreferFlat}
}

// ParsePolicy accepts "natural", "sharp" or "flat" (case-insensitive)
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "natural":
		return PreferNatural, nil
	case "sharp", "sharps":
		return PreferSharp, nil
	case "flat", "flats":
		return PreferFlat, nil
	}
	return PreferNatural, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
}

func (p Policy) Valid() bool {
	return p >= PreferNatural && p <= PreferFlat
}

func (p Policy) String() string {
	switch p {
	case PreferNatural:
		return "natural"
	case PreferSharp:
		return "sharp"
	case PreferFlat:
		return "flat"
	default:
		return "invalid"
	}
}

// MarshalText lets policies appear by name in JSON configuration
func (p Policy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPolicy, int(p))
	}
	return []byte(p.String()), nil
}

func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p Policy) table() *spellingTable {
	switch p {
	case PreferSharp:
		return &sharpSpelling
	case PreferFlat:
		return &flatSpelling
	default:
		return &naturalSpelling
	}
}
