package pitch

import (
	"errors"
	"fmt"
)

// ErrInvalidInterval is returned for ordinal/quality pairs that do not exist,
// such as a perfect third or a major fifth
var ErrInvalidInterval = errors.New("invalid interval")

// Ordinal is the generic size of an interval counted in letters, 1st..14th
type Ordinal int

const (
	Unison Ordinal = iota + 1
	Second
	Third
	Fourth
	Fifth
	Sixth
	Seventh
	Octave
	Ninth
	Tenth
	Eleventh
	Twelfth
	Thirteenth
	Fourteenth
)

// MaxOrdinal is the widest interval modelled
const MaxOrdinal = Fourteenth

// Quality qualifies an ordinal. Perfect-class ordinals take the diminished,
// perfect and augmented family; the rest take minor and major in its place.
type Quality int

const (
	TripleDiminished Quality = iota
	DoubleDiminished
	Diminished
	Minor
	Perfect
	Major
	Augmented
	DoubleAugmented
	TripleAugmented
)

// Interval is a (quality, ordinal) pair
type Interval struct {
	Ordinal Ordinal
	Quality Quality
}

// baseSteps is the semitone size of the perfect or major form of each ordinal
var baseSteps = [MaxOrdinal + 1]int{
	Unison:     0,
	Second:     2,
	Third:      4,
	Fourth:     5,
	Fifth:      7,
	Sixth:      9,
	Seventh:    11,
	Octave:     12,
	Ninth:      14,
	Tenth:      16,
	Eleventh:   17,
	Twelfth:    19,
	Thirteenth: 21,
	Fourteenth: 23,
}

var perfectClass = [MaxOrdinal + 1]bool{
	Unison:   true,
	Fourth:   true,
	Fifth:    true,
	Octave:   true,
	Eleventh: true,
	Twelfth:  true,
}

// Semitone adjustment of each quality from baseSteps. Entries for the other
// family are never read: Valid rejects those pairs first.
var (
	perfectOffset = [TripleAugmented + 1]int{
		TripleDiminished: -3,
		DoubleDiminished: -2,
		Diminished:       -1,
		Perfect:          0,
		Augmented:        1,
		DoubleAugmented:  2,
		TripleAugmented:  3,
	}
	imperfectOffset = [TripleAugmented + 1]int{
		TripleDiminished: -4,
		DoubleDiminished: -3,
		Diminished:       -2,
		Minor:            -1,
		Major:            0,
		Augmented:        1,
		DoubleAugmented:  2,
		TripleAugmented:  3,
	}
)

var qualityAbbrev = [TripleAugmented + 1]string{"ddd", "dd", "d", "m", "P", "M", "A", "AA", "AAA"}

var qualityNames = [TripleAugmented + 1]string{
	"triple-diminished", "double-diminished", "diminished", "minor", "perfect",
	"major", "augmented", "double-augmented", "triple-augmented",
}

var ordinalNames = [MaxOrdinal + 1]string{
	"", "unison", "second", "third", "fourth", "fifth", "sixth", "seventh",
	"octave", "ninth", "tenth", "eleventh", "twelfth", "thirteenth", "fourteenth",
}

// Common intervals
var (
	PerfectUnison     = Interval{Unison, Perfect}
	AugmentedUnison   = Interval{Unison, Augmented}
	DiminishedSecond  = Interval{Second, Diminished}
	MinorSecond       = Interval{Second, Minor}
	MajorSecond       = Interval{Second, Major}
	AugmentedSecond   = Interval{Second, Augmented}
	DiminishedThird   = Interval{Third, Diminished}
	MinorThird        = Interval{Third, Minor}
	MajorThird        = Interval{Third, Major}
	AugmentedThird    = Interval{Third, Augmented}
	DiminishedFourth  = Interval{Fourth, Diminished}
	PerfectFourth     = Interval{Fourth, Perfect}
	AugmentedFourth   = Interval{Fourth, Augmented}
	DiminishedFifth   = Interval{Fifth, Diminished}
	PerfectFifth      = Interval{Fifth, Perfect}
	AugmentedFifth    = Interval{Fifth, Augmented}
	DiminishedSixth   = Interval{Sixth, Diminished}
	MinorSixth        = Interval{Sixth, Minor}
	MajorSixth        = Interval{Sixth, Major}
	AugmentedSixth    = Interval{Sixth, Augmented}
	DiminishedSeventh = Interval{Seventh, Diminished}
	MinorSeventh      = Interval{Seventh, Minor}
	MajorSeventh      = Interval{Seventh, Major}
	DiminishedOctave  = Interval{Octave, Diminished}
	PerfectOctave     = Interval{Octave, Perfect}
	MinorNinth        = Interval{Ninth, Minor}
	MajorNinth        = Interval{Ninth, Major}
	AugmentedNinth    = Interval{Ninth, Augmented}
	MinorTenth        = Interval{Tenth, Minor}
	MajorTenth        = Interval{Tenth, Major}
	PerfectEleventh   = Interval{Eleventh, Perfect}
	AugmentedEleventh = Interval{Eleventh, Augmented}
	PerfectTwelfth    = Interval{Twelfth, Perfect}
	MinorThirteenth   = Interval{Thirteenth, Minor}
	MajorThirteenth   = Interval{Thirteenth, Major}
	MinorFourteenth   = Interval{Fourteenth, Minor}
	MajorFourteenth   = Interval{Fourteenth, Major}
)

// NewInterval builds an interval, rejecting impossible pairs
func NewInterval(o Ordinal, q Quality) (Interval, error) {
	i := Interval{Ordinal: o, Quality: q}
	if !i.Valid() {
		return Interval{}, fmt.Errorf("%w: %s %s", ErrInvalidInterval, qualityName(q), ordinalName(o))
	}
	return i, nil
}

// IsPerfectClass reports whether the ordinal takes perfect rather than major/minor
func (o Ordinal) IsPerfectClass() bool {
	return o >= Unison && o <= MaxOrdinal && perfectClass[o]
}

// Valid reports whether the ordinal is in range and the quality belongs to
// the ordinal's family
func (i Interval) Valid() bool {
	if i.Ordinal < Unison || i.Ordinal > MaxOrdinal {
		return false
	}
	if i.Quality < TripleDiminished || i.Quality > TripleAugmented {
		return false
	}
	if i.Ordinal.IsPerfectClass() {
		return i.Quality != Minor && i.Quality != Major
	}
	return i.Quality != Perfect
}

// Steps returns the interval's size in semitones. Invalid intervals return 0.
func (i Interval) Steps() int {
	if !i.Valid() {
		return 0
	}
	if i.Ordinal.IsPerfectClass() {
		return baseSteps[i.Ordinal] + perfectOffset[i.Quality]
	}
	return baseSteps[i.Ordinal] + imperfectOffset[i.Quality]
}

// Degree returns the octave-reduced scale position the interval lands on
func (i Interval) Degree() Degree {
	return DegreeFromOrdinal(i.Ordinal)
}

// DegreeName names the landing degree, distinguishing the subtonic (a minor
// or diminished seventh) from the leading tone
func (i Interval) DegreeName() string {
	d := i.Degree()
	if d == LeadingTone && i.Quality <= Minor {
		return "subtonic"
	}
	return d.String()
}

// Compound reports whether the interval spans more than an octave
func (i Interval) Compound() bool {
	return i.Ordinal > Octave
}

// Simple folds a compound interval down by an octave, keeping its quality
func (i Interval) Simple() Interval {
	if i.Ordinal > Octave {
		return Interval{Ordinal: i.Ordinal - 7, Quality: i.Quality}
	}
	return i
}

func (i Interval) String() string {
	if !i.Valid() {
		return "invalid"
	}
	return fmt.Sprintf("%s%d", qualityAbbrev[i.Quality], int(i.Ordinal))
}

// Name returns the long form, e.g. "augmented fourth"
func (i Interval) Name() string {
	return qualityName(i.Quality) + " " + ordinalName(i.Ordinal)
}

// IntervalBetween returns the ascending simple interval from one note to
// another, measured by letter distance and then qualified by semitones
func IntervalBetween(from, to Note) (Interval, error) {
	if !from.Valid() || !to.Valid() {
		return Interval{}, fmt.Errorf("%w: %v to %v", ErrInvalidNote, from, to)
	}
	ordinal := Ordinal(mod(int(to.Letter)-int(from.Letter), LetterCount) + 1)
	steps := from.PitchClass().Distance(to.PitchClass())

	diff := steps - baseSteps[ordinal]
	if diff > PitchClassCount/2 {
		diff -= PitchClassCount
	} else if diff < -PitchClassCount/2 {
		diff += PitchClassCount
	}

	offsets := &imperfectOffset
	if ordinal.IsPerfectClass() {
		offsets = &perfectOffset
	}
	for q := TripleDiminished; q <= TripleAugmented; q++ {
		i := Interval{Ordinal: ordinal, Quality: q}
		if i.Valid() && offsets[q] == diff {
			return i, nil
		}
	}
	return Interval{}, fmt.Errorf("%w: no quality spans %d steps over a %s", ErrInvalidInterval, steps, ordinalName(ordinal))
}

func qualityName(q Quality) string {
	if q < TripleDiminished || q > TripleAugmented {
		return "invalid"
	}
	return qualityNames[q]
}

func ordinalName(o Ordinal) string {
	if o < Unison || o > MaxOrdinal {
		return "invalid"
	}
	return ordinalNames[o]
}
