package key

import (
	"math/bits"

	"github.com/RyanBlaney/sonido-clave/algorithms/pitch"
)

// PitchGroup is one of the 12 key identities. Groups are numbered around the
// circle of fifths and named after their major root's pitch class slot, so
// Cs is the group spelled Db major under the natural policy.
type PitchGroup int

const (
	C PitchGroup = iota
	G
	D
	A
	E
	B
	Fs
	Cs
	Gs
	Ds
	As
	F
)

const groupCount = 12

// AllGroups returns the 12 groups clockwise around the circle of fifths from C
func AllGroups() [groupCount]PitchGroup {
	return [groupCount]PitchGroup{C, G, D, A, E, B, Fs, Cs, Gs, Ds, As, F}
}

// GroupOf returns the group whose major root is pc
func GroupOf(root pitch.PitchClass) PitchGroup {
	// 7 is its own inverse mod 12
	return PitchGroup(pitch.PitchClassFromIndex(root.Index() * 7))
}

// GroupsContaining returns every group that has pc among its seven members
func GroupsContaining(pc pitch.PitchClass) GroupSet {
	if !pc.Valid() {
		return 0
	}
	return groupsContaining[pc]
}

func (g PitchGroup) Valid() bool {
	return g >= C && g <= F
}

// Root is the pitch class of the group's major tonic
func (g PitchGroup) Root() pitch.PitchClass {
	return pitch.PitchClassFromIndex(int(g) * 7)
}

// Next steps a fifth clockwise (one more sharp)
func (g PitchGroup) Next() PitchGroup {
	return PitchGroup((int(g) + 1) % groupCount)
}

// Prev steps a fifth counter-clockwise (one more flat)
func (g PitchGroup) Prev() PitchGroup {
	return PitchGroup((int(g) + groupCount - 1) % groupCount)
}

// PitchClasses returns the seven diatonic members in scale order from the major root
func (g PitchGroup) PitchClasses() [pitch.DegreeCount]pitch.PitchClass {
	return diatonic[g]
}

// Set returns the seven diatonic members as a set
func (g PitchGroup) Set() pitch.Set {
	pcs := diatonic[g]
	return pitch.NewSet(pcs[:]...)
}

// Contains reports whether pc is diatonic to the group
func (g PitchGroup) Contains(pc pitch.PitchClass) bool {
	return GroupsContaining(pc).Contains(g)
}

// Notes returns the seven members spelled under policy p, in scale order
func (g PitchGroup) Notes(p Policy) [pitch.DegreeCount]pitch.Note {
	var out [pitch.DegreeCount]pitch.Note
	for i, pc := range diatonic[g] {
		out[i] = mustSpell(pc, g, p)
	}
	return out
}

// MajorKey returns the spelled tonic of the group's major key
func (g PitchGroup) MajorKey(p Policy) pitch.Note {
	return g.degreeNote(pitch.Tonic, p)
}

// MinorKey returns the spelled tonic of the relative natural minor
func (g PitchGroup) MinorKey(p Policy) pitch.Note {
	return g.degreeNote(pitch.Submediant, p)
}

// DiminishedKey returns the spelled root of the group's diminished seventh chord
func (g PitchGroup) DiminishedKey(p Policy) pitch.Note {
	return g.degreeNote(pitch.LeadingTone, p)
}

func (g PitchGroup) degreeNote(d pitch.Degree, p Policy) pitch.Note {
	return mustSpell(diatonic[g][d.Index()], g, p)
}

// Mode returns the seven members rotated to start on degree d
func (g PitchGroup) Mode(d pitch.Degree) [pitch.DegreeCount]pitch.PitchClass {
	var out [pitch.DegreeCount]pitch.PitchClass
	if !d.Valid() {
		d = pitch.Tonic
	}
	for i := range out {
		out[i] = diatonic[g][(d.Index()+i)%pitch.DegreeCount]
	}
	return out
}

func (g PitchGroup) Ionian() [pitch.DegreeCount]pitch.PitchClass { return g.Mode(pitch.Tonic) }
func (g PitchGroup) Dorian() [pitch.DegreeCount]pitch.PitchClass { return g.Mode(pitch.Supertonic) }
func (g PitchGroup) Phrygian() [pitch.DegreeCount]pitch.PitchClass { return g.Mode(pitch.Mediant) }
func (g PitchGroup) Lydian() [pitch.DegreeCount]pitch.PitchClass { return g.Mode(pitch.Subdominant) }
func (g PitchGroup) Mixolydian() [pitch.DegreeCount]pitch.PitchClass { return g.Mode(pitch.Dominant) }
func (g PitchGroup) Aeolian() [pitch.DegreeCount]pitch.PitchClass { return g.Mode(pitch.Submediant) }
func (g PitchGroup) Locrian() [pitch.DegreeCount]pitch.PitchClass { return g.Mode(pitch.LeadingTone) }

// Signature returns the key signature under policy p: positive for sharps,
// negative for flats
func (g PitchGroup) Signature(p Policy) int {
	n := 0
	for _, note := range g.Notes(p) {
		n += note.Accidental.Offset()
	}
	return n
}

// Direction reports which accidental direction the spelled row uses
func (g PitchGroup) Direction(p Policy) pitch.Direction {
	switch s := g.Signature(p); {
	case s > 0:
		return pitch.DirectionSharp
	case s < 0:
		return pitch.DirectionFlat
	default:
		return pitch.DirectionNatural
	}
}

// Name returns the major key name under policy p, e.g. "Db" or "C#"
func (g PitchGroup) Name(p Policy) string {
	if !g.Valid() {
		return "?"
	}
	return g.MajorKey(p).String()
}

func (g PitchGroup) String() string {
	return g.Name(PreferNatural)
}

// GroupSet is a set of pitch groups stored as a 12-bit mask
type GroupSet uint16

const allGroups GroupSet = 1<<groupCount - 1

// NewGroupSet builds a set from the given groups
func NewGroupSet(groups ...PitchGroup) GroupSet {
	var s GroupSet
	for _, g := range groups {
		s = s.Add(g)
	}
	return s
}

// AllGroupSet returns the set of all 12 groups
func AllGroupSet() GroupSet {
	return allGroups
}

func (s GroupSet) Add(g PitchGroup) GroupSet {
	if !g.Valid() {
		return s
	}
	return s | 1<<uint(g)
}

func (s GroupSet) Contains(g PitchGroup) bool {
	return g.Valid() && s&(1<<uint(g)) != 0
}

func (s GroupSet) Intersect(o GroupSet) GroupSet {
	return s & o
}

func (s GroupSet) Len() int {
	return bits.OnesCount16(uint16(s & allGroups))
}

// Slice returns the members in circle-of-fifths order from C
func (s GroupSet) Slice() []PitchGroup {
	out := make([]PitchGroup, 0, s.Len())
	for _, g := range AllGroups() {
		if s.Contains(g) {
			out = append(out, g)
		}
	}
	return out
}
