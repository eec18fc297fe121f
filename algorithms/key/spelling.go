package key

import (
	"fmt"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"

	"github.com/RyanBlaney/sonido-clave/algorithms/pitch"
)

// cell is one entry of a spelling table. A zero degree marks a pitch class
// that is not diatonic to the group.
type cell struct {
	note   pitch.Note
	degree pitch.Degree
}

func (c cell) defined() bool {
	return c.degree.Valid()
}

type spellingTable [groupCount][pitch.PitchClassCount]cell

// majorIntervals is the distance from a group's major root to each degree
var majorIntervals = [pitch.DegreeCount + 1]pitch.Interval{
	pitch.Tonic:       pitch.PerfectUnison,
	pitch.Supertonic:  pitch.MajorSecond,
	pitch.Mediant:     pitch.MajorThird,
	pitch.Subdominant: pitch.PerfectFourth,
	pitch.Dominant:    pitch.PerfectFifth,
	pitch.Submediant:  pitch.MajorSixth,
	pitch.LeadingTone: pitch.MajorSeventh,
}

func lookup(pc pitch.PitchClass, g PitchGroup, p Policy) (cell, bool) {
	if !pc.Valid() || !g.Valid() || !p.Valid() {
		return cell{}, false
	}
	c := p.table()[g][pc]
	return c, c.defined()
}

// Spell returns the conventional spelling of pc in group g under policy p.
// It reports false when pc is foreign to the group. Every spelling decision
// in the library goes through this lookup.
func Spell(pc pitch.PitchClass, g PitchGroup, p Policy) (pitch.Note, bool) {
	c, ok := lookup(pc, g, p)
	return c.note, ok
}

// IntervalFromRoot returns the interval from the group's major root up to pc
func IntervalFromRoot(pc pitch.PitchClass, g PitchGroup) (pitch.Interval, bool) {
	d, ok := DegreeOf(pc, g)
	if !ok {
		return pitch.Interval{}, false
	}
	return majorIntervals[d], true
}

// DegreeOf returns the major-scale degree pc occupies in group g
func DegreeOf(pc pitch.PitchClass, g PitchGroup) (pitch.Degree, bool) {
	c, ok := lookup(pc, g, PreferNatural)
	return c.degree, ok
}

// Respell returns n as group g spells its pitch class, or an error tagged
// NotFound when the pitch is foreign to the group
func Respell(n pitch.Note, g PitchGroup, p Policy) (pitch.Note, error) {
	if !n.Valid() {
		return pitch.Note{}, fault.Wrap(pitch.ErrInvalidNote,
			fmsg.With(fmt.Sprintf("respell letter %d accidental %d", n.Letter, n.Accidental)),
			ftag.With(ftag.InvalidArgument),
		)
	}
	out, ok := Spell(n.PitchClass(), g, p)
	if !ok {
		return pitch.Note{}, fault.Wrap(ErrSpellingUndefined,
			fmsg.With(fmt.Sprintf("respell %s in %s", n, g.Name(p))),
			ftag.With(ftag.NotFound),
		)
	}
	return out, nil
}

// mustSpell is for lookups the tables are defined to answer. A miss is a
// data-table bug, not an input problem.
func mustSpell(pc pitch.PitchClass, g PitchGroup, p Policy) pitch.Note {
	n, ok := Spell(pc, g, p)
	if !ok {
		panic(fmt.Sprintf("key: spelling table missing %s in group %d (%s)", pc, int(g), p))
	}
	return n
}
