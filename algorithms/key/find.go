package key

import (
	"fmt"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"

	"github.com/RyanBlaney/sonido-clave/algorithms/pitch"
)

// Find returns every group that contains all of the notes' pitch classes and
// spells each of them exactly as given under policy p. A group that would
// write a supplied C# as Db does not match.
//
// No match is an empty result, not an error. Notes that mix sharps and flats
// are rejected with ErrAmbiguousEvidence rather than guessed at. The result
// is in circle-of-fifths order but carries no ranking.
func Find(notes []pitch.Note, p Policy) ([]PitchGroup, error) {
	if !p.Valid() {
		return nil, fault.Wrap(fmt.Errorf("%w: %d", ErrInvalidPolicy, int(p)), ftag.With(ftag.InvalidArgument))
	}

	var sharps, flats int
	for _, n := range notes {
		if !n.Valid() {
			return nil, fault.Wrap(fmt.Errorf("%w: %+v", pitch.ErrInvalidNote, n),
				fmsg.With("find pitch group"),
				ftag.With(ftag.InvalidArgument),
			)
		}
		switch n.Accidental.Direction() {
		case pitch.DirectionSharp:
			sharps++
		case pitch.DirectionFlat:
			flats++
		}
	}
	if sharps > 0 && flats > 0 {
		return nil, fault.Wrap(ErrAmbiguousEvidence,
			fmsg.With(fmt.Sprintf("find pitch group: %d sharp and %d flat notes", sharps, flats)),
			ftag.With(ftag.InvalidArgument),
		)
	}

	candidates := AllGroupSet()
	for _, n := range notes {
		candidates = candidates.Intersect(GroupsContaining(n.PitchClass()))
	}

	matches := make([]PitchGroup, 0, candidates.Len())
	for _, g := range candidates.Slice() {
		if spellsAll(g, notes, p) {
			matches = append(matches, g)
		}
	}
	return matches, nil
}

// FindSet returns the groups whose diatonic collection is a superset of s,
// ignoring spelling
func FindSet(s pitch.Set) GroupSet {
	candidates := AllGroupSet()
	for _, pc := range s.Slice() {
		candidates = candidates.Intersect(GroupsContaining(pc))
	}
	return candidates
}

func spellsAll(g PitchGroup, notes []pitch.Note, p Policy) bool {
	for _, n := range notes {
		spelled, ok := Spell(n.PitchClass(), g, p)
		if !ok || spelled != n {
			return false
		}
	}
	return true
}
