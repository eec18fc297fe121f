package analyzer

import (
	"github.com/RyanBlaney/sonido-clave/algorithms/common"
	"github.com/RyanBlaney/sonido-clave/algorithms/key"
	"github.com/RyanBlaney/sonido-clave/algorithms/pitch"
)

// Entry is one diatonic member of a candidate group
type Entry struct {
	PitchClass pitch.PitchClass
	Note       pitch.Note
	Degree     pitch.Degree
	Sounding   bool
}

// Slice is a candidate group measured against the sounding pitch classes
type Slice struct {
	Group       key.PitchGroup
	Entries     [pitch.DegreeCount]Entry
	Sharp       bool // some member is spelled with a sharp
	Flat        bool // some member is spelled with a flat
	Natural     bool // some member is spelled without an accidental
	Probability float64
}

func newSlice(g key.PitchGroup, sounding pitch.Set, p key.Policy) Slice {
	s := Slice{Group: g}
	notes := g.Notes(p)
	count := 0
	for i, pc := range g.PitchClasses() {
		e := Entry{
			PitchClass: pc,
			Note:       notes[i],
			Degree:     pitch.Degree(i + 1),
			Sounding:   sounding.Contains(pc),
		}
		if e.Sounding {
			count++
		}
		switch e.Note.Accidental.Direction() {
		case pitch.DirectionSharp:
			s.Sharp = true
		case pitch.DirectionFlat:
			s.Flat = true
		default:
			s.Natural = true
		}
		s.Entries[i] = e
	}
	s.Probability = float64(count) / pitch.DegreeCount
	return s
}

// Displaced returns the members that are not sounding, in scale order
func (s Slice) Displaced() []pitch.Note {
	var out []pitch.Note
	for _, e := range s.Entries {
		if !e.Sounding {
			out = append(out, e.Note)
		}
	}
	return out
}

// SoundingCount returns how many of the seven members are sounding
func (s Slice) SoundingCount() int {
	n := 0
	for _, e := range s.Entries {
		if e.Sounding {
			n++
		}
	}
	return n
}

// anchored reports whether the group's major or relative minor tonic triad
// is fully sounding
func (s Slice) anchored() bool {
	triad := func(degrees ...pitch.Degree) bool {
		for _, d := range degrees {
			if !s.Entries[d.Index()].Sounding {
				return false
			}
		}
		return true
	}
	return triad(pitch.Tonic, pitch.Mediant, pitch.Dominant) ||
		triad(pitch.Submediant, pitch.Tonic, pitch.Mediant)
}

// Classification is the three-tier split of the top candidates' displaced
// pitch classes. Each list holds one spelled note per pitch class, from C up.
type Classification struct {
	Uniform    []pitch.Note
	Mediant    []pitch.Note
	NonUniform []pitch.Note
}

// Result is everything derived from one sounding set
type Result struct {
	Candidates []Slice
	Top        []Slice
	Classification
}

// Analyze runs candidate discovery, top selection and classification for a
// set of sounding pitch classes. It is a pure function of its inputs.
func Analyze(sounding pitch.Set, p key.Policy, tieBreak bool) Result {
	if sounding.IsEmpty() {
		return Result{}
	}

	groups := key.FindSet(sounding).Slice()
	if len(groups) == 0 {
		return Result{}
	}

	candidates := make([]Slice, len(groups))
	probabilities := make([]float64, len(groups))
	for i, g := range groups {
		candidates[i] = newSlice(g, sounding, p)
		probabilities[i] = candidates[i].Probability
	}

	top := selectTop(candidates, probabilities, tieBreak)
	return Result{
		Candidates:     candidates,
		Top:            top,
		Classification: classify(top),
	}
}

// selectTop keeps every candidate at the maximum probability. With tieBreak
// set, a tie narrows to the candidates whose tonic triad is sounding, when
// there are any.
func selectTop(candidates []Slice, probabilities []float64, tieBreak bool) []Slice {
	var top []Slice
	for _, i := range common.ArgMaxAll(probabilities) {
		top = append(top, candidates[i])
	}
	if !tieBreak || len(top) < 2 {
		return top
	}

	var anchored []Slice
	for _, s := range top {
		if s.anchored() {
			anchored = append(anchored, s)
		}
	}
	if len(anchored) == 0 {
		return top
	}
	return anchored
}

// classify splits the displaced pitch classes of the top candidates.
// Candidates are compared by pitch class, so C# in one key and Db in another
// are the same displaced member. A single top candidate makes all of its
// displaced members uniform. Under a tie a pitch class is found for a
// candidate when every other top candidate also leaves it displaced, and
// missing otherwise. Pitch classes both found and missing become mediants,
// as does anything displaced that neither bucket holds. Each result is
// spelled the way the first top candidate displacing it spells it.
func classify(top []Slice) Classification {
	if len(top) == 0 {
		return Classification{}
	}

	displaced := make([]pitch.Set, len(top))
	var all pitch.Set
	var spelling [pitch.PitchClassCount]pitch.Note
	for i, s := range top {
		for _, e := range s.Entries {
			if e.Sounding {
				continue
			}
			displaced[i] = displaced[i].Add(e.PitchClass)
			if !all.Contains(e.PitchClass) {
				all = all.Add(e.PitchClass)
				spelling[e.PitchClass] = e.Note
			}
		}
	}

	spell := func(set pitch.Set) []pitch.Note {
		if set.IsEmpty() {
			return nil
		}
		out := make([]pitch.Note, 0, set.Len())
		for _, pc := range set.Slice() {
			out = append(out, spelling[pc])
		}
		return out
	}

	if len(top) == 1 {
		return Classification{Uniform: spell(all)}
	}

	var found, missing pitch.Set
	for i := range top {
		for _, pc := range displaced[i].Slice() {
			everywhere := true
			for j := range top {
				if j != i && !displaced[j].Contains(pc) {
					everywhere = false
					break
				}
			}
			if everywhere {
				found = found.Add(pc)
			} else {
				missing = missing.Add(pc)
			}
		}
	}

	// "Found" does not depend on which candidate asks, so found and missing
	// never overlap and together cover every displaced pitch class. Mediant
	// therefore stays empty for any sounding set; the reconciliation is kept.
	mediant := found.Intersect(missing)
	found = found.Difference(mediant)
	missing = missing.Difference(mediant)
	mediant = mediant.Union(all.Difference(found.Union(missing)))

	return Classification{
		Uniform:    spell(found),
		Mediant:    spell(mediant),
		NonUniform: spell(missing),
	}
}
