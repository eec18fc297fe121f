package pitch

import "math/bits"

// Set is an unordered collection of pitch classes stored as a 12-bit mask
type Set uint16

const fullSet Set = 1<<PitchClassCount - 1

// NewSet builds a set from the given pitch classes
func NewSet(classes ...PitchClass) Set {
	var s Set
	for _, pc := range classes {
		s = s.Add(pc)
	}
	return s
}

// ChromaticSet returns the set of all 12 pitch classes
func ChromaticSet() Set {
	return fullSet
}

// Add returns s with pc included
func (s Set) Add(pc PitchClass) Set {
	if !pc.Valid() {
		return s
	}
	return s | 1<<uint(pc)
}

// Remove returns s without pc
func (s Set) Remove(pc PitchClass) Set {
	if !pc.Valid() {
		return s
	}
	return s &^ (1 << uint(pc))
}

// Contains reports whether pc is a member of s
func (s Set) Contains(pc PitchClass) bool {
	return pc.Valid() && s&(1<<uint(pc)) != 0
}

func (s Set) Union(o Set) Set { return s | o }
func (s Set) Intersect(o Set) Set { return s & o }
func (s Set) Difference(o Set) Set { return s &^ o }
func (s Set) IsSubsetOf(o Set) bool { return s&^o == 0 }
func (s Set) IsEmpty() bool { return s&fullSet == 0 }
func (s Set) Len() int { return bits.OnesCount16(uint16(s & fullSet)) }
func (s Set) Transpose(steps int) Set { return s.rotate(mod(steps, PitchClassCount)) }

func (s Set) rotate(steps int) Set {
	if steps == 0 {
		return s & fullSet
	}
	m := uint16(s & fullSet)
	return Set((m<<uint(steps))|(m>>uint(PitchClassCount-steps))) & fullSet
}

// Slice returns the members of s in ascending order from C
func (s Set) Slice() []PitchClass {
	out := make([]PitchClass, 0, s.Len())
	for _, pc := range AllPitchClasses() {
		if s.Contains(pc) {
			out = append(out, pc)
		}
	}
	return out
}

// Vector returns a 12-bin indicator vector (1 for members, 0 otherwise)
func (s Set) Vector() []float64 {
	v := make([]float64, PitchClassCount)
	for _, pc := range s.Slice() {
		v[pc] = 1
	}
	return v
}

func (s Set) String() string {
	out := "{"
	for i, pc := range s.Slice() {
		if i > 0 {
			out += " "
		}
		out += pc.String()
	}
	return out + "}"
}
