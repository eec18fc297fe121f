package chroma

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/RyanBlaney/sonido-clave/algorithms/common"
	"github.com/RyanBlaney/sonido-clave/algorithms/key"
	"github.com/RyanBlaney/sonido-clave/algorithms/pitch"
)

// fifthsBin is the DFT coefficient that measures alignment with the circle of fifths
const fifthsBin = 5

// PitchClassProfile describes a 12-bin pitch class distribution
type PitchClassProfile struct {
	Profile          []float64 // 12 bins from C, summing to 1 unless empty
	Entropy          float64   // Shannon entropy in bits
	Centroid         float64   // circular mean in semitones above C
	FifthsCoherence  float64   // |DFT bin 5| / |DFT bin 0|
	DiatonicStrength float64   // best share of weight inside one diatonic collection
	BestGroup        key.PitchGroup
}

// Empty reports whether the profile carries no weight
func (p *PitchClassProfile) Empty() bool {
	for _, v := range p.Profile {
		if v > common.Epsilon {
			return false
		}
	}
	return true
}

// FromSet profiles a set of sounding pitch classes with equal weight each
func FromSet(s pitch.Set) *PitchClassProfile {
	return FromWeights(s.Vector())
}

// FromWeights profiles raw per-pitch-class weights (for example summed
// velocities). Inputs that are not 12 bins long give an empty profile.
func FromWeights(weights []float64) *PitchClassProfile {
	if len(weights) != pitch.PitchClassCount {
		return &PitchClassProfile{Profile: make([]float64, pitch.PitchClassCount)}
	}

	profile := common.NormalizeSum(weights)
	group, strength := diatonicStrength(profile)

	return &PitchClassProfile{
		Profile:          profile,
		Entropy:          common.Entropy(profile),
		Centroid:         centroid(profile),
		FifthsCoherence:  fifthsCoherence(profile),
		DiatonicStrength: strength,
		BestGroup:        group,
	}
}

// Similarity compares two profiles with cosine similarity
func Similarity(a, b *PitchClassProfile) float64 {
	return common.CosineSimilarity(a.Profile, b.Profile)
}

// Transpose rotates a 12-bin profile up by semitones
func Transpose(profile []float64, semitones int) []float64 {
	if len(profile) != pitch.PitchClassCount {
		return profile
	}
	out := make([]float64, pitch.PitchClassCount)
	for i, v := range profile {
		out[pitch.PitchClassFromIndex(i+semitones)] = v
	}
	return out
}

// BestTransposition finds the rotation of template that correlates best
// with profile. Returns the shift in semitones and the correlation.
func BestTransposition(profile, template []float64) (int, float64) {
	if len(profile) != pitch.PitchClassCount || len(template) != pitch.PitchClassCount {
		return 0, 0.0
	}

	best, bestCorrelation := 0, -1.0
	for shift := 0; shift < pitch.PitchClassCount; shift++ {
		c := common.Correlation(profile, Transpose(template, shift))
		if c > bestCorrelation {
			best, bestCorrelation = shift, c
		}
	}
	return best, bestCorrelation
}

func centroid(profile []float64) float64 {
	var sumSin, sumCos float64
	for pc, w := range profile {
		angle := 2.0 * math.Pi * float64(pc) / pitch.PitchClassCount
		sumSin += w * math.Sin(angle)
		sumCos += w * math.Cos(angle)
	}
	if math.Hypot(sumSin, sumCos) <= common.Epsilon {
		return 0.0
	}

	angle := math.Atan2(sumSin, sumCos)
	if angle < 0 {
		angle += 2.0 * math.Pi
	}
	return angle * pitch.PitchClassCount / (2.0 * math.Pi)
}

// fifthsCoherence is 1 for a single pitch class, about 0.53 for a diatonic
// collection and 0 for the full chromatic aggregate
func fifthsCoherence(profile []float64) float64 {
	spectrum := fft.FFTReal(profile)
	total := cmplx.Abs(spectrum[0])
	if total <= common.Epsilon {
		return 0.0
	}
	return common.Clamp(cmplx.Abs(spectrum[fifthsBin])/total, 0, 1)
}

// diatonicStrength finds the pitch group holding the largest share of the
// profile. Ties go to the group earliest on the circle of fifths from C.
func diatonicStrength(profile []float64) (key.PitchGroup, float64) {
	bestGroup, best := key.C, 0.0
	for _, g := range key.AllGroups() {
		var inside float64
		for _, pc := range g.PitchClasses() {
			inside += profile[pc]
		}
		if inside > best+common.Epsilon {
			bestGroup, best = g, inside
		}
	}
	return bestGroup, best
}
