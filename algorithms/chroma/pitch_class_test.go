package chroma

import (
	"math"
	"testing"

	"github.com/RyanBlaney/sonido-clave/algorithms/key"
	"github.com/RyanBlaney/sonido-clave/algorithms/pitch"
)

const tolerance = 1e-6

func TestFromSet(t *testing.T) {
	cMajor := key.C.Set()
	tests := []struct {
		name        string
		set         pitch.Set
		entropy     float64
		coherence   float64
		diatonic    float64
		bestGroup   key.PitchGroup
		wantCentred bool
	}{
		{"single note", pitch.NewSet(pitch.Dn), 0, 1, 1, key.C, true},
		{"C major", cMajor, math.Log2(7), math.Sin(7*math.Pi/12) / math.Sin(math.Pi/12) / 7, 1, key.C, false},
		{"A major", key.A.Set(), math.Log2(7), math.Sin(7*math.Pi/12) / math.Sin(math.Pi/12) / 7, 1, key.A, false},
		{"chromatic", pitch.ChromaticSet(), math.Log2(12), 0, 7.0 / 12, key.C, false},
		{"empty", 0, 0, 0, 0, key.C, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FromSet(tt.set)
			if math.Abs(p.Entropy-tt.entropy) > tolerance {
				t.Errorf("Entropy = %f, want %f", p.Entropy, tt.entropy)
			}
			if math.Abs(p.FifthsCoherence-tt.coherence) > tolerance {
				t.Errorf("FifthsCoherence = %f, want %f", p.FifthsCoherence, tt.coherence)
			}
			if math.Abs(p.DiatonicStrength-tt.diatonic) > tolerance {
				t.Errorf("DiatonicStrength = %f, want %f", p.DiatonicStrength, tt.diatonic)
			}
			if p.BestGroup != tt.bestGroup {
				t.Errorf("BestGroup = %s, want %s", p.BestGroup, tt.bestGroup)
			}
			if tt.wantCentred && math.Abs(p.Centroid-2) > tolerance {
				t.Errorf("Centroid = %f, want 2", p.Centroid)
			}
			if p.Empty() != tt.set.IsEmpty() {
				t.Errorf("Empty = %v", p.Empty())
			}
		})
	}
}

func TestFromWeightsRejectsWrongLength(t *testing.T) {
	p := FromWeights([]float64{1, 2, 3})
	if !p.Empty() || len(p.Profile) != pitch.PitchClassCount {
		t.Errorf("short input should give an empty 12-bin profile, got %v", p.Profile)
	}
}

func TestTranspose(t *testing.T) {
	got := Transpose(pitch.NewSet(pitch.Cn, pitch.En, pitch.Gn).Vector(), 2)
	want := pitch.NewSet(pitch.Dn, pitch.Fs, pitch.An).Vector()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Transpose = %v, want %v", got, want)
		}
	}
}

func TestBestTransposition(t *testing.T) {
	template := key.C.Set().Vector()
	profile := key.E.Set().Vector()
	shift, corr := BestTransposition(profile, template)
	if shift != 4 {
		t.Errorf("shift = %d, want 4", shift)
	}
	if math.Abs(corr-1) > tolerance {
		t.Errorf("correlation = %f, want 1", corr)
	}
}

func TestSimilarity(t *testing.T) {
	a := FromSet(key.C.Set())
	if s := Similarity(a, a); math.Abs(s-1) > tolerance {
		t.Errorf("self similarity = %f", s)
	}
	far := FromSet(pitch.NewSet(pitch.Cs, pitch.Ds, pitch.Fs, pitch.Gs, pitch.As))
	if s := Similarity(a, far); math.Abs(s) > tolerance {
		t.Errorf("C major vs black keys = %f, want 0", s)
	}
}
