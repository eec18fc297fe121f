package analyzer

import (
	"slices"
	"testing"

	"github.com/RyanBlaney/sonido-clave/algorithms/key"
	"github.com/RyanBlaney/sonido-clave/algorithms/pitch"
)

func TestSliceTags(t *testing.T) {
	tests := []struct {
		group                key.PitchGroup
		policy               key.Policy
		sharp, flat, natural bool
	}{
		{key.C, key.PreferNatural, false, false, true},
		{key.G, key.PreferNatural, true, false, true},
		{key.Cs, key.PreferNatural, false, true, true},
		{key.Cs, key.PreferSharp, true, false, false},
		{key.Fs, key.PreferFlat, false, true, true},
	}
	for _, tt := range tests {
		s := newSlice(tt.group, pitch.NewSet(pitch.Cn), tt.policy)
		if s.Sharp != tt.sharp || s.Flat != tt.flat || s.Natural != tt.natural {
			t.Errorf("%s/%s tags = sharp %v flat %v natural %v", tt.group, tt.policy, s.Sharp, s.Flat, s.Natural)
		}
	}
}

func TestSliceEntries(t *testing.T) {
	sounding := pitch.NewSet(pitch.Dn, pitch.Fs, pitch.An)
	s := newSlice(key.D, sounding, key.PreferNatural)

	if s.SoundingCount() != 3 || s.Probability != 3.0/7 {
		t.Errorf("count = %d probability = %f", s.SoundingCount(), s.Probability)
	}
	if s.Entries[0].Note != pitch.DNatural || s.Entries[0].Degree != pitch.Tonic || !s.Entries[0].Sounding {
		t.Errorf("tonic entry = %+v", s.Entries[0])
	}
	if got := noteNames(s.Displaced()); got != "E G B C#" {
		t.Errorf("displaced = %s, want E G B C#", got)
	}
	if !s.anchored() {
		t.Errorf("D F# A should anchor the D group")
	}
}

func TestAnalyzeIsSpellingPolicyAware(t *testing.T) {
	// the complete F# collection leaves a single candidate
	res := Analyze(pitch.NewSet(pitch.Fs, pitch.Cs, pitch.Gs, pitch.Ds, pitch.As, pitch.Fn, pitch.Bn), key.PreferSharp, true)
	if len(res.Top) != 1 || res.Top[0].Group != key.Fs {
		t.Fatalf("top = %v", groupList(res.Top))
	}
	if got := noteNames(res.Top[0].Displaced()); got != "" {
		t.Errorf("full collection should leave nothing displaced, got %s", got)
	}

	res = Analyze(pitch.NewSet(pitch.Cs, pitch.Fn), key.PreferFlat, true)
	for _, s := range res.Candidates {
		if s.Sharp {
			t.Errorf("flat policy spelled %s with sharps", s.Group.Name(key.PreferFlat))
		}
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	res := Analyze(0, key.PreferNatural, true)
	if res.Candidates != nil || res.Top != nil || res.Uniform != nil {
		t.Errorf("empty input = %+v", res)
	}
}

func TestClassifyTie(t *testing.T) {
	// two hand-built candidates that share E but disagree on the rest
	a := Slice{Group: key.C}
	b := Slice{Group: key.G}
	for i, n := range []pitch.Note{pitch.ENatural, pitch.FNatural} {
		a.Entries[i] = Entry{PitchClass: n.PitchClass(), Note: n}
	}
	for i, n := range []pitch.Note{pitch.ENatural, pitch.FSharp} {
		b.Entries[i] = Entry{PitchClass: n.PitchClass(), Note: n}
	}
	for i := 2; i < pitch.DegreeCount; i++ {
		a.Entries[i].Sounding = true
		b.Entries[i].Sounding = true
	}

	c := classify([]Slice{a, b})
	if got := noteNames(c.Uniform); got != "E" {
		t.Errorf("uniform = %s, want E", got)
	}
	if got := noteNames(c.NonUniform); got != "F F#" {
		t.Errorf("non-uniform = %s, want F F#", got)
	}
	if len(c.Mediant) != 0 {
		t.Errorf("mediant = %s, want empty", noteNames(c.Mediant))
	}
}

func TestClassifyComparesPitchClasses(t *testing.T) {
	a := Slice{Group: key.A}
	b := Slice{Group: key.Cs}
	for i, n := range []pitch.Note{pitch.CSharp, pitch.FNatural} {
		a.Entries[i] = Entry{PitchClass: n.PitchClass(), Note: n}
	}
	for i, n := range []pitch.Note{pitch.DFlat, pitch.FSharp} {
		b.Entries[i] = Entry{PitchClass: n.PitchClass(), Note: n}
	}
	for i := 2; i < pitch.DegreeCount; i++ {
		a.Entries[i].Sounding = true
		b.Entries[i].Sounding = true
	}

	c := classify([]Slice{a, b})
	if got := noteNames(c.Uniform); got != "C#" {
		t.Errorf("uniform = %s, want C# spelled by the first candidate", got)
	}
	if got := noteNames(c.NonUniform); got != "F F#" {
		t.Errorf("non-uniform = %s, want F F#", got)
	}
}

func TestAnalyzeEnharmonicTie(t *testing.T) {
	res := Analyze(pitch.NewSet(pitch.Cs, pitch.Ds, pitch.Fs), key.PreferNatural, true)

	if got := groupList(res.Top); !slices.Equal(got, []key.PitchGroup{key.E, key.B, key.Fs, key.Cs}) {
		t.Fatalf("top = %v", got)
	}
	tests := []struct {
		name string
		got  []pitch.Note
		want string
	}{
		{"uniform", res.Uniform, "G#"},
		{"mediant", res.Mediant, ""},
		{"non-uniform", res.NonUniform, "C E E# A A# B"},
	}
	for _, tt := range tests {
		if got := noteNames(tt.got); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// Every displaced pitch class is either shared by all top candidates or
// not, so the mediant tier is empty for every possible sounding set.
func TestMediantEmptyForEverySoundingSet(t *testing.T) {
	for _, tieBreak := range []bool{true, false} {
		for bitsValue := 1; bitsValue < 1<<pitch.PitchClassCount; bitsValue++ {
			var sounding pitch.Set
			for pc := 0; pc < pitch.PitchClassCount; pc++ {
				if bitsValue&(1<<pc) != 0 {
					sounding = sounding.Add(pitch.PitchClassFromIndex(pc))
				}
			}
			res := Analyze(sounding, key.PreferNatural, tieBreak)
			if len(res.Mediant) != 0 {
				t.Fatalf("%s: mediant = %s", sounding, noteNames(res.Mediant))
			}

			var seen pitch.Set
			for _, n := range append(append([]pitch.Note{}, res.Uniform...), res.NonUniform...) {
				pc := n.PitchClass()
				if seen.Contains(pc) || sounding.Contains(pc) {
					t.Fatalf("%s: %s repeated or sounding", sounding, n)
				}
				seen = seen.Add(pc)
			}
		}
	}
}
