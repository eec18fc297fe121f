package key

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/Southclaws/fault/ftag"

	"github.com/RyanBlaney/sonido-clave/algorithms/pitch"
)

func TestSpellingTableInvariants(t *testing.T) {
	for _, p := range Policies() {
		for _, g := range AllGroups() {
			var defined pitch.Set
			letters := map[pitch.Letter]int{}
			directions := map[pitch.Direction]bool{}

			for _, pc := range pitch.AllPitchClasses() {
				n, ok := Spell(pc, g, p)
				if !ok {
					continue
				}
				defined = defined.Add(pc)
				letters[n.Letter]++
				if n.PitchClass() != pc {
					t.Errorf("%s/%s: %s spelled as %s", g, p, pc, n)
				}
				if d := n.Accidental.Direction(); d != pitch.DirectionNatural {
					directions[d] = true
				}
			}

			if defined.Len() != 7 {
				t.Errorf("%s/%s: %d defined spellings, want 7", g, p, defined.Len())
			}
			if defined != g.Set() {
				t.Errorf("%s/%s: defined set %s != members %s", g, p, defined, g.Set())
			}
			if len(letters) != 7 {
				t.Errorf("%s/%s: uses %d distinct letters, want 7", g, p, len(letters))
			}
			if len(directions) > 1 {
				t.Errorf("%s/%s: mixes sharps and flats", g, p)
			}
		}
	}
}

func TestMembershipTableMatchesSpelling(t *testing.T) {
	for _, pc := range pitch.AllPitchClasses() {
		for _, g := range AllGroups() {
			_, spelled := Spell(pc, g, PreferNatural)
			if GroupsContaining(pc).Contains(g) != spelled {
				t.Errorf("membership of %s in %s disagrees with spelling table", pc, g)
			}
		}
		if GroupsContaining(pc).Len() != 7 {
			t.Errorf("%s is diatonic to %d groups, want 7", pc, GroupsContaining(pc).Len())
		}
	}
}

func TestDegreesFollowScaleOrder(t *testing.T) {
	for _, g := range AllGroups() {
		for i, pc := range g.PitchClasses() {
			d, ok := DegreeOf(pc, g)
			if !ok || d.Index() != i {
				t.Errorf("%s: %s has degree %v, want %d", g, pc, d, i+1)
			}
			iv, _ := IntervalFromRoot(pc, g)
			if g.Root().Add(iv.Steps()) != pc {
				t.Errorf("%s: interval %s from root does not reach %s", g, iv, pc)
			}
		}
	}

	if iv, ok := IntervalFromRoot(pitch.Fs, D); !ok || iv != pitch.MajorThird {
		t.Errorf("F# in D = %s, want M3", iv)
	}
	if _, ok := IntervalFromRoot(pitch.Fs, C); ok {
		t.Errorf("F# should be foreign to C")
	}
}

func TestCircleOfFifths(t *testing.T) {
	for _, g := range AllGroups() {
		if GroupOf(g.Root()) != g {
			t.Errorf("GroupOf(%s) = %s, want %s", g.Root(), GroupOf(g.Root()), g)
		}
		if g.Next().Root() != g.Root().Add(7) {
			t.Errorf("%s.Next() is not a fifth above", g)
		}
		if g.Next().Prev() != g {
			t.Errorf("%s.Next().Prev() != %s", g, g)
		}
		if got := g.Set().Intersect(g.Next().Set()).Len(); got != 6 {
			t.Errorf("%s and %s share %d members, want 6", g, g.Next(), got)
		}
	}
}

func TestKeyRoots(t *testing.T) {
	tests := []struct {
		group               PitchGroup
		policy              Policy
		major, minor, dimin pitch.Note
	}{
		{C, PreferNatural, pitch.CNatural, pitch.ANatural, pitch.BNatural},
		{F, PreferNatural, pitch.FNatural, pitch.DNatural, pitch.ENatural},
		{Cs, PreferNatural, pitch.DFlat, pitch.BFlat, pitch.CNatural},
		{Cs, PreferSharp, pitch.CSharp, pitch.ASharp, pitch.BSharp},
		{Fs, PreferNatural, pitch.FSharp, pitch.DSharp, pitch.ESharp},
		{Fs, PreferFlat, pitch.GFlat, pitch.EFlat, pitch.FNatural},
		{B, PreferFlat, pitch.CFlat, pitch.AFlat, pitch.BFlat},
	}
	for _, tt := range tests {
		if got := tt.group.MajorKey(tt.policy); got != tt.major {
			t.Errorf("%s/%s major = %s, want %s", tt.group, tt.policy, got, tt.major)
		}
		if got := tt.group.MinorKey(tt.policy); got != tt.minor {
			t.Errorf("%s/%s minor = %s, want %s", tt.group, tt.policy, got, tt.minor)
		}
		if got := tt.group.DiminishedKey(tt.policy); got != tt.dimin {
			t.Errorf("%s/%s diminished = %s, want %s", tt.group, tt.policy, got, tt.dimin)
		}
	}
}

func TestSignature(t *testing.T) {
	tests := []struct {
		group  PitchGroup
		policy Policy
		want   int
	}{
		{C, PreferNatural, 0},
		{F, PreferNatural, -1},
		{B, PreferNatural, 5},
		{B, PreferFlat, -7},
		{Fs, PreferNatural, 6},
		{Fs, PreferFlat, -6},
		{Cs, PreferNatural, -5},
		{Cs, PreferSharp, 7},
	}
	for _, tt := range tests {
		if got := tt.group.Signature(tt.policy); got != tt.want {
			t.Errorf("%s/%s signature = %d, want %d", tt.group, tt.policy, got, tt.want)
		}
	}
}

func TestModes(t *testing.T) {
	dorian := C.Dorian()
	if dorian[0] != pitch.Dn || dorian[6] != pitch.Cn {
		t.Errorf("C dorian rotation = %v", dorian)
	}
	if C.Aeolian()[0] != pitch.An || G.Lydian()[0] != pitch.Cn || F.Locrian()[0] != pitch.En {
		t.Errorf("mode rotations start on the wrong degree")
	}
	for _, d := range []pitch.Degree{pitch.Tonic, pitch.Mediant, pitch.LeadingTone} {
		mode := D.Mode(d)
		if pitch.NewSet(mode[:]...) != D.Set() {
			t.Errorf("rotation must keep the same members")
		}
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name   string
		notes  []pitch.Note
		policy Policy
		want   []PitchGroup
	}{
		{"C major triad", []pitch.Note{pitch.CNatural, pitch.ENatural, pitch.GNatural}, PreferNatural, []PitchGroup{C, G, F}},
		{"sharps under sharp policy", []pitch.Note{pitch.FSharp, pitch.CSharp, pitch.GSharp, pitch.DSharp}, PreferSharp, []PitchGroup{E, B, Fs, Cs}},
		{"sharps under natural policy", []pitch.Note{pitch.FSharp, pitch.CSharp, pitch.GSharp, pitch.DSharp}, PreferNatural, []PitchGroup{E, B, Fs}},
		{"sharps under flat policy", []pitch.Note{pitch.FSharp, pitch.CSharp, pitch.GSharp, pitch.DSharp}, PreferFlat, []PitchGroup{E}},
		{"spelling must match", []pitch.Note{pitch.ASharp}, PreferNatural, []PitchGroup{B, Fs}},
		{"sharp cluster with no key", []pitch.Note{pitch.CSharp, pitch.DSharp, pitch.FSharp, pitch.ANatural, pitch.ASharp}, PreferSharp, []PitchGroup{}},
		{"no evidence", nil, PreferNatural, AllGroupSet().Slice()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Find(tt.notes, tt.policy)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Find = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindRejectsMixedAccidentals(t *testing.T) {
	_, err := Find([]pitch.Note{pitch.CSharp, pitch.EFlat, pitch.FSharp}, PreferSharp)
	if !errors.Is(err, ErrAmbiguousEvidence) {
		t.Fatalf("error = %v, want ErrAmbiguousEvidence", err)
	}
	if ftag.Get(err) != ftag.InvalidArgument {
		t.Errorf("tag = %v, want InvalidArgument", ftag.Get(err))
	}

	if _, err := Find([]pitch.Note{pitch.DFlat}, Policy(9)); !errors.Is(err, ErrInvalidPolicy) {
		t.Errorf("error = %v, want ErrInvalidPolicy", err)
	}
}

func TestFindSet(t *testing.T) {
	got := FindSet(pitch.NewSet(pitch.Cn, pitch.En, pitch.Gn))
	if !slices.Equal(got.Slice(), []PitchGroup{C, G, F}) {
		t.Errorf("FindSet = %v", got.Slice())
	}
	if FindSet(pitch.ChromaticSet()).Len() != 0 {
		t.Errorf("no group holds the chromatic set")
	}
	if FindSet(0) != AllGroupSet() {
		t.Errorf("empty evidence should leave every group")
	}
}

func TestRespell(t *testing.T) {
	got, err := Respell(pitch.DFlat, A, PreferNatural)
	if err != nil || got != pitch.CSharp {
		t.Errorf("Respell(Db, A) = %s, %v", got, err)
	}

	_, err = Respell(pitch.CNatural, E, PreferNatural)
	if !errors.Is(err, ErrSpellingUndefined) {
		t.Fatalf("error = %v, want ErrSpellingUndefined", err)
	}
	if ftag.Get(err) != ftag.NotFound {
		t.Errorf("tag = %v, want NotFound", ftag.Get(err))
	}

	_, err = Respell(pitch.Note{Letter: 9}, C, PreferNatural)
	if !errors.Is(err, pitch.ErrInvalidNote) || ftag.Get(err) != ftag.InvalidArgument {
		t.Errorf("invalid letter error = %v (tag %v)", err, ftag.Get(err))
	}
}

func TestPolicyText(t *testing.T) {
	var cfg struct {
		Policy Policy `json:"policy"`
	}
	if err := json.Unmarshal([]byte(`{"policy":"flat"}`), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.Policy != PreferFlat {
		t.Errorf("policy = %s, want flat", cfg.Policy)
	}
	out, err := json.Marshal(cfg)
	if err != nil || string(out) != `{"policy":"flat"}` {
		t.Errorf("marshal = %s, %v", out, err)
	}
	if _, err := ParsePolicy("enharmonic"); !errors.Is(err, ErrInvalidPolicy) {
		t.Errorf("ParsePolicy error = %v", err)
	}
}
