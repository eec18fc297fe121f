package scale

import (
	"errors"
	"strings"
	"testing"

	"github.com/Southclaws/fault/ftag"

	"github.com/RyanBlaney/sonido-clave/algorithms/pitch"
	"github.com/RyanBlaney/sonido-clave/algorithms/tone"
)

func names(ns []pitch.Note) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}

func TestBuild(t *testing.T) {
	tests := []struct {
		root     string
		template Template
		want     string
	}{
		{"F", Major, "F G A Bb C D E"},
		{"C", Major, "C D E F G A B"},
		{"G#", Major, "G# A# B# C# D# E# F##"},
		{"A", NaturalMinor, "A B C D E F G"},
		{"D", Dorian, "D E F G A B C"},
		{"B", Locrian, "B C D E F G A"},
		{"A", HarmonicMinor, "A B C D E F G#"},
		{"C", MajorTriad, "C E G"},
		{"Eb", DominantSeventh, "Eb G Bb Db"},
		{"B", DiminishedSeventh, "B D F Ab"},
		{"C", WholeTone, "C D E F# G# A#"},
		{"C", Blues, "C Eb F Gb G Bb"},
		{"C", Chromatic, "C C# D D# E F F# G G# A A# B"},
	}
	for _, tt := range tests {
		t.Run(tt.root+" "+tt.template.Name, func(t *testing.T) {
			s, err := Build(pitch.MustParseNote(tt.root), tt.template)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if got := names(s.Notes()); got != tt.want {
				t.Errorf("notes = %s, want %s", got, tt.want)
			}
			if s.Len() != tt.template.Len() {
				t.Errorf("Len = %d, want %d", s.Len(), tt.template.Len())
			}
		})
	}
}

func TestBuildIsAllOrNothing(t *testing.T) {
	s, err := Build(pitch.MustParseNote("B##"), Major)
	if err == nil {
		t.Fatalf("B## major should fail, got %s", s)
	}
	if s != nil {
		t.Errorf("failed build returned a partial scale")
	}
	if !errors.Is(err, pitch.ErrAccidentalOverflow) {
		t.Errorf("error = %v, want ErrAccidentalOverflow", err)
	}
	if ftag.Get(err) != ftag.InvalidArgument {
		t.Errorf("tag = %s, want %s", ftag.Get(err), ftag.InvalidArgument)
	}

	if _, err := Build(pitch.CNatural, Template{Name: "empty"}); !errors.Is(err, ErrEmptyTemplate) {
		t.Errorf("empty template error = %v", err)
	}
}

func TestPositions(t *testing.T) {
	s, err := Build(pitch.FNatural, Major)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range s.Positions() {
		if int(p.Degree) != i+1 {
			t.Errorf("position %d has degree %s", i, p.Degree)
		}
		if p.Interval != Major.Intervals[i] {
			t.Errorf("position %d interval = %s", i, p.Interval)
		}
	}
	if !s.Contains(pitch.BFlat) || s.Contains(pitch.ASharp) {
		t.Errorf("F major should contain Bb and not A#")
	}
	want := pitch.NewSet(pitch.Fn, pitch.Gn, pitch.An, pitch.As, pitch.Cn, pitch.Dn, pitch.En)
	if s.PitchClasses() != want {
		t.Errorf("pitch classes = %s, want %s", s.PitchClasses(), want)
	}

	// mutating the copy leaves the scale alone
	ps := s.Positions()
	ps[0].Note = pitch.GNatural
	if s.Notes()[0] != pitch.FNatural {
		t.Errorf("Positions leaked internal state")
	}
}

func TestTones(t *testing.T) {
	s, err := Build(pitch.CNatural, Major)
	if err != nil {
		t.Fatal(err)
	}
	root, _ := tone.Parse("C4")
	got, err := s.Tones(root)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"C4", "D4", "E4", "F4", "G4", "A4", "B4"}
	for i, tn := range got {
		if tn.String() != want[i] {
			t.Errorf("tone %d = %s, want %s", i, tn, want[i])
		}
	}

	wrong, _ := tone.Parse("D4")
	if _, err := s.Tones(wrong); !errors.Is(err, tone.ErrInvalidTone) {
		t.Errorf("Tones from D4 error = %v", err)
	}
}

func TestTemplateByName(t *testing.T) {
	for _, tt := range []struct {
		name string
		want string
	}{
		{"Major", "major"},
		{"ionian", "major"},
		{"Aeolian", "natural minor"},
		{" dorian ", "dorian"},
		{"half-diminished seventh", "half-diminished seventh"},
	} {
		got, ok := TemplateByName(tt.name)
		if !ok || got.Name != tt.want {
			t.Errorf("TemplateByName(%q) = %q, %v", tt.name, got.Name, ok)
		}
	}
	if _, ok := TemplateByName("bebop"); ok {
		t.Errorf("unknown template should not resolve")
	}

	seen := map[string]bool{}
	for _, tmpl := range Templates() {
		if seen[tmpl.Name] {
			t.Errorf("duplicate template %q", tmpl.Name)
		}
		seen[tmpl.Name] = true
		if tmpl.Intervals[0] != pitch.PerfectUnison {
			t.Errorf("%s does not start on the root", tmpl.Name)
		}
	}
}
