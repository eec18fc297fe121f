package scale

import (
	"strings"

	"github.com/RyanBlaney/sonido-clave/algorithms/pitch"
)

// Template is a named, fixed sequence of intervals measured from the root
type Template struct {
	Name      string
	Intervals []pitch.Interval
}

// Len returns the number of positions a scale built from the template has
func (t Template) Len() int {
	return len(t.Intervals)
}

var (
	p1  = pitch.PerfectUnison
	a1  = pitch.AugmentedUnison
	mi2 = pitch.MinorSecond
	ma2 = pitch.MajorSecond
	a2  = pitch.AugmentedSecond
	mi3 = pitch.MinorThird
	ma3 = pitch.MajorThird
	p4  = pitch.PerfectFourth
	a4  = pitch.AugmentedFourth
	d5  = pitch.DiminishedFifth
	p5  = pitch.PerfectFifth
	a5  = pitch.AugmentedFifth
	mi6 = pitch.MinorSixth
	ma6 = pitch.MajorSixth
	a6  = pitch.AugmentedSixth
	d7  = pitch.DiminishedSeventh
	mi7 = pitch.MinorSeventh
	ma7 = pitch.MajorSeventh
)

// Triads
var (
	MajorTriad      = Template{"major triad", []pitch.Interval{p1, ma3, p5}}
	MinorTriad      = Template{"minor triad", []pitch.Interval{p1, mi3, p5}}
	DiminishedTriad = Template{"diminished triad", []pitch.Interval{p1, mi3, d5}}
	AugmentedTriad  = Template{"augmented triad", []pitch.Interval{p1, ma3, a5}}
	Suspended2      = Template{"sus2", []pitch.Interval{p1, ma2, p5}}
	Suspended4      = Template{"sus4", []pitch.Interval{p1, p4, p5}}
)

// Tetrachords and seventh chords
var (
	MajorTetrachord    = Template{"major tetrachord", []pitch.Interval{p1, ma2, ma3, p4}}
	MinorTetrachord    = Template{"minor tetrachord", []pitch.Interval{p1, ma2, mi3, p4}}
	PhrygianTetrachord = Template{"phrygian tetrachord", []pitch.Interval{p1, mi2, mi3, p4}}
	HarmonicTetrachord = Template{"harmonic tetrachord", []pitch.Interval{p1, mi2, ma3, p4}}

	MajorSeventh          = Template{"major seventh", []pitch.Interval{p1, ma3, p5, ma7}}
	DominantSeventh       = Template{"dominant seventh", []pitch.Interval{p1, ma3, p5, mi7}}
	MinorSeventh          = Template{"minor seventh", []pitch.Interval{p1, mi3, p5, mi7}}
	HalfDiminishedSeventh = Template{"half-diminished seventh", []pitch.Interval{p1, mi3, d5, mi7}}
	DiminishedSeventh     = Template{"diminished seventh", []pitch.Interval{p1, mi3, d5, d7}}
)

// Pentatonic and hexatonic
var (
	MajorPentatonic = Template{"major pentatonic", []pitch.Interval{p1, ma2, ma3, p5, ma6}}
	MinorPentatonic = Template{"minor pentatonic", []pitch.Interval{p1, mi3, p4, p5, mi7}}
	Blues           = Template{"blues", []pitch.Interval{p1, mi3, p4, d5, p5, mi7}}
	WholeTone       = Template{"whole tone", []pitch.Interval{p1, ma2, ma3, a4, a5, a6}}
)

// Heptatonic
var (
	Major         = Template{"major", []pitch.Interval{p1, ma2, ma3, p4, p5, ma6, ma7}}
	Dorian        = Template{"dorian", []pitch.Interval{p1, ma2, mi3, p4, p5, ma6, mi7}}
	Phrygian      = Template{"phrygian", []pitch.Interval{p1, mi2, mi3, p4, p5, mi6, mi7}}
	Lydian        = Template{"lydian", []pitch.Interval{p1, ma2, ma3, a4, p5, ma6, ma7}}
	Mixolydian    = Template{"mixolydian", []pitch.Interval{p1, ma2, ma3, p4, p5, ma6, mi7}}
	NaturalMinor  = Template{"natural minor", []pitch.Interval{p1, ma2, mi3, p4, p5, mi6, mi7}}
	Locrian       = Template{"locrian", []pitch.Interval{p1, mi2, mi3, p4, d5, mi6, mi7}}
	HarmonicMinor = Template{"harmonic minor", []pitch.Interval{p1, ma2, mi3, p4, p5, mi6, ma7}}
	MelodicMinor  = Template{"melodic minor", []pitch.Interval{p1, ma2, mi3, p4, p5, ma6, ma7}}
)

// Chromatic spells the sharp-slot steps as augmented intervals
var Chromatic = Template{"chromatic", []pitch.Interval{p1, a1, ma2, a2, ma3, p4, a4, p5, a5, ma6, a6, ma7}}

var templates = []Template{
	MajorTriad, MinorTriad, DiminishedTriad, AugmentedTriad, Suspended2, Suspended4,
	MajorTetrachord, MinorTetrachord, PhrygianTetrachord, HarmonicTetrachord,
	MajorSeventh, DominantSeventh, MinorSeventh, HalfDiminishedSeventh, DiminishedSeventh,
	MajorPentatonic, MinorPentatonic, Blues, WholeTone,
	Major, Dorian, Phrygian, Lydian, Mixolydian, NaturalMinor, Locrian, HarmonicMinor, MelodicMinor,
	Chromatic,
}

// Templates returns every built-in template
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// TemplateByName finds a built-in template by name (case-insensitive).
// "ionian" and "aeolian" resolve to Major and NaturalMinor.
func TemplateByName(name string) (Template, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "ionian":
		return Major, true
	case "aeolian", "minor":
		return NaturalMinor, true
	}
	for _, t := range templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}
