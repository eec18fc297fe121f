package analyzer

import (
	"slices"
	"sync"

	"github.com/RyanBlaney/sonido-clave/algorithms/chroma"
	"github.com/RyanBlaney/sonido-clave/algorithms/common"
	"github.com/RyanBlaney/sonido-clave/algorithms/key"
	"github.com/RyanBlaney/sonido-clave/algorithms/pitch"
	"github.com/RyanBlaney/sonido-clave/algorithms/tone"
	"github.com/RyanBlaney/sonido-clave/analyzer/config"
	"github.com/RyanBlaney/sonido-clave/logging"
)

// Diagnostics summarizes how decisive the current candidate set is
type Diagnostics struct {
	MaxProbability    float64
	MeanProbability   float64
	ProbabilitySpread float64 // sample standard deviation across candidates
	CandidateEntropy  float64 // bits, over candidate probabilities
	Profile           *chroma.PitchClassProfile
}

// Snapshot is the analyzer output for one state of the sounding set. It is
// rebuilt whole after every mutation.
type Snapshot struct {
	Sounding     []tone.Tone
	PitchClasses pitch.Set
	Candidates   []Slice
	Top          []Slice
	Classification
	Diagnostics *Diagnostics
}

// clone copies every slice so callers cannot reach the analyzer's state
func (s Snapshot) clone() Snapshot {
	out := s
	out.Sounding = slices.Clone(s.Sounding)
	out.Candidates = slices.Clone(s.Candidates)
	out.Top = slices.Clone(s.Top)
	out.Uniform = slices.Clone(s.Uniform)
	out.Mediant = slices.Clone(s.Mediant)
	out.NonUniform = slices.Clone(s.NonUniform)
	if s.Diagnostics != nil {
		d := *s.Diagnostics
		if d.Profile != nil {
			p := *d.Profile
			p.Profile = slices.Clone(p.Profile)
			d.Profile = &p
		}
		out.Diagnostics = &d
	}
	return out
}

// Listener receives every snapshot produced by a mutation
type Listener func(Snapshot)

// Analyzer tracks sounding notes and keeps a classification of the keys they fit
type Analyzer struct {
	mu       sync.Mutex
	cfg      config.AnalyzerConfig
	sounding map[int]tone.Tone
	snapshot Snapshot
	listener Listener
	logger   logging.Logger
}

// New creates an analyzer. A nil cfg uses DefaultAnalyzerConfig.
func New(cfg *config.AnalyzerConfig) (*Analyzer, error) {
	if cfg == nil {
		cfg = config.DefaultAnalyzerConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Analyzer{
		cfg:      *cfg,
		sounding: make(map[int]tone.Tone),
		logger: logging.WithFields(logging.Fields{
			"component": "harmonic_analyzer",
			"policy":    cfg.SpellingPolicy.String(),
		}),
	}
	a.snapshot = a.recomputeLocked()
	return a, nil
}

// OnUpdate installs a listener called after each mutation, outside the lock
func (a *Analyzer) OnUpdate(l Listener) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listener = l
}

// Config returns a copy of the analyzer's configuration
func (a *Analyzer) Config() config.AnalyzerConfig {
	a.mu.Lock()
	defer a.mu.Unlock()
	cfg := a.cfg
	cfg.Channels = slices.Clone(cfg.Channels)
	return cfg
}

// NoteOn marks a MIDI note as sounding. Velocity 0, or anything below the
// configured minimum, is a note-off. Indices outside 0..127 are ignored.
func (a *Analyzer) NoteOn(index, velocity int) Snapshot {
	if velocity <= 0 || velocity < a.cfg.MinVelocity {
		return a.NoteOff(index)
	}

	return a.mutate(func() bool {
		t, err := tone.FromMIDI(index, a.cfg.InputDirection())
		if err != nil {
			a.logger.Warn("ignoring note-on outside MIDI range", logging.Fields{
				"index":    index,
				"velocity": velocity,
			})
			return false
		}
		if _, ok := a.sounding[index]; ok {
			return false
		}
		a.sounding[index] = t
		return true
	})
}

// NoteOff releases a MIDI note. Releasing a silent note changes nothing.
func (a *Analyzer) NoteOff(index int) Snapshot {
	return a.mutate(func() bool {
		if index < tone.MinMIDI || index > tone.MaxMIDI {
			a.logger.Warn("ignoring note-off outside MIDI range", logging.Fields{"index": index})
			return false
		}
		if _, ok := a.sounding[index]; !ok {
			return false
		}
		delete(a.sounding, index)
		return true
	})
}

// Reset silences every note
func (a *Analyzer) Reset() Snapshot {
	return a.mutate(func() bool {
		if len(a.sounding) == 0 {
			return false
		}
		clear(a.sounding)
		return true
	})
}

// Sounding returns the sounding tones from lowest to highest
func (a *Analyzer) Sounding() []tone.Tone {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.snapshot.Sounding)
}

// Snapshot returns the output computed after the latest mutation
func (a *Analyzer) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshot.clone()
}

// Recompute rebuilds the snapshot from the sounding set. With no mutation in
// between it returns the same result every time.
func (a *Analyzer) Recompute() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.snapshot = a.recomputeLocked()
	return a.snapshot.clone()
}

// mutate applies change and recomputes as one step under the lock. The
// listener only hears about changes that happened.
func (a *Analyzer) mutate(change func() bool) Snapshot {
	a.mu.Lock()
	changed := change()
	if changed {
		a.snapshot = a.recomputeLocked()
	}
	snap, listener := a.snapshot.clone(), a.listener
	a.mu.Unlock()

	if changed && listener != nil {
		listener(snap.clone())
	}
	return snap
}

func (a *Analyzer) recomputeLocked() Snapshot {
	sounding := make([]tone.Tone, 0, len(a.sounding))
	var set pitch.Set
	for _, t := range a.sounding {
		sounding = append(sounding, t)
		set = set.Add(t.PitchClass())
	}
	slices.SortFunc(sounding, tone.Compare)

	res := Analyze(set, a.cfg.SpellingPolicy, a.cfg.TonicTriadTieBreak)
	snap := Snapshot{
		Sounding:       sounding,
		PitchClasses:   set,
		Candidates:     res.Candidates,
		Top:            res.Top,
		Classification: res.Classification,
	}
	if a.cfg.EnableDiagnostics {
		snap.Diagnostics = diagnose(set, res.Candidates)
	}

	a.logger.Debug("recomputed classification", logging.Fields{
		"sounding":    set.String(),
		"candidates":  len(res.Candidates),
		"top":         groupNames(res.Top, a.cfg.SpellingPolicy),
		"uniform":     len(res.Uniform),
		"mediant":     len(res.Mediant),
		"non_uniform": len(res.NonUniform),
	})
	return snap
}

func diagnose(set pitch.Set, candidates []Slice) *Diagnostics {
	probabilities := make([]float64, len(candidates))
	for i, c := range candidates {
		probabilities[i] = c.Probability
	}
	return &Diagnostics{
		MaxProbability:    common.Max(probabilities),
		MeanProbability:   common.Mean(probabilities),
		ProbabilitySpread: common.StandardDeviation(probabilities),
		CandidateEntropy:  common.Entropy(probabilities),
		Profile:           chroma.FromSet(set),
	}
}

func groupNames(top []Slice, p key.Policy) []string {
	names := make([]string, len(top))
	for i, s := range top {
		names[i] = s.Group.Name(p)
	}
	return names
}
