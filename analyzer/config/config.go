package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"

	"github.com/RyanBlaney/sonido-clave/algorithms/key"
	"github.com/RyanBlaney/sonido-clave/algorithms/pitch"
)

var ErrInvalidConfig = errors.New("invalid analyzer config")

// MIDI limits the config is checked against
const (
	maxVelocity = 127
	maxChannel  = 15
)

// AnalyzerConfig configures a harmonic analyzer and its MIDI input
type AnalyzerConfig struct {
	// Spelling
	SpellingPolicy key.Policy `json:"spelling_policy"` // "natural", "sharp", "flat"
	InputSpelling  string     `json:"input_spelling"`  // "sharp" or "flat"; names raw MIDI notes

	// Input filtering
	MinVelocity int     `json:"min_velocity"`       // note-ons below this count as note-offs
	Channels    []uint8 `json:"channels,omitempty"` // empty accepts every channel

	// Candidate selection
	TonicTriadTieBreak bool `json:"tonic_triad_tie_break"`

	// Optional extras
	EnableDiagnostics bool `json:"enable_diagnostics,omitempty"`
}

// DefaultAnalyzerConfig returns the configuration used when none is given
func DefaultAnalyzerConfig() *AnalyzerConfig {
	return &AnalyzerConfig{
		SpellingPolicy:     key.PreferNatural,
		InputSpelling:      "sharp",
		MinVelocity:        1,
		TonicTriadTieBreak: true,
		EnableDiagnostics:  false,
	}
}

// Load decodes JSON on top of the defaults and validates the result
func Load(r io.Reader) (*AnalyzerConfig, error) {
	cfg := DefaultAnalyzerConfig()
	if err := json.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fault.Wrap(err, fmsg.With("decode analyzer config"), ftag.With(ftag.InvalidArgument))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its allowed range
func (c *AnalyzerConfig) Validate() error {
	var problem string
	switch {
	case !c.SpellingPolicy.Valid():
		problem = fmt.Sprintf("spelling policy %d", int(c.SpellingPolicy))
	case c.InputSpelling != "sharp" && c.InputSpelling != "flat":
		problem = fmt.Sprintf("input spelling %q", c.InputSpelling)
	case c.MinVelocity < 0 || c.MinVelocity > maxVelocity:
		problem = fmt.Sprintf("min velocity %d", c.MinVelocity)
	}
	for _, ch := range c.Channels {
		if problem == "" && ch > maxChannel {
			problem = fmt.Sprintf("channel %d", ch)
		}
	}
	if problem == "" {
		return nil
	}
	return fault.Wrap(ErrInvalidConfig, fmsg.With(problem), ftag.With(ftag.InvalidArgument))
}

// InputDirection maps InputSpelling onto an accidental direction
func (c *AnalyzerConfig) InputDirection() pitch.Direction {
	if c.InputSpelling == "flat" {
		return pitch.DirectionFlat
	}
	return pitch.DirectionSharp
}

// AcceptsChannel reports whether messages on ch should reach the analyzer
func (c *AnalyzerConfig) AcceptsChannel(ch uint8) bool {
	if len(c.Channels) == 0 {
		return true
	}
	for _, allowed := range c.Channels {
		if allowed == ch {
			return true
		}
	}
	return false
}
