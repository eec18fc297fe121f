package scale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"

	"github.com/RyanBlaney/sonido-clave/algorithms/pitch"
	"github.com/RyanBlaney/sonido-clave/algorithms/tone"
)

var ErrEmptyTemplate = errors.New("template has no intervals")

// Position is one step of a built scale
type Position struct {
	Degree   pitch.Degree
	Note     pitch.Note
	Interval pitch.Interval
}

// Scale is an immutable sequence of positions generated from a root and a template
type Scale struct {
	root      pitch.Note
	template  Template
	positions []Position
}

// Build applies every interval of the template to root. A scale is all or
// nothing: if any step cannot be spelled within double accidentals the whole
// build fails and no partial scale is returned.
func Build(root pitch.Note, t Template) (*Scale, error) {
	if len(t.Intervals) == 0 {
		return nil, fault.Wrap(ErrEmptyTemplate, fmsg.With(t.Name), ftag.With(ftag.InvalidArgument))
	}

	positions := make([]Position, 0, len(t.Intervals))
	for _, iv := range t.Intervals {
		n, err := root.Add(iv)
		if err != nil {
			return nil, fault.Wrap(err,
				fmsg.With(fmt.Sprintf("build %s %s", root, t.Name)),
				ftag.With(ftag.InvalidArgument),
			)
		}
		positions = append(positions, Position{Degree: iv.Degree(), Note: n, Interval: iv})
	}

	return &Scale{root: root, template: t, positions: positions}, nil
}

func (s *Scale) Root() pitch.Note {
	return s.root
}

func (s *Scale) Template() Template {
	return s.template
}

func (s *Scale) Len() int {
	return len(s.positions)
}

// Positions returns a copy of the scale's positions in template order
func (s *Scale) Positions() []Position {
	out := make([]Position, len(s.positions))
	copy(out, s.positions)
	return out
}

// Notes returns the spelled notes in template order
func (s *Scale) Notes() []pitch.Note {
	out := make([]pitch.Note, len(s.positions))
	for i, p := range s.positions {
		out[i] = p.Note
	}
	return out
}

// PitchClasses returns the set of pitch classes the scale sounds
func (s *Scale) PitchClasses() pitch.Set {
	var set pitch.Set
	for _, p := range s.positions {
		set = set.Add(p.Note.PitchClass())
	}
	return set
}

// Contains reports whether n, spelled exactly, is one of the scale's notes
func (s *Scale) Contains(n pitch.Note) bool {
	for _, p := range s.positions {
		if p.Note == n {
			return true
		}
	}
	return false
}

// Tones voices the scale upward from root, which must carry the scale's root note
func (s *Scale) Tones(root tone.Tone) ([]tone.Tone, error) {
	if root.Note != s.root {
		return nil, fault.Wrap(fmt.Errorf("%w: %s does not start on %s", tone.ErrInvalidTone, root, s.root),
			ftag.With(ftag.InvalidArgument))
	}
	out := make([]tone.Tone, 0, len(s.positions))
	for _, p := range s.positions {
		t, err := root.Add(p.Interval)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *Scale) String() string {
	names := make([]string, len(s.positions))
	for i, p := range s.positions {
		names[i] = p.Note.String()
	}
	return fmt.Sprintf("%s %s [%s]", s.root, s.template.Name, strings.Join(names, " "))
}
