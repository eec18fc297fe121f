package pitch

import "fmt"

// ascendingLetter[l][d] is the letter reached by moving up to degree d+1 from l.
// Adding a third to any letter always lands two letters later.
var ascendingLetter = [LetterCount][DegreeCount]Letter{
	C: {C, D, E, F, G, A, B},
	D: {D, E, F, G, A, B, C},
	E: {E, F, G, A, B, C, D},
	F: {F, G, A, B, C, D, E},
	G: {G, A, B, C, D, E, F},
	A: {A, B, C, D, E, F, G},
	B: {B, C, D, E, F, G, A},
}

// descendingLetter[l][d] is the letter reached by moving down to degree d+1 from l
var descendingLetter = [LetterCount][DegreeCount]Letter{
	C: {C, B, A, G, F, E, D},
	D: {D, C, B, A, G, F, E},
	E: {E, D, C, B, A, G, F},
	F: {F, E, D, C, B, A, G},
	G: {G, F, E, D, C, B, A},
	A: {A, G, F, E, D, C, B},
	B: {B, A, G, F, E, D, C},
}

// Add returns the note an interval above n. The letter comes from the
// interval's degree and only the accidental is solved for, so C plus an
// augmented fourth is F#, never Gb. Spellings that would need more than a
// double accidental fail with ErrAccidentalOverflow.
func (n Note) Add(i Interval) (Note, error) {
	if err := checkOperands(n, i); err != nil {
		return Note{}, err
	}
	target := n.PitchClass().Add(i.Steps())
	letter := ascendingLetter[n.Letter][i.Degree().Index()]

	out, err := spellOnLetter(letter, target)
	if err != nil {
		return Note{}, fmt.Errorf("%s + %s: %w", n, i, err)
	}
	return out, nil
}

// Sub returns the note an interval below n, mirroring Add
func (n Note) Sub(i Interval) (Note, error) {
	if err := checkOperands(n, i); err != nil {
		return Note{}, err
	}
	target := n.PitchClass().Sub(i.Steps())
	letter := descendingLetter[n.Letter][i.Degree().Index()]

	out, err := spellOnLetter(letter, target)
	if err != nil {
		return Note{}, fmt.Errorf("%s - %s: %w", n, i, err)
	}
	return out, nil
}

// Transpose applies a chain of intervals upward, failing at the first
// step that cannot be spelled
func (n Note) Transpose(intervals ...Interval) (Note, error) {
	cur := n
	for _, i := range intervals {
		next, err := cur.Add(i)
		if err != nil {
			return Note{}, err
		}
		cur = next
	}
	return cur, nil
}

func checkOperands(n Note, i Interval) error {
	if !n.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidNote, n)
	}
	if !i.Valid() {
		return fmt.Errorf("%w: ordinal %d quality %d", ErrInvalidInterval, i.Ordinal, i.Quality)
	}
	return nil
}
