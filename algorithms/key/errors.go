package key

import "errors"

var (
	// ErrSpellingUndefined means the pitch class is foreign to the group:
	// a key has no canonical spelling for a pitch outside its seven members
	ErrSpellingUndefined = errors.New("pitch class is not diatonic to the group")

	// ErrAmbiguousEvidence is returned by Find when the supplied notes mix
	// sharp and flat accidentals. It is distinct from an empty match.
	ErrAmbiguousEvidence = errors.New("notes mix sharp and flat accidentals")

	ErrInvalidPolicy = errors.New("invalid spelling policy")
)
