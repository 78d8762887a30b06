package model

// PitchClass is a semitone position within the octave, 0=C ... 11=B.
type PitchClass = int

// Chord is a chord token split into its parts. Quality is opaque and
// survives every transposition untouched; only Root and Bass move.
type Chord struct {
	Root    string
	Quality string

	// NOTE: empty unless the token was a slash chord
	Bass string
}

func (c Chord) HasBass() bool {
	return c.Bass != ""
}

// Span is one piece of scanned text. Chord is nil for literal runs.
type Span struct {
	Text  string
	Chord *Chord
}

func (s Span) IsChord() bool {
	return s.Chord != nil
}
