// Package transpose shifts chords by semitones and guesses a song's tonal
// center. Every function is pure and safe to call from any goroutine.
package transpose

import (
	"strings"

	"github.com/jsphweid/chordshift/chord"
	"github.com/jsphweid/chordshift/model"
	"github.com/jsphweid/chordshift/util"
)

const DefaultKey = "C"

// ShiftPitch moves a note name by steps semitones. Names missing from the
// pitch table come back unchanged.
func ShiftPitch(name string, steps int, preferFlats bool) string {
	pc, ok := chord.IndexOf(name)
	if !ok {
		return name
	}
	return chord.Name(util.Mod(pc+util.Mod(steps, 12), 12), preferFlats)
}

// TransposeChord shifts the root and bass of a single chord token. Each
// half keeps the accidental style it was written with, so "Bb/D" moved up
// a tone is "C/E" and "Db/F" moved down one is "C/E" too. Tokens that
// aren't chords are returned as is.
func TransposeChord(token string, steps int) string {
	c, ok := chord.Parse(token)
	if !ok {
		return token
	}
	return shift(c, steps)
}

func shift(c model.Chord, steps int) string {
	root := ShiftPitch(c.Root, steps, chord.PrefersFlats(c.Root))
	var bass string
	if c.HasBass() {
		bass = ShiftPitch(c.Bass, steps, chord.PrefersFlats(c.Bass))
	}
	return chord.Render(root, c.Quality, bass)
}

// TransposeText shifts every chord found in text and leaves everything
// else byte for byte. Zero steps returns text untouched.
//
// Spelling is recomputed from whatever text is passed in, so shifting an
// already shifted text by b is not the same as shifting the original by
// a+b. Callers wanting reproducible output must keep the original text and
// transpose it by the cumulative offset in one call.
func TransposeText(text string, steps int) string {
	if steps == 0 {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for _, span := range chord.Scan(text) {
		if !span.IsChord() {
			sb.WriteString(span.Text)
			continue
		}
		sb.WriteString(shift(*span.Chord, steps))
	}
	return sb.String()
}
