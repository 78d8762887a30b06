package chord

import (
	"strings"

	"github.com/jsphweid/chordshift/model"
	"github.com/jsphweid/chordshift/util"
)

var Sharps = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var Flats = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// many names map to one pitch class, so this can't be inverted without
// knowing which spelling to prefer
var noteIndex = map[string]model.PitchClass{
	"C": 0, "C#": 1, "Db": 1,
	"D": 2, "D#": 3, "Eb": 3,
	"E": 4,
	"F": 5, "F#": 6, "Gb": 6,
	"G": 7, "G#": 8, "Ab": 8,
	"A": 9, "A#": 10, "Bb": 10,
	"B": 11,
}

// IndexOf resolves a canonical spelling (case-sensitive) to its pitch
// class. Names like "Cb" or "E#" are not in the table.
func IndexOf(name string) (model.PitchClass, bool) {
	pc, ok := noteIndex[name]
	return pc, ok
}

func Name(pc model.PitchClass, preferFlats bool) string {
	pc = util.Mod(pc, 12)
	if preferFlats {
		return Flats[pc]
	}
	return Sharps[pc]
}

// PrefersFlats reports whether a note was written with a flat. Spelling
// is decided per note from its own source text, not from the song's key.
func PrefersFlats(name string) bool {
	return strings.Contains(name, "b")
}
