package transpose

import (
	"github.com/jsphweid/chordshift/chord"
	"github.com/jsphweid/chordshift/util"
)

// DetectKey returns the most frequent bare root spelling in text. "C#" and
// "Db" are counted apart. Ties go to the spelling seen first; text without
// any roots gives DefaultKey.
//
// This is a frequency count, not harmonic analysis.
func DetectKey(text string) string {
	counts := make(map[string]int)
	var order []string
	for _, root := range chord.Roots(text) {
		if _, seen := counts[root]; !seen {
			order = append(order, root)
		}
		counts[root]++
	}

	best := DefaultKey
	bestCount := 0
	for _, root := range order {
		if counts[root] > bestCount {
			best = root
			bestCount = counts[root]
		}
	}
	return best
}

// KeyName moves tonic by offset and always spells the result with sharps.
// An unknown tonic counts as C.
func KeyName(tonic string, offset int) string {
	pc, _ := chord.IndexOf(tonic)
	return chord.Sharps[util.Mod(pc+util.Mod(offset, 12), 12)]
}

func RenderKeyLabel(tonic string, offset int) string {
	return "Key: " + KeyName(tonic, offset)
}
