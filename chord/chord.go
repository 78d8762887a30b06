package chord

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jsphweid/chordshift/model"
)

// A quality starting with a lowercase letter has to start with one of
// these, otherwise words like "Do" or "Be" would read as chords.
var qualityPrefixes = []string{"maj", "min", "m", "dim", "aug", "sus", "add"}

func isRootLetter(b byte) bool {
	return b >= 'A' && b <= 'G'
}

func isAccidental(b byte) bool {
	return b == '#' || b == 'b'
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isQuality(q string) bool {
	// all-caps headers like "CHORUS:" or "BRIDGE"
	if len(q) >= 2 && isUpper(q[0]) && isUpper(q[1]) {
		return false
	}
	if q == "" || q[0] < 'a' || q[0] > 'z' {
		return true
	}
	for _, prefix := range qualityPrefixes {
		if strings.HasPrefix(q, prefix) {
			return true
		}
	}
	return false
}

// lexRoot reads a letter and an optional accidental at s[i:].
func lexRoot(s string, i int) (int, bool) {
	if i >= len(s) || !isRootLetter(s[i]) {
		return i, false
	}
	end := i + 1
	if end < len(s) && isAccidental(s[end]) {
		end++
	}
	return end, true
}

// lex reads the longest chord starting at s[i:] and returns where it ends.
func lex(s string, i int) (model.Chord, int, bool) {
	rootEnd, ok := lexRoot(s, i)
	if !ok {
		return model.Chord{}, i, false
	}

	end := rootEnd
	for end < len(s) {
		r, size := utf8.DecodeRuneInString(s[end:])
		if r == '/' || unicode.IsSpace(r) {
			break
		}
		end += size
	}
	quality := s[rootEnd:end]
	if !isQuality(quality) {
		return model.Chord{}, i, false
	}

	c := model.Chord{Root: s[i:rootEnd], Quality: quality}
	if end < len(s) && s[end] == '/' {
		if bassEnd, ok := lexRoot(s, end+1); ok {
			c.Bass = s[end+1 : bassEnd]
			end = bassEnd
		}
	}
	return c, end, true
}

// Parse decomposes a whole token into root, quality and optional bass.
// Anything that isn't entirely one chord reports false.
func Parse(token string) (model.Chord, bool) {
	c, end, ok := lex(token, 0)
	if !ok || end != len(token) {
		return model.Chord{}, false
	}
	return c, true
}

func Render(root string, quality string, bass string) string {
	res := root + quality
	if bass != "" {
		res += "/" + bass
	}
	return res
}

// Scan splits text into literal and chord spans. Chords only start on a
// word boundary. Joining the span texts gives back the input exactly.
func Scan(text string) []model.Span {
	var spans []model.Span
	literalStart := 0
	for i := 0; i < len(text); {
		if isRootLetter(text[i]) && (i == 0 || !isWordByte(text[i-1])) {
			if c, end, ok := lex(text, i); ok {
				if literalStart < i {
					spans = append(spans, model.Span{Text: text[literalStart:i]})
				}
				found := c
				spans = append(spans, model.Span{Text: text[i:end], Chord: &found})
				i = end
				literalStart = end
				continue
			}
		}
		i++
	}
	if literalStart < len(text) {
		spans = append(spans, model.Span{Text: text[literalStart:]})
	}
	return spans
}

// Roots returns every bare letter+accidental token standing on its own
// between word boundaries, in order. "Am" and "C#m" don't count, the
// roots of "G/B" both do.
func Roots(text string) []string {
	var roots []string
	for i := 0; i < len(text); i++ {
		if !isRootLetter(text[i]) || (i > 0 && isWordByte(text[i-1])) {
			continue
		}
		end, _ := lexRoot(text, i)
		if end < len(text) && isWordByte(text[end]) {
			continue
		}
		roots = append(roots, text[i:end])
		i = end - 1
	}
	return roots
}
