package matcher

import (
	"regexp"
	"strings"

	"recruitads/internal/engine/embedding"
)

// StemScore is the similarity assigned to a stem match. It is a fixed
// ceiling below an exact match, not a computed distance.
const StemScore = 0.85

var (
	parenthesised = regexp.MustCompile(`\([^)]*\)`)
	punctuation   = strings.NewReplacer("-", " ", "/", " ", ",", " ", "_", " ")

	// Seniority and qualification words dropped from the front of a title.
	qualifiers = map[string]struct{}{
		"senior":      {},
		"sr":          {},
		"sr.":         {},
		"junior":      {},
		"jr":          {},
		"jr.":         {},
		"erfaren":     {},
		"erfarna":     {},
		"legitimerad": {},
		"leg":         {},
		"leg.":        {},
		"biträdande":  {},
		"extra":       {},
		"timanställd": {},
	}

	// Inflection endings, longest first. Each maps to its replacement.
	suffixes = []struct{ from, to string }{
		{"orna", "a"},
		{"arna", "are"},
		{"erna", ""},
		{"aren", "are"},
		{"or", "a"},
		{"er", ""},
		{"en", ""},
		{"an", "a"},
		{"et", ""},
	}
)

// minStem keeps short words like "vd" or "it" intact.
const minStem = 3

// Normalize is the catalog identity of a role string.
func Normalize(s string) string {
	return embedding.Key(s)
}

// Stem reduces a role to the form used by the stem strategy: qualifiers and
// parenthesised remarks removed, separators collapsed and every word
// stripped of its inflection ending. Both sides of a comparison must be
// stemmed with this function.
func Stem(s string) string {
	s = parenthesised.ReplaceAllString(strings.ToLower(s), " ")
	s = punctuation.Replace(s)

	words := strings.Fields(s)
	for len(words) > 1 {
		if _, ok := qualifiers[words[0]]; !ok {
			break
		}
		words = words[1:]
	}
	for i, w := range words {
		words[i] = stemWord(w)
	}
	return strings.Join(words, " ")
}

func stemWord(w string) string {
	r := []rune(w)
	for _, sfx := range suffixes {
		if !strings.HasSuffix(w, sfx.from) {
			continue
		}
		base := string(r[:len(r)-len([]rune(sfx.from))])
		if len([]rune(base)) < minStem {
			continue
		}
		return base + sfx.to
	}
	return w
}
