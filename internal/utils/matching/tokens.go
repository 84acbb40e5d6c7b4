package matching

import (
	"strings"
	"unicode"
)

// isTokenRune reports whether r belongs inside a token. Letters cover CJK
// ideographs as well as Latin script, so mixed descriptions tokenize on the
// same boundaries in both scripts.
func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Tokenize lowercases s and splits it into maximal runs of letters/digits,
// keeping tokens of at least two runes. "Ticket ABC-123" -> [ticket abc 123].
func Tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !isTokenRune(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Overlap returns the distinct tokens of a that also occur in b, in the
// order they first appear in a. Token frequency carries no weight; this is
// a plain set intersection.
func Overlap(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, t := range b {
		inB[t] = struct{}{}
	}
	seen := make(map[string]struct{}, len(a))
	var shared []string
	for _, t := range a {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := inB[t]; ok {
			shared = append(shared, t)
		}
	}
	return shared
}

// KeywordsOverlap reports whether the two free-text strings share at least
// one token.
func KeywordsOverlap(a, b string) bool {
	return len(Overlap(Tokenize(a), Tokenize(b))) > 0
}
