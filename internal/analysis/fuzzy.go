package analysis

import (
	"regexp"
	"strings"
)

var wordSplitter = regexp.MustCompile(`\W+`)

// FuzzyTextMatch compares two scalar strings. Exact and substring matches
// score 1; otherwise word overlap against the larger word set is bucketed at
// 0.7 and 0.4. Empty input scores 0.
func FuzzyTextMatch(a, b string) MatchValue {
	left := strings.ToLower(strings.TrimSpace(a))
	right := strings.ToLower(strings.TrimSpace(b))
	if left == "" || right == "" {
		return NoMatch
	}
	if left == right || strings.Contains(left, right) || strings.Contains(right, left) {
		return FullMatch
	}

	leftWords := wordSet(left)
	rightWords := wordSet(right)
	larger := max(len(leftWords), len(rightWords))
	if larger == 0 {
		return NoMatch
	}

	shared := 0
	for w := range leftWords {
		if _, ok := rightWords[w]; ok {
			shared++
		}
	}

	ratio := float64(shared) / float64(larger)
	switch {
	case ratio >= 0.7:
		return FullMatch
	case ratio >= 0.4:
		return PartialMatch
	default:
		return NoMatch
	}
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range wordSplitter.Split(s, -1) {
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}
