package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchArrays scores how many of the required items the candidate covers.
// Items are folded into skill families first so that near-duplicate
// technology names are not penalized.
func MatchArrays(required, candidate []string) ParameterMatch {
	return matchSets(toSet(required, SkillFamily), toSet(candidate, SkillFamily), "required items")
}

// MatchArraysExact is MatchArrays without family folding
func MatchArraysExact(required, candidate []string) ParameterMatch {
	return matchSets(toSet(required, plainFold), toSet(candidate, plainFold), "required items")
}

// MatchArraysKeywords compares free-text lists by their significant words
func MatchArraysKeywords(required, candidate []string) ParameterMatch {
	return matchSets(keywordSet(required, nil), keywordSet(candidate, nil), "required keywords")
}

// MatchArraysStemmed is MatchArraysKeywords with porter stemming, so that
// "managed" and "managing" count as the same keyword.
func MatchArraysStemmed(required, candidate []string) ParameterMatch {
	return matchSets(keywordSet(required, Stem), keywordSet(candidate, Stem), "required keywords")
}

// matchSets measures the overlap against the required set's cardinality
func matchSets(required, candidate map[string]struct{}, unit string) ParameterMatch {
	if len(required) == 0 || len(candidate) == 0 {
		return noData()
	}

	matched := 0
	for item := range required {
		if _, ok := candidate[item]; ok {
			matched++
		}
	}

	ratio := float64(matched) / float64(len(required))
	return ParameterMatch{
		Value:  bucket(ratio),
		Reason: fmt.Sprintf("%d/%d %s matched", matched, len(required), unit),
	}
}

func plainFold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func toSet(items []string, fold func(string) string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if key := fold(item); key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}

var nonKeywordChars = regexp.MustCompile(`[^a-z0-9\s]`)

// keywordSet tokenizes every string into lower-cased alphanumeric words
// longer than three characters.
func keywordSet(items []string, stem func(string) string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, item := range items {
		cleaned := nonKeywordChars.ReplaceAllString(strings.ToLower(item), "")
		for _, word := range strings.Fields(cleaned) {
			if len(word) <= 3 {
				continue
			}
			if stem != nil {
				word = stem(word)
			}
			set[word] = struct{}{}
		}
	}
	return set
}
