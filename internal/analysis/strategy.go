package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kfreiman/fitscore/internal/features"
)

// Strategy scores one parameter. Required comes from the job, candidate from
// the resume. Values of a kind the strategy does not understand must degrade
// to "No data provided" instead of failing.
type Strategy interface {
	Name() string
	Match(required, candidate features.Value) ParameterMatch
}

type listStrategy struct {
	name string
	fn   func(required, candidate []string) ParameterMatch
}

func (s listStrategy) Name() string { return s.name }

func (s listStrategy) Match(required, candidate features.Value) ParameterMatch {
	if required.Kind != features.KindList || candidate.Kind != features.KindList {
		return noData()
	}
	return s.fn(required.List, candidate.List)
}

// textStrategy tries synonym canonicalization first and falls back to fuzzy matching
type textStrategy struct {
	kind TextKind
}

func (s textStrategy) Name() string { return "text_" + string(s.kind) }

func (s textStrategy) Match(required, candidate features.Value) ParameterMatch {
	if required.Kind != features.KindText || candidate.Kind != features.KindText ||
		required.IsBlank() || candidate.IsBlank() {
		return noData()
	}

	if AreSynonyms(candidate.Text, required.Text, s.kind) {
		return ParameterMatch{
			Value:  FullMatch,
			Reason: fmt.Sprintf("Both resolve to %q", Canonicalize(required.Text, s.kind)),
		}
	}

	switch FuzzyTextMatch(candidate.Text, required.Text) {
	case FullMatch:
		return ParameterMatch{Value: FullMatch, Reason: fmt.Sprintf("%q matches %q", candidate.Text, required.Text)}
	case PartialMatch:
		return ParameterMatch{Value: PartialMatch, Reason: fmt.Sprintf("%q partially matches %q", candidate.Text, required.Text)}
	default:
		return ParameterMatch{Value: NoMatch, Reason: fmt.Sprintf("%q does not match %q", candidate.Text, required.Text)}
	}
}

type experienceStrategy struct{}

func (experienceStrategy) Name() string { return "experience" }

func (experienceStrategy) Match(required, candidate features.Value) ParameterMatch {
	if required.Kind != features.KindNumber || candidate.Kind != features.KindNumber {
		return noData()
	}
	return MatchExperience(candidate.Number, required.Number)
}

// presenceStrategy only checks that the resume states something
type presenceStrategy struct{}

func (presenceStrategy) Name() string { return "presence" }

func (presenceStrategy) Match(_, candidate features.Value) ParameterMatch {
	if candidate.Kind != features.KindText || candidate.IsBlank() {
		return noData()
	}
	return ParameterMatch{Value: FullMatch, Reason: "Provided"}
}

// labelStrategy accepts the resume's self-reported label when it is in the
// positive allow-list
type labelStrategy struct {
	name    string
	allowed []string
}

func (s labelStrategy) Name() string { return s.name }

func (s labelStrategy) Match(_, candidate features.Value) ParameterMatch {
	if candidate.Kind != features.KindText || candidate.IsBlank() {
		return noData()
	}
	label := strings.ToLower(strings.TrimSpace(candidate.Text))
	for _, ok := range s.allowed {
		if label == ok {
			return ParameterMatch{Value: FullMatch, Reason: fmt.Sprintf("%q is a positive signal", candidate.Text)}
		}
	}
	return ParameterMatch{Value: NoMatch, Reason: fmt.Sprintf("%q is not a positive signal", candidate.Text)}
}

// coverageStrategy compares resume and job skill counts
type coverageStrategy struct{}

func (coverageStrategy) Name() string { return "coverage" }

func (coverageStrategy) Match(required, candidate features.Value) ParameterMatch {
	if required.Kind != features.KindNumber || candidate.Kind != features.KindNumber ||
		required.Number <= 0 || candidate.Number <= 0 {
		return noData()
	}
	ratio := candidate.Number / required.Number
	return ParameterMatch{
		Value:  bucket(ratio),
		Reason: fmt.Sprintf("%s skills listed against %s required", formatYears(candidate.Number), formatYears(required.Number)),
	}
}

var strategies = map[string]Strategy{}

func register(s Strategy) Strategy {
	strategies[s.Name()] = s
	return s
}

var (
	overlapStrategy         = register(listStrategy{name: "overlap", fn: MatchArrays})
	overlapExactStrategy    = register(listStrategy{name: "overlap_exact", fn: MatchArraysExact})
	keywordsStrategy        = register(listStrategy{name: "keywords", fn: MatchArraysKeywords})
	keywordsStemmedStrategy = register(listStrategy{name: "keywords_stemmed", fn: MatchArraysStemmed})
	titleStrategy           = register(textStrategy{kind: KindTitle})
	industryStrategy        = register(textStrategy{kind: KindIndustry})
	educationStrategy       = register(textStrategy{kind: KindEducation})
	genericTextStrategy     = register(textStrategy{kind: KindGeneric})
	yearsStrategy           = register(experienceStrategy{})
	providedStrategy        = register(presenceStrategy{})
	skillCountStrategy      = register(coverageStrategy{})

	recencyLabel     = register(labelStrategy{name: "label_recency", allowed: []string{"current", "recent"}})
	stabilityLabel   = register(labelStrategy{name: "label_stability", allowed: []string{"stable"}})
	progressionLabel = register(labelStrategy{name: "label_progression", allowed: []string{"growing"}})
	complexityLabel  = register(labelStrategy{name: "label_complexity", allowed: []string{"high"}})
	structureLabel   = register(labelStrategy{name: "label_structure", allowed: []string{"well-structured"}})
	languageLabel    = register(labelStrategy{name: "label_language", allowed: []string{"excellent", "good"}})
)

// LookupStrategy returns a registered strategy by name
func LookupStrategy(name string) (Strategy, bool) {
	s, ok := strategies[name]
	return s, ok
}

// StrategyNames returns all registered strategy names, sorted
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
