package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxStrongMentions = 5
	maxImprovements   = 6
)

// GenerateInsights derives "why" and "improve" lists from a breakdown using
// the default parameter order
func GenerateInsights(breakdown Breakdown) Insights {
	return generateInsights(breakdown, ParameterNames())
}

// generateInsights walks params in declaration order. Parameters not present
// in the breakdown are skipped.
func generateInsights(breakdown Breakdown, params []string) Insights {
	var strong, weak []string
	for _, name := range params {
		match, ok := breakdown[name]
		if !ok {
			continue
		}
		switch match.Value {
		case FullMatch:
			strong = append(strong, name)
		case NoMatch:
			weak = append(weak, name)
		}
	}

	insights := Insights{Why: []string{}, Improve: []string{}}

	if len(strong) > 0 {
		mentions := make([]string, 0, maxStrongMentions)
		for _, name := range strong[:min(len(strong), maxStrongMentions)] {
			mentions = append(mentions, Humanize(name))
		}
		insights.Why = append(insights.Why, "Strong alignment in "+strings.Join(mentions, ", "))
	}
	if len(weak) > 0 {
		insights.Why = append(insights.Why, fmt.Sprintf("%d areas need improvement", len(weak)))
	}

	for _, name := range weak[:min(len(weak), maxImprovements)] {
		insights.Improve = append(insights.Improve, "Improve "+Humanize(name))
	}

	return insights
}

var upperLetter = regexp.MustCompile(`([A-Z])`)

// Humanize turns a camelCase parameter name into lower-case words:
// "coreSkills" becomes "core skills".
func Humanize(name string) string {
	spaced := upperLetter.ReplaceAllString(name, " $1")
	return strings.ToLower(strings.Join(strings.Fields(spaced), " "))
}
