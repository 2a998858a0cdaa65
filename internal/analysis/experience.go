package analysis

import (
	"fmt"
	"strconv"
)

// partialExperienceFactor is the share of the requirement that still earns
// partial credit
const partialExperienceFactor = 0.6

// MatchExperience compares candidate years against required years. A
// requirement of zero means "no requirement" rather than "zero tolerance".
func MatchExperience(candidateYears, requiredYears float64) ParameterMatch {
	if requiredYears <= 0 {
		return ParameterMatch{Value: NoMatch, Reason: ReasonNotRequired}
	}

	have, need := formatYears(candidateYears), formatYears(requiredYears)
	switch {
	case candidateYears >= requiredYears:
		return ParameterMatch{
			Value:  FullMatch,
			Reason: fmt.Sprintf("%s years meets the %s year requirement", have, need),
		}
	case candidateYears >= requiredYears*partialExperienceFactor:
		return ParameterMatch{
			Value:  PartialMatch,
			Reason: fmt.Sprintf("%s years is below the %s year requirement but within tolerance", have, need),
		}
	default:
		return ParameterMatch{
			Value:  NoMatch,
			Reason: fmt.Sprintf("%s years does not meet the %s year requirement", have, need),
		}
	}
}

func formatYears(years float64) string {
	return strconv.FormatFloat(years, 'f', -1, 64)
}
