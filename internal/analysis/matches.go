package analysis

import (
	"strings"

	"github.com/kfreiman/fitscore/internal/features"
)

// ParameterSpec binds one breakdown parameter to its strategy and to the way
// its value is read from a feature set
type ParameterSpec struct {
	Name     string
	Strategy Strategy
	Extract  func(f *features.FeatureSet) features.Value
}

// fieldParam scores a FeatureSet field of the same name
func fieldParam(name string, s Strategy) ParameterSpec {
	return ParameterSpec{
		Name:     name,
		Strategy: s,
		Extract:  func(f *features.FeatureSet) features.Value { return f.Field(name) },
	}
}

// skillCount is the combined number of core and secondary skills. It
// overlaps with the coreSkills and secondarySkills parameters on purpose.
func skillCount(f *features.FeatureSet) features.Value {
	total := 0
	for _, name := range []string{"coreSkills", "secondarySkills"} {
		v := f.Field(name)
		if v.Kind != features.KindList {
			return features.InvalidValue()
		}
		for _, s := range v.List {
			if strings.TrimSpace(s) != "" {
				total++
			}
		}
	}
	return features.NumberValue(float64(total))
}

// DefaultParameters returns the parameter table in declaration order. The
// order drives insight generation.
func DefaultParameters() []ParameterSpec {
	return []ParameterSpec{
		fieldParam("coreSkills", overlapStrategy),
		fieldParam("secondarySkills", overlapStrategy),
		fieldParam("tools", overlapStrategy),
		fieldParam("toolProficiency", overlapStrategy),
		fieldParam("certifications", overlapStrategy),
		fieldParam("softSkills", overlapStrategy),
		fieldParam("keywords", overlapStrategy),

		fieldParam("responsibilities", keywordsStrategy),
		fieldParam("projects", keywordsStrategy),
		fieldParam("leadership", keywordsStrategy),
		fieldParam("achievements", keywordsStrategy),

		fieldParam("title", titleStrategy),
		fieldParam("industry", industryStrategy),
		fieldParam("educationLevel", educationStrategy),
		fieldParam("educationField", genericTextStrategy),
		fieldParam("city", genericTextStrategy),
		fieldParam("country", genericTextStrategy),
		fieldParam("remotePreference", genericTextStrategy),
		fieldParam("employmentType", genericTextStrategy),

		fieldParam("relevantExperience", yearsStrategy),
		fieldParam("totalExperience", yearsStrategy),

		fieldParam("portfolio", providedStrategy),
		fieldParam("noticePeriod", providedStrategy),

		fieldParam("skillRecency", recencyLabel),
		fieldParam("employmentStability", stabilityLabel),
		fieldParam("careerProgression", progressionLabel),
		fieldParam("responsibilityComplexity", complexityLabel),
		fieldParam("resumeStructure", structureLabel),
		fieldParam("languageQuality", languageLabel),

		{Name: "skillCoverage", Strategy: skillCountStrategy, Extract: skillCount},
	}
}

// ParameterNames returns the declared parameter names in order
func ParameterNames() []string {
	params := DefaultParameters()
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

// GetParameterMatches scores every default parameter for a resume/job pair
func GetParameterMatches(resume, job *features.FeatureSet) (Breakdown, error) {
	return matchParameters(DefaultParameters(), resume, job)
}

func matchParameters(params []ParameterSpec, resume, job *features.FeatureSet) (Breakdown, error) {
	if err := checkInput("resume", resume); err != nil {
		return nil, err
	}
	if err := checkInput("job", job); err != nil {
		return nil, err
	}

	breakdown := make(Breakdown, len(params))
	for _, p := range params {
		breakdown[p.Name] = p.Strategy.Match(p.Extract(job), p.Extract(resume))
	}
	return breakdown, nil
}

func checkInput(side string, f *features.FeatureSet) error {
	if f == nil {
		return &InputError{Side: side, Reason: "feature set is missing"}
	}
	if err := f.Validate(); err != nil {
		return &InputError{Side: side, Reason: err.Error()}
	}
	return nil
}
