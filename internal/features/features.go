// Package features defines the structured resume/job profile consumed by the
// matching engine and normalizes loosely-shaped documents into it.
package features

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// FeatureSet is the structured profile of either a resume or a job posting.
// Both sides share the same shape.
type FeatureSet struct {
	CoreSkills       []string `json:"coreSkills" yaml:"coreSkills"`
	SecondarySkills  []string `json:"secondarySkills" yaml:"secondarySkills"`
	Tools            []string `json:"tools" yaml:"tools"`
	Responsibilities []string `json:"responsibilities" yaml:"responsibilities"`
	Projects         []string `json:"projects" yaml:"projects"`
	Certifications   []string `json:"certifications" yaml:"certifications"`
	Leadership       []string `json:"leadership" yaml:"leadership"`
	ToolProficiency  []string `json:"toolProficiency" yaml:"toolProficiency"`
	Achievements     []string `json:"achievements" yaml:"achievements"`
	SoftSkills       []string `json:"softSkills" yaml:"softSkills"`
	Keywords         []string `json:"keywords" yaml:"keywords"`

	Title                    string `json:"title" yaml:"title"`
	Industry                 string `json:"industry" yaml:"industry"`
	EducationLevel           string `json:"educationLevel" yaml:"educationLevel"`
	EducationField           string `json:"educationField" yaml:"educationField"`
	Portfolio                string `json:"portfolio" yaml:"portfolio"`
	City                     string `json:"city" yaml:"city"`
	Country                  string `json:"country" yaml:"country"`
	RemotePreference         string `json:"remotePreference" yaml:"remotePreference"`
	NoticePeriod             string `json:"noticePeriod" yaml:"noticePeriod"`
	EmploymentType           string `json:"employmentType" yaml:"employmentType"`
	SkillRecency             string `json:"skillRecency" yaml:"skillRecency"`
	EmploymentStability      string `json:"employmentStability" yaml:"employmentStability"`
	CareerProgression        string `json:"careerProgression" yaml:"careerProgression"`
	ResponsibilityComplexity string `json:"responsibilityComplexity" yaml:"responsibilityComplexity"`
	ResumeStructure          string `json:"resumeStructure" yaml:"resumeStructure"`
	LanguageQuality          string `json:"languageQuality" yaml:"languageQuality"`

	RelevantExperience float64 `json:"relevantExperience" yaml:"relevantExperience"`
	TotalExperience    float64 `json:"totalExperience" yaml:"totalExperience"`

	// malformed holds field names that arrived with the wrong type
	malformed map[string]bool
}

// ValueKind tells which member of a Value is populated
type ValueKind int

const (
	KindEmpty ValueKind = iota
	KindList
	KindText
	KindNumber
	// KindInvalid marks a field whose source value had the wrong type
	KindInvalid
)

// Value is a single field of a FeatureSet, tagged with its kind so matchers
// can reject shapes they do not understand.
type Value struct {
	Kind   ValueKind
	List   []string
	Text   string
	Number float64
}

// ListValue wraps a string slice
func ListValue(list []string) Value {
	return Value{Kind: KindList, List: list}
}

// TextValue wraps a scalar string
func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// NumberValue wraps a numeric value
func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Number: n}
}

// InvalidValue is returned for malformed fields
func InvalidValue() Value {
	return Value{Kind: KindInvalid}
}

// IsBlank reports whether the value carries no usable data
func (v Value) IsBlank() bool {
	switch v.Kind {
	case KindList:
		for _, s := range v.List {
			if strings.TrimSpace(s) != "" {
				return false
			}
		}
		return true
	case KindText:
		return strings.TrimSpace(v.Text) == ""
	case KindNumber:
		return v.Number == 0
	default:
		return true
	}
}

// Field returns the named field as a Value. Unknown names and fields that
// were malformed at decode time yield an invalid value.
func (f *FeatureSet) Field(name string) Value {
	if f == nil {
		return Value{}
	}
	if f.malformed[name] {
		return InvalidValue()
	}
	acc, ok := fieldAccessors[name]
	if !ok {
		return InvalidValue()
	}
	return acc.get(f)
}

// MarkMalformed records that the named field could not be decoded and resets
// it to its zero value.
func (f *FeatureSet) MarkMalformed(name string) {
	acc, ok := fieldAccessors[name]
	if !ok {
		return
	}
	if f.malformed == nil {
		f.malformed = make(map[string]bool)
	}
	f.malformed[name] = true
	acc.reset(f)
}

// Malformed returns the sorted names of fields that had the wrong type
func (f *FeatureSet) Malformed() []string {
	names := make([]string, 0, len(f.malformed))
	for name := range f.malformed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize replaces nil slices with empty ones and trims scalar strings so
// that every declared field holds a concrete value.
func (f *FeatureSet) Normalize() {
	for _, name := range FieldNames {
		fieldAccessors[name].normalize(f)
	}
}

// Validate rejects feature sets the engine cannot score at all
func (f *FeatureSet) Validate() error {
	if f == nil {
		return fmt.Errorf("feature set is nil")
	}
	for _, field := range []struct {
		name  string
		years float64
	}{
		{"relevantExperience", f.RelevantExperience},
		{"totalExperience", f.TotalExperience},
	} {
		name, years := field.name, field.years
		if math.IsNaN(years) || math.IsInf(years, 0) {
			return fmt.Errorf("%s is not a finite number", name)
		}
		if years < 0 {
			return fmt.Errorf("%s must not be negative, got %g", name, years)
		}
	}
	return nil
}

// Clone returns a deep copy
func (f *FeatureSet) Clone() *FeatureSet {
	if f == nil {
		return nil
	}
	c := *f
	for _, name := range FieldNames {
		acc := fieldAccessors[name]
		if acc.kind == KindList {
			acc.setList(&c, append([]string{}, acc.get(f).List...))
		}
	}
	if f.malformed != nil {
		c.malformed = make(map[string]bool, len(f.malformed))
		for k, v := range f.malformed {
			c.malformed[k] = v
		}
	}
	return &c
}

// Empty returns a feature set with every field at its zero value
func Empty() *FeatureSet {
	f := &FeatureSet{}
	f.Normalize()
	return f
}
