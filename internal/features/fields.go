package features

import "strings"

// FieldNames lists every FeatureSet field in schema order
var FieldNames = []string{
	"coreSkills", "secondarySkills", "tools", "responsibilities", "projects",
	"certifications", "leadership", "toolProficiency", "achievements",
	"softSkills", "keywords",
	"title", "industry", "educationLevel", "educationField", "portfolio",
	"city", "country", "remotePreference", "noticePeriod", "employmentType",
	"skillRecency", "employmentStability", "careerProgression",
	"responsibilityComplexity", "resumeStructure", "languageQuality",
	"relevantExperience", "totalExperience",
}

type accessor struct {
	kind   ValueKind
	list   func(f *FeatureSet) *[]string
	text   func(f *FeatureSet) *string
	number func(f *FeatureSet) *float64
}

func (a accessor) get(f *FeatureSet) Value {
	switch a.kind {
	case KindList:
		return ListValue(*a.list(f))
	case KindText:
		return TextValue(*a.text(f))
	default:
		return NumberValue(*a.number(f))
	}
}

func (a accessor) setList(f *FeatureSet, list []string) {
	*a.list(f) = list
}

func (a accessor) reset(f *FeatureSet) {
	switch a.kind {
	case KindList:
		*a.list(f) = []string{}
	case KindText:
		*a.text(f) = ""
	default:
		*a.number(f) = 0
	}
}

func (a accessor) normalize(f *FeatureSet) {
	switch a.kind {
	case KindList:
		p := a.list(f)
		if *p == nil {
			*p = []string{}
		}
	case KindText:
		p := a.text(f)
		*p = strings.TrimSpace(*p)
	}
}

func listField(sel func(f *FeatureSet) *[]string) accessor {
	return accessor{kind: KindList, list: sel}
}

func textField(sel func(f *FeatureSet) *string) accessor {
	return accessor{kind: KindText, text: sel}
}

func numberField(sel func(f *FeatureSet) *float64) accessor {
	return accessor{kind: KindNumber, number: sel}
}

// FieldKind returns the declared kind of a field, or KindInvalid for unknown names
func FieldKind(name string) ValueKind {
	acc, ok := fieldAccessors[name]
	if !ok {
		return KindInvalid
	}
	return acc.kind
}

var fieldAccessors = map[string]accessor{
	"coreSkills":       listField(func(f *FeatureSet) *[]string { return &f.CoreSkills }),
	"secondarySkills":  listField(func(f *FeatureSet) *[]string { return &f.SecondarySkills }),
	"tools":            listField(func(f *FeatureSet) *[]string { return &f.Tools }),
	"responsibilities": listField(func(f *FeatureSet) *[]string { return &f.Responsibilities }),
	"projects":         listField(func(f *FeatureSet) *[]string { return &f.Projects }),
	"certifications":   listField(func(f *FeatureSet) *[]string { return &f.Certifications }),
	"leadership":       listField(func(f *FeatureSet) *[]string { return &f.Leadership }),
	"toolProficiency":  listField(func(f *FeatureSet) *[]string { return &f.ToolProficiency }),
	"achievements":     listField(func(f *FeatureSet) *[]string { return &f.Achievements }),
	"softSkills":       listField(func(f *FeatureSet) *[]string { return &f.SoftSkills }),
	"keywords":         listField(func(f *FeatureSet) *[]string { return &f.Keywords }),

	"title":                    textField(func(f *FeatureSet) *string { return &f.Title }),
	"industry":                 textField(func(f *FeatureSet) *string { return &f.Industry }),
	"educationLevel":           textField(func(f *FeatureSet) *string { return &f.EducationLevel }),
	"educationField":           textField(func(f *FeatureSet) *string { return &f.EducationField }),
	"portfolio":                textField(func(f *FeatureSet) *string { return &f.Portfolio }),
	"city":                     textField(func(f *FeatureSet) *string { return &f.City }),
	"country":                  textField(func(f *FeatureSet) *string { return &f.Country }),
	"remotePreference":         textField(func(f *FeatureSet) *string { return &f.RemotePreference }),
	"noticePeriod":             textField(func(f *FeatureSet) *string { return &f.NoticePeriod }),
	"employmentType":           textField(func(f *FeatureSet) *string { return &f.EmploymentType }),
	"skillRecency":             textField(func(f *FeatureSet) *string { return &f.SkillRecency }),
	"employmentStability":      textField(func(f *FeatureSet) *string { return &f.EmploymentStability }),
	"careerProgression":        textField(func(f *FeatureSet) *string { return &f.CareerProgression }),
	"responsibilityComplexity": textField(func(f *FeatureSet) *string { return &f.ResponsibilityComplexity }),
	"resumeStructure":          textField(func(f *FeatureSet) *string { return &f.ResumeStructure }),
	"languageQuality":          textField(func(f *FeatureSet) *string { return &f.LanguageQuality }),

	"relevantExperience": numberField(func(f *FeatureSet) *float64 { return &f.RelevantExperience }),
	"totalExperience":    numberField(func(f *FeatureSet) *float64 { return &f.TotalExperience }),
}
