package analysis

import (
	"strings"

	bleveanalysis "github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/token/porter"
)

// TextKind selects the synonym table used by Canonicalize
type TextKind string

const (
	KindTitle     TextKind = "title"
	KindEducation TextKind = "education"
	KindIndustry  TextKind = "industry"
	KindGeneric   TextKind = "generic"
)

// synonymGroup maps one canonical form to the phrases it absorbs
type synonymGroup struct {
	canonical string
	synonyms  []string
}

// Tables are scanned in order; the first matching group wins.
var synonymTables = map[TextKind][]synonymGroup{
	KindTitle: {
		{"software developer", []string{"web developer", "software engineer", "developer", "programmer", "coder", "backend developer", "frontend developer", "backend engineer", "frontend engineer"}},
		{"full stack developer", []string{"fullstack developer", "full-stack engineer", "fullstack engineer", "full stack engineer"}},
		{"react developer", []string{"react dev", "reactjs developer", "frontend developer", "frontend engineer", "ui developer"}},
		{"devops engineer", []string{"devops", "site reliability engineer", "sre", "infrastructure engineer", "platform engineer"}},
		{"data scientist", []string{"ml engineer", "machine learning engineer", "ai engineer", "data engineer"}},
		{"qa engineer", []string{"qa", "test engineer", "sdet", "quality engineer", "tester", "automation engineer"}},
		{"product manager", []string{"pm", "product owner", "po"}},
		{"software engineer", []string{"software developer", "engineer", "developer"}},
	},
	KindEducation: {
		{"bachelor", []string{"btech", "be", "bs", "bsc", "ba", "bachelor of engineering", "bachelor of technology", "bachelor of science", "bca", "bcom", "bba", "bachelors"}},
		{"master", []string{"mtech", "me", "ms", "msc", "ma", "mca", "master of technology", "master of science", "master of computer applications", "mba", "mcom", "masters"}},
		{"phd", []string{"doctorate", "doctoral", "ph.d", "doctor of philosophy"}},
		{"diploma", []string{"post graduate diploma", "pgdm", "advanced diploma"}},
	},
	KindIndustry: {
		{"technology", []string{"it", "software", "tech", "information technology", "saas", "software services"}},
		{"finance", []string{"fintech", "banking", "financial services", "investment"}},
		{"healthcare", []string{"health", "medical", "pharma", "pharmaceutical", "biotech"}},
		{"ecommerce", []string{"e-commerce", "retail", "online retail", "marketplace"}},
	},
}

// Canonicalize folds text to the canonical form of its synonym group for the
// given kind. Unknown text comes back lower-cased and trimmed so that two
// unknown strings still compare consistently.
func Canonicalize(text string, kind TextKind) string {
	lower := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	if lower == "" {
		return ""
	}

	words := phraseWords(lower)
	for _, group := range synonymTables[kind] {
		if containsPhrase(words, phraseWords(group.canonical)) {
			return group.canonical
		}
		for _, syn := range group.synonyms {
			synWords := phraseWords(syn)
			if containsPhrase(words, synWords) || containsPhrase(synWords, words) {
				return group.canonical
			}
		}
	}

	return lower
}

// AreSynonyms reports whether a and b fold to the same canonical form
func AreSynonyms(a, b string, kind TextKind) bool {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return false
	}
	return Canonicalize(a, kind) == Canonicalize(b, kind)
}

// phraseWords reduces a phrase to space-separated alphanumeric words.
// Dots and apostrophes are dropped so "ph.d" and "phd" agree and
// "bachelor's" reads as "bachelors"; other punctuation splits words.
func phraseWords(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r == '.', r == '\'', r == '’':
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '+', r == '#':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// containsPhrase matches needle against hay on word boundaries
func containsPhrase(hay, needle string) bool {
	if hay == "" || needle == "" {
		return false
	}
	return strings.Contains(" "+hay+" ", " "+needle+" ")
}

// skillAliases maps common technology spellings to one family name
var skillAliases = map[string]string{
	"golang":                "go",
	"go lang":               "go",
	"js":                    "javascript",
	"ecmascript":            "javascript",
	"ts":                    "typescript",
	"k8s":                   "kubernetes",
	"postgres":              "postgresql",
	"mongo":                 "mongodb",
	"amazon web services":   "aws",
	"gcp":                   "google cloud",
	"google cloud platform": "google cloud",
	"ms sql":                "sql server",
	"mssql":                 "sql server",
	"c sharp":               "c#",
	"cpp":                   "c++",
}

// SkillFamily folds near-duplicate technology names into one bucket so that
// "React", "ReactJS" and "react.js" compare equal.
func SkillFamily(s string) string {
	lower := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	if lower == "" {
		return ""
	}
	if alias, ok := skillAliases[lower]; ok {
		return alias
	}

	family := strings.ReplaceAll(lower, ".", "")
	if len(family) > 3 && strings.HasSuffix(family, "js") {
		family = strings.TrimRight(strings.TrimSuffix(family, "js"), " -_")
	}
	if alias, ok := skillAliases[family]; ok {
		return alias
	}
	return family
}

var stemmer = porter.NewPorterStemmer()

// Stem reduces an already lower-cased word to its porter stem
func Stem(word string) string {
	stream := bleveanalysis.TokenStream{&bleveanalysis.Token{Term: []byte(word)}}
	stream = stemmer.Filter(stream)
	return string(stream[0].Term)
}
