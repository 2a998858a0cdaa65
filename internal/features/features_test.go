package features

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_JSONDocument(t *testing.T) {
	doc := `{
		"coreSkills": ["React", "Node.js"],
		"title": "  Frontend Engineer ",
		"totalExperience": 4.5,
		"relevantExperience": "3"
	}`

	f, err := Decode([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"React", "Node.js"}, f.CoreSkills)
	assert.Equal(t, "Frontend Engineer", f.Title)
	assert.Equal(t, 4.5, f.TotalExperience)
	assert.Equal(t, 3.0, f.RelevantExperience)
	assert.Empty(t, f.Malformed())
}

func TestDecode_YAMLDocument(t *testing.T) {
	doc := `
coreSkills:
  - Go
  - Kubernetes
industry: fintech
noticePeriod: 30
`
	f, err := Decode([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "Kubernetes"}, f.CoreSkills)
	assert.Equal(t, "fintech", f.Industry)
	assert.Equal(t, "30", f.NoticePeriod)
}

func TestDecode_MissingFieldsBecomeZeroValues(t *testing.T) {
	f, err := Decode([]byte(`{"title": null}`))
	require.NoError(t, err)

	assert.NotNil(t, f.Tools)
	assert.Len(t, f.Tools, 0)
	assert.Equal(t, "", f.Title)
	assert.Equal(t, 0.0, f.TotalExperience)

	// Arrays must serialize as [] rather than null
	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tools":[]`)
}

func TestDecode_WrongTypesAreMarkedMalformed(t *testing.T) {
	doc := `{"coreSkills": "React", "title": ["a", "b"], "totalExperience": "many", "tools": ["Docker"]}`

	f, err := Decode([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"coreSkills", "title", "totalExperience"}, f.Malformed())
	assert.Equal(t, KindInvalid, f.Field("coreSkills").Kind)
	assert.Equal(t, KindInvalid, f.Field("title").Kind)
	assert.Equal(t, KindInvalid, f.Field("totalExperience").Kind)
	assert.Equal(t, KindList, f.Field("tools").Kind)
	assert.Equal(t, []string{}, f.CoreSkills)
}

func TestDecode_NestedLocationIsFlattened(t *testing.T) {
	f, err := Decode([]byte(`{"location": {"city": "Pune", "country": "India"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Pune", f.City)
	assert.Equal(t, "India", f.Country)

	f, err = Decode([]byte(`{"city": "Mumbai", "location": {"city": "Pune", "country": "India"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", f.City, "flat field wins over nested shape")
	assert.Equal(t, "India", f.Country)
}

func TestDecode_RejectsNonObjects(t *testing.T) {
	for _, doc := range []string{"", "   ", "[1,2,3]", "42", "{not json"} {
		_, err := Decode([]byte(doc))
		require.Error(t, err, "document %q", doc)
		assert.True(t, errors.Is(err, ErrInvalidDocument), "document %q", doc)
	}
}

func TestFeatureSet_Validate(t *testing.T) {
	var nilSet *FeatureSet
	assert.Error(t, nilSet.Validate())

	f := Empty()
	assert.NoError(t, f.Validate())

	f.TotalExperience = -1
	assert.Error(t, f.Validate())

	f.TotalExperience = math.NaN()
	assert.Error(t, f.Validate())

	f.TotalExperience = 2
	f.RelevantExperience = math.Inf(1)
	assert.Error(t, f.Validate())
}

func TestFeatureSet_Validate_ReportsFieldsInOrder(t *testing.T) {
	f := Empty()
	f.RelevantExperience = -1
	f.TotalExperience = math.NaN()

	for i := 0; i < 20; i++ {
		err := f.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "relevantExperience")
	}
}

func TestFeatureSet_FieldCoversEveryName(t *testing.T) {
	f := Empty()
	for _, name := range FieldNames {
		v := f.Field(name)
		assert.NotEqual(t, KindInvalid, v.Kind, "field %s", name)
		assert.True(t, v.IsBlank(), "field %s", name)
	}
	assert.Equal(t, KindInvalid, f.Field("nonexistent").Kind)
}

func TestFeatureSet_Clone(t *testing.T) {
	f := Empty()
	f.CoreSkills = []string{"Go"}
	f.MarkMalformed("title")

	c := f.Clone()
	c.CoreSkills[0] = "Rust"

	assert.Equal(t, "Go", f.CoreSkills[0])
	assert.Equal(t, []string{"title"}, c.Malformed())
}

func TestValue_IsBlank(t *testing.T) {
	assert.True(t, ListValue([]string{" ", ""}).IsBlank())
	assert.False(t, ListValue([]string{"go"}).IsBlank())
	assert.True(t, TextValue("  ").IsBlank())
	assert.False(t, NumberValue(0.5).IsBlank())
	assert.True(t, InvalidValue().IsBlank())
}

func TestStructuredExtractor_Extract(t *testing.T) {
	e := NewStructuredExtractor()

	resume, job, err := e.Extract(context.Background(),
		`{"relevantExperience": 4, "totalExperience": 2}`,
		`{"totalExperience": 5}`,
	)
	require.NoError(t, err)
	assert.Equal(t, 4.0, resume.TotalExperience, "total raised to relevant")
	assert.Equal(t, 5.0, job.TotalExperience)

	_, _, err = e.Extract(context.Background(), `{}`, `[]`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	assert.Contains(t, err.Error(), "job")

	e.KeepExperienceAsIs = true
	resume, _, err = e.Extract(context.Background(), `{"relevantExperience": 4, "totalExperience": 2}`, `{}`)
	require.NoError(t, err)
	assert.Equal(t, 2.0, resume.TotalExperience)
}

func TestStructuredExtractor_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewStructuredExtractor().Extract(ctx, `{}`, `{}`)
	assert.ErrorIs(t, err, context.Canceled)
}
