package features

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is returned when a document cannot be read as a feature set at all
var ErrInvalidDocument = errors.New("invalid feature document")

// DocumentError describes why a structured document was rejected
type DocumentError struct {
	Reason string
	Err    error
}

func (e *DocumentError) Error() string {
	msg := fmt.Sprintf("invalid feature document: %s", e.Reason)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *DocumentError) Unwrap() error {
	return ErrInvalidDocument
}

// Decode reads a JSON or YAML feature document. Missing and null fields
// become zero values. Fields of the wrong type are zeroed and marked
// malformed instead of failing the whole document; only a document that is
// not a mapping is rejected.
func Decode(data []byte) (*FeatureSet, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &DocumentError{Reason: "document is empty"}
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &DocumentError{Reason: "not valid JSON or YAML", Err: err}
	}

	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, &DocumentError{Reason: fmt.Sprintf("expected an object, got %T", raw)}
	}

	return FromMap(doc), nil
}

// FromMap converts an already-decoded mapping into a FeatureSet
func FromMap(doc map[string]any) *FeatureSet {
	f := &FeatureSet{}

	for _, name := range FieldNames {
		v, present := doc[name]
		if !present || v == nil {
			continue
		}
		acc := fieldAccessors[name]
		switch acc.kind {
		case KindList:
			list, ok := toStringList(v)
			if !ok {
				f.MarkMalformed(name)
				continue
			}
			*acc.list(f) = list
		case KindText:
			s, ok := toScalarString(v)
			if !ok {
				f.MarkMalformed(name)
				continue
			}
			*acc.text(f) = s
		case KindNumber:
			n, ok := toNumber(v)
			if !ok {
				f.MarkMalformed(name)
				continue
			}
			*acc.number(f) = n
		}
	}

	flattenLocation(f, doc["location"])
	f.Normalize()
	return f
}

// flattenLocation folds the nested {city, country} location shape into the
// flat fields when those are not already set.
func flattenLocation(f *FeatureSet, loc any) {
	switch l := loc.(type) {
	case map[string]any:
		if f.City == "" {
			if s, ok := toScalarString(l["city"]); ok {
				f.City = s
			}
		}
		if f.Country == "" {
			if s, ok := toScalarString(l["country"]); ok {
				f.Country = s
			}
		}
	case string:
		if f.City == "" {
			f.City = l
		}
	}
}

func toStringList(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	list := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		s, ok := toScalarString(item)
		if !ok {
			return nil, false
		}
		list = append(list, s)
	}
	return list, true
}

func toScalarString(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", true
	case string:
		return s, true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case uint64:
		return strconv.FormatUint(s, 10), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(s), true
	default:
		return "", false
	}
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return 0, true
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
