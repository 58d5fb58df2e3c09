// Package coerce maps a field's declared type to the parse and serialize logic
// for a single stored value. Every value is persisted as a string; Decode is
// total and degrades malformed data to the type's zero value so stored data
// written under an older schema never blocks rendering.
package coerce

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dangerclosesec/catalog/internal/model"
)

// Delimiter joins the tokens of multi-valued fields.
const Delimiter = ","

// Decode interprets raw under the given field type. The result is a bool for
// boolean fields, a float64 for number fields, a []string for multiselect and
// checkbox fields and the raw string for everything else.
func Decode(ft model.FieldType, raw string) any {
	switch ft {
	case model.FieldBoolean:
		return raw == "true"
	case model.FieldNumber:
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return float64(0)
		}
		return n
	case model.FieldMultiselect, model.FieldCheckbox:
		return Split(raw)
	default:
		return raw
	}
}

// Encode serializes a typed value for storage under the given field type.
// Values of an unexpected Go type are stringified rather than rejected.
func Encode(ft model.FieldType, v any) string {
	switch ft {
	case model.FieldBoolean:
		if truthy(v) {
			return "true"
		}
		return "false"
	case model.FieldNumber:
		return encodeNumber(v)
	case model.FieldMultiselect, model.FieldCheckbox:
		return Join(tokens(v))
	default:
		return scalar(v)
	}
}

// Split breaks a stored multi-valued string into trimmed tokens in stored order.
func Split(raw string) []string {
	out := []string{}
	if strings.TrimSpace(raw) == "" {
		return out
	}
	for _, tok := range strings.Split(raw, Delimiter) {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// Join is the inverse of Split.
func Join(tokens []string) string {
	clean := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok = strings.TrimSpace(tok); tok != "" {
			clean = append(clean, tok)
		}
	}
	return strings.Join(clean, Delimiter)
}

// IsEmpty reports whether a decoded value has nothing to render.
func IsEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case *string:
		return t == nil || *t == ""
	case []string:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}
	return false
}

// Display renders a decoded value as display text.
func Display(ft model.FieldType, v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case bool:
		if t {
			return "Yes"
		}
		return "No"
	case []string:
		return strings.Join(t, ", ")
	case []any:
		parts := make([]string, 0, len(t))
		for _, p := range t {
			parts = append(parts, scalar(p))
		}
		return strings.Join(parts, ", ")
	}
	if ft.IsMultiValued() {
		return strings.Join(Split(scalar(v)), ", ")
	}
	return scalar(v)
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case *bool:
		return t != nil && *t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return err == nil && b
	}
	return false
}

func encodeNumber(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case string:
		return strings.TrimSpace(t)
	}
	return scalar(v)
}

func tokens(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, p := range t {
			out = append(out, scalar(p))
		}
		return out
	case string:
		return strings.Split(t, Delimiter)
	}
	return []string{scalar(v)}
}

func scalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case *string:
		if t == nil {
			return ""
		}
		return *t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}
