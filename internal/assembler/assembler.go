// Package assembler turns a stored, loosely-typed response map into ordered,
// display-ready sections.
//
// A raw map holds one entry per section (usually keyed by module id). Each
// section is an object that may carry a name, an orderIndex and its fields,
// either under "fields"/"responses" or as its remaining keys. Sections are
// sorted by orderIndex; a missing or malformed orderIndex ranks as
// UnorderedIndex and ties keep the raw map's key order.
package assembler

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/dangerclosesec/catalog/internal/model"
)

// UnorderedIndex is the rank given to sections without a usable orderIndex.
const UnorderedIndex = 999

// maxOrderIndex is the largest integer a float64 holds exactly. Larger ranks
// are clamped to it.
const maxOrderIndex = 1 << 53

// Section is one rendered group of answered fields.
type Section struct {
	Key        string       `json:"key"`
	Name       string       `json:"name"`
	OrderIndex int64        `json:"order_index"`
	Fields     []FieldValue `json:"fields"`
}

// FieldValue is one non-empty answer within a section.
type FieldValue struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Value   any    `json:"value"`
	Display string `json:"display"`
}

var (
	nameAttrs   = []string{"name", "moduleName", "title"}
	labelAttrs  = []string{"label", "name", "question"}
	fieldsAttrs = []string{"fields", "responses"}
	reserved    = map[string]bool{
		"name": true, "moduleName": true, "title": true, "orderIndex": true,
		"moduleId": true, "fields": true, "responses": true, "description": true,
	}
)

// Assemble builds the ordered sections of raw. schema may be nil, in which
// case values are rendered as stored.
func Assemble(raw *Object, schema *Schema) []Section {
	sections := make([]Section, 0, raw.Len())

	for _, key := range raw.Keys() {
		v, _ := raw.Get(key)
		obj, ok := v.(*Object)
		if !ok {
			continue
		}

		module := schema.module(key, obj)
		if module != nil && !module.IsActive {
			continue
		}

		orderIndex, _ := obj.Get("orderIndex")
		section := Section{
			Key:        key,
			Name:       sectionName(key, obj, module),
			OrderIndex: ResolveOrderIndex(orderIndex),
			Fields:     []FieldValue{},
		}

		for _, entry := range sectionEntries(obj) {
			fv, ok := schema.render(module, entry)
			if ok {
				section.Fields = append(section.Fields, fv)
			}
		}

		sections = append(sections, section)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].OrderIndex < sections[j].OrderIndex
	})

	return sections
}

// ResolveOrderIndex returns v as a non-negative integer rank, or
// UnorderedIndex when v is absent, null, non-numeric, fractional or negative.
func ResolveOrderIndex(v any) int64 {
	var f float64
	switch t := v.(type) {
	case json.Number:
		n, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return UnorderedIndex
		}
		f = n
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return UnorderedIndex
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return UnorderedIndex
		}
		f = n
	default:
		return UnorderedIndex
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) {
		return UnorderedIndex
	}
	if f > maxOrderIndex {
		return maxOrderIndex
	}
	return int64(f)
}

// entry is one field as found in the raw section.
type entry struct {
	key   string
	label string
	value any
}

func sectionEntries(obj *Object) []entry {
	for _, attr := range fieldsAttrs {
		v, ok := obj.Get(attr)
		if !ok {
			continue
		}
		switch t := v.(type) {
		case *Object:
			return objectEntries(t, nil)
		case []any:
			return arrayEntries(t)
		}
	}
	return objectEntries(obj, reserved)
}

func objectEntries(obj *Object, skip map[string]bool) []entry {
	var out []entry
	for _, key := range obj.Keys() {
		if skip[key] {
			continue
		}
		v, _ := obj.Get(key)
		if inner, ok := v.(*Object); ok {
			if value, ok := inner.Get("value"); ok {
				out = append(out, entry{key: key, label: firstString(inner, labelAttrs), value: value})
				continue
			}
		}
		out = append(out, entry{key: key, value: v})
	}
	return out
}

func arrayEntries(arr []any) []entry {
	var out []entry
	for _, item := range arr {
		obj, ok := item.(*Object)
		if !ok {
			continue
		}
		value, _ := obj.Get("value")
		key := firstString(obj, []string{"key", "fieldKey", "field_key", "id"})
		label := firstString(obj, labelAttrs)
		if key == "" {
			key = label
		}
		out = append(out, entry{key: key, label: label, value: value})
	}
	return out
}

func sectionName(key string, obj *Object, module *model.Module) string {
	if name := firstString(obj, nameAttrs); name != "" {
		return name
	}
	if module != nil {
		return module.Name
	}
	return key
}

func firstString(obj *Object, attrs []string) string {
	for _, attr := range attrs {
		if v, ok := obj.Get(attr); ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return ""
}
