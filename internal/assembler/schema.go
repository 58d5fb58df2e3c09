package assembler

import (
	"encoding/json"
	"strings"

	"github.com/dangerclosesec/catalog/internal/coerce"
	"github.com/dangerclosesec/catalog/internal/model"
)

// Schema resolves raw section and field keys to their live definitions.
type Schema struct {
	modules map[string]*model.Module
	fields  map[string]map[string]*model.Field
	byID    map[string]*model.Field
}

// NewSchema indexes modules by id and fields by id and by key within module.
func NewSchema(modules []*model.Module, fields []*model.Field) *Schema {
	s := &Schema{
		modules: make(map[string]*model.Module, len(modules)),
		fields:  make(map[string]map[string]*model.Field),
		byID:    make(map[string]*model.Field, len(fields)),
	}
	for _, m := range modules {
		s.modules[m.ID.String()] = m
	}
	for _, f := range fields {
		mid := f.ModuleID.String()
		if s.fields[mid] == nil {
			s.fields[mid] = map[string]*model.Field{}
		}
		s.fields[mid][f.FieldKey] = f
		s.byID[f.ID.String()] = f
	}
	return s
}

func (s *Schema) module(key string, obj *Object) *model.Module {
	if s == nil {
		return nil
	}
	if m, ok := s.modules[key]; ok {
		return m
	}
	if id := firstString(obj, []string{"moduleId"}); id != "" {
		return s.modules[id]
	}
	return nil
}

func (s *Schema) field(module *model.Module, key string) *model.Field {
	if s == nil {
		return nil
	}
	if module != nil {
		if f, ok := s.fields[module.ID.String()][strings.ToLower(key)]; ok {
			return f
		}
	}
	return s.byID[key]
}

// render decodes and labels one entry, reporting false when it has nothing to show.
func (s *Schema) render(module *model.Module, e entry) (FieldValue, bool) {
	if coerce.IsEmpty(e.value) {
		return FieldValue{}, false
	}

	field := s.field(module, e.key)
	if field != nil && !field.IsActive {
		return FieldValue{}, false
	}

	var ft model.FieldType
	value := normalize(e.value)
	if field != nil {
		ft = field.FieldType
		if raw, ok := value.(string); ok {
			value = coerce.Decode(ft, raw)
		} else if n, ok := value.(float64); ok && ft != model.FieldNumber {
			value = coerce.Decode(ft, coerce.Encode(model.FieldNumber, n))
		}
	}
	if coerce.IsEmpty(value) {
		return FieldValue{}, false
	}

	name := e.label
	if name == "" && field != nil {
		name = field.Name
	}
	if name == "" {
		name = e.key
	}

	return FieldValue{
		Key:     e.key,
		Name:    name,
		Value:   value,
		Display: coerce.Display(ft, value),
	}, true
}

// normalize converts decoded JSON numbers and nested objects to plain values.
func normalize(v any) any {
	switch t := v.(type) {
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalize(item)
		}
		return out
	}
	return v
}
