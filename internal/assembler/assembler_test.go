package assembler_test

import (
	"encoding/json"
	"testing"

	"github.com/dangerclosesec/catalog/internal/assembler"
	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionKeys(sections []assembler.Section) []string {
	keys := make([]string, 0, len(sections))
	for _, s := range sections {
		keys = append(keys, s.Key)
	}
	return keys
}

func TestAssembleOrderingTieBreak(t *testing.T) {
	raw, err := assembler.ParseObject([]byte(`{
		"section_0":     {"name": "First",  "fields": {"q": "a"}},
		"section_2":     {"name": "Second", "orderIndex": 2, "fields": {"q": "b"}},
		"section_2_alt": {"name": "Third",  "orderIndex": "abc", "fields": {"q": "c"}}
	}`))
	require.NoError(t, err)

	sections := assembler.Assemble(raw, nil)

	assert.Equal(t, []string{"section_2", "section_0", "section_2_alt"}, sectionKeys(sections))
	assert.Equal(t, []int64{2, assembler.UnorderedIndex, assembler.UnorderedIndex},
		[]int64{sections[0].OrderIndex, sections[1].OrderIndex, sections[2].OrderIndex})
}

func TestAssembleKeepsInputOrderAmongEqualRanks(t *testing.T) {
	raw := assembler.NewObject().
		Set("z", assembler.NewObject().Set("orderIndex", json.Number("1")).Set("a", "1")).
		Set("m", assembler.NewObject().Set("orderIndex", nil).Set("a", "1")).
		Set("a", assembler.NewObject().Set("orderIndex", json.Number("1")).Set("a", "1")).
		Set("b", assembler.NewObject().Set("orderIndex", json.Number("-3")).Set("a", "1")).
		Set("c", assembler.NewObject().Set("orderIndex", json.Number("0")).Set("a", "1"))

	sections := assembler.Assemble(raw, nil)

	assert.Equal(t, []string{"c", "z", "a", "m", "b"}, sectionKeys(sections))
}

func TestAssembleRanksLargeIndexAfterUnordered(t *testing.T) {
	raw, err := assembler.ParseObject([]byte(`{
		"big": {"orderIndex": 5000000000, "fields": {"q": "a"}},
		"bad": {"orderIndex": "abc", "fields": {"q": "b"}},
		"one": {"orderIndex": 1, "fields": {"q": "c"}}
	}`))
	require.NoError(t, err)

	sections := assembler.Assemble(raw, nil)

	assert.Equal(t, []string{"one", "bad", "big"}, sectionKeys(sections))
	assert.Equal(t, int64(5000000000), sections[2].OrderIndex)
}

func TestResolveOrderIndex(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
	}{
		{"absent", nil, 999},
		{"json integer", json.Number("4"), 4},
		{"json zero", json.Number("0"), 0},
		{"json fraction", json.Number("1.5"), 999},
		{"json negative", json.Number("-1"), 999},
		{"json integral float", json.Number("3.0"), 3},
		{"numeric string", "7", 7},
		{"padded numeric string", " 8 ", 8},
		{"empty string", "", 999},
		{"word", "abc", 999},
		{"bool", true, 999},
		{"float", 2.0, 2},
		{"int", 5, 5},
		{"int64", int64(6), 6},
		{"large json integer", json.Number("5000000000"), 5000000000},
		{"large numeric string", "4294967296", 4294967296},
		{"beyond exact float range", json.Number("1e300"), 1 << 53},
		{"object", assembler.NewObject(), 999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, assembler.ResolveOrderIndex(tt.in))
		})
	}
}

func TestAssembleSuppressesEmptyValues(t *testing.T) {
	raw, err := assembler.ParseObject([]byte(`{
		"m1": {
			"name": "Profile",
			"orderIndex": 0,
			"fields": {
				"blank":   "",
				"nothing": null,
				"spaces":  "   ",
				"none":    [],
				"wrapped": {"label": "Wrapped", "value": ""},
				"kept":    "value",
				"zero":    0,
				"no":      false
			}
		}
	}`))
	require.NoError(t, err)

	sections := assembler.Assemble(raw, nil)
	require.Len(t, sections, 1)

	want := []assembler.FieldValue{
		{Key: "spaces", Name: "spaces", Value: "   ", Display: "   "},
		{Key: "kept", Name: "kept", Value: "value", Display: "value"},
		{Key: "zero", Name: "zero", Value: float64(0), Display: "0"},
		{Key: "no", Name: "no", Value: false, Display: "No"},
	}
	if diff := cmp.Diff(want, sections[0].Fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleFieldShapes(t *testing.T) {
	raw, err := assembler.ParseObject([]byte(`{
		"inline": {"moduleName": "Inline", "orderIndex": 1, "b": "second", "a": "first"},
		"listed": {"title": "Listed", "orderIndex": 0, "responses": [
			{"key": "q2", "label": "Question two", "value": "yes"},
			{"label": "Question one", "value": "no"},
			"ignored"
		]}
	}`))
	require.NoError(t, err)

	sections := assembler.Assemble(raw, nil)

	want := []assembler.Section{
		{Key: "listed", Name: "Listed", OrderIndex: 0, Fields: []assembler.FieldValue{
			{Key: "q2", Name: "Question two", Value: "yes", Display: "yes"},
			{Key: "Question one", Name: "Question one", Value: "no", Display: "no"},
		}},
		{Key: "inline", Name: "Inline", OrderIndex: 1, Fields: []assembler.FieldValue{
			{Key: "b", Name: "b", Value: "second", Display: "second"},
			{Key: "a", Name: "a", Value: "first", Display: "first"},
		}},
	}
	if diff := cmp.Diff(want, sections); diff != "" {
		t.Errorf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleWithSchema(t *testing.T) {
	active := &model.Module{ID: uuid.New(), Name: "Capabilities", IsActive: true}
	inactive := &model.Module{ID: uuid.New(), Name: "Legacy", IsActive: false}
	fields := []*model.Field{
		{ID: uuid.New(), ModuleID: active.ID, Name: "Remote friendly", FieldKey: "remote", FieldType: model.FieldBoolean, IsActive: true},
		{ID: uuid.New(), ModuleID: active.ID, Name: "Industries", FieldKey: "industries", FieldType: model.FieldMultiselect, Options: []string{"Retail", "Health"}, IsActive: true},
		{ID: uuid.New(), ModuleID: active.ID, Name: "Headcount", FieldKey: "headcount", FieldType: model.FieldNumber, IsActive: true},
		{ID: uuid.New(), ModuleID: active.ID, Name: "Hidden", FieldKey: "hidden", FieldType: model.FieldText, IsActive: false},
	}
	schema := assembler.NewSchema([]*model.Module{active, inactive}, fields)

	raw := assembler.NewObject().
		Set(inactive.ID.String(), assembler.NewObject().Set("orderIndex", json.Number("0")).Set("x", "1")).
		Set(active.ID.String(), assembler.NewObject().
			Set("orderIndex", json.Number("1")).
			Set("fields", assembler.NewObject().
				Set("remote", "true").
				Set("industries", "Health,Retail").
				Set("headcount", "250").
				Set("hidden", "secret")))

	sections := assembler.Assemble(raw, schema)
	require.Len(t, sections, 1)

	want := assembler.Section{
		Key:        active.ID.String(),
		Name:       "Capabilities",
		OrderIndex: 1,
		Fields: []assembler.FieldValue{
			{Key: "remote", Name: "Remote friendly", Value: true, Display: "Yes"},
			{Key: "industries", Name: "Industries", Value: []string{"Health", "Retail"}, Display: "Health, Retail"},
			{Key: "headcount", Name: "Headcount", Value: float64(250), Display: "250"},
		},
	}
	if diff := cmp.Diff(want, sections[0]); diff != "" {
		t.Errorf("section mismatch (-want +got):\n%s", diff)
	}
}

func TestObjectRoundTrip(t *testing.T) {
	in := `{"b":1,"a":{"y":[1,"x",null],"x":true}}`
	obj, err := assembler.ParseObject([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, obj.Keys())

	out, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
	assert.Equal(t, in, string(out))
}

func TestParseObjectRejectsNonObjects(t *testing.T) {
	_, err := assembler.ParseObject([]byte(`[1,2]`))
	assert.Error(t, err)

	_, err = assembler.ParseObject([]byte(`{"a":1} {"b":2}`))
	assert.Error(t, err)

	_, err = assembler.ParseObject([]byte(`{"a":`))
	assert.Error(t, err)

	_, err = assembler.ParseObject([]byte(`{"a":{"q":"x"}} }}garbage`))
	assert.Error(t, err)

	_, err = assembler.ParseObject([]byte(`{"a":1} garbage`))
	assert.Error(t, err)

	obj, err := assembler.ParseObject([]byte("{\"a\":1}\n  "))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, obj.Keys())
}
