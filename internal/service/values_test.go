package service_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/catalog/internal/assembler"
	"github.com/dangerclosesec/catalog/internal/domain"
	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/dangerclosesec/catalog/internal/repository"
	"github.com/dangerclosesec/catalog/internal/service"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type valueFixture struct {
	store  *repository.MemoryStore
	schema *service.SchemaService
	values *service.ValueService
}

func newValueFixture(t *testing.T) *valueFixture {
	t.Helper()
	store := repository.NewMemoryStore()
	return &valueFixture{
		store:  store,
		schema: service.NewSchemaService(model.ScopeSurvey, store, nil, nil),
		values: service.NewValueService(model.ScopeSurvey, store, nil),
	}
}

func TestSetValuesRoundTrip(t *testing.T) {
	ctx := context.Background()
	fx := newValueFixture(t)

	m := mustModule(t, fx.schema, "Profile")
	employees := mustField(t, fx.schema, m.ID, "employees", model.FieldNumber)
	public := mustField(t, fx.schema, m.ID, "public", model.FieldBoolean)
	markets := mustField(t, fx.schema, m.ID, "markets", model.FieldMultiselect, "eu", "us", "apac")
	site := mustField(t, fx.schema, m.ID, "site", model.FieldURL)

	require.NoError(t, fx.values.SetValues(ctx, "acme", map[uuid.UUID]any{
		employees.ID: 250,
		public.ID:    true,
		markets.ID:   []string{"eu", "apac"},
		site.ID:      "https://acme.test",
	}))

	got, err := fx.values.GetValues(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]any{
		employees.ID: float64(250),
		public.ID:    true,
		markets.ID:   []string{"eu", "apac"},
		site.ID:      "https://acme.test",
	}, got)

	stored, err := fx.store.Values().Query(ctx, repository.Filter{"field_id": employees.ID})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "250", stored[0].RawValue)
}

func TestSetValuesReplacesOnlySubmittedFields(t *testing.T) {
	ctx := context.Background()
	fx := newValueFixture(t)

	basics := mustModule(t, fx.schema, "Basics")
	finance := mustModule(t, fx.schema, "Finance")
	name := mustField(t, fx.schema, basics.ID, "name", model.FieldText)
	city := mustField(t, fx.schema, basics.ID, "city", model.FieldText)
	revenue := mustField(t, fx.schema, finance.ID, "revenue", model.FieldNumber)

	require.NoError(t, fx.values.SetValues(ctx, "acme", map[uuid.UUID]any{name.ID: "Acme", city.ID: "Oslo"}))
	require.NoError(t, fx.values.SetValues(ctx, "acme", map[uuid.UUID]any{revenue.ID: 1.5}))
	require.NoError(t, fx.values.SetValues(ctx, "acme", map[uuid.UUID]any{name.ID: "Acme AS", city.ID: nil}))
	require.NoError(t, fx.values.SetValues(ctx, "globex", map[uuid.UUID]any{name.ID: "Globex"}))

	got, err := fx.values.GetValues(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]any{name.ID: "Acme AS", revenue.ID: 1.5}, got)

	stored, err := fx.store.Values().Query(ctx, repository.Filter{"entity_id": "acme", "field_id": name.ID})
	require.NoError(t, err)
	assert.Len(t, stored, 1, "at most one value per field and entity")
}

func TestSetValuesUnknownField(t *testing.T) {
	ctx := context.Background()
	fx := newValueFixture(t)

	m := mustModule(t, fx.schema, "Basics")
	name := mustField(t, fx.schema, m.ID, "name", model.FieldText)

	err := fx.values.SetValues(ctx, "acme", map[uuid.UUID]any{name.ID: "Acme", uuid.New(): "x"})
	assert.ErrorIs(t, err, domain.ErrFieldNotFound)

	got, err := fx.values.GetValues(ctx, "acme")
	require.NoError(t, err)
	assert.Empty(t, got, "nothing is written when a field does not resolve")

	assert.ErrorIs(t, fx.values.SetValues(ctx, " ", map[uuid.UUID]any{name.ID: "x"}), domain.ErrInvalidInput)
}

func TestGetValuesDecodesWithLiveType(t *testing.T) {
	ctx := context.Background()
	fx := newValueFixture(t)

	m := mustModule(t, fx.schema, "Basics")
	f := mustField(t, fx.schema, m.ID, "headcount", model.FieldText)
	require.NoError(t, fx.values.SetValues(ctx, "acme", map[uuid.UUID]any{f.ID: "about forty"}))

	ft := model.FieldNumber
	_, err := fx.schema.UpdateField(ctx, f.ID, service.UpdateFieldInput{FieldType: &ft})
	require.NoError(t, err)

	got, err := fx.values.GetValues(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, float64(0), got[f.ID])
}

func TestDeleteEntity(t *testing.T) {
	ctx := context.Background()
	fx := newValueFixture(t)

	m := mustModule(t, fx.schema, "Basics")
	a := mustField(t, fx.schema, m.ID, "a", model.FieldText)
	b := mustField(t, fx.schema, m.ID, "b", model.FieldText)
	require.NoError(t, fx.values.SetValues(ctx, "acme", map[uuid.UUID]any{a.ID: "1", b.ID: "2"}))
	require.NoError(t, fx.values.SetValues(ctx, "globex", map[uuid.UUID]any{a.ID: "3"}))

	removed, err := fx.values.DeleteEntity(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	got, err := fx.values.GetValues(ctx, "globex")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestResponse(t *testing.T) {
	ctx := context.Background()
	fx := newValueFixture(t)

	first := mustModule(t, fx.schema, "First")
	second := mustModule(t, fx.schema, "Second")
	hidden := mustModule(t, fx.schema, "Hidden")

	rating := mustField(t, fx.schema, first.ID, "rating", model.FieldRating)
	comment := mustField(t, fx.schema, first.ID, "comment", model.FieldTextarea)
	consent := mustField(t, fx.schema, second.ID, "consent", model.FieldBoolean)
	channels := mustField(t, fx.schema, second.ID, "channels", model.FieldCheckbox, "email", "phone")
	secret := mustField(t, fx.schema, hidden.ID, "secret", model.FieldText)

	off := false
	_, err := fx.schema.UpdateModule(ctx, hidden.ID, service.UpdateModuleInput{IsActive: &off})
	require.NoError(t, err)

	ordering := service.NewOrderingService(model.ScopeSurvey, fx.store, nil, nil)
	require.NoError(t, ordering.ReorderModules(ctx, []uuid.UUID{second.ID, hidden.ID, first.ID}))

	require.NoError(t, fx.values.SetValues(ctx, "resp-1", map[uuid.UUID]any{
		rating.ID:   "4",
		comment.ID:  "   ",
		consent.ID:  false,
		channels.ID: []string{"email", "phone"},
		secret.ID:   "classified",
	}))

	sections, err := fx.values.Response(ctx, "resp-1")
	require.NoError(t, err)

	want := []assembler.Section{
		{
			Key:        second.ID.String(),
			Name:       "Second",
			OrderIndex: 0,
			Fields: []assembler.FieldValue{
				{Key: "consent", Name: "consent", Value: false, Display: "No"},
				{Key: "channels", Name: "channels", Value: []string{"email", "phone"}, Display: "email, phone"},
			},
		},
		{
			Key:        first.ID.String(),
			Name:       "First",
			OrderIndex: 2,
			Fields: []assembler.FieldValue{
				{Key: "rating", Name: "rating", Value: "4", Display: "4"},
			},
		},
	}
	if diff := cmp.Diff(want, sections); diff != "" {
		t.Errorf("Response() mismatch (-want +got):\n%s", diff)
	}
}
