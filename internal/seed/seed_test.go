package seed_test

import (
	"context"
	"strings"
	"testing"

	"github.com/dangerclosesec/catalog/internal/domain"
	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/dangerclosesec/catalog/internal/repository"
	"github.com/dangerclosesec/catalog/internal/seed"
	"github.com/dangerclosesec/catalog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemaYAML = `
scope: company
modules:
  - name: Basics
    fields:
      - key: Company Size
        name: Company size
        type: number
        required: true
      - key: tier
        name: Tier
        type: select
        options: [free, pro]
  - name: Contact
    description: How to reach them
    fields:
      - key: website
        type: url
---
scope: survey
modules:
  - name: Feedback
    fields:
      - key: nps
        name: Likelihood to recommend
        type: nps
`

func TestParse(t *testing.T) {
	docs, err := seed.Parse(strings.NewReader(schemaYAML))
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, model.ScopeCompany, docs[0].ScopeName())
	assert.Equal(t, model.ScopeSurvey, docs[1].ScopeName())
	require.Len(t, docs[0].Modules, 2)
	assert.Equal(t, []string{"free", "pro"}, docs[0].Modules[0].Fields[1].Options)
}

func TestParseRejects(t *testing.T) {
	_, err := seed.Parse(strings.NewReader("scope: vendor\nmodules: []\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidScope)

	_, err = seed.Parse(strings.NewReader("scope: company\nmodulez: []\n"))
	assert.Error(t, err)
}

func TestApplyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	docs, err := seed.Parse(strings.NewReader(schemaYAML))
	require.NoError(t, err)

	schema := service.NewSchemaService(model.ScopeCompany, repository.NewMemoryStore(), nil, nil)

	res, err := seed.Apply(ctx, schema, docs[0])
	require.NoError(t, err)
	assert.Equal(t, seed.Result{ModulesCreated: 2, FieldsCreated: 3}, res)

	res, err = seed.Apply(ctx, schema, docs[0])
	require.NoError(t, err)
	assert.Equal(t, seed.Result{ModulesUpdated: 2, FieldsUpdated: 3}, res)

	modules, err := schema.ListModules(ctx, false)
	require.NoError(t, err)
	require.Len(t, modules, 2)
	assert.Equal(t, "Basics", modules[0].Name)
	require.NotNil(t, modules[1].Description)
	assert.Equal(t, "How to reach them", *modules[1].Description)

	fields, err := schema.ListFields(ctx, modules[0].ID, false)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "company_size", fields[0].FieldKey)
	assert.True(t, fields[0].IsRequired)
	assert.Equal(t, 1, fields[1].OrderIndex)
}

func TestApplyStopsOnInvalidField(t *testing.T) {
	ctx := context.Background()
	docs, err := seed.Parse(strings.NewReader(`
scope: survey
modules:
  - name: Broken
    fields:
      - key: pick
        type: multiselect
`))
	require.NoError(t, err)

	schema := service.NewSchemaService(model.ScopeSurvey, repository.NewMemoryStore(), nil, nil)
	res, err := seed.Apply(ctx, schema, docs[0])
	assert.ErrorIs(t, err, domain.ErrInvalidOptions)
	assert.Equal(t, 1, res.ModulesCreated)
}
