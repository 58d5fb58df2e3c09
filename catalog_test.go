package catalog_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/catalog"
	"github.com/dangerclosesec/catalog/internal/domain"
	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/dangerclosesec/catalog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineScopesAreIndependent(t *testing.T) {
	ctx := context.Background()
	engine, err := catalog.New(catalog.NewConfig(ctx, nil))
	require.NoError(t, err)

	company, err := engine.Scope(model.ScopeCompany)
	require.NoError(t, err)
	survey, err := engine.Scope(model.ScopeSurvey)
	require.NoError(t, err)
	again, err := engine.Scope(model.ScopeCompany)
	require.NoError(t, err)
	assert.Same(t, company, again)

	_, err = company.Schema.CreateModule(ctx, service.CreateModuleInput{Name: "Basics"})
	require.NoError(t, err)
	m, err := survey.Schema.CreateModule(ctx, service.CreateModuleInput{Name: "Intro"})
	require.NoError(t, err)
	assert.Equal(t, 0, m.OrderIndex)

	list, err := company.Schema.ListModules(ctx, false)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEngineUnknownScope(t *testing.T) {
	engine, err := catalog.New(nil)
	require.NoError(t, err)

	_, err = engine.Scope("vendor")
	assert.ErrorIs(t, err, domain.ErrInvalidScope)
}
