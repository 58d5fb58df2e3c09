package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/catalog"
	"github.com/dangerclosesec/catalog/internal/auth"
	"github.com/dangerclosesec/catalog/internal/handler"
	"github.com/dangerclosesec/catalog/internal/middleware"
	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t      *testing.T
	router http.Handler
	token  string
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()

	engine, err := catalog.New(catalog.NewConfig(context.Background(), nil))
	require.NoError(t, err)

	tm := auth.NewTokenManager("secret", time.Hour)
	token, err := tm.Generate("ops@example.com", auth.RoleAdmin)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/api", handler.Routes(
		handler.NewSchemaHandler(engine, nil),
		handler.NewValueHandler(engine, nil),
		nil,
		middleware.AdminMiddleware(tm),
	))

	return &apiClient{t: t, router: r, token: token}
}

func (c *apiClient) do(method, path string, body any, admin bool) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestSchemaRoutes(t *testing.T) {
	api := newAPI(t)

	rec := api.do(http.MethodPost, "/api/company/modules", map[string]any{"name": "Basics"}, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(http.MethodPost, "/api/company/modules", map[string]any{"name": "Basics"}, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	basics := decode[model.Module](t, rec)

	rec = api.do(http.MethodPost, "/api/company/modules", map[string]any{"name": "Finance"}, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	finance := decode[model.Module](t, rec)
	assert.Equal(t, 1, finance.OrderIndex)

	fieldsPath := "/api/company/modules/" + basics.ID.String() + "/fields"

	rec = api.do(http.MethodPost, fieldsPath, map[string]any{
		"name": "Company size", "field_key": "Company Size", "field_type": "number",
	}, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	size := decode[model.Field](t, rec)
	assert.Equal(t, "company_size", size.FieldKey)

	rec = api.do(http.MethodPost, fieldsPath, map[string]any{
		"name": "Size", "field_key": "company_size", "field_type": "text",
	}, true)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.do(http.MethodPost, fieldsPath, map[string]any{
		"name": "Tier", "field_key": "tier", "field_type": "select", "options": []string{},
	}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPost, "/api/company/modules/reorder", map[string]any{
		"ids": []uuid.UUID{finance.ID},
	}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPost, "/api/company/modules/reorder", map[string]any{
		"ids": []uuid.UUID{finance.ID, basics.ID},
	}, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/api/company/modules", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	modules := decode[[]model.Module](t, rec)
	require.Len(t, modules, 2)
	assert.Equal(t, finance.ID, modules[0].ID)

	rec = api.do(http.MethodGet, "/api/survey/modules", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]model.Module](t, rec))

	rec = api.do(http.MethodDelete, "/api/company/modules/"+finance.ID.String(), nil, true)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(http.MethodGet, "/api/company/modules/"+finance.ID.String(), nil, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodGet, "/api/company/modules/not-a-uuid", nil, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodGet, "/api/vendor/modules", nil, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValueRoutes(t *testing.T) {
	api := newAPI(t)

	rec := api.do(http.MethodPost, "/api/survey/modules", map[string]any{"name": "Feedback"}, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	module := decode[model.Module](t, rec)

	fieldsPath := "/api/survey/modules/" + module.ID.String() + "/fields"
	rec = api.do(http.MethodPost, fieldsPath, map[string]any{
		"name": "Would recommend", "field_key": "recommend", "field_type": "boolean",
	}, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	recommend := decode[model.Field](t, rec)

	rec = api.do(http.MethodPost, fieldsPath, map[string]any{
		"name": "Score", "field_key": "score", "field_type": "nps",
	}, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	score := decode[model.Field](t, rec)

	valuesPath := "/api/survey/entities/resp-1/values"
	rec = api.do(http.MethodPut, valuesPath, map[string]any{
		"values": map[string]any{recommend.ID.String(): true, score.ID.String(): "9"},
	}, false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[handler.ValuesResponse](t, rec)
	assert.Equal(t, true, got.Values[recommend.ID])
	assert.Equal(t, "9", got.Values[score.ID])

	rec = api.do(http.MethodPut, valuesPath, map[string]any{
		"values": map[string]any{uuid.New().String(): "x"},
	}, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodGet, "/api/survey/entities/resp-1/response", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	sections := decode[handler.SectionsResponse](t, rec).Sections
	require.Len(t, sections, 1)
	assert.Equal(t, "Feedback", sections[0].Name)
	require.Len(t, sections[0].Fields, 2)
	assert.Equal(t, "Yes", sections[0].Fields[0].Display)

	rec = api.do(http.MethodDelete, valuesPath, nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]int{"removed": 2}, decode[map[string]int](t, rec))
}

func TestAssembleRouteKeepsTieOrder(t *testing.T) {
	api := newAPI(t)

	body := `{
		"section_0": {"name": "First unordered", "q": "a"},
		"section_2": {"name": "Ordered", "orderIndex": 2, "q": "b"},
		"section_2_alt": {"name": "Second unordered", "orderIndex": "abc", "q": "c"}
	}`
	rec := api.do(http.MethodPost, "/api/survey/responses/assemble", body, false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	sections := decode[handler.SectionsResponse](t, rec).Sections
	keys := make([]string, 0, len(sections))
	for _, s := range sections {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{"section_2", "section_0", "section_2_alt"}, keys)

	rec = api.do(http.MethodPost, "/api/survey/responses/assemble", `[1, 2]`, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
