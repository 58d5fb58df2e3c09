package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/catalog/internal/audit"
	"github.com/dangerclosesec/catalog/internal/auth"
	"github.com/dangerclosesec/catalog/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminMiddleware(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)

	var actor string
	h := middleware.AdminMiddleware(tm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor = audit.ActorFrom(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	admin, err := tm.Generate("ops@example.com", auth.RoleAdmin)
	require.NoError(t, err)
	reader, err := tm.Generate("someone", "reader")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer abc", http.StatusUnauthorized},
		{"not admin", "Bearer " + reader, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/company/modules", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}

	assert.Equal(t, "ops@example.com", actor)
}
