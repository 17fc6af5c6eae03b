package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	svc := NewJWTTokenService(testSecret, "1h", nopLogger{})
	token, err := svc.CreateToken("billing-service")
	require.NoError(t, err)

	resolver := &stubResolver{address: praca, found: true}
	router := newTestRouter(svc, resolver, &stubStore{}, &stubMetrics{})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing header", status: http.StatusUnauthorized},
		{name: "single field", header: token, status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, status: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer abc.def.ghi", status: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + token, status: http.StatusOK},
		{name: "scheme is case insensitive", header: "bearer " + token, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/cep/01001-000", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
	assert.Len(t, resolver.calls, 2, "only authorized requests reach the resolver")
}

func TestAuthMiddlewareLeavesHealthOpen(t *testing.T) {
	svc := NewJWTTokenService(testSecret, "1h", nopLogger{})
	router := newTestRouter(svc, &stubResolver{}, &stubStore{}, &stubMetrics{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
