package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/sm8ta/cep_cache_microservice/internal/config"
	"github.com/sm8ta/cep_cache_microservice/internal/core/domain"
	"github.com/sm8ta/cep_cache_microservice/internal/core/ports"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type stubResolver struct {
	address *domain.Address
	found   bool
	err     error
	calls   []string
}

func (r *stubResolver) Resolve(_ context.Context, raw string) (*domain.Address, bool, error) {
	r.calls = append(r.calls, raw)
	return r.address, r.found, r.err
}

type stubStore struct {
	pingErr error
}

func (s *stubStore) Get(context.Context, domain.CEP) (*domain.Address, bool, error) {
	return nil, false, nil
}
func (s *stubStore) Put(context.Context, *domain.Address) error { return nil }
func (s *stubStore) Ping(context.Context) error                 { return s.pingErr }

type nopLogger struct{}

func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Warn(string, map[string]interface{})  {}

type stubMetrics struct {
	requests int
}

func (m *stubMetrics) IncrementCounter(string, map[string]string)              {}
func (m *stubMetrics) RecordDuration(string, time.Duration, map[string]string) {}
func (m *stubMetrics) RecordMetrics(*gin.Context, time.Time)                   { m.requests++ }
func (m *stubMetrics) RecordResolution(string)                                 {}
func (m *stubMetrics) RecordStoreWriteFailure()                                {}

var praca = &domain.Address{
	CEP:          "01001-000",
	Street:       "Praça da Sé",
	Complement:   "lado ímpar",
	Neighborhood: "Sé",
	City:         "São Paulo",
	State:        "SP",
	IBGE:         "3550308",
	DDD:          "11",
}

func newTestRouter(tokenService ports.TokenService, resolver ports.AddressResolver, store ports.AddressStore, metrics ports.MetricsPort) *Router {
	router, err := NewRouter(
		&config.HTTP{Env: "local", Port: "8080", AllowedOrigins: "*"},
		tokenService,
		NewCepHandler(resolver, nopLogger{}, metrics),
		NewHealthHandler(store, nopLogger{}),
		http.NotFoundHandler(),
	)
	if err != nil {
		panic(err)
	}
	return router
}

type CepHandlerSuite struct {
	suite.Suite
	resolver *stubResolver
	store    *stubStore
	metrics  *stubMetrics
	router   *Router
}

func TestCepHandlerSuite(t *testing.T) {
	suite.Run(t, new(CepHandlerSuite))
}

func (s *CepHandlerSuite) SetupTest() {
	s.resolver = &stubResolver{}
	s.store = &stubStore{}
	s.metrics = &stubMetrics{}
	s.router = newTestRouter(nil, s.resolver, s.store, s.metrics)
}

func (s *CepHandlerSuite) do(method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *CepHandlerSuite) TestFound() {
	s.resolver.address, s.resolver.found = praca, true

	rec := s.do(http.MethodGet, "/cep/01001000")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal([]string{"01001000"}, s.resolver.calls)

	var body addressResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.True(body.Success)
	s.Equal("CEP found", body.Message)
	s.Equal(AddressDTO{
		CEP:          "01001-000",
		Street:       "Praça da Sé",
		Complement:   "lado ímpar",
		Neighborhood: "Sé",
		City:         "São Paulo",
		State:        "SP",
		IBGE:         "3550308",
		DDD:          "11",
	}, body.Data)
	s.Contains(rec.Body.String(), `"logradouro":"Praça da Sé"`)
	s.Equal(1, s.metrics.requests)
}

func (s *CepHandlerSuite) TestPostAndQueryForms() {
	s.resolver.address, s.resolver.found = praca, true

	s.Equal(http.StatusOK, s.do(http.MethodPost, "/cep/01001-000").Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/cep?cep=01001-000").Code)
	s.Equal([]string{"01001-000", "01001-000"}, s.resolver.calls)
}

func (s *CepHandlerSuite) TestBlankCepSkipsResolver() {
	for _, target := range []string{"/cep", "/cep?cep=", "/cep?cep=%20%20", "/cep/%20"} {
		rec := s.do(http.MethodGet, target)
		s.Equal(http.StatusBadRequest, rec.Code, target)
	}
	s.Empty(s.resolver.calls)
}

func (s *CepHandlerSuite) TestStatusMapping() {
	tests := []struct {
		name   string
		found  bool
		err    error
		status int
	}{
		{name: "absent", status: http.StatusNotFound},
		{name: "invalid", err: fmt.Errorf("%w: bad cep", domain.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "store", err: fmt.Errorf("%w: connection refused", domain.ErrStoreUnavailable), status: http.StatusServiceUnavailable},
		{name: "source", err: fmt.Errorf("%w: status 500", domain.ErrSourceUnavailable), status: http.StatusBadGateway},
		{name: "unclassified", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.resolver.address, s.resolver.found, s.resolver.err = nil, tt.found, tt.err

			rec := s.do(http.MethodGet, "/cep/01001-000")

			s.Equal(tt.status, rec.Code)
			s.Contains(rec.Body.String(), `"success":false`)
		})
	}
}

func (s *CepHandlerSuite) TestAbsentMessageNamesCep() {
	rec := s.do(http.MethodGet, "/cep/99999999")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "CEP 99999999 not found.")
}

func (s *CepHandlerSuite) TestHealth() {
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/health").Code)

	s.store.pingErr = errors.New("no route to host")
	rec := s.do(http.MethodGet, "/health")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.True(strings.Contains(rec.Body.String(), "Store unreachable"))
}

func (s *CepHandlerSuite) TestCORSPreflight() {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/cep/01001-000", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	s.Empty(s.resolver.calls)
}

func TestProdEnvUsesReleaseMode(t *testing.T) {
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	_, err := NewRouter(
		&config.HTTP{Env: config.EnvProd, AllowedOrigins: "*"},
		nil,
		NewCepHandler(&stubResolver{}, nopLogger{}, &stubMetrics{}),
		NewHealthHandler(&stubStore{}, nopLogger{}),
		http.NotFoundHandler(),
	)
	require.NoError(t, err)
	assert.Equal(t, gin.ReleaseMode, gin.Mode())
}
