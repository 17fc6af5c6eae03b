package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sm8ta/cep_cache_microservice/internal/core/domain"
	"github.com/sm8ta/cep_cache_microservice/internal/core/ports"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://viacep.com.br/ws"
	defaultTimeout = 5 * time.Second
	maxBodyBytes   = 1 << 20
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit is the outbound request rate per second. Zero disables pacing.
	RateLimit float64
	Burst     int
}

// Client looks up single CEPs on ViaCEP. Each Fetch is one HTTP attempt.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      ports.LoggerPort
}

func NewClient(config Config, logger ports.LoggerPort) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	var limiter *rate.Limiter
	if config.RateLimit > 0 {
		burst := config.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(config.RateLimit), burst)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = 100
	transport.MaxIdleConnsPerHost = 10
	transport.IdleConnTimeout = 90 * time.Second

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		rateLimiter: limiter,
		logger:      logger,
	}
}

// Fetch maps ViaCEP answers to three outcomes: an address, absent
// (404 or {"erro": true}), or an error wrapping domain.ErrSourceUnavailable.
func (c *Client) Fetch(ctx context.Context, cep domain.CEP) (*domain.Address, bool, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, false, fmt.Errorf("%w: rate limiter: %s", domain.ErrSourceUnavailable, err.Error())
		}
	}

	url := fmt.Sprintf("%s/%s/json/", c.baseURL, cep.Digits())
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to create request: %s", domain.ErrSourceUnavailable, err.Error())
	}
	request.Header.Set("Accept", "application/json")

	start := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, false, fmt.Errorf("%w: request failed: %s", domain.ErrSourceUnavailable, err.Error())
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(response.Body)

	c.logger.Debug("ViaCEP response received", map[string]interface{}{
		"cep":         cep.String(),
		"status_code": response.StatusCode,
		"duration":    time.Since(start).String(),
	})

	body, err := io.ReadAll(io.LimitReader(response.Body, maxBodyBytes))
	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to read response body: %s", domain.ErrSourceUnavailable, err.Error())
	}

	switch {
	case response.StatusCode == http.StatusNotFound:
		return nil, false, nil
	case response.StatusCode != http.StatusOK:
		return nil, false, fmt.Errorf("%w: viacep returned status %d: %s", domain.ErrSourceUnavailable, response.StatusCode, snippet(body))
	}

	var payload cepResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, false, fmt.Errorf("%w: failed to decode response: %s", domain.ErrSourceUnavailable, err.Error())
	}
	if payload.Erro {
		return nil, false, nil
	}

	address, err := payload.toDomain()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", domain.ErrSourceUnavailable, err.Error())
	}
	return address, true, nil
}

func snippet(body []byte) string {
	const limit = 256
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}

var _ ports.AddressSource = (*Client)(nil)
