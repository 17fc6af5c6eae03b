package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sm8ta/cep_cache_microservice/internal/core/domain"
	"github.com/sm8ta/cep_cache_microservice/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cep:"

// RedisAdapter stores addresses as JSON under cep:<NNNNN-NNN>, expiring after ttl.
type RedisAdapter struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAdapter wraps client. A ttl of zero stores keys without expiry.
func NewRedisAdapter(client *redis.Client, ttl time.Duration) *RedisAdapter {
	return &RedisAdapter{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisAdapter) Get(ctx context.Context, cep domain.CEP) (*domain.Address, bool, error) {
	data, err := r.client.Get(ctx, key(cep)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get address %s: %s", domain.ErrStoreUnavailable, cep, err.Error())
	}

	var address domain.Address
	if err := json.Unmarshal(data, &address); err != nil {
		return nil, false, fmt.Errorf("%w: decode address %s: %s", domain.ErrStoreUnavailable, cep, err.Error())
	}
	return &address, true, nil
}

func (r *RedisAdapter) Put(ctx context.Context, address *domain.Address) error {
	if address == nil {
		return fmt.Errorf("%w: address is required", domain.ErrStoreUnavailable)
	}
	cep, err := domain.ParseCEP(address.CEP.String())
	if err != nil || cep != address.CEP {
		return fmt.Errorf("%w: address key %q is not a canonical cep", domain.ErrStoreUnavailable, address.CEP)
	}

	payload, err := json.Marshal(address)
	if err != nil {
		return fmt.Errorf("%w: encode address %s: %s", domain.ErrStoreUnavailable, cep, err.Error())
	}
	if err := r.client.Set(ctx, key(cep), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set address %s: %s", domain.ErrStoreUnavailable, cep, err.Error())
	}
	return nil
}

func (r *RedisAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, err.Error())
	}
	return nil
}

func key(cep domain.CEP) string {
	return keyPrefix + cep.String()
}

var _ ports.AddressStore = (*RedisAdapter)(nil)
