package ports

import (
	"context"

	"github.com/sm8ta/cep_cache_microservice/internal/core/domain"
)

// AddressStore is the durable cache keyed by CEP.
// Get returns found=false with a nil error when no entry exists or it expired.
type AddressStore interface {
	Get(ctx context.Context, cep domain.CEP) (*domain.Address, bool, error)
	Put(ctx context.Context, address *domain.Address) error
	Ping(ctx context.Context) error
}

// AddressSource fetches a single CEP from the external lookup service.
// found=false with a nil error means the service confirmed the CEP does not exist.
type AddressSource interface {
	Fetch(ctx context.Context, cep domain.CEP) (*domain.Address, bool, error)
}

type AddressResolver interface {
	Resolve(ctx context.Context, cep string) (*domain.Address, bool, error)
}
