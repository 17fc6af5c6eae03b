package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sm8ta/cep_cache_microservice/internal/core/domain"
	"github.com/sm8ta/cep_cache_microservice/internal/core/ports"
)

type entry struct {
	address  domain.Address
	storedAt time.Time
}

// AddressStore keeps addresses in process memory. Meant for local runs and tests.
type AddressStore struct {
	mu      sync.RWMutex
	entries map[domain.CEP]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewAddressStore returns an empty store. A ttl of zero keeps entries forever.
func NewAddressStore(ttl time.Duration) *AddressStore {
	return &AddressStore{
		entries: make(map[domain.CEP]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *AddressStore) Get(_ context.Context, cep domain.CEP) (*domain.Address, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[cep]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if s.expired(e) {
		s.mu.Lock()
		// a concurrent Put may have refreshed the entry
		if current, ok := s.entries[cep]; ok && s.expired(current) {
			delete(s.entries, cep)
		}
		s.mu.Unlock()
		return nil, false, nil
	}

	address := e.address
	return &address, true, nil
}

func (s *AddressStore) expired(e entry) bool {
	return s.ttl > 0 && s.now().Sub(e.storedAt) >= s.ttl
}

func (s *AddressStore) Put(_ context.Context, address *domain.Address) error {
	if address == nil {
		return fmt.Errorf("%w: address is required", domain.ErrStoreUnavailable)
	}
	cep, err := domain.ParseCEP(address.CEP.String())
	if err != nil || cep != address.CEP {
		return fmt.Errorf("%w: address key %q is not a canonical cep", domain.ErrStoreUnavailable, address.CEP)
	}

	s.mu.Lock()
	s.entries[cep] = entry{address: *address, storedAt: s.now()}
	s.mu.Unlock()
	return nil
}

func (s *AddressStore) Ping(_ context.Context) error {
	return nil
}

var _ ports.AddressStore = (*AddressStore)(nil)
