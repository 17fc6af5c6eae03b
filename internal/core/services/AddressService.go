package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sm8ta/cep_cache_microservice/internal/core/domain"
	"github.com/sm8ta/cep_cache_microservice/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

// AddressService resolves CEPs cache-aside: store first, ViaCEP on miss.
type AddressService struct {
	store    ports.AddressStore
	source   ports.AddressSource
	logger   ports.LoggerPort
	validate *validator.Validate
	metrics  ports.MetricsPort
}

func NewAddressService(
	store ports.AddressStore,
	source ports.AddressSource,
	logger ports.LoggerPort,
	validate *validator.Validate,
	metrics ports.MetricsPort,
) *AddressService {
	return &AddressService{
		store:    store,
		source:   source,
		logger:   logger,
		validate: validate,
		metrics:  metrics,
	}
}

// Resolve returns the address for raw. found is false when ViaCEP confirmed
// the CEP does not exist; nothing is cached in that case.
//
// A failed store write after a successful fetch does not fail the call: the
// fetched address is returned and the failure is logged and counted.
func (as *AddressService) Resolve(ctx context.Context, raw string) (*domain.Address, bool, error) {
	cep, err := domain.ParseCEP(raw)
	if err != nil {
		as.metrics.RecordResolution(ports.OutcomeInvalid)
		return nil, false, err
	}

	cached, found, err := as.store.Get(ctx, cep)
	if err != nil {
		as.logger.Error("Failed to read address from store", map[string]interface{}{
			"cep":   cep.String(),
			"error": err.Error(),
		})
		as.metrics.RecordResolution(ports.OutcomeStoreError)
		return nil, false, classify(err, domain.ErrStoreUnavailable)
	}
	if found {
		as.logger.Debug("Address found in store", map[string]interface{}{
			"cep": cep.String(),
		})
		as.metrics.RecordResolution(ports.OutcomeStoreHit)
		return cached, true, nil
	}

	fetched, found, err := as.source.Fetch(ctx, cep)
	if err != nil {
		as.logger.Error("Failed to fetch address from source", map[string]interface{}{
			"cep":   cep.String(),
			"error": err.Error(),
		})
		as.metrics.RecordResolution(ports.OutcomeSourceError)
		return nil, false, classify(err, domain.ErrSourceUnavailable)
	}
	if !found {
		as.logger.Info("CEP not found at source", map[string]interface{}{
			"cep": cep.String(),
		})
		as.metrics.RecordResolution(ports.OutcomeAbsent)
		return nil, false, nil
	}

	if err := as.validateAddress(cep, fetched); err != nil {
		as.logger.Error("Source returned an invalid address", map[string]interface{}{
			"cep":   cep.String(),
			"error": err.Error(),
		})
		as.metrics.RecordResolution(ports.OutcomeSourceError)
		return nil, false, err
	}

	if err := as.store.Put(ctx, fetched); err != nil {
		as.logger.Warn("Failed to cache address", map[string]interface{}{
			"cep":   cep.String(),
			"error": err.Error(),
		})
		as.metrics.RecordStoreWriteFailure()
	} else {
		as.logger.Info("Address fetched from source and cached", map[string]interface{}{
			"cep": cep.String(),
		})
	}

	as.metrics.RecordResolution(ports.OutcomeSourceHit)
	return fetched, true, nil
}

func (as *AddressService) validateAddress(cep domain.CEP, address *domain.Address) error {
	if address == nil {
		return fmt.Errorf("%w: empty address for %s", domain.ErrSourceUnavailable, cep)
	}
	if address.CEP != cep {
		return fmt.Errorf("%w: asked for %s, got %s", domain.ErrSourceUnavailable, cep, address.CEP)
	}
	if err := as.validate.Struct(address); err != nil {
		return fmt.Errorf("%w: validation failed: %s", domain.ErrSourceUnavailable, err.Error())
	}
	return nil
}

// classify makes sure err carries sentinel without wrapping it twice.
func classify(err, sentinel error) error {
	if errors.Is(err, sentinel) {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
