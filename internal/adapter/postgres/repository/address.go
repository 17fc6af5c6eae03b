package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sm8ta/cep_cache_microservice/internal/core/domain"
	"github.com/sm8ta/cep_cache_microservice/internal/core/ports"

	"github.com/lib/pq"
)

const (
	selectAddressQuery = `SELECT cep, street, complement, neighborhood, city, state, ibge, ddd
              FROM addresses WHERE cep = $1`

	selectFreshAddressQuery = `SELECT cep, street, complement, neighborhood, city, state, ibge, ddd
              FROM addresses WHERE cep = $1 AND updated_at >= $2`

	upsertAddressQuery = `INSERT INTO addresses (cep, street, complement, neighborhood, city, state, ibge, ddd, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    ON CONFLICT (cep) DO UPDATE SET
        street = EXCLUDED.street,
        complement = EXCLUDED.complement,
        neighborhood = EXCLUDED.neighborhood,
        city = EXCLUDED.city,
        state = EXCLUDED.state,
        ibge = EXCLUDED.ibge,
        ddd = EXCLUDED.ddd,
        updated_at = EXCLUDED.updated_at`
)

// PostgresAddressRepository stores addresses in the addresses table.
// Rows older than ttl are treated as missing; they are replaced on the next upsert.
type PostgresAddressRepository struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

func NewAddressRepository(db *sql.DB, ttl time.Duration) *PostgresAddressRepository {
	return &PostgresAddressRepository{
		db:  db,
		ttl: ttl,
		now: time.Now,
	}
}

func (r *PostgresAddressRepository) Get(ctx context.Context, cep domain.CEP) (*domain.Address, bool, error) {
	var row *sql.Row
	if r.ttl > 0 {
		row = r.db.QueryRowContext(ctx, selectFreshAddressQuery, cep.String(), r.now().Add(-r.ttl))
	} else {
		row = r.db.QueryRowContext(ctx, selectAddressQuery, cep.String())
	}

	address := &domain.Address{}
	var key string
	err := row.Scan(
		&key,
		&address.Street,
		&address.Complement,
		&address.Neighborhood,
		&address.City,
		&address.State,
		&address.IBGE,
		&address.DDD,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get address %s: %s", domain.ErrStoreUnavailable, cep, describe(err))
	}

	address.CEP = domain.CEP(key)
	return address, true, nil
}

func (r *PostgresAddressRepository) Put(ctx context.Context, address *domain.Address) error {
	if address == nil {
		return fmt.Errorf("%w: address is required", domain.ErrStoreUnavailable)
	}
	cep, err := domain.ParseCEP(address.CEP.String())
	if err != nil || cep != address.CEP {
		return fmt.Errorf("%w: address key %q is not a canonical cep", domain.ErrStoreUnavailable, address.CEP)
	}

	_, err = r.db.ExecContext(ctx, upsertAddressQuery,
		cep.String(),
		address.Street,
		address.Complement,
		address.Neighborhood,
		address.City,
		address.State,
		address.IBGE,
		address.DDD,
		r.now(),
	)
	if err != nil {
		return fmt.Errorf("%w: upsert address %s: %s", domain.ErrStoreUnavailable, cep, describe(err))
	}
	return nil
}

func (r *PostgresAddressRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, err.Error())
	}
	return nil
}

// describe adds the SQLSTATE to postgres errors.
func describe(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Sprintf("%s (sqlstate %s)", pqErr.Message, pqErr.Code)
	}
	return err.Error()
}

var _ ports.AddressStore = (*PostgresAddressRepository)(nil)
