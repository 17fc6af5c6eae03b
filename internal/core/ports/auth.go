package ports

import (
	"github.com/sm8ta/cep_cache_microservice/internal/core/domain"
)

type TokenService interface {
	CreateToken(subject string) (string, error)
	VerifyToken(token string) (domain.TokenPayload, error)
}
