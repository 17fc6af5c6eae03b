package http

import (
	"errors"
	"time"

	"github.com/sm8ta/cep_cache_microservice/internal/core/domain"
	"github.com/sm8ta/cep_cache_microservice/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTTokenService struct {
	secretKey  []byte
	expiration time.Duration
	logger     ports.LoggerPort
}

func NewJWTTokenService(secretKey string, durationStr string, logger ports.LoggerPort) *JWTTokenService {
	duration, err := time.ParseDuration(durationStr)
	if err != nil || duration <= 0 {
		logger.Warn("Invalid token duration, using default 24h", map[string]interface{}{
			"duration": durationStr,
		})
		duration = 24 * time.Hour
	}

	return &JWTTokenService{
		secretKey:  []byte(secretKey),
		expiration: duration,
		logger:     logger,
	}
}

// CreateToken signs an HS256 token for subject, usually the calling service.
func (j *JWTTokenService) CreateToken(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("subject is required")
	}
	id, err := uuid.NewRandom()
	if err != nil {
		j.logger.Error("Failed to generate uuid", map[string]interface{}{
			"error":  err.Error(),
			"method": "CreateToken",
		})
		return "", err
	}

	issuedAt := time.Now()
	claims := jwt.MapClaims{
		"id":  id.String(),
		"sub": subject,
		"iat": issuedAt.Unix(),
		"exp": issuedAt.Add(j.expiration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

func (j *JWTTokenService) VerifyToken(token string) (domain.TokenPayload, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		j.logger.Debug("Failed to parse jwt", map[string]interface{}{
			"error":  err.Error(),
			"method": "VerifyToken",
		})
		return domain.TokenPayload{}, err
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return domain.TokenPayload{}, errors.New("failed to read claims")
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return domain.TokenPayload{}, errors.New("invalid id claim")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return domain.TokenPayload{}, errors.New("invalid parse id")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return domain.TokenPayload{}, errors.New("invalid sub claim")
	}

	payload := domain.TokenPayload{
		ID:      id,
		Subject: subject,
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		payload.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		payload.ExpiresAt = exp.Time
	}

	return payload, nil
}

var _ ports.TokenService = (*JWTTokenService)(nil)
