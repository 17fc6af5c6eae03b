package http

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestCreateAndVerifyToken(t *testing.T) {
	svc := NewJWTTokenService(testSecret, "1h", nopLogger{})

	token, err := svc.CreateToken("billing-service")
	require.NoError(t, err)

	payload, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "billing-service", payload.Subject)
	assert.NotEqual(t, uuid.Nil, payload.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), payload.ExpiresAt, 5*time.Second)
	assert.WithinDuration(t, time.Now(), payload.IssuedAt, 5*time.Second)
}

func TestCreateTokenRequiresSubject(t *testing.T) {
	svc := NewJWTTokenService(testSecret, "1h", nopLogger{})

	_, err := svc.CreateToken("")
	assert.Error(t, err)
}

func TestInvalidDurationFallsBackToDay(t *testing.T) {
	for _, d := range []string{"", "forever", "-1h"} {
		svc := NewJWTTokenService(testSecret, d, nopLogger{})
		assert.Equal(t, 24*time.Hour, svc.expiration, d)
	}
}

func signed(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestVerifyTokenRejects(t *testing.T) {
	svc := NewJWTTokenService(testSecret, "1h", nopLogger{})
	now := time.Now()
	valid := func() jwt.MapClaims {
		return jwt.MapClaims{
			"id":  "6f1c2d3e-4b5a-4c7d-8e9f-0a1b2c3d4e5f",
			"sub": "billing-service",
			"iat": now.Unix(),
			"exp": now.Add(time.Hour).Unix(),
		}
	}

	expired := valid()
	expired["exp"] = now.Add(-time.Minute).Unix()

	noExp := valid()
	delete(noExp, "exp")

	badID := valid()
	badID["id"] = "not-a-uuid"

	noSub := valid()
	delete(noSub, "sub")

	tests := map[string]string{
		"garbage":      "not.a.token",
		"wrong secret": signed(t, jwt.SigningMethodHS256, []byte("other"), valid()),
		"alg none":     signed(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid()),
		"hs512":        signed(t, jwt.SigningMethodHS512, []byte(testSecret), valid()),
		"expired":      signed(t, jwt.SigningMethodHS256, []byte(testSecret), expired),
		"no exp":       signed(t, jwt.SigningMethodHS256, []byte(testSecret), noExp),
		"bad id":       signed(t, jwt.SigningMethodHS256, []byte(testSecret), badID),
		"no sub":       signed(t, jwt.SigningMethodHS256, []byte(testSecret), noSub),
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.VerifyToken(token)
			assert.Error(t, err)
		})
	}

	_, err := svc.VerifyToken(signed(t, jwt.SigningMethodHS256, []byte(testSecret), valid()))
	assert.NoError(t, err)
}
