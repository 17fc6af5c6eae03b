package domain

import (
	"time"

	"github.com/google/uuid"
)

type TokenPayload struct {
	ID        uuid.UUID
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
