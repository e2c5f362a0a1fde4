package auth

import (
	"time"

	"glint-backoffice/internal/domain/user"
)

type LoginInput struct {
	Identifier string
	Password   string
}

type LoginDTO struct {
	SessionID string     `json:"session_id"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      *user.User `json:"user"`
}
