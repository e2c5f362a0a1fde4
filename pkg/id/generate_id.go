package id

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewID32 returns a random v4 UUID as 32 lowercase hex characters, no dashes.
// Decision ids use this form so they fit the char(32) column.
func NewID32() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
