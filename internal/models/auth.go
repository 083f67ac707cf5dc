package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest holds credentials for authenticating a user.
type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued token and the caller identity.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
	Caller      Caller    `json:"user"`
}

// Caller is the resolved identity of an authenticated request.
type Caller struct {
	UserID      int64       `json:"user_id"`
	Name        string      `json:"name"`
	AccessLevel AccessLevel `json:"access_level"`
	TokenID     string      `json:"-"`
}

// Allows reports whether the caller holds at least the required level.
func (c *Caller) Allows(required AccessLevel) bool {
	return c != nil && c.AccessLevel >= required
}

// JWTClaims represents the JWT payload for access tokens.
type JWTClaims struct {
	UserID      int64       `json:"user_id"`
	Name        string      `json:"name"`
	AccessLevel AccessLevel `json:"access_level"`
	jwt.RegisteredClaims
}
