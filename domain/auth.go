package domain

import "github.com/golang-jwt/jwt/v5"

// Claims represents JWT token claims
type Claims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}
