// Package service defines domain-level service interfaces implemented in infra.
package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService validates dashboard session tokens. Token issuance belongs to the
// external auth collaborator; this service only verifies what it issued.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
