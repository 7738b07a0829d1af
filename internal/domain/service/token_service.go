package service

import "github.com/golang-jwt/jwt/v5"

// Claims defines the custom claims carried by an access token. The subject is
// the owning user's id; expiry comes from the registered claims.
type Claims struct {
	UserID int64
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed, time-limited token for the user.
	GenerateAccessToken(userID int64) (string, error)

	// ValidateToken checks a token string's signature, structure, and expiry.
	// Any failure is an error; it never partially succeeds.
	ValidateToken(tokenString string) (*Claims, error)
}
