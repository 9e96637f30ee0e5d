package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by session tokens.
type Claims struct {
	Username string `json:"name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// IssuedToken is the result of minting a session token.
type IssuedToken struct {
	Token     string    // The signed compact JWT.
	ExpiresAt time.Time // Expiry instant, UTC.
}

// TokenService defines the interface for issuing and validating session tokens.
// Tokens are stateless: signature, issuer/audience and expiry are the only
// things verification checks, there is no server-side session store.
type TokenService interface {
	// Issue mints a signed token for the account with the configured TTL.
	Issue(userID uuid.UUID, username string, role string) (*IssuedToken, error)

	// Validate parses and verifies a token string (signature, issuer,
	// audience, expiry) and returns its claims.
	Validate(tokenString string) (*Claims, error)

	// TokenTTL returns the configured token lifetime.
	TokenTTL() time.Duration
}
