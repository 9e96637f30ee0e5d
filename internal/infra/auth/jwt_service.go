// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/CaioSeniuk/AutoManage-Volvo/config"
	domainerrors "github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/errors"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/service"
)

// minSecretBytes is the minimum HMAC secret length, 256 bits.
const minSecretBytes = 32

// jwtService is a concrete implementation of the TokenService interface using
// HS256-signed JWTs. The signing secret is read once at construction and
// never mutated afterwards, so the service is safe for concurrent use.
type jwtService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewJWTService is the constructor for jwtService. A missing or short secret
// is a startup-time fault: the process cannot serve auth, so construction
// fails rather than deferring the error to request time.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	secret := cfg.JWT.SecretKey
	if secret == "" {
		return nil, errors.Wrap(domainerrors.ErrJWTConfiguration, "jwt secret key is not configured")
	}
	if len(secret) < minSecretBytes {
		return nil, errors.Wrapf(domainerrors.ErrJWTConfiguration, "jwt secret key must be at least %d bytes", minSecretBytes)
	}

	return &jwtService{
		secret:   []byte(secret),
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
		ttl:      cfg.JWT.TokenTTL(),
	}, nil
}

// Issue mints a signed session token for the account. Expiry math is UTC.
func (s *jwtService) Issue(userID uuid.UUID, username string, role string) (*service.IssuedToken, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)

	claims := &service.Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign session token")
	}

	return &service.IssuedToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// Validate parses and verifies a token string. Signature, issuer, audience
// and expiry are each independently sufficient to reject.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			// Ensure the signing method is what we expect.
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secret, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}

// TokenTTL returns the configured token lifetime.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}
