package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/CaioSeniuk/AutoManage-Volvo/config"
	domainerrors "github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey:       strings.Repeat("k", 32),
			Issuer:          "AutoManageAPI",
			Audience:        "AutoManageClients",
			ExpirationHours: 24,
		},
	}
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.JWT.SecretKey = ""

	svc, err := NewJWTService(cfg)

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrJWTConfiguration))
}

func TestNewJWTService_ShortSecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.JWT.SecretKey = strings.Repeat("k", 31)

	svc, err := NewJWTService(cfg)

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrJWTConfiguration))
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()
	issued, err := svc.Issue(userID, "caio", "Vendedor")
	require.NoError(t, err)
	require.NotNil(t, issued)
	assert.NotEmpty(t, issued.Token)

	// Expiry is derived from the configured TTL, in UTC.
	assert.Equal(t, time.UTC, issued.ExpiresAt.Location())
	assert.WithinDuration(t, time.Now().UTC().Add(24*time.Hour), issued.ExpiresAt, 5*time.Second)

	claims, err := svc.Validate(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "caio", claims.Username)
	assert.Equal(t, "Vendedor", claims.Role)
	assert.Equal(t, "AutoManageAPI", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, issued.ExpiresAt, claims.ExpiresAt.Time, time.Second)
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	cfg := testJWTConfig()
	cfg.JWT.ExpirationHours = -1

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	issued, err := svc.Issue(uuid.New(), "caio", "Vendedor")
	require.NoError(t, err)

	claims, err := svc.Validate(issued.Token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	issuerSvc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.JWT.SecretKey = strings.Repeat("x", 32)
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	issued, err := issuerSvc.Issue(uuid.New(), "caio", "Vendedor")
	require.NoError(t, err)

	claims, err := otherSvc.Validate(issued.Token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_WrongIssuerRejected(t *testing.T) {
	issuerCfg := testJWTConfig()
	issuerCfg.JWT.Issuer = "SomeOtherAPI"
	issuerSvc, err := NewJWTService(issuerCfg)
	require.NoError(t, err)

	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	issued, err := issuerSvc.Issue(uuid.New(), "caio", "Vendedor")
	require.NoError(t, err)

	claims, err := svc.Validate(issued.Token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_WrongAudienceRejected(t *testing.T) {
	issuerCfg := testJWTConfig()
	issuerCfg.JWT.Audience = "SomeOtherClients"
	issuerSvc, err := NewJWTService(issuerCfg)
	require.NoError(t, err)

	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	issued, err := issuerSvc.Issue(uuid.New(), "caio", "Vendedor")
	require.NoError(t, err)

	claims, err := svc.Validate(issued.Token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_TamperedTokenRejected(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	issued, err := svc.Issue(uuid.New(), "caio", "Vendedor")
	require.NoError(t, err)

	tampered := issued.Token[:len(issued.Token)-2] + "xx"
	claims, err := svc.Validate(tampered)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_GarbageTokenRejected(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	claims, err := svc.Validate("not.a.jwt")
	assert.Nil(t, claims)
	assert.Error(t, err)
}
