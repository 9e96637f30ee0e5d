package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"jwt": map[string]any{
			"secretKey":       "",
			"expirationHours": 24,
		},
		"postgres": map[string]any{
			"sslMode": "disable",
		},
	}

	tests := []struct {
		name   string
		rawKey string
		want   string
	}{
		{name: "aligns casing with existing yaml keys", rawKey: "JWT_SECRETKEY", want: "jwt.secretKey"},
		{name: "camel case segment", rawKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{name: "unknown keys fall back to lowercase", rawKey: "JWT_UNKNOWN_FIELD", want: "jwt.unknown.field"},
		{name: "fully unknown path", rawKey: "HTTP_PORT", want: "http.port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "secretkey", normalizeToken("secretKey"))
	assert.Equal(t, "sslmode", normalizeToken("ssl_mode"))
	assert.Equal(t, "", normalizeToken("___"))
}
