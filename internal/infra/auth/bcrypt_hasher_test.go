package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("senha-forte-123")
	require.NoError(t, err)
	assert.NotEqual(t, "senha-forte-123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	assert.True(t, hasher.Check("senha-forte-123", hash))
	assert.False(t, hasher.Check("senha-forte-124", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("mesma-senha")
	require.NoError(t, err)
	second, err := hasher.Hash("mesma-senha")
	require.NoError(t, err)

	// Every blob embeds a fresh salt, yet both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("mesma-senha", first))
	assert.True(t, hasher.Check("mesma-senha", second))
}

func TestBcryptHasher_MalformedHashFailsClosed(t *testing.T) {
	hasher := NewBcryptHasher()

	assert.False(t, hasher.Check("qualquer", ""))
	assert.False(t, hasher.Check("qualquer", "not-a-bcrypt-blob"))
	assert.False(t, hasher.Check("qualquer", "$2a$xx$corrupted"))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("senha")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
