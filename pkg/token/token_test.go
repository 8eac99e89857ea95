package token_test

import (
	"encoding/hex"
	"testing"

	"github.com/Hemasri-atike/Ihire-sub000/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("Should produce 64 hex characters", func(t *testing.T) {
		tok, err := token.Generate()
		require.NoError(t, err)
		assert.Len(t, tok, 64)
		_, err = hex.DecodeString(tok)
		assert.NoError(t, err)
	})

	t.Run("Should not repeat", func(t *testing.T) {
		a, err := token.Generate()
		require.NoError(t, err)
		b, err := token.Generate()
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}

func TestHashAndMatches(t *testing.T) {
	tok, err := token.Generate()
	require.NoError(t, err)

	digest, err := token.Hash(tok, 10)
	require.NoError(t, err)

	t.Run("Digest is not the plaintext", func(t *testing.T) {
		assert.NotEqual(t, tok, digest)
	})

	t.Run("Matches accepts the original token", func(t *testing.T) {
		assert.True(t, token.Matches(digest, tok))
	})

	t.Run("Matches rejects a different token", func(t *testing.T) {
		other, err := token.Generate()
		require.NoError(t, err)
		assert.False(t, token.Matches(digest, other))
	})

	t.Run("Matches rejects garbage digests", func(t *testing.T) {
		assert.False(t, token.Matches("not-a-bcrypt-digest", tok))
	})
}

func TestHashCostFloor(t *testing.T) {
	// Costs below bcrypt's default must be bumped, not honored
	tok, err := token.Generate()
	require.NoError(t, err)

	digest, err := token.Hash(tok, 4)
	require.NoError(t, err)
	assert.True(t, token.Matches(digest, tok))
	// bcrypt encodes the cost in the digest prefix: $2a$10$...
	assert.Contains(t, digest, "$10$")
}
