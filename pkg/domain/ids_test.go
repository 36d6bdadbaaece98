package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "polyglot/pkg/domain-errors"
)

// TestParseUserID_Invariants validates that ids crossing a trust boundary are
// decimal and strictly positive.
func TestParseUserID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseUserID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseUserID("seven")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects zero and negatives", func(t *testing.T) {
		for _, in := range []string{"0", "-4"} {
			_, err := ParseUserID(in)
			require.Error(t, err, in)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		}
	})

	t.Run("accepts positive ids", func(t *testing.T) {
		id, err := ParseUserID(" 7 ")
		require.NoError(t, err)
		assert.Equal(t, UserID(7), id)
		assert.Equal(t, "7", id.String())
	})
}

func TestParseSessionToken(t *testing.T) {
	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseSessionToken(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("round trips issued tokens", func(t *testing.T) {
		tok := NewSessionToken()
		parsed, err := ParseSessionToken(tok.String())
		require.NoError(t, err)
		assert.Equal(t, tok, parsed)
		assert.False(t, parsed.IsZero())
	})
}

func TestCartDropsNonPositiveEntries(t *testing.T) {
	c := Cart{5: 0, 3: -2}
	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Snapshot())
	assert.Empty(t, c.ProductIDs())
}

func TestCartSnapshotIsIndependent(t *testing.T) {
	c := Cart{2: 1, 1: 3, 9: 0}
	snap := c.Snapshot()
	c[1] = 8

	assert.Equal(t, Cart{1: 3, 2: 1}, snap)
	assert.Equal(t, []ProductID{1, 2}, snap.ProductIDs())
}
