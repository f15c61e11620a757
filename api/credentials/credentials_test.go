package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, Verify(hash, "correct horse"))
	assert.ErrorIs(t, Verify(hash, "wrong"), ErrMismatch)
}

func TestVerify_EmptyHash(t *testing.T) {
	assert.ErrorIs(t, Verify("", "anything"), ErrMismatch)
	assert.ErrorIs(t, Verify("not-a-bcrypt-hash", "anything"), ErrMismatch)
}
