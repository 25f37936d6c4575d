package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := Hash("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, Compare(hash, "s3cret-pass"))
	assert.Error(t, Compare(hash, "wrong-pass"))
}

func TestCompare_DeactivatedSentinel(t *testing.T) {
	// the stored sentinel is not a bcrypt hash, so any password must fail
	assert.Error(t, Compare("DEACTIVATED", "anything"))
	assert.Error(t, Compare("DEACTIVATED", "DEACTIVATED"))
}
