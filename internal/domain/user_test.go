package domain

import (
	"testing"

	"github.com/ecodesk/greenroi/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPassword(t *testing.T) {
	var p UserPassword
	require.NoError(t, p.Init("demo123"))
	require.NotEmpty(t, p.Salt)
	require.NotEmpty(t, p.Hash)
	assert.NotContains(t, p.Hash, "demo123")

	assert.NoError(t, p.Validate("demo123"))
	assert.ErrorIs(t, p.Validate("demo124"), constants.ErrInvalidCredentials)
	assert.ErrorIs(t, p.Validate(""), constants.ErrInvalidCredentials)
}

func TestUserPassword_SaltedHashes(t *testing.T) {
	var a, b UserPassword
	require.NoError(t, a.Init("same-password"))
	require.NoError(t, b.Init("same-password"))

	// Fresh salt per user means identical passwords never share a hash.
	assert.NotEqual(t, a.Hash, b.Hash)
}
