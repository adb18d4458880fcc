package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/adilzhan/libra/pkg/errors"
)

func newTestManager() *Manager {
	return NewManager("test-secret", 2*time.Hour, 168*time.Hour)
}

func TestManager_GenerateAndParse(t *testing.T) {
	m := newTestManager()

	pair, err := m.GenerateToken(42, "ada@library.org", true)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(7200), pair.ExpiresIn)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.LibrarianID)
	assert.Equal(t, "ada@library.org", claims.Email)
	assert.True(t, claims.IsLibrarian)
	assert.Equal(t, "libra", claims.Issuer)
}

func TestManager_ParseToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	pair, err := m.GenerateToken(42, "ada@library.org", true)
	require.NoError(t, err)

	other := NewManager("different-secret", 2*time.Hour, 168*time.Hour)
	_, err = other.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestManager_ParseToken_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, 168*time.Hour)
	pair, err := m.GenerateToken(42, "ada@library.org", true)
	require.NoError(t, err)

	_, err = m.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestManager_ParseToken_Garbage(t *testing.T) {
	m := newTestManager()

	_, err := m.ParseToken("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestManager_RefreshTokenOmitsLibrarianFlag(t *testing.T) {
	m := newTestManager()
	pair, err := m.GenerateToken(42, "ada@library.org", true)
	require.NoError(t, err)

	claims, err := m.ParseToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.LibrarianID)
	// The flag is re-read from the account on refresh, not trusted from the
	// refresh token.
	assert.False(t, claims.IsLibrarian)
}
