package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func tokenPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "token")
}

func TestFileProvider_StartsAsGuestWithoutToken(t *testing.T) {
	p := NewFileProvider(tokenPath(t))

	assert.Equal(t, StatusGuest, p.Status())
	assert.Nil(t, p.User())
	assert.Empty(t, p.Token())
}

func TestFileProvider_SignInStoresTokenAndIdentity(t *testing.T) {
	path := tokenPath(t)
	p := NewFileProvider(path)

	var seen []Status
	p.OnChange(func(s Status) { seen = append(seen, s) })

	token := signedToken(t, jwt.MapClaims{
		"sub":   "user-1",
		"email": "ada@example.com",
		"name":  "Ada",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, p.SignIn(context.Background(), token))

	assert.Equal(t, StatusAuthenticated, p.Status())
	require.NotNil(t, p.User())
	assert.Equal(t, "user-1", p.User().ID)
	assert.Equal(t, "ada@example.com", p.User().Email)
	assert.Equal(t, "Ada", p.User().Name)
	assert.Equal(t, token, p.Token())
	assert.Equal(t, []Status{StatusAuthenticated}, seen)

	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, token, string(stored))
}

func TestFileProvider_SignInRejectsExpiredToken(t *testing.T) {
	p := NewFileProvider(tokenPath(t))

	token := signedToken(t, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	err := p.SignIn(context.Background(), token)

	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Equal(t, StatusGuest, p.Status())
}

func TestFileProvider_SignInRejectsTokenWithoutSubject(t *testing.T) {
	p := NewFileProvider(tokenPath(t))

	token := signedToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	err := p.SignIn(context.Background(), token)

	assert.Error(t, err)
	assert.Equal(t, StatusGuest, p.Status())
}

func TestFileProvider_SignInRejectsGarbage(t *testing.T) {
	p := NewFileProvider(tokenPath(t))

	err := p.SignIn(context.Background(), "not a jwt")

	assert.Error(t, err)
	assert.Equal(t, StatusGuest, p.Status())
}

func TestFileProvider_RestoresSessionFromDisk(t *testing.T) {
	path := tokenPath(t)
	token := signedToken(t, jwt.MapClaims{
		"sub": "user-2",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, os.WriteFile(path, []byte(token+"\n"), 0600))

	p := NewFileProvider(path)

	assert.Equal(t, StatusAuthenticated, p.Status())
	require.NotNil(t, p.User())
	assert.Equal(t, "user-2", p.User().ID)
	assert.Equal(t, token, p.Token(), "surrounding whitespace trimmed")
}

func TestFileProvider_ExpiredStoredTokenMeansGuest(t *testing.T) {
	path := tokenPath(t)
	token := signedToken(t, jwt.MapClaims{
		"sub": "user-2",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	require.NoError(t, os.WriteFile(path, []byte(token), 0600))

	p := NewFileProvider(path)

	assert.Equal(t, StatusGuest, p.Status())
	assert.Nil(t, p.User())
}

func TestFileProvider_SignOutRemovesToken(t *testing.T) {
	path := tokenPath(t)
	p := NewFileProvider(path)
	token := signedToken(t, jwt.MapClaims{
		"sub": "user-3",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, p.SignIn(context.Background(), token))

	var seen []Status
	p.OnChange(func(s Status) { seen = append(seen, s) })

	require.NoError(t, p.SignOut())

	assert.Equal(t, StatusGuest, p.Status())
	assert.Nil(t, p.User())
	assert.Empty(t, p.Token())
	assert.Equal(t, []Status{StatusGuest}, seen)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileProvider_SignOutIsIdempotent(t *testing.T) {
	p := NewFileProvider(tokenPath(t))

	require.NoError(t, p.SignOut())
	require.NoError(t, p.SignOut())
}
