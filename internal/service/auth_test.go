package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihatdadaloglu/oda/config"
	"github.com/nihatdadaloglu/oda/internal/apperror"
)

func newTestAuthenticator(t *testing.T) (*Authenticator, mapUsers) {
	t.Helper()
	hash, err := HashPassword("dogru-sifre")
	require.NoError(t, err)
	users := mapUsers{
		"admin@example.com": {Email: "admin@example.com", PasswordHash: hash, Role: "admin", Name: "Admin"},
	}
	return NewAuthenticator(users, config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour}), users
}

func TestAuthenticator_IssueAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	auth, _ := newTestAuthenticator(t)

	session, err := auth.Issue(ctx, "admin@example.com", "dogru-sifre")
	require.NoError(t, err)
	assert.Equal(t, "bearer", session.TokenType)
	assert.Equal(t, "admin@example.com", session.User.Email)

	user, err := auth.Authenticate(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)

	user, err = auth.Authenticate(ctx, "Bearer "+session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)
}

func TestAuthenticator_WrongPassword(t *testing.T) {
	auth, _ := newTestAuthenticator(t)

	_, err := auth.Issue(context.Background(), "admin@example.com", "yanlis")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = auth.Issue(context.Background(), "nobody@example.com", "dogru-sifre")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestAuthenticator_LookupFailureIsNotCredentials(t *testing.T) {
	auth := NewAuthenticator(failingUsers{}, config.AuthConfig{JWTSecret: "s"})
	_, err := auth.Issue(context.Background(), "a@b.c", "x")
	require.Error(t, err)
	_, ok := apperror.From(err)
	assert.False(t, ok)
}

func TestAuthenticator_Expired(t *testing.T) {
	ctx := context.Background()
	auth, _ := newTestAuthenticator(t)

	issuedAt := time.Now()
	auth.now = func() time.Time { return issuedAt }
	session, err := auth.Issue(ctx, "admin@example.com", "dogru-sifre")
	require.NoError(t, err)

	auth.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	_, err = auth.Authenticate(ctx, session.AccessToken)
	require.NoError(t, err)

	auth.now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	_, err = auth.Authenticate(ctx, session.AccessToken)
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestAuthenticator_RejectsBadTokens(t *testing.T) {
	ctx := context.Background()
	auth, _ := newTestAuthenticator(t)

	_, err := auth.Authenticate(ctx, "")
	assert.ErrorIs(t, err, apperror.ErrMissingToken)
	_, err = auth.Authenticate(ctx, "Bearer ")
	assert.ErrorIs(t, err, apperror.ErrMissingToken)

	_, err = auth.Authenticate(ctx, "garbage.token.value")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)

	other := NewAuthenticator(auth.users, config.AuthConfig{JWTSecret: "other-secret"})
	session, err := other.Issue(ctx, "admin@example.com", "dogru-sifre")
	require.NoError(t, err)
	_, err = auth.Authenticate(ctx, session.AccessToken)
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "admin@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = auth.Authenticate(ctx, unsigned)
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestAuthenticator_DeletedUser(t *testing.T) {
	ctx := context.Background()
	auth, users := newTestAuthenticator(t)

	session, err := auth.Issue(ctx, "admin@example.com", "dogru-sifre")
	require.NoError(t, err)

	delete(users, "admin@example.com")
	_, err = auth.Authenticate(ctx, session.AccessToken)
	assert.ErrorIs(t, err, apperror.ErrUnknownSubject)
}

func TestSessionJSONHidesPasswordHash(t *testing.T) {
	auth, _ := newTestAuthenticator(t)
	session, err := auth.Issue(context.Background(), "admin@example.com", "dogru-sifre")
	require.NoError(t, err)

	data, err := json.Marshal(session)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), session.User.PasswordHash)
}
