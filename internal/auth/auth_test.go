package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tatdocs/internal/core/apperror"
)

func testService(t *testing.T) *Service {
	t.Helper()
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	return NewService(Operator{
		Subject:      "operator",
		Email:        "ops@example.com",
		PasswordHash: hash,
	}, NewJWTService(DefaultJWTConfig("test-secret")))
}

func TestLoginAndValidate(t *testing.T) {
	svc := testService(t)

	pair, err := svc.Login(context.Background(), "ops@example.com", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))

	user, err := svc.Validate(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "operator", user.Subject)
	assert.Equal(t, "ops@example.com", user.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := testService(t)

	_, err := svc.Login(context.Background(), "ops@example.com", "wrong")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)

	_, err = svc.Login(context.Background(), "intruder@example.com", "correct horse")
	require.Error(t, err)
	appErr2, _ := apperror.AsAppError(err)
	// Same error either way: no account enumeration.
	assert.Equal(t, appErr.Message, appErr2.Message)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	svc := testService(t)
	pair, err := svc.Login(context.Background(), "ops@example.com", "correct horse")
	require.NoError(t, err)

	_, err = svc.Validate(pair.AccessToken + "x")
	assert.Error(t, err)

	other := NewJWTService(DefaultJWTConfig("other-secret"))
	foreign, _, err := other.GenerateAccessToken("operator", "ops@example.com")
	require.NoError(t, err)
	_, err = svc.Validate(foreign)
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	cfg := DefaultJWTConfig("test-secret")
	cfg.AccessTokenTTL = -time.Minute
	jwtSvc := NewJWTService(cfg)

	token, _, err := jwtSvc.GenerateAccessToken("operator", "ops@example.com")
	require.NoError(t, err)

	_, err = jwtSvc.ValidateToken(token)
	assert.Error(t, err)
}
