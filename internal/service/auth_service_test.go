package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"essaycoach/internal/model"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())
	ctx := context.Background()

	registered, err := svc.Register(ctx, &model.RegisterRequest{
		Email:    "  Student@Example.COM ",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.True(t, strings.HasPrefix(registered.UserID, "user_"), "UserID = %q", registered.UserID)

	// Email is normalized, so the canonical spelling logs in
	loggedIn, err := svc.Login(ctx, &model.LoginRequest{
		Email:    "student@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, loggedIn.UserID)

	_, err = svc.Login(ctx, &model.LoginRequest{
		Email:    "student@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_Validation(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{Email: "", Password: "long-enough"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register(ctx, &model.RegisterRequest{Email: "a@b.tw", Password: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = svc.Register(ctx, &model.RegisterRequest{Email: "a@b.tw", Password: "long-enough"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, &model.RegisterRequest{Email: "A@B.TW", Password: "long-enough"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserToken_RoundTrip(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	registered, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "a@b.tw",
		Password: "long-enough",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateUserToken(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, claims.UserID)

	_, err = svc.ValidateUserToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionToken_RoundTrip(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	token, err := svc.GenerateSessionToken("sess-1", "user_1", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "user_1", claims.UserID)

	expired, err := svc.GenerateSessionToken("sess-1", "", -time.Minute)
	require.NoError(t, err)
	_, err = svc.ValidateSessionToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenKinds_AreNotInterchangeable(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	registered, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "a@b.tw",
		Password: "long-enough",
	})
	require.NoError(t, err)

	// A user token carries no session ID, so it cannot drive session routes
	_, err = svc.ValidateSessionToken(registered.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// An anonymous session token carries no user ID
	sessionToken, err := svc.GenerateSessionToken("sess-1", "", time.Hour)
	require.NoError(t, err)
	_, err = svc.ValidateUserToken(sessionToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
