package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nominacol/nomina-backend-go/internal/domain/auth"
	"github.com/nominacol/nomina-backend-go/internal/pkg/jwt"
)

type fakeClerkRepo struct {
	clerk auth.Clerk
}

func (f *fakeClerkRepo) GetByUsername(ctx context.Context, username string) (auth.Clerk, error) {
	if username != f.clerk.Username {
		return auth.Clerk{}, auth.ErrClerkNotFound
	}
	return f.clerk, nil
}

func (f *fakeClerkRepo) GetByID(ctx context.Context, id string) (auth.Clerk, error) {
	if id != f.clerk.ID {
		return auth.Clerk{}, auth.ErrClerkNotFound
	}
	return f.clerk, nil
}

func newTestService(t *testing.T) auth.Service {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeClerkRepo{clerk: auth.Clerk{
		ID:           "clerk-1",
		Username:     "maria",
		PasswordHash: string(hash),
		Name:         "María Gómez",
	}}
	jwtService := jwt.NewJWTService("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(repo, jwtService)
}

func TestLogin_Success(t *testing.T) {
	svc := newTestService(t)

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{Username: "maria", Password: "s3cret"})

	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "María Gómez", tokens.Name)
	assert.Greater(t, tokens.ExpiresAt, time.Now().Unix())
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "maria", Password: "wrong"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "nobody", Password: "s3cret"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})

	assert.Error(t, err)
}

func TestRefresh_RoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tokens, err := svc.Login(ctx, auth.LoginRequest{Username: "maria", Password: "s3cret"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "María Gómez", refreshed.Name)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tokens, err := svc.Login(ctx, auth.LoginRequest{Username: "maria", Password: "s3cret"})
	require.NoError(t, err)

	// An access token must not pass as a refresh token.
	_, err = svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: tokens.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_GarbageToken(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: "not-a-token"})

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
