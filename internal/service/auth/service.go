package auth

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/nominacol/nomina-backend-go/internal/domain/auth"
	"github.com/nominacol/nomina-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	clerkRepo  auth.ClerkRepository
	jwtService jwt.Service
}

func NewAuthService(clerkRepo auth.ClerkRepository, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		clerkRepo:  clerkRepo,
		jwtService: jwtService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	clerk, err := s.clerkRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrClerkNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(clerk.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	access, expiresAt, err := s.jwtService.GenerateAccessToken(clerk.ID, clerk.Username, clerk.Name)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	refresh, _, err := s.jwtService.GenerateRefreshToken(clerk.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	slog.Info("clerk logged in", "username", clerk.Username)
	return auth.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
		Name:         clerk.Name,
	}, nil
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	clerkID, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	clerk, err := s.clerkRepo.GetByID(ctx, clerkID)
	if err != nil {
		if errors.Is(err, auth.ErrClerkNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, err
	}

	access, expiresAt, err := s.jwtService.GenerateAccessToken(clerk.ID, clerk.Username, clerk.Name)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	refresh, _, err := s.jwtService.GenerateRefreshToken(clerk.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
		Name:         clerk.Name,
	}, nil
}
