package jwt

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service issues and validates the HS256 token pair used by clerk
// sessions. Access tokens carry identity claims; refresh tokens carry
// only the clerk id and a type marker so they cannot be replayed
// against protected routes.
type Service interface {
	GenerateAccessToken(clerkID, username, name string) (token string, expiresAt int64, err error)
	GenerateRefreshToken(clerkID string) (token string, expiresAt int64, err error)
	ValidateRefreshToken(tokenString string) (clerkID string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
}

type JWTService struct {
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	tokenAuth       *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenTTL, refreshTokenTTL time.Duration) Service {
	return &JWTService{
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
		tokenAuth:       jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(clerkID, username, name string) (string, int64, error) {
	expiresAt := time.Now().Add(j.accessTokenTTL).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"clerk_id": clerkID,
		"username": username,
		"name":     name,
		"type":     "access",
		"exp":      expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(clerkID string) (string, int64, error) {
	expiresAt := time.Now().Add(j.refreshTokenTTL).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"clerk_id": clerkID,
		"type":     "refresh",
		"exp":      expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) ValidateRefreshToken(tokenString string) (string, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}
	if err := jwt.Validate(token); err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return "", fmt.Errorf("not a refresh token")
	}

	clerkID, ok := token.Get("clerk_id")
	if !ok {
		return "", fmt.Errorf("clerk_id claim missing")
	}
	id, ok := clerkID.(string)
	if !ok || id == "" {
		return "", fmt.Errorf("clerk_id claim invalid")
	}
	return id, nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}
