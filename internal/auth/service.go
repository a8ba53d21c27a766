package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tatdocs/internal/core/appctx"
	"tatdocs/internal/core/apperror"
	"tatdocs/pkg/logger"
)

// Operator is the single configured user of the deployment.
type Operator struct {
	Subject      string
	Email        string
	PasswordHash string
}

// Service authenticates the operator and issues access tokens.
type Service struct {
	operator Operator
	jwt      *JWTService
}

// NewService creates the auth service.
func NewService(operator Operator, jwtService *JWTService) *Service {
	return &Service{operator: operator, jwt: jwtService}
}

// HashPassword produces a bcrypt hash for operator provisioning.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// TokenPair is the login response payload.
type TokenPair struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Login verifies credentials and issues an access token. Wrong email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (TokenPair, error) {
	if email != s.operator.Email {
		return TokenPair{}, apperror.NewUnauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.operator.PasswordHash), []byte(password)); err != nil {
		return TokenPair{}, apperror.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(s.operator.Subject, s.operator.Email)
	if err != nil {
		return TokenPair{}, apperror.NewInternal(err)
	}

	logger.Info(ctx, "operator logged in", "subject", s.operator.Subject)
	return TokenPair{AccessToken: token, ExpiresAt: expiresAt}, nil
}

// Validate checks an access token and returns the associated context.
func (s *Service) Validate(tokenString string) (*appctx.UserContext, error) {
	user, err := s.jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid or expired token").WithCause(err)
	}
	return user, nil
}
