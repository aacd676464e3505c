// Package auth
package auth

import (
	"context"
	"strings"
	"time"

	"inkwell/internal/core/password"
	"inkwell/internal/core/token"
	"inkwell/internal/domain"
)

type service struct {
	repo   domain.UserRepository
	hasher *password.Hasher
	tokens *token.Manager
}

func NewService(repo domain.UserRepository, hasher *password.Hasher, tokens *token.Manager) domain.AuthService {
	return &service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	registeredAt := time.Now().UTC()
	if req.DateOfRegistration != nil {
		registeredAt = req.DateOfRegistration.UTC()
	}

	user := &domain.User{
		Username:           req.Username,
		Email:              req.Email,
		Password:           digest,
		DateOfRegistration: registeredAt,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) Login(ctx context.Context, username, pass string) (*domain.TokenResponse, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		// Same error for unknown user and wrong password.
		return nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Check(pass, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(user.Username, time.Now())
	if err != nil {
		return nil, err
	}

	return &domain.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

func (s *service) Authenticate(ctx context.Context, authorization string) (*domain.User, error) {
	scheme, tokenString, found := strings.Cut(authorization, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
		return nil, domain.ErrInvalidToken
	}

	subject, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByUsername(ctx, subject)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	return user, nil
}
