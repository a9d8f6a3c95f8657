package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"portfolioai/internal/auth"
	apperrors "portfolioai/internal/errors"
	"portfolioai/internal/model"
	"portfolioai/internal/repository"
)

// Principal is the authenticated caller attached to a secured request.
type Principal struct {
	User   *model.User
	Claims *auth.Claims
}

// AuthService handles registration, login and bearer token resolution.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ResolveToken(ctx context.Context, token string) (*Principal, error)
	Logout(ctx context.Context, principal *Principal) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	revocation auth.RevocationStore
	tokenTTL   time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, revocation auth.RevocationStore, tokenTTL time.Duration) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		revocation: revocation,
		tokenTTL:   tokenTTL,
	}
}

// Register creates a new user with a hashed password.
func (s *authService) Register(ctx context.Context, email, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:          email,
		HashedPassword: hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// a concurrent register can win between the lookup and the insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate checks email and password and returns a signed access token.
func (s *authService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !auth.VerifyPassword(password, user.HashedPassword) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.IssueToken(user.Email, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// ResolveToken validates a bearer token and loads the user it names.
func (s *authService) ResolveToken(ctx context.Context, token string) (*Principal, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	if claims.ID != "" {
		revoked, err := s.revocation.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, fmt.Errorf("%w: token has been revoked", apperrors.ErrInvalidCredentials)
		}
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown subject", apperrors.ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &Principal{User: user, Claims: claims}, nil
}

// Logout revokes the principal's token for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, principal *Principal) error {
	if principal == nil || principal.Claims == nil {
		return apperrors.ErrInvalidCredentials
	}
	ttl := s.jwtService.Remaining(principal.Claims)
	if ttl <= 0 {
		return nil
	}
	if err := s.revocation.Revoke(ctx, principal.Claims.ID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
