package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/argos/backend/internal/domain/identity"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/internal/infrastructure/auth"
	"github.com/argos/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Token errors surfaced to clients
var (
	ErrTokenExpired = shared.NewDomainError("TOKEN_EXPIRED", "Token has expired")
	ErrTokenInvalid = shared.NewDomainError("TOKEN_INVALID", "Invalid token")
	ErrTokenRevoked = shared.NewDomainError("TOKEN_REVOKED", "Token has been revoked")
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
	metrics    *telemetry.BusinessMetrics
	now        func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
		now:        time.Now,
	}
}

// SetMetrics enables auth event counters
func (s *AuthService) SetMetrics(m *telemetry.BusinessMetrics) {
	s.metrics = m
}

// observe wraps an auth operation in a span and counts its outcome
func (s *AuthService) observe(ctx context.Context, event string) (context.Context, func(error)) {
	ctx, span := telemetry.StartServiceSpan(ctx, "auth", event)
	return ctx, func(err error) {
		telemetry.RecordError(span, err)
		span.End()
		s.metrics.RecordAuth(ctx, event, err)
	}
}

// Register creates an account and signs it in
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (resp *AuthResponse, err error) {
	ctx, done := s.observe(ctx, "register")
	defer func() { done(err) }()

	user, err := identity.NewUser(req.Email, req.Password, req.Name)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "Email is already registered")
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent sign-up for the same e-mail
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "Email is already registered")
		}
		return nil, err
	}

	pair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()))

	response := ToUserResponse(user)
	return &AuthResponse{Token: *pair, User: &response}, nil
}

// Login authenticates a user by e-mail and password.
// Unknown e-mails, wrong passwords and deactivated accounts all yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (resp *AuthResponse, err error) {
	ctx, done := s.observe(ctx, "login")
	defer func() { done(err) }()

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login for unknown e-mail")
			return nil, identity.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.CanLogin() || !user.VerifyPassword(req.Password) {
		s.logger.Warn("Invalid login attempt", zap.String("user_id", user.ID.String()))
		return nil, identity.ErrInvalidCredentials
	}

	pair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, err
	}

	user.RecordLogin(s.now())
	if err := s.userRepo.Update(ctx, user); err != nil {
		// Don't fail the login - just log the error
		s.logger.Error("Failed to record login", zap.Error(err))
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))

	response := ToUserResponse(user)
	return &AuthResponse{Token: *pair, User: &response}, nil
}

// Refresh exchanges a refresh token for a new pair. The presented token is revoked.
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (resp *AuthResponse, err error) {
	ctx, done := s.observe(ctx, "refresh")
	defer func() { done(err) }()

	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		s.logger.Warn("Revoked refresh token presented", zap.String("user_id", claims.UserID))
		return nil, ErrTokenRevoked
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, ErrTokenInvalid
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}
	if !user.CanLogin() {
		return nil, identity.ErrInvalidCredentials
	}

	pair, _, err := s.jwtService.RefreshTokenPair(req.RefreshToken)
	if err != nil {
		return nil, mapTokenError(err)
	}

	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Error("Failed to revoke refresh token", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Token refreshed", zap.String("user_id", userID.String()))

	return &AuthResponse{Token: *pair}, nil
}

// Logout revokes the presented access token until it expires
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) (err error) {
	ctx, done := s.observe(ctx, "logout")
	defer func() { done(err) }()

	if claims == nil || claims.ID == "" {
		return ErrTokenInvalid
	}
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Error("Failed to revoke access token", zap.Error(err))
		return err
	}

	s.logger.Info("User logged out", zap.String("user_id", claims.UserID))
	return nil
}

// Me returns the authenticated user
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return ErrTokenExpired
	case errors.Is(err, auth.ErrTokenBlacklisted):
		return ErrTokenRevoked
	default:
		return ErrTokenInvalid
	}
}
