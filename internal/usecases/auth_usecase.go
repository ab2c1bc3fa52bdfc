package usecases

import (
	"context"
	"errors"
	"time"

	"captura-leads.backend/internal/domain/entities"
	domainerrors "captura-leads.backend/internal/domain/errors"
	"captura-leads.backend/internal/domain/repositories"
	"captura-leads.backend/pkg/crypto"
	"captura-leads.backend/pkg/jwt"
	"captura-leads.backend/pkg/logger"
	"captura-leads.backend/pkg/metrics"
	"captura-leads.backend/pkg/redis"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionStore keeps browser sessions server-side
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

var generateSessionID = crypto.GenerateSessionID

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
	hasher     *crypto.PasswordHasher
	sessions   SessionStore
}

// NewAuthUsecase creates a new auth usecase. sessions may be nil, in which
// case session logins are rejected.
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	jwtService *jwt.JWTService,
	hasher *crypto.PasswordHasher,
	sessions SessionStore,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
		hasher:     hasher,
		sessions:   sessions,
	}
}

// Authenticate verifies credentials. The deactivated check runs only once the
// password matched.
func (u *AuthUsecase) Authenticate(ctx context.Context, email, password string) (*entities.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			metrics.RecordLogin("invalid_credentials")
			logger.Security(ctx, "login_failed", "Login failed: unknown email")
			return nil, domainerrors.InvalidCredentials()
		}
		return nil, domainerrors.InternalError(err)
	}

	if !u.hasher.Check(password, user.PasswordHash) {
		metrics.RecordLogin("invalid_credentials")
		logger.Security(ctx, "login_failed", "Login failed: password mismatch", zap.String("user_id", user.ID.String()))
		return nil, domainerrors.InvalidCredentials()
	}

	if !user.IsActive {
		metrics.RecordLogin("deactivated")
		logger.Security(ctx, "login_deactivated", "Login rejected: account deactivated", zap.String("user_id", user.ID.String()))
		return nil, domainerrors.AccountDeactivated()
	}

	metrics.RecordLogin("success")
	return user, nil
}

// IssueSession signs an access and a refresh token for user
func (u *AuthUsecase) IssueSession(user *entities.User) (*jwt.TokenPair, error) {
	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return pair, nil
}

// Login authenticates and issues tokens. With UseSession the tokens stay in
// Redis and only the session id is returned.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	pair, err := u.IssueSession(user)
	if err != nil {
		return nil, err
	}

	if !input.UseSession {
		return &entities.AuthResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			User:         user,
		}, nil
	}

	if u.sessions == nil {
		return nil, domainerrors.BadRequest("session login is not available")
	}
	sessionID, err := generateSessionID()
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	data := &redis.SessionData{
		UserID:       user.ID.String(),
		Role:         string(user.Role),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		IssuedAt:     nowUTC(),
	}
	if err := u.sessions.CreateSession(ctx, sessionID, data, u.jwtService.RefreshExpiry()); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	logger.Info(ctx, "Session created", zap.String("user_id", user.ID.String()))
	return &entities.AuthResponse{SessionID: sessionID, User: user}, nil
}

// Renew exchanges a refresh token for a new access token carrying the
// user's current role
func (u *AuthUsecase) Renew(ctx context.Context, refreshToken string) (string, error) {
	token, _, _, err := u.renew(ctx, refreshToken)
	return token, err
}

// renew also returns the reloaded user and the refresh claims so a session can
// be rewritten with the current role and the remaining refresh lifetime
func (u *AuthUsecase) renew(ctx context.Context, refreshToken string) (string, *entities.User, *jwt.Claims, error) {
	claims, err := u.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", nil, nil, domainerrors.InvalidToken("invalid or expired refresh token")
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", nil, nil, domainerrors.InvalidToken("user no longer exists")
		}
		return "", nil, nil, domainerrors.InternalError(err)
	}
	if !user.IsActive {
		return "", nil, nil, domainerrors.InvalidToken("user account is deactivated")
	}

	token, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", nil, nil, domainerrors.InternalError(err)
	}
	return token, user, claims, nil
}

// ResolveSession returns the tokens stored for sessionID. An expired access
// token is renewed from the stored refresh token and written back.
func (u *AuthUsecase) ResolveSession(ctx context.Context, sessionID string) (*redis.SessionData, error) {
	if u.sessions == nil {
		return nil, domainerrors.Unauthorized("sessions are not enabled")
	}
	data, err := u.sessions.GetSession(ctx, sessionID)
	if err != nil {
		if redis.IsNil(err) {
			return nil, domainerrors.Unauthorized("session expired or not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	_, err = u.jwtService.ValidateAccessToken(data.AccessToken)
	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, jwt.ErrExpiredToken):
		return u.renewSession(ctx, sessionID, data)
	default:
		return nil, domainerrors.InvalidToken("invalid session token")
	}
}

func (u *AuthUsecase) renewSession(ctx context.Context, sessionID string, data *redis.SessionData) (*redis.SessionData, error) {
	token, user, claims, err := u.renew(ctx, data.RefreshToken)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidToken) {
			_ = u.sessions.DeleteSession(ctx, sessionID)
			logger.Security(ctx, "session_renewal_rejected", "Session dropped on renewal", zap.String("user_id", data.UserID), zap.Error(err))
		}
		return nil, err
	}

	data.AccessToken = token
	data.Role = string(user.Role)
	if err := u.sessions.CreateSession(ctx, sessionID, data, time.Until(claims.ExpiresAt.Time)); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	logger.Debug(ctx, "Session access token renewed", zap.String("user_id", data.UserID))
	return data, nil
}

// Me returns the caller's own user record
func (u *AuthUsecase) Me(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, repoError(err, "user not found")
	}
	return user, nil
}

// Logout drops a server-side session. Token based clients simply discard their tokens.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" || u.sessions == nil {
		return nil
	}
	if err := u.sessions.DeleteSession(ctx, sessionID); err != nil {
		return domainerrors.InternalError(err)
	}
	return nil
}
