package middleware

import (
	"context"
	"errors"
	"strings"

	"captura-leads.backend/internal/domain/entities"
	domainerrors "captura-leads.backend/internal/domain/errors"
	"captura-leads.backend/internal/interfaces/http/response"
	"captura-leads.backend/pkg/jwt"
	"captura-leads.backend/pkg/logger"
	"captura-leads.backend/pkg/redis"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// SessionHeader carries the server-side session id of browser clients
	SessionHeader = "X-Session-ID"
	// ActorKey is the context key for the authenticated *entities.Actor
	ActorKey = "actor"
	// SessionIDKey is the context key for the resolved session id
	SessionIDKey = "sessionId"
)

// SessionResolver looks up the tokens stored for a session id
type SessionResolver interface {
	ResolveSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
}

var errNoCredentials = errors.New("no credentials")

// AuthMiddleware requires a valid access token, sent either as a Bearer token
// or through a session id.
func AuthMiddleware(jwtService *jwt.JWTService, sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authenticate(c, jwtService, sessions); err != nil {
			if errors.Is(err, errNoCredentials) {
				err = domainerrors.Unauthorized("authentication required")
			}
			logger.Security(c.Request.Context(), "auth_rejected", "Request rejected by auth",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			response.Abort(c, err)
			return
		}
		c.Next()
	}
}

// OptionalAuthMiddleware lets anonymous requests through while still
// attributing authenticated ones. Credentials that are present but invalid are
// rejected.
func OptionalAuthMiddleware(jwtService *jwt.JWTService, sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := authenticate(c, jwtService, sessions)
		if err != nil && !errors.Is(err, errNoCredentials) {
			response.Abort(c, err)
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, jwtService *jwt.JWTService, sessions SessionResolver) error {
	token, err := bearerOrSessionToken(c, sessions)
	if err != nil {
		return err
	}

	claims, err := jwtService.ValidateAccessToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return domainerrors.InvalidToken("token has expired")
		}
		return domainerrors.InvalidToken("invalid token")
	}

	actor := &entities.Actor{ID: claims.UserID, Role: entities.UserRole(claims.Role)}
	c.Set(ActorKey, actor)
	c.Request = c.Request.WithContext(logger.ContextWithActor(c.Request.Context(), actor.ID.String(), claims.Role))
	return nil
}

func bearerOrSessionToken(c *gin.Context, sessions SessionResolver) (string, error) {
	if sessionID := c.GetHeader(SessionHeader); sessionID != "" {
		if sessions == nil {
			return "", domainerrors.Unauthorized("sessions are not enabled")
		}
		data, err := sessions.ResolveSession(c.Request.Context(), sessionID)
		if err != nil {
			return "", err
		}
		c.Set(SessionIDKey, sessionID)
		return data.AccessToken, nil
	}

	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", errNoCredentials
	}
	if !strings.HasPrefix(authHeader, BearerPrefix) {
		return "", domainerrors.Unauthorized("invalid authorization format, use: Bearer <token>")
	}
	return strings.TrimPrefix(authHeader, BearerPrefix), nil
}

// GetActor returns the authenticated actor, or nil for anonymous requests
func GetActor(c *gin.Context) *entities.Actor {
	val, exists := c.Get(ActorKey)
	if !exists {
		return nil
	}
	actor, _ := val.(*entities.Actor)
	return actor
}

// GetSessionID returns the session id the request authenticated with, if any
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
