package handlers

import (
	"context"
	"net/http"

	"captura-leads.backend/internal/domain/entities"
	domainerrors "captura-leads.backend/internal/domain/errors"
	"captura-leads.backend/internal/interfaces/http/middleware"
	"captura-leads.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const refreshCookie = "refresh_token"

type AuthService interface {
	Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	Renew(ctx context.Context, refreshToken string) (string, error)
	Me(ctx context.Context, userID uuid.UUID) (*entities.User, error)
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase AuthService
	// refreshMaxAge is the refresh cookie lifetime in seconds
	refreshMaxAge int
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase AuthService, refreshMaxAge int) *AuthHandler {
	return &AuthHandler{
		authUsecase:   authUsecase,
		refreshMaxAge: refreshMaxAge,
	}
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	if authResponse.RefreshToken != "" {
		c.SetCookie(refreshCookie, authResponse.RefreshToken, h.refreshMaxAge, "/", "", false, true)
	}
	response.Success(c, http.StatusOK, authResponse)
}

// Refresh exchanges a refresh token for a new access token. The token is read
// from the JSON body, falling back to the refresh cookie.
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}
	if c.Request.ContentLength > 0 {
		if !bindJSON(c, &input) {
			return
		}
	}

	refreshToken := input.RefreshToken
	if refreshToken == "" {
		if cookie, err := c.Cookie(refreshCookie); err == nil {
			refreshToken = cookie
		}
	}
	if refreshToken == "" {
		response.Error(c, domainerrors.BadRequest("refresh token is required"))
		return
	}

	accessToken, err := h.authUsecase.Renew(c.Request.Context(), refreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"accessToken": accessToken})
}

// Logout drops the caller's session and refresh cookie
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUsecase.Logout(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		response.Error(c, err)
		return
	}
	c.SetCookie(refreshCookie, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the authenticated user
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	actor := middleware.GetActor(c)
	if actor == nil {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	user, err := h.authUsecase.Me(c.Request.Context(), actor.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}
