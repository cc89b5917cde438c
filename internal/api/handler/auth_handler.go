package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/couleurbar/theke-system/internal/api/middleware"
	"github.com/couleurbar/theke-system/internal/core/domain"
	"github.com/couleurbar/theke-system/internal/core/ports"
)

// AuthHandler handles login, logout, and the current-member endpoint.
type AuthHandler struct {
	service   ports.AuthService
	members   ports.MemberRepository
	cookieTTL time.Duration
	secure    bool
}

// NewAuthHandler creates an AuthHandler. secure controls the Secure flag on
// the login cookie; enable it outside development.
func NewAuthHandler(service ports.AuthService, members ports.MemberRepository, cookieTTL time.Duration, secure bool) *AuthHandler {
	if cookieTTL <= 0 {
		cookieTTL = 7 * 24 * time.Hour
	}
	return &AuthHandler{service: service, members: members, cookieTTL: cookieTTL, secure: secure}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token  string         `json:"token"`
	Member *domain.Member `json:"member"`
}

// Login handles POST /auth/login. On success the token is returned in the
// body and also set as an HttpOnly cookie for browser clients.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, member, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.cookieTTL.Seconds()),
	})

	return c.JSON(http.StatusOK, loginResponse{Token: token, Member: member})
}

// Logout handles POST /auth/logout by clearing the login cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Me handles GET /auth/me, returning the acting member with a fresh
// tabBalance rather than the stale claims snapshot.
func (h *AuthHandler) Me(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	member, err := h.members.FindByID(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, member)
}
