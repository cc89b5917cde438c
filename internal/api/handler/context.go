package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/couleurbar/theke-system/internal/core/ports"
)

// actorFromContext builds the acting member from the claims injected by the
// Auth middleware. A missing role means the middleware did not run; reject
// with 401 rather than guessing.
func actorFromContext(c echo.Context) (*ports.Actor, error) {
	role, _ := c.Get("role").(string)
	memberID, _ := c.Get("member_id").(string)
	if role == "" || memberID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	couleurname, _ := c.Get("couleurname").(string)
	return &ports.Actor{ID: memberID, Couleurname: couleurname, Role: role}, nil
}
