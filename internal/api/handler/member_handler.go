package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/couleurbar/theke-system/internal/core/ports"
)

// MemberHandler handles member read endpoints. Member CRUD beyond reads
// stays in the admin surface, not here.
type MemberHandler struct {
	members ports.MemberRepository
}

func NewMemberHandler(members ports.MemberRepository) *MemberHandler {
	return &MemberHandler{members: members}
}

// List handles GET /v1/members, sorted by couleurname.
func (h *MemberHandler) List(c echo.Context) error {
	members, err := h.members.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"members": members})
}

// Get handles GET /v1/members/:id.
func (h *MemberHandler) Get(c echo.Context) error {
	member, err := h.members.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}
