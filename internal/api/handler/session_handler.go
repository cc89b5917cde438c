package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/couleurbar/theke-system/internal/api/metrics"
	"github.com/couleurbar/theke-system/internal/core/ports"
)

// SessionHandler handles the session lifecycle endpoints.
type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

type bartenderRequest struct {
	MemberID           string     `json:"member_id" validate:"required"`
	EstimatedStartTime *time.Time `json:"estimated_start_time,omitempty"`
	EstimatedEndTime   *time.Time `json:"estimated_end_time,omitempty"`
}

type createSessionRequest struct {
	Name       string             `json:"name,omitempty"`
	Notes      string             `json:"notes,omitempty"`
	Bartenders []bartenderRequest `json:"bartenders" validate:"required,min=1,dive"`
}

// Create handles POST /v1/sessions (admin only).
func (h *SessionHandler) Create(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bartenders := make([]ports.BartenderInput, 0, len(req.Bartenders))
	for _, b := range req.Bartenders {
		bartenders = append(bartenders, ports.BartenderInput{
			MemberID:           b.MemberID,
			EstimatedStartTime: b.EstimatedStartTime,
			EstimatedEndTime:   b.EstimatedEndTime,
		})
	}

	session, err := h.service.Create(c.Request().Context(), actor, ports.CreateSessionInput{
		Name:       req.Name,
		Notes:      req.Notes,
		Bartenders: bartenders,
	})
	if err != nil {
		return err
	}

	metrics.SessionsOpenedTotal.Inc()
	return c.JSON(http.StatusCreated, session)
}

// Close handles POST /v1/sessions/:id/close (admin only).
func (h *SessionHandler) Close(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	session, err := h.service.Close(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.SessionsClosedTotal.Inc()
	return c.JSON(http.StatusOK, session)
}

// Active handles GET /v1/sessions/active. A closed bar is a normal state,
// so the session field is simply null then.
func (h *SessionHandler) Active(c echo.Context) error {
	session, err := h.service.Active(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"session": session})
}

// List handles GET /v1/sessions (admin only).
func (h *SessionHandler) List(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	sessions, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"sessions": sessions})
}
