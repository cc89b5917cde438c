package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/couleurbar/theke-system/internal/api/metrics"
	"github.com/couleurbar/theke-system/internal/core/domain"
	"github.com/couleurbar/theke-system/internal/core/ports"
)

// PaymentHandler handles the admin tab ledger endpoints.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type recordPaymentRequest struct {
	MemberID string     `json:"member_id" validate:"required"`
	Amount   float64    `json:"amount" validate:"required"`
	Type     string     `json:"type" validate:"required,oneof=payment penalty adjustment"`
	Date     *time.Time `json:"date,omitempty"`
	Notes    string     `json:"notes,omitempty"`
}

// Record handles POST /v1/payments (admin only).
func (h *PaymentHandler) Record(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.RecordPaymentInput{
		MemberID: req.MemberID,
		Amount:   req.Amount,
		Type:     domain.PaymentType(req.Type),
		Notes:    req.Notes,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	payment, err := h.service.Record(c.Request().Context(), actor, input)
	if err != nil {
		return err
	}

	metrics.PaymentsRecordedTotal.WithLabelValues(req.Type).Inc()
	return c.JSON(http.StatusCreated, payment)
}

// ListByMember handles GET /v1/members/:id/payments.
func (h *PaymentHandler) ListByMember(c echo.Context) error {
	payments, err := h.service.ListByMember(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"payments": payments})
}
