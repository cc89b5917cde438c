package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/couleurbar/theke-system/internal/api/metrics"
	"github.com/couleurbar/theke-system/internal/core/domain"
	"github.com/couleurbar/theke-system/internal/core/ports"
)

// OrderHandler handles order submission and listing.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type orderItemRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

type submitOrderRequest struct {
	MemberID string             `json:"member_id"`
	Items    []orderItemRequest `json:"items"`
}

// submitOrderResponse is the result envelope of the order workflow. The
// endpoint always answers 200; failures are carried in the envelope so the
// bar UI can show the message verbatim.
type submitOrderResponse struct {
	Success        bool          `json:"success"`
	Order          *domain.Order `json:"order,omitempty"`
	AlreadyExisted bool          `json:"already_existed,omitempty"`
	Error          string        `json:"error,omitempty"`
}

// Submit handles POST /v1/orders.
func (h *OrderHandler) Submit(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req submitOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	items := make([]ports.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ports.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	start := time.Now()
	result, err := h.service.SubmitOrder(c.Request().Context(), actor, ports.SubmitOrderInput{
		MemberID:       req.MemberID,
		Items:          items,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		metrics.OrdersRejectedTotal.WithLabelValues(rejectionReason(err)).Inc()
		return c.JSON(http.StatusOK, submitOrderResponse{Success: false, Error: userMessage(err)})
	}

	if !result.AlreadyExisted {
		metrics.OrdersSettledTotal.Inc()
		metrics.OrderValueEuros.Observe(result.Order.TotalAmount)
		metrics.SettlementDuration.Observe(time.Since(start).Seconds())
	}

	return c.JSON(http.StatusOK, submitOrderResponse{
		Success:        true,
		Order:          result.Order,
		AlreadyExisted: result.AlreadyExisted,
	})
}

// ListBySession handles GET /v1/sessions/:id/orders (admin only).
func (h *OrderHandler) ListBySession(c echo.Context) error {
	orders, err := h.service.ListBySession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"orders": orders})
}

// ListByMember handles GET /v1/members/:id/orders.
func (h *OrderHandler) ListByMember(c echo.Context) error {
	orders, err := h.service.ListByMember(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"orders": orders})
}

// userMessage maps a workflow error to the string shown to the bartender.
// Rejections carry their German message; anything else is a store failure
// that must not leak details.
func userMessage(err error) string {
	if domain.IsOrderRejection(err) {
		return err.Error()
	}
	return "Bestellung fehlgeschlagen."
}

// rejectionReason maps a workflow error to a short metric label.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "not_authenticated"
	case errors.Is(err, domain.ErrNoActiveSession):
		return "no_active_session"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrEmptyOrder):
		return "empty_order"
	case errors.Is(err, domain.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, domain.ErrProductUnavailable):
		return "product_unavailable"
	case errors.Is(err, domain.ErrNonPositiveTotal):
		return "non_positive_total"
	case errors.Is(err, domain.ErrMemberNotFound):
		return "member_not_found"
	default:
		return "persistence"
	}
}
