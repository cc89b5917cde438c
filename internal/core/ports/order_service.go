package ports

import (
	"context"

	"github.com/couleurbar/theke-system/internal/core/domain"
)

// Actor identifies the authenticated member performing a request, as
// resolved by the auth middleware from the token claims.
type Actor struct {
	ID          string
	Couleurname string
	Role        string
}

// IsAdmin reports whether the actor holds the admin role.
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == domain.RoleAdmin
}

// OrderItemInput is one requested line item. Quantity is accepted as a
// float and clamped during normalization (floor, minimum 1, non-finite
// treated as 1).
type OrderItemInput struct {
	ProductID string
	Quantity  float64
}

// SubmitOrderInput carries everything needed to place an order on a
// member's tab.
type SubmitOrderInput struct {
	// MemberID is the member being billed (not necessarily the actor).
	MemberID string
	Items    []OrderItemInput
	// IdempotencyKey, when non-empty, makes a repeated submission return
	// the previously created order instead of settling twice.
	IdempotencyKey string
}

// SubmitOrderResult is returned on successful settlement.
type SubmitOrderResult struct {
	Order *domain.Order
	// AlreadyExisted is true when the idempotency key matched an earlier
	// submission and no new settlement took place.
	AlreadyExisted bool
}

// OrderService defines the order entry use cases.
type OrderService interface {
	// SubmitOrder runs the full workflow: authorization gate, order
	// normalization, settlement. Rejections satisfy
	// domain.IsOrderRejection and carry user-facing messages; any other
	// error is a persistence failure.
	SubmitOrder(ctx context.Context, actor *Actor, input SubmitOrderInput) (*SubmitOrderResult, error)
	ListBySession(ctx context.Context, sessionID string) ([]*domain.Order, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.Order, error)
}
