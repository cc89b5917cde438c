package ports

import (
	"context"

	"github.com/couleurbar/theke-system/internal/core/domain"
)

// OrderRepository defines persistence operations for orders. Orders are
// immutable once created; there is no update path.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// ListBySession returns the orders of one session, newest first.
	ListBySession(ctx context.Context, sessionID string) ([]*domain.Order, error)
	// ListByMember returns the orders billed to one member, newest first.
	ListByMember(ctx context.Context, memberID string) ([]*domain.Order, error)
}

// PaymentRepository defines persistence operations for administrative tab
// entries.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	// ListByMember returns a member's tab entries, newest first.
	ListByMember(ctx context.Context, memberID string) ([]*domain.Payment, error)
}
