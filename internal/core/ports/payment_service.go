package ports

import (
	"context"
	"time"

	"github.com/couleurbar/theke-system/internal/core/domain"
)

// RecordPaymentInput carries an administrative tab entry. Amount is
// positive for payments (debt settled) and negative for penalties.
type RecordPaymentInput struct {
	MemberID string
	Amount   float64
	Type     domain.PaymentType
	Date     time.Time
	Notes    string
}

// PaymentService defines the admin-only tab ledger use cases. Payments and
// orders are the only two flows that move tabBalance.
type PaymentService interface {
	Record(ctx context.Context, actor *Actor, input RecordPaymentInput) (*domain.Payment, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.Payment, error)
}
