package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/couleurbar/theke-system/internal/core/domain"
	"github.com/couleurbar/theke-system/internal/core/ports"
)

// PaymentService implements ports.PaymentService. Besides order settlement,
// payments are the only flow allowed to move a member's tabBalance.
type PaymentService struct {
	payments ports.PaymentRepository
	members  ports.MemberRepository
	logger   zerolog.Logger
}

func NewPaymentService(payments ports.PaymentRepository, members ports.MemberRepository, logger zerolog.Logger) *PaymentService {
	return &PaymentService{payments: payments, members: members, logger: logger}
}

// Record writes a tab entry and adjusts the member's balance. A positive
// amount reduces debt, a negative amount (penalty) increases it.
func (s *PaymentService) Record(ctx context.Context, actor *ports.Actor, input ports.RecordPaymentInput) (*domain.Payment, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if input.Amount == 0 || !domain.ValidPaymentType(input.Type) {
		return nil, domain.ErrInvalidPayment
	}

	member, err := s.members.FindByID(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	payment := &domain.Payment{
		ID:        uuid.NewString(),
		Member:    domain.NewRef(member.ID),
		Amount:    input.Amount,
		Type:      input.Type,
		Date:      date,
		Notes:     input.Notes,
		Admin:     domain.NewRef(actor.ID),
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.payments.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	// Payments settle debt, so the balance moves opposite to the amount.
	updated, err := s.members.IncrementTab(ctx, member.ID, -input.Amount)
	if err != nil {
		s.logger.Error().Err(err).Str("payment_id", created.ID).Msg("payment recorded but balance not adjusted")
		return nil, err
	}

	s.logger.Info().
		Str("payment_id", created.ID).
		Str("member_id", member.ID).
		Str("type", string(input.Type)).
		Float64("amount", input.Amount).
		Float64("tab_balance", updated.TabBalance).
		Msg("payment recorded")

	return created, nil
}

// ListByMember returns a member's tab entries, newest first.
func (s *PaymentService) ListByMember(ctx context.Context, memberID string) ([]*domain.Payment, error) {
	return s.payments.ListByMember(ctx, memberID)
}
