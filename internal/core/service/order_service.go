package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/couleurbar/theke-system/internal/core/domain"
	"github.com/couleurbar/theke-system/internal/core/ports"
)

// IdempotencyStore abstracts the Redis-backed replay protection for order
// submissions.
type IdempotencyStore interface {
	// Lookup returns the order id previously stored under key, or "" when
	// the key is unknown.
	Lookup(ctx context.Context, key string) (string, error)
	// Remember stores orderID under key with a bounded TTL.
	Remember(ctx context.Context, key, orderID string) error
}

// Settler serializes settlement work per member so two concurrent orders on
// the same tab cannot interleave between the settlement steps.
type Settler interface {
	Do(ctx context.Context, key string, fn func(context.Context) error) error
}

// OrderService implements ports.OrderService.
type OrderService struct {
	members  ports.MemberRepository
	sessions ports.SessionRepository
	products ports.ProductRepository
	orders   ports.OrderRepository
	idem     IdempotencyStore
	settler  Settler
	logger   zerolog.Logger
}

func NewOrderService(
	members ports.MemberRepository,
	sessions ports.SessionRepository,
	products ports.ProductRepository,
	orders ports.OrderRepository,
	idem IdempotencyStore,
	settler Settler,
	logger zerolog.Logger,
) *OrderService {
	return &OrderService{
		members:  members,
		sessions: sessions,
		products: products,
		orders:   orders,
		idem:     idem,
		settler:  settler,
		logger:   logger,
	}
}

// SubmitOrder runs the order workflow in three stages: authorization gate,
// order normalization, settlement. The settlement steps (create order,
// debit member, update session aggregates) are each independently persisted;
// there is no cross-step rollback, but per-member serialization plus atomic
// storage increments prevent lost updates under concurrency.
func (s *OrderService) SubmitOrder(ctx context.Context, actor *ports.Actor, input ports.SubmitOrderInput) (*ports.SubmitOrderResult, error) {
	if actor == nil || actor.ID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	// --- Stage 1: authorization gate ---
	session, err := s.sessions.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("find active session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrNoActiveSession
	}
	if !actor.IsAdmin() && !session.HasBartender(actor.ID) {
		return nil, domain.ErrUnauthorized
	}

	// --- Idempotent replay ---
	if input.IdempotencyKey != "" && s.idem != nil {
		orderID, err := s.idem.Lookup(ctx, input.IdempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("idempotency lookup failed, processing anyway")
		} else if orderID != "" {
			existing, err := s.orders.FindByID(ctx, orderID)
			if err == nil && existing != nil {
				s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("order_id", orderID).Msg("idempotent replay")
				return &ports.SubmitOrderResult{Order: existing, AlreadyExisted: true}, nil
			}
		}
	}

	// --- Stage 2: order normalization ---
	items, totalAmount, err := s.normalizeItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	// --- Stage 3: settlement ---
	member, err := s.members.FindByID(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:          uuid.NewString(),
		Session:     domain.NewRef(session.ID),
		Member:      domain.NewRef(member.ID),
		Bartender:   domain.NewRef(actor.ID),
		Items:       items,
		TotalAmount: totalAmount,
		Status:      domain.OrderCompleted,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.settler.Do(ctx, member.ID, func(ctx context.Context) error {
		return s.settle(ctx, session.ID, member.ID, order)
	}); err != nil {
		return nil, err
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, input.IdempotencyKey, order.ID); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("failed to store idempotency key")
		}
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("member_id", member.ID).
		Str("bartender_id", actor.ID).
		Str("session_id", session.ID).
		Float64("total_amount", totalAmount).
		Msg("order settled")

	return &ports.SubmitOrderResult{Order: order}, nil
}

// normalizeItems prices and validates the requested line items against the
// current catalog. An unavailable product rejects the whole order; no
// partial order is ever created.
func (s *OrderService) normalizeItems(ctx context.Context, requested []ports.OrderItemInput) ([]domain.OrderItem, float64, error) {
	if len(requested) == 0 {
		return nil, 0, domain.ErrEmptyOrder
	}

	ids := make([]string, 0, len(requested))
	seen := make(map[string]struct{}, len(requested))
	for _, item := range requested {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	fetched, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch products: %w", err)
	}
	catalog := make(map[string]*domain.Product, len(fetched))
	for _, p := range fetched {
		catalog[p.ID] = p
	}

	items := make([]domain.OrderItem, 0, len(requested))
	total := 0.0
	for _, item := range requested {
		product, ok := catalog[item.ProductID]
		if !ok {
			return nil, 0, domain.ErrProductNotFound
		}
		if !product.Available {
			return nil, 0, &domain.ProductUnavailableError{Name: product.Name}
		}

		quantity := clampQuantity(item.Quantity)
		items = append(items, domain.OrderItem{
			Product:      domain.NewRef(product.ID),
			ProductName:  product.Name,
			Quantity:     quantity,
			PriceAtOrder: product.Price,
		})
		total += product.Price * float64(quantity)
	}

	if total <= 0 {
		return nil, 0, domain.ErrNonPositiveTotal
	}

	return items, total, nil
}

// clampQuantity coerces a client-supplied quantity: floor of the value with
// a minimum of 1; non-finite input counts as 1. Invalid quantities are
// silently fixed rather than rejected, matching the permissive behaviour
// the bar UI relies on.
func clampQuantity(q float64) int {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 1
	}
	n := int(math.Floor(q))
	if n < 1 {
		return 1
	}
	return n
}

// settle persists the order and propagates its effects, in order: create
// order, debit member, update session aggregates. A failure leaves earlier
// steps persisted (detectable, not rolled back).
func (s *OrderService) settle(ctx context.Context, sessionID, memberID string, order *domain.Order) error {
	if _, err := s.orders.Create(ctx, order); err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	if _, err := s.members.IncrementTab(ctx, memberID, order.TotalAmount); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("order persisted but tab debit failed")
		return fmt.Errorf("debit member tab: %w", err)
	}

	top := order.TopItem()
	if err := s.sessions.ApplyOrderTotals(ctx, sessionID, order.TotalAmount, order.TotalQuantity(), top.ProductName); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("order persisted but session aggregates stale")
		return fmt.Errorf("update session totals: %w", err)
	}

	return nil
}

// ListBySession returns all orders of a session, newest first.
func (s *OrderService) ListBySession(ctx context.Context, sessionID string) ([]*domain.Order, error) {
	return s.orders.ListBySession(ctx, sessionID)
}

// ListByMember returns all orders billed to a member, newest first.
func (s *OrderService) ListByMember(ctx context.Context, memberID string) ([]*domain.Order, error) {
	return s.orders.ListByMember(ctx, memberID)
}
