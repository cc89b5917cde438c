package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/couleurbar/theke-system/internal/core/domain"
	"github.com/couleurbar/theke-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubMemberRepo struct {
	byID         map[string]*domain.Member
	incrementErr error
}

func newStubMemberRepo(members ...*domain.Member) *stubMemberRepo {
	r := &stubMemberRepo{byID: make(map[string]*domain.Member)}
	for _, m := range members {
		clone := *m
		r.byID[m.ID] = &clone
	}
	return r
}

func (r *stubMemberRepo) Create(_ context.Context, m *domain.Member) (*domain.Member, error) {
	clone := *m
	r.byID[m.ID] = &clone
	return m, nil
}

func (r *stubMemberRepo) FindByID(_ context.Context, id string) (*domain.Member, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMemberRepo) FindByEmail(_ context.Context, email string) (*domain.Member, error) {
	for _, m := range r.byID {
		if m.Email == email {
			clone := *m
			return &clone, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (r *stubMemberRepo) List(_ context.Context) ([]*domain.Member, error) {
	out := make([]*domain.Member, 0, len(r.byID))
	for _, m := range r.byID {
		clone := *m
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubMemberRepo) IncrementTab(_ context.Context, id string, delta float64) (*domain.Member, error) {
	if r.incrementErr != nil {
		return nil, r.incrementErr
	}
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	m.TabBalance += delta
	clone := *m
	return &clone, nil
}

type stubSessionRepo struct {
	active   *domain.Session
	totalErr error
}

func (r *stubSessionRepo) Create(_ context.Context, s *domain.Session) (*domain.Session, error) {
	if r.active != nil && r.active.Status == domain.SessionActive {
		return nil, domain.ErrActiveSessionExists
	}
	clone := *s
	r.active = &clone
	return s, nil
}

func (r *stubSessionRepo) FindActive(_ context.Context) (*domain.Session, error) {
	if r.active == nil || r.active.Status != domain.SessionActive {
		return nil, nil
	}
	clone := *r.active
	return &clone, nil
}

func (r *stubSessionRepo) FindByID(_ context.Context, id string) (*domain.Session, error) {
	if r.active == nil || r.active.ID != id {
		return nil, domain.ErrSessionNotFound
	}
	clone := *r.active
	return &clone, nil
}

func (r *stubSessionRepo) List(_ context.Context) ([]*domain.Session, error) {
	if r.active == nil {
		return nil, nil
	}
	clone := *r.active
	return []*domain.Session{&clone}, nil
}

func (r *stubSessionRepo) Close(_ context.Context, id string, endTime time.Time) (*domain.Session, error) {
	if r.active == nil || r.active.ID != id {
		return nil, domain.ErrSessionNotFound
	}
	r.active.Status = domain.SessionClosed
	r.active.EndTime = &endTime
	clone := *r.active
	return &clone, nil
}

// ApplyOrderTotals mirrors the guarded Mongo update: increments are atomic
// and mostPopularProduct keeps its first non-empty value.
func (r *stubSessionRepo) ApplyOrderTotals(_ context.Context, id string, amount float64, productsSold int, topProduct string) error {
	if r.totalErr != nil {
		return r.totalErr
	}
	if r.active == nil || r.active.ID != id {
		return domain.ErrSessionNotFound
	}
	r.active.TotalRevenue += amount
	r.active.Statistics.TotalProductsSold += productsSold
	if r.active.Statistics.MostPopularProduct == "" && topProduct != "" {
		r.active.Statistics.MostPopularProduct = topProduct
	}
	return nil
}

type stubProductRepo struct {
	byID map[string]*domain.Product
}

func newStubProductRepo(products ...*domain.Product) *stubProductRepo {
	r := &stubProductRepo{byID: make(map[string]*domain.Product)}
	for _, p := range products {
		clone := *p
		r.byID[p.ID] = &clone
	}
	return r
}

func (r *stubProductRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, id := range ids {
		if p, ok := r.byID[id]; ok {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.byID))
	for _, p := range r.byID {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	clone := *p
	r.byID[p.ID] = &clone
	return p, nil
}

type stubOrderRepo struct {
	byID      map[string]*domain.Order
	createErr error
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{byID: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *o
	r.byID[o.ID] = &clone
	return o, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) ListBySession(_ context.Context, sessionID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.byID {
		if o.Session.ID == sessionID {
			clone := *o
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ListByMember(_ context.Context, memberID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.byID {
		if o.Member.ID == memberID {
			clone := *o
			out = append(out, &clone)
		}
	}
	return out, nil
}

type stubIdemStore struct {
	byKey map[string]string
}

func newStubIdemStore() *stubIdemStore {
	return &stubIdemStore{byKey: make(map[string]string)}
}

func (s *stubIdemStore) Lookup(_ context.Context, key string) (string, error) {
	return s.byKey[key], nil
}

func (s *stubIdemStore) Remember(_ context.Context, key, orderID string) error {
	s.byKey[key] = orderID
	return nil
}

// inlineSettler runs settlement synchronously; dispatcher behaviour is
// covered by the queue package tests.
type inlineSettler struct{}

func (inlineSettler) Do(ctx context.Context, _ string, fn func(context.Context) error) error {
	return fn(ctx)
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type fixture struct {
	members  *stubMemberRepo
	sessions *stubSessionRepo
	products *stubProductRepo
	orders   *stubOrderRepo
	idem     *stubIdemStore
	svc      *OrderService
}

// newFixture builds a service over an active session where member "barkeeper"
// tends bar, member "franz" has a 15.50 EUR tab and the catalog holds beer,
// schnaps and an unavailable cigar.
func newFixture() *fixture {
	members := newStubMemberRepo(
		&domain.Member{ID: "barkeeper", Couleurname: "Thor", Role: domain.RoleMember},
		&domain.Member{ID: "franz", Couleurname: "Franziskus", Role: domain.RoleMember, TabBalance: 15.50},
		&domain.Member{ID: "senior", Couleurname: "Maximus", Role: domain.RoleAdmin},
	)
	sessions := &stubSessionRepo{active: &domain.Session{
		ID:     "session-1",
		Name:   "Freitagskneipe",
		Status: domain.SessionActive,
		Bartenders: []domain.Bartender{
			{Member: domain.NewRef("barkeeper"), Status: domain.BartenderActive},
		},
	}}
	products := newStubProductRepo(
		&domain.Product{ID: "beer", Name: "Bier 0,5L", Price: 3.5, Available: true},
		&domain.Product{ID: "schnaps", Name: "Schnaps 2cl", Price: 2.0, Available: true},
		&domain.Product{ID: "cigar", Name: "Montecristo No.4", Price: 12.0, Available: false},
	)
	orders := newStubOrderRepo()
	idem := newStubIdemStore()

	return &fixture{
		members:  members,
		sessions: sessions,
		products: products,
		orders:   orders,
		idem:     idem,
		svc:      NewOrderService(members, sessions, products, orders, idem, inlineSettler{}, discardLogger),
	}
}

func bartender() *ports.Actor {
	return &ports.Actor{ID: "barkeeper", Couleurname: "Thor", Role: domain.RoleMember}
}

func orderFor(memberID string, items ...ports.OrderItemInput) ports.SubmitOrderInput {
	return ports.SubmitOrderInput{MemberID: memberID, Items: items}
}

// ---------------------------------------------------------------------------
// Authorization gate
// ---------------------------------------------------------------------------

func TestSubmitOrder_NilActor(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SubmitOrder(context.Background(), nil, orderFor("franz", ports.OrderItemInput{ProductID: "beer", Quantity: 1}))
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestSubmitOrder_NoActiveSession(t *testing.T) {
	// Without an active session nobody can order, admins included.
	actors := map[string]*ports.Actor{
		"bartender": bartender(),
		"admin":     {ID: "senior", Couleurname: "Maximus", Role: domain.RoleAdmin},
	}

	for name, actor := range actors {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			f.sessions.active = nil

			_, err := f.svc.SubmitOrder(context.Background(), actor, orderFor("franz", ports.OrderItemInput{ProductID: "beer", Quantity: 1}))
			if !errors.Is(err, domain.ErrNoActiveSession) {
				t.Fatalf("expected ErrNoActiveSession, got %v", err)
			}
			if got := err.Error(); got != "Es ist keine Sitzung aktiv" {
				t.Errorf("wrong user message: %q", got)
			}
		})
	}
}

func TestSubmitOrder_ClosedSessionCountsAsNone(t *testing.T) {
	f := newFixture()
	f.sessions.active.Status = domain.SessionClosed

	_, err := f.svc.SubmitOrder(context.Background(), bartender(), orderFor("franz", ports.OrderItemInput{ProductID: "beer", Quantity: 1}))
	if !errors.Is(err, domain.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestSubmitOrder_NotOnRoster(t *testing.T) {
	f := newFixture()
	actor := &ports.Actor{ID: "franz", Couleurname: "Franziskus", Role: domain.RoleMember}

	_, err := f.svc.SubmitOrder(context.Background(), actor, orderFor("franz", ports.OrderItemInput{ProductID: "beer", Quantity: 1}))
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if got := err.Error(); got != "Keine Berechtigung zum Bestellen" {
		t.Errorf("wrong user message: %q", got)
	}
}

func TestSubmitOrder_AdminBypassesRoster(t *testing.T) {
	f := newFixture()
	admin := &ports.Actor{ID: "senior", Couleurname: "Maximus", Role: domain.RoleAdmin}

	result, err := f.svc.SubmitOrder(context.Background(), admin, orderFor("franz", ports.OrderItemInput{ProductID: "beer", Quantity: 1}))
	if err != nil {
		t.Fatalf("admin order must succeed: %v", err)
	}
	if result.Order.Bartender.ID != "senior" {
		t.Errorf("order must record the entering admin, got %q", result.Order.Bartender.ID)
	}
}

// ---------------------------------------------------------------------------
// Normalization
// ---------------------------------------------------------------------------

func TestSubmitOrder_EmptyItems(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SubmitOrder(context.Background(), bartender(), orderFor("franz"))
	if !errors.Is(err, domain.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
	if got := err.Error(); got != "Keine Produkte ausgewählt" {
		t.Errorf("wrong user message: %q", got)
	}
}

func TestSubmitOrder_UnknownProduct(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SubmitOrder(context.Background(), bartender(), orderFor("franz", ports.OrderItemInput{ProductID: "no-such", Quantity: 1}))
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestSubmitOrder_UnavailableProduct(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SubmitOrder(context.Background(), bartender(), orderFor("franz",
		ports.OrderItemInput{ProductID: "beer", Quantity: 2},
		ports.OrderItemInput{ProductID: "cigar", Quantity: 1},
	))
	if !errors.Is(err, domain.ErrProductUnavailable) {
		t.Fatalf("expected ErrProductUnavailable, got %v", err)
	}
	if got := err.Error(); got != "Produkt Montecristo No.4 ist nicht verfügbar" {
		t.Errorf("wrong user message: %q", got)
	}

	// The whole order is rejected: nothing persisted, tab untouched.
	if len(f.orders.byID) != 0 {
		t.Errorf("no order may be created, got %d", len(f.orders.byID))
	}
	m, _ := f.members.FindByID(context.Background(), "franz")
	if m.TabBalance != 15.50 {
		t.Errorf("tab balance must be unchanged, got %.2f", m.TabBalance)
	}
}

func TestSubmitOrder_PriceSnapshot(t *testing.T) {
	f := newFixture()

	result, err := f.svc.SubmitOrder(context.Background(), bartender(), orderFor("franz", ports.OrderItemInput{ProductID: "beer", Quantity: 2}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Order.Items[0].PriceAtOrder != 3.5 {
		t.Errorf("expected snapshot price 3.5, got %v", result.Order.Items[0].PriceAtOrder)
	}

	// A later catalog price change must not alter the stored order.
	f.products.byID["beer"].Price = 4.0
	stored, _ := f.orders.FindByID(context.Background(), result.Order.ID)
	if stored.Items[0].PriceAtOrder != 3.5 {
		t.Errorf("stored order price changed retroactively: %v", stored.Items[0].PriceAtOrder)
	}
}

func TestSubmitOrder_QuantityClamping(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		want     int
	}{
		{"zero becomes one", 0, 1},
		{"negative becomes one", -3, 1},
		{"NaN becomes one", math.NaN(), 1},
		{"infinity becomes one", math.Inf(1), 1},
		{"fraction floors", 2.7, 2},
		{"integer passes through", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			result, err := f.svc.SubmitOrder(context.Background(), bartender(), orderFor("franz",
				ports.OrderItemInput{ProductID: "beer", Quantity: tt.quantity}))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := result.Order.Items[0].Quantity; got != tt.want {
				t.Errorf("quantity %v: expected %d, got %d", tt.quantity, tt.want, got)
			}
			if want := 3.5 * float64(tt.want); result.Order.TotalAmount != want {
				t.Errorf("total: expected %.2f, got %.2f", want, result.Order.TotalAmount)
			}
		})
	}
}

func TestSubmitOrder_DuplicateProductLines(t *testing.T) {
	f := newFixture()

	// Same product on two lines stays two lines; both priced.
	result, err := f.svc.SubmitOrder(context.Background(), bartender(), orderFor("franz",
		ports.OrderItemInput{ProductID: "beer", Quantity: 1},
		ports.OrderItemInput{ProductID: "beer", Quantity: 2},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Order.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(result.Order.Items))
	}
	if result.Order.TotalAmount != 10.5 {
		t.Errorf("expected total 10.50, got %.2f", result.Order.TotalAmount)
	}
}

// ---------------------------------------------------------------------------
// Settlement
// ---------------------------------------------------------------------------

func TestSubmitOrder_Success(t *testing.T) {
	f := newFixture()

	result, err := f.svc.SubmitOrder(context.Background(), bartender(), orderFor("franz",
		ports.OrderItemInput{ProductID: "beer", Quantity: 2},
		ports.OrderItemInput{ProductID: "schnaps", Quantity: 1},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order := result.Order
	if order.TotalAmount != 9.0 {
		t.Errorf("expected total 9.00, got %.2f", order.TotalAmount)
	}
	if order.Status != domain.OrderCompleted {
		t.Errorf("expected status completed, got %q", order.Status)
	}
	if order.Session.ID != "session-1" || order.Member.ID != "franz" || order.Bartender.ID != "barkeeper" {
		t.Errorf("wrong references: session=%q member=%q bartender=%q", order.Session.ID, order.Member.ID, order.Bartender.ID)
	}
	if result.AlreadyExisted {
		t.Error("fresh order must not report AlreadyExisted")
	}

	// Tab debited: 15.50 + 9.00.
	m, _ := f.members.FindByID(context.Background(), "franz")
	if m.TabBalance != 24.50 {
		t.Errorf("expected tab 24.50, got %.2f", m.TabBalance)
	}

	// Session aggregates updated.
	s := f.sessions.active
	if s.TotalRevenue != 9.0 {
		t.Errorf("expected session revenue 9.00, got %.2f", s.TotalRevenue)
	}
	if s.Statistics.TotalProductsSold != 3 {
		t.Errorf("expected 3 products sold, got %d", s.Statistics.TotalProductsSold)
	}
	if s.Statistics.MostPopularProduct != "Bier 0,5L" {
		t.Errorf("expected top product Bier 0,5L, got %q", s.Statistics.MostPopularProduct)
	}
}

func TestSubmitOrder_MostPopularProductKeepsFirstValue(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SubmitOrder(context.Background(), bartender(), orderFor("franz", ports.OrderItemInput{ProductID: "beer", Quantity: 1}))
	if err != nil {
		t.Fatalf("first order failed: %v", err)
	}
	_, err = f.svc.SubmitOrder(context.Background(), bartender(), orderFor("franz", ports.OrderItemInput{ProductID: "schnaps", Quantity: 10}))
	if err != nil {
		t.Fatalf("second order failed: %v", err)
	}

	if got := f.sessions.active.Statistics.MostPopularProduct; got != "Bier 0,5L" {
		t.Errorf("first recorded value must stick, got %q", got)
	}
	if got := f.sessions.active.Statistics.TotalProductsSold; got != 11 {
		t.Errorf("expected 11 products sold, got %d", got)
	}
}

func TestSubmitOrder_TopItemTieKeepsFirstLine(t *testing.T) {
	f := newFixture()

	result, err := f.svc.SubmitOrder(context.Background(), bartender(), orderFor("franz",
		ports.OrderItemInput{ProductID: "schnaps", Quantity: 2},
		ports.OrderItemInput{ProductID: "beer", Quantity: 2},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if top := result.Order.TopItem(); top.ProductName != "Schnaps 2cl" {
		t.Errorf("tie must keep first line, got %q", top.ProductName)
	}
}

func TestSubmitOrder_CreateFailureLeavesTabUntouched(t *testing.T) {
	f := newFixture()
	f.orders.createErr = errors.New("db unavailable")

	_, err := f.svc.SubmitOrder(context.Background(), bartender(), orderFor("franz", ports.OrderItemInput{ProductID: "beer", Quantity: 1}))
	if err == nil {
		t.Fatal("expected error when order create fails")
	}
	m, _ := f.members.FindByID(context.Background(), "franz")
	if m.TabBalance != 15.50 {
		t.Errorf("tab must be unchanged when create fails, got %.2f", m.TabBalance)
	}
}

func TestSubmitOrder_DebitFailureKeepsOrderPersisted(t *testing.T) {
	f := newFixture()
	f.members.incrementErr = errors.New("db unavailable")

	_, err := f.svc.SubmitOrder(context.Background(), bartender(), orderFor("franz", ports.OrderItemInput{ProductID: "beer", Quantity: 1}))
	if err == nil {
		t.Fatal("expected error when debit fails")
	}
	// No rollback: the order stays persisted for detection.
	if len(f.orders.byID) != 1 {
		t.Errorf("expected the order to remain persisted, got %d", len(f.orders.byID))
	}
}

func TestSubmitOrder_UnknownMember(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SubmitOrder(context.Background(), bartender(), orderFor("no-such", ports.OrderItemInput{ProductID: "beer", Quantity: 1}))
	if !errors.Is(err, domain.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Idempotency
// ---------------------------------------------------------------------------

func TestSubmitOrder_IdempotentReplay(t *testing.T) {
	f := newFixture()

	input := orderFor("franz", ports.OrderItemInput{ProductID: "beer", Quantity: 2})
	input.IdempotencyKey = "key-abc-123"

	first, err := f.svc.SubmitOrder(context.Background(), bartender(), input)
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	second, err := f.svc.SubmitOrder(context.Background(), bartender(), input)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}

	if second.Order.ID != first.Order.ID {
		t.Errorf("replay must return the original order: %q vs %q", second.Order.ID, first.Order.ID)
	}
	if !second.AlreadyExisted {
		t.Error("replay must set AlreadyExisted=true")
	}
	if len(f.orders.byID) != 1 {
		t.Errorf("expected 1 stored order, got %d", len(f.orders.byID))
	}

	// Only the first submission settles.
	m, _ := f.members.FindByID(context.Background(), "franz")
	if m.TabBalance != 22.50 {
		t.Errorf("expected tab 22.50 after single settlement, got %.2f", m.TabBalance)
	}
}

func TestSubmitOrder_NoKeyAlwaysSettles(t *testing.T) {
	f := newFixture()

	input := orderFor("franz", ports.OrderItemInput{ProductID: "beer", Quantity: 1})
	_, _ = f.svc.SubmitOrder(context.Background(), bartender(), input)
	_, _ = f.svc.SubmitOrder(context.Background(), bartender(), input)

	if len(f.orders.byID) != 2 {
		t.Errorf("without idempotency key, each submit must settle: got %d orders", len(f.orders.byID))
	}
}

// ---------------------------------------------------------------------------
// Rejection classification
// ---------------------------------------------------------------------------

func TestSubmitOrder_RejectionsAreUserFacing(t *testing.T) {
	f := newFixture()

	cases := []struct {
		name  string
		setup func(*fixture)
		actor *ports.Actor
		input ports.SubmitOrderInput
	}{
		{
			name:  "no session",
			setup: func(f *fixture) { f.sessions.active = nil },
			actor: bartender(),
			input: orderFor("franz", ports.OrderItemInput{ProductID: "beer", Quantity: 1}),
		},
		{
			name:  "not on roster",
			actor: &ports.Actor{ID: "franz", Role: domain.RoleMember},
			input: orderFor("franz", ports.OrderItemInput{ProductID: "beer", Quantity: 1}),
		},
		{
			name:  "empty order",
			actor: bartender(),
			input: orderFor("franz"),
		},
		{
			name:  "unavailable product",
			actor: bartender(),
			input: orderFor("franz", ports.OrderItemInput{ProductID: "cigar", Quantity: 1}),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f = newFixture()
			if tc.setup != nil {
				tc.setup(f)
			}
			_, err := f.svc.SubmitOrder(context.Background(), tc.actor, tc.input)
			if err == nil {
				t.Fatal("expected rejection")
			}
			if !domain.IsOrderRejection(err) {
				t.Errorf("rejection must be user-facing, got %v", err)
			}
		})
	}
}
