package ports

import (
	"context"
	"time"

	"github.com/couleurbar/theke-system/internal/core/domain"
)

// SessionRepository defines persistence operations for sessions.
type SessionRepository interface {
	// Create inserts a new session. Inserting a second active session
	// violates the partial unique index and returns
	// domain.ErrActiveSessionExists.
	Create(ctx context.Context, s *domain.Session) (*domain.Session, error)
	// FindActive returns the session with status=active, or (nil, nil)
	// when none is active. Absence is a normal state, not an error.
	FindActive(ctx context.Context) (*domain.Session, error)
	FindByID(ctx context.Context, id string) (*domain.Session, error)
	// List returns all sessions, newest first.
	List(ctx context.Context) ([]*domain.Session, error)
	// Close transitions the session to closed and stamps endTime,
	// returning the updated session.
	Close(ctx context.Context, id string, endTime time.Time) (*domain.Session, error)
	// ApplyOrderTotals atomically increments totalRevenue by amount and
	// statistics.totalProductsSold by productsSold. topProduct is written
	// to statistics.mostPopularProduct only when no value was previously
	// recorded (first-write-wins).
	ApplyOrderTotals(ctx context.Context, id string, amount float64, productsSold int, topProduct string) error
}
