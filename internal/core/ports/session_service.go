package ports

import (
	"context"
	"time"

	"github.com/couleurbar/theke-system/internal/core/domain"
)

// BartenderInput is one roster entry for a new session.
type BartenderInput struct {
	MemberID           string
	EstimatedStartTime *time.Time
	EstimatedEndTime   *time.Time
}

// CreateSessionInput carries the data for opening a new session.
type CreateSessionInput struct {
	Name       string
	Notes      string
	Bartenders []BartenderInput
}

// SessionService defines the session lifecycle use cases. Create and Close
// are admin-only.
type SessionService interface {
	Create(ctx context.Context, actor *Actor, input CreateSessionInput) (*domain.Session, error)
	Close(ctx context.Context, actor *Actor, sessionID string) (*domain.Session, error)
	// Active returns the current active session, or (nil, nil) when the
	// bar is closed.
	Active(ctx context.Context) (*domain.Session, error)
	List(ctx context.Context, actor *Actor) ([]*domain.Session, error)
}
