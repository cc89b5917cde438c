package ports

import (
	"context"

	"github.com/couleurbar/theke-system/internal/core/domain"
)

// MemberRepository defines persistence operations for members.
type MemberRepository interface {
	Create(ctx context.Context, m *domain.Member) (*domain.Member, error)
	FindByID(ctx context.Context, id string) (*domain.Member, error)
	FindByEmail(ctx context.Context, email string) (*domain.Member, error)
	// List returns all members sorted by couleurname.
	List(ctx context.Context) ([]*domain.Member, error)
	// IncrementTab atomically adds delta to the member's tabBalance (a
	// missing field counts as 0) and returns the updated member. Positive
	// deltas increase debt.
	IncrementTab(ctx context.Context, id string, delta float64) (*domain.Member, error)
}
