package ports

import (
	"context"

	"github.com/couleurbar/theke-system/internal/core/domain"
)

// AuthService authenticates members and mints access tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.Member, error)
}
