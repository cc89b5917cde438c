package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/couleurbar/theke-system/internal/core/domain"
	"github.com/couleurbar/theke-system/internal/core/ports"
)

// SessionService implements ports.SessionService. Opening and closing
// sessions is restricted to admins; the single-active-session invariant is
// enforced by the sessions collection itself (partial unique index), not by
// a read-then-check in application code.
type SessionService struct {
	sessions ports.SessionRepository
	logger   zerolog.Logger
}

func NewSessionService(sessions ports.SessionRepository, logger zerolog.Logger) *SessionService {
	return &SessionService{sessions: sessions, logger: logger}
}

// Create opens a new active session with the given bartender roster.
func (s *SessionService) Create(ctx context.Context, actor *ports.Actor, input ports.CreateSessionInput) (*domain.Session, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if len(input.Bartenders) == 0 {
		return nil, domain.ErrNoBartenders
	}

	now := time.Now().UTC()
	bartenders := make([]domain.Bartender, 0, len(input.Bartenders))
	for _, b := range input.Bartenders {
		bartenders = append(bartenders, domain.Bartender{
			Member:             domain.NewRef(b.MemberID),
			EstimatedStartTime: b.EstimatedStartTime,
			EstimatedEndTime:   b.EstimatedEndTime,
			Status:             domain.BartenderActive,
		})
	}

	session := &domain.Session{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Status:       domain.SessionActive,
		CreatedBy:    domain.NewRef(actor.ID),
		StartTime:    &now,
		Bartenders:   bartenders,
		TotalRevenue: 0,
		Statistics:   domain.SessionStatistics{TotalProductsSold: 0},
		Notes:        input.Notes,
	}

	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("session_id", created.ID).
		Str("created_by", actor.ID).
		Int("bartenders", len(bartenders)).
		Msg("session opened")

	return created, nil
}

// Close transitions the active session to its terminal closed state.
func (s *SessionService) Close(ctx context.Context, actor *ports.Actor, sessionID string) (*domain.Session, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	closed, err := s.sessions.Close(ctx, sessionID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("session_id", closed.ID).
		Float64("total_revenue", closed.TotalRevenue).
		Int("products_sold", closed.Statistics.TotalProductsSold).
		Msg("session closed")

	return closed, nil
}

// Active returns the current active session, or (nil, nil) when none.
func (s *SessionService) Active(ctx context.Context) (*domain.Session, error) {
	session, err := s.sessions.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("find active session: %w", err)
	}
	return session, nil
}

// List returns the session history, admin only.
func (s *SessionService) List(ctx context.Context, actor *ports.Actor) ([]*domain.Session, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.sessions.List(ctx)
}
