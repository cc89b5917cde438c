package service

import (
	"context"
	"errors"
	"testing"

	"github.com/couleurbar/theke-system/internal/core/domain"
	"github.com/couleurbar/theke-system/internal/core/ports"
)

func adminActor() *ports.Actor {
	return &ports.Actor{ID: "senior", Couleurname: "Maximus", Role: domain.RoleAdmin}
}

func memberActor() *ports.Actor {
	return &ports.Actor{ID: "franz", Couleurname: "Franziskus", Role: domain.RoleMember}
}

func sessionInput() ports.CreateSessionInput {
	return ports.CreateSessionInput{
		Name: "Freitagskneipe",
		Bartenders: []ports.BartenderInput{
			{MemberID: "barkeeper"},
		},
	}
}

func TestSessionService_Create_Success(t *testing.T) {
	repo := &stubSessionRepo{}
	svc := NewSessionService(repo, discardLogger)

	session, err := svc.Create(context.Background(), adminActor(), sessionInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.Status != domain.SessionActive {
		t.Errorf("expected active status, got %q", session.Status)
	}
	if session.CreatedBy.ID != "senior" {
		t.Errorf("expected creator senior, got %q", session.CreatedBy.ID)
	}
	if session.StartTime == nil || session.StartTime.IsZero() {
		t.Error("start time must be set")
	}
	if session.TotalRevenue != 0 || session.Statistics.TotalProductsSold != 0 {
		t.Error("new session must start with zeroed aggregates")
	}
	if len(session.Bartenders) != 1 || session.Bartenders[0].Status != domain.BartenderActive {
		t.Errorf("roster must be seeded active, got %+v", session.Bartenders)
	}
}

func TestSessionService_Create_RequiresAdmin(t *testing.T) {
	svc := NewSessionService(&stubSessionRepo{}, discardLogger)

	_, err := svc.Create(context.Background(), memberActor(), sessionInput())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestSessionService_Create_RequiresBartenders(t *testing.T) {
	svc := NewSessionService(&stubSessionRepo{}, discardLogger)

	input := sessionInput()
	input.Bartenders = nil
	_, err := svc.Create(context.Background(), adminActor(), input)
	if !errors.Is(err, domain.ErrNoBartenders) {
		t.Fatalf("expected ErrNoBartenders, got %v", err)
	}
}

func TestSessionService_Create_SecondActiveRejected(t *testing.T) {
	repo := &stubSessionRepo{}
	svc := NewSessionService(repo, discardLogger)

	if _, err := svc.Create(context.Background(), adminActor(), sessionInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := svc.Create(context.Background(), adminActor(), sessionInput())
	if !errors.Is(err, domain.ErrActiveSessionExists) {
		t.Fatalf("expected ErrActiveSessionExists, got %v", err)
	}
}

func TestSessionService_Close(t *testing.T) {
	repo := &stubSessionRepo{}
	svc := NewSessionService(repo, discardLogger)

	created, err := svc.Create(context.Background(), adminActor(), sessionInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	closed, err := svc.Close(context.Background(), adminActor(), created.ID)
	if err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if closed.Status != domain.SessionClosed {
		t.Errorf("expected closed status, got %q", closed.Status)
	}
	if closed.EndTime == nil || closed.EndTime.IsZero() {
		t.Error("end time must be stamped")
	}

	// Closing frees the slot for the next session.
	active, err := svc.Active(context.Background())
	if err != nil {
		t.Fatalf("active lookup failed: %v", err)
	}
	if active != nil {
		t.Errorf("no session may be active after close, got %+v", active)
	}
}

func TestSessionService_Close_RequiresAdmin(t *testing.T) {
	svc := NewSessionService(&stubSessionRepo{}, discardLogger)

	_, err := svc.Close(context.Background(), memberActor(), "session-1")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestSessionService_Active_NoneIsNotAnError(t *testing.T) {
	svc := NewSessionService(&stubSessionRepo{}, discardLogger)

	session, err := svc.Active(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session != nil {
		t.Errorf("expected nil session, got %+v", session)
	}
}

func TestSessionService_List_RequiresAdmin(t *testing.T) {
	svc := NewSessionService(&stubSessionRepo{}, discardLogger)

	_, err := svc.List(context.Background(), memberActor())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
