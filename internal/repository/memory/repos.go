package memory

import (
	"context"

	"github.com/stpnv0/EventBookingCore/internal/domain"
)

// EventRepo exposes the store's events through the service's EventRepo port.
type EventRepo struct{ s *Store }

func (s *Store) Events() *EventRepo { return &EventRepo{s: s} }

func (r *EventRepo) Create(ctx context.Context, e *domain.Event) error {
	return r.s.CreateEvent(ctx, e)
}

func (r *EventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return r.s.GetEvent(ctx, id)
}

func (r *EventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	return r.s.ListEvents(ctx)
}

func (r *EventRepo) SetCancelled(ctx context.Context, id string, cancelled bool) error {
	return r.s.SetEventCancelled(ctx, id, cancelled)
}

// UserRepo exposes the store's users through the UserRepo port.
type UserRepo struct{ s *Store }

func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	return r.s.CreateUser(ctx, u)
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.s.GetUser(ctx, id)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.s.GetUserByEmail(ctx, email)
}

func (r *UserRepo) List(ctx context.Context) ([]*domain.User, error) {
	return r.s.ListUsers(ctx)
}
