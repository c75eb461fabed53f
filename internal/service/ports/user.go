package ports

import (
	"context"

	"github.com/stpnv0/EventBookingCore/internal/domain"
)

// UserDirectory resolves booked users.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type UserRepo interface {
	UserDirectory
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
