package ports

import (
	"context"

	"github.com/stpnv0/EventBookingCore/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	SetCancelled(ctx context.Context, id string, cancelled bool) error
}
