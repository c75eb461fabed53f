package ports

import (
	"context"

	"github.com/stpnv0/EventBookingCore/internal/domain"
)

type GroupMembership interface {
	// AddUserViaToken associates the user with the token's group owner and,
	// when addToGroup is set, joins the group as well.
	AddUserViaToken(ctx context.Context, token string, user *domain.User, addToGroup bool) error
	ResolveGroupForToken(ctx context.Context, token string, user *domain.User) (*domain.Group, error)
	RemoveUser(ctx context.Context, group *domain.Group, user *domain.User) error
}
