package memory

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventBookingCore/internal/domain"
)

// AddGroup registers a group reachable through token.
func (s *Store) AddGroup(group domain.Group, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := group
	s.groups[g.ID] = &g
	s.tokens[token] = g.ID
}

func (s *Store) AddUserViaToken(ctx context.Context, token string, user *domain.User, addToGroup bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.groupForToken(token)
	if err != nil {
		return err
	}

	owners, ok := s.associations[g.OwnerID]
	if !ok {
		owners = make(map[string]struct{})
		s.associations[g.OwnerID] = owners
	}
	owners[user.ID] = struct{}{}

	if addToGroup {
		members, ok := s.members[g.ID]
		if !ok {
			members = make(map[string]struct{})
			s.members[g.ID] = members
		}
		members[user.ID] = struct{}{}
	}
	return nil
}

func (s *Store) ResolveGroupForToken(ctx context.Context, token string, user *domain.User) (*domain.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, err := s.groupForToken(token)
	if err != nil {
		return nil, err
	}
	cp := *g
	return &cp, nil
}

func (s *Store) RemoveUser(ctx context.Context, group *domain.Group, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[group.ID]; !ok {
		return domain.ErrGroupNotFound
	}
	delete(s.members[group.ID], user.ID)
	return nil
}

func (s *Store) IsMember(groupID, userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.members[groupID][userID]
	return ok
}

func (s *Store) IsAssociated(ownerID, userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.associations[ownerID][userID]
	return ok
}

func (s *Store) groupForToken(token string) (*domain.Group, error) {
	id, ok := s.tokens[token]
	if !ok {
		return nil, fmt.Errorf("%w: token %q", domain.ErrGroupNotFound, token)
	}
	g, ok := s.groups[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrGroupNotFound, id)
	}
	return g, nil
}
