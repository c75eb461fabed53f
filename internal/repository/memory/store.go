// Package memory is an in-process storage driver. It backs the booking core
// when storage.driver is "memory" and in tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventBookingCore/internal/domain"
)

type Option func(*Store)

// WithClock overrides the time source used for booking timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

type bookingRow struct {
	booking    domain.Booking
	seq        uint64
	piiRemoved bool
}

// Store keeps events, users, bookings and group memberships in memory.
// Readers take mu; writers to an event's bookings must also hold that
// event's lock, see LockEvent.
type Store struct {
	mu       sync.RWMutex
	events   map[string]*domain.Event
	users    map[string]*domain.User
	bookings map[string]*bookingRow
	seq      uint64

	locksMu sync.Mutex
	locks   map[string]chan struct{}

	groups       map[string]*domain.Group
	tokens       map[string]string
	members      map[string]map[string]struct{}
	associations map[string]map[string]struct{}

	now func() time.Time
}

func New(opts ...Option) *Store {
	s := &Store{
		events:       make(map[string]*domain.Event),
		users:        make(map[string]*domain.User),
		bookings:     make(map[string]*bookingRow),
		locks:        make(map[string]chan struct{}),
		groups:       make(map[string]*domain.Group),
		tokens:       make(map[string]string),
		members:      make(map[string]map[string]struct{}),
		associations: make(map[string]map[string]struct{}),
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Events

func (s *Store) CreateEvent(ctx context.Context, e *domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if _, ok := s.events[e.ID]; ok {
		return fmt.Errorf("%w: event %s already exists", domain.ErrValidation, e.ID)
	}
	s.events[e.ID] = cloneEvent(e)
	return nil
}

func (s *Store) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return cloneEvent(e), nil
}

func (s *Store) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.Event, 0, len(s.events))
	for _, e := range s.events {
		res = append(res, cloneEvent(e))
	}
	slices.SortFunc(res, func(a, b *domain.Event) int {
		if c := a.StartDate.Compare(b.StartDate); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return res, nil
}

// SetEventCancelled flags the event as cancelled.
func (s *Store) SetEventCancelled(ctx context.Context, id string, cancelled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	e.Cancelled = cancelled
	e.UpdatedAt = s.now()
	return nil
}

// Users

func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if _, ok := s.users[u.ID]; ok {
		return fmt.Errorf("%w: user %s already exists", domain.ErrValidation, u.ID)
	}
	for _, existing := range s.users {
		if u.Email != "" && strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailTaken
		}
	}
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *Store) ListUsers(ctx context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		res = append(res, &cp)
	}
	slices.SortFunc(res, func(a, b *domain.User) int {
		return strings.Compare(a.Email, b.Email)
	})
	return res, nil
}

// MarkUserDeleted soft deletes the account. Its bookings stay in place.
func (s *Store) MarkUserDeleted(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Deleted = true
	return nil
}

func cloneEvent(e *domain.Event) *domain.Event {
	cp := *e
	cp.Tags = slices.Clone(e.Tags)
	return &cp
}
