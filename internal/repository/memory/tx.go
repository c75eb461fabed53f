package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/google/uuid"
	"github.com/stpnv0/EventBookingCore/internal/domain"
)

// eventTx writes straight into the store and keeps an undo log that Rollback
// replays in reverse.
type eventTx struct {
	store   *Store
	eventID string
	release func()

	mu   sync.Mutex
	undo []func()
	done bool
}

func (tx *eventTx) check(eventID string) error {
	if tx.done {
		return domain.ErrTxDone
	}
	if eventID != tx.eventID {
		return fmt.Errorf("event %s is not locked by this transaction (holds %s)", eventID, tx.eventID)
	}
	return nil
}

func (tx *eventTx) GetBooking(ctx context.Context, eventID, userID string) (*domain.Booking, error) {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if err := tx.check(eventID); err != nil {
		return nil, err
	}

	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()
	return tx.store.getBooking(eventID, userID)
}

func (tx *eventTx) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if err := tx.check(eventID); err != nil {
		return nil, err
	}

	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()
	return tx.store.filter(func(r *bookingRow) bool { return r.booking.EventID == eventID }), nil
}

func (tx *eventTx) StatusCounts(ctx context.Context, eventID string, includeDeletedUsers bool) (domain.StatusCounts, error) {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if err := tx.check(eventID); err != nil {
		return nil, err
	}

	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()
	return tx.store.statusCounts(eventID, includeDeletedUsers), nil
}

func (tx *eventTx) CreateBooking(ctx context.Context, nb domain.NewBooking) (*domain.Booking, error) {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if err := tx.check(nb.EventID); err != nil {
		return nil, err
	}

	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := bookingKey(nb.EventID, nb.UserID)
	if _, ok := s.bookings[key]; ok {
		return nil, domain.NewBookingError(domain.ErrDuplicateBooking, nb.EventID, nb.UserID)
	}
	if _, ok := s.users[nb.UserID]; !ok {
		return nil, domain.ErrUserNotFound
	}

	now := s.now()
	s.seq++
	row := &bookingRow{
		booking: domain.Booking{
			ID:             uuid.New().String(),
			EventID:        nb.EventID,
			UserID:         nb.UserID,
			ReservedByID:   nb.ReservedByID,
			Status:         nb.Status,
			AdditionalInfo: maps.Clone(nb.AdditionalInfo),
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		seq: s.seq,
	}
	s.bookings[key] = row
	tx.undo = append(tx.undo, func() { delete(s.bookings, key) })

	return cloneBooking(&row.booking), nil
}

func (tx *eventTx) UpdateBookingStatus(ctx context.Context, eventID, userID string, upd domain.StatusUpdate) (*domain.Booking, error) {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if err := tx.check(eventID); err != nil {
		return nil, err
	}

	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.bookings[bookingKey(eventID, userID)]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	prev := *cloneBooking(&row.booking)
	tx.undo = append(tx.undo, func() { row.booking = prev })

	row.booking.Status = upd.Status
	if upd.ReservedByID != nil {
		id := *upd.ReservedByID
		row.booking.ReservedByID = &id
	}
	if upd.AdditionalInfo != nil {
		row.booking.AdditionalInfo = maps.Clone(upd.AdditionalInfo)
	}
	row.booking.UpdatedAt = s.now()

	return cloneBooking(&row.booking), nil
}

func (tx *eventTx) DeleteBooking(ctx context.Context, eventID, userID string) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if err := tx.check(eventID); err != nil {
		return err
	}

	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := bookingKey(eventID, userID)
	row, ok := s.bookings[key]
	if !ok {
		return domain.ErrBookingNotFound
	}
	delete(s.bookings, key)
	tx.undo = append(tx.undo, func() { s.bookings[key] = row })
	return nil
}

func (tx *eventTx) Commit() error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if tx.done {
		return domain.ErrTxDone
	}

	tx.done = true
	tx.undo = nil
	tx.release()
	return nil
}

func (tx *eventTx) Rollback() error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if tx.done {
		return nil
	}

	tx.store.mu.Lock()
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tx.store.mu.Unlock()

	tx.done = true
	tx.undo = nil
	tx.release()
	return nil
}
