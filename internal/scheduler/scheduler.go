package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type maintainer interface {
	CancelExpiredReservations(ctx context.Context) ([]*domain.Booking, error)
	ScrubPersonalInformation(ctx context.Context) (int64, error)
}

// Scheduler runs the periodic booking maintenance jobs.
type Scheduler struct {
	bookingService maintainer
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService maintainer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs both jobs; a failing job does not stop the other one.
func (s *Scheduler) tick(ctx context.Context) {
	s.cancelExpired(ctx)
	s.scrub(ctx)
}

func (s *Scheduler) cancelExpired(ctx context.Context) {
	cancelled, err := s.bookingService.CancelExpiredReservations(ctx)
	if err != nil {
		s.logger.Error("failed to cancel expired reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range cancelled {
		s.logger.Info("reservation expired",
			logger.String("booking_id", b.ID),
			logger.String("user_id", b.UserID),
			logger.String("event_id", b.EventID),
		)
	}
}

func (s *Scheduler) scrub(ctx context.Context) {
	n, err := s.bookingService.ScrubPersonalInformation(ctx)
	if err != nil {
		s.logger.Error("failed to scrub personal information",
			logger.String("error", err.Error()),
		)
		return
	}
	if n > 0 {
		s.logger.Info("personal information scrubbed",
			logger.Int64("bookings", n),
		)
	}
}
