package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02 Jan 2006 15:04 UTC"

type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    botSender
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) SendBookingConfirmed(ctx context.Context, event *domain.Event, user *domain.User, booking *domain.Booking) error {
	text := fmt.Sprintf(
		"*Booking confirmed*\n\nEvent: %s\nStarts: %s\nBooking reference: %s",
		escape(event.Title), formatDate(event), escape(booking.ID),
	)
	return n.send(ctx, user, text)
}

func (n *TelegramNotifier) SendWaitlisted(ctx context.Context, event *domain.Event, user *domain.User) error {
	text := fmt.Sprintf(
		"*You are on the waiting list*\n\nEvent: %s\nStarts: %s\nWe will let you know as soon as a place frees up.",
		escape(event.Title), formatDate(event),
	)
	return n.send(ctx, user, text)
}

func (n *TelegramNotifier) SendPromoted(ctx context.Context, event *domain.Event, user *domain.User, booking *domain.Booking) error {
	text := fmt.Sprintf(
		"*A place became available*\n\nYour waiting list booking for %s is now confirmed.\nStarts: %s\nBooking reference: %s",
		escape(event.Title), formatDate(event), escape(booking.ID),
	)
	return n.send(ctx, user, text)
}

// SendCancelled notifies the user and, for cancelled reservations, the
// user who made the reservation.
func (n *TelegramNotifier) SendCancelled(ctx context.Context, event *domain.Event, user *domain.User, reservedBy *domain.User) error {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\nEvent: %s\nStarts: %s",
		escape(event.Title), formatDate(event),
	)
	if err := n.send(ctx, user, text); err != nil {
		return err
	}

	if reservedBy == nil {
		return nil
	}
	text = fmt.Sprintf(
		"*Reservation cancelled*\n\nThe place you reserved for %s on %s has been released.",
		escape(user.FullName()), escape(event.Title),
	)
	return n.send(ctx, reservedBy, text)
}

func (n *TelegramNotifier) SendReservationRequested(ctx context.Context, event *domain.Event, user *domain.User, reserverName string) error {
	by := "Someone"
	if strings.TrimSpace(reserverName) != "" {
		by = escape(reserverName)
	}
	text := fmt.Sprintf(
		"*A place was reserved for you*\n\n%s reserved a place for you on %s (%s).\nBook it before the reservation closes or it will be released.",
		by, escape(event.Title), formatDate(event),
	)
	return n.send(ctx, user, text)
}

func (n *TelegramNotifier) SendReservationRecap(ctx context.Context, event *domain.Event, reserver *domain.User, reserved []*domain.User) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*Reservations made*\n\nEvent: %s\nStarts: %s\n", escape(event.Title), formatDate(event))
	for _, u := range reserved {
		sb.WriteString("\n- ")
		sb.WriteString(escape(u.FullName()))
	}
	return n.send(ctx, reserver, sb.String())
}

func (n *TelegramNotifier) send(ctx context.Context, user *domain.User, text string) error {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("user_id", user.ID))
		return nil
	}

	if user.TelegramChatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("user_id", user.ID))
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("notify user %s: %w", user.ID, err)
	}

	msg := tgbotapi.NewMessage(*user.TelegramChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message to user %s: %w", user.ID, err)
	}
	return nil
}

func formatDate(event *domain.Event) string {
	return event.StartDate.UTC().Format(dateLayout)
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}
