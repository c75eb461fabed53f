package notification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/stpnv0/EventBookingCore/internal/notification/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func chatID(id int64) *int64 { return &id }

func message(chat int64, contains string) any {
	return mock.MatchedBy(func(c tgbotapi.Chattable) bool {
		msg, ok := c.(tgbotapi.MessageConfig)
		return ok && msg.ChatID == chat && strings.Contains(msg.Text, contains)
	})
}

var testEvent = &domain.Event{
	ID:        "e1",
	Title:     "Physics_masterclass",
	StartDate: time.Date(2026, 5, 1, 18, 30, 0, 0, time.UTC),
}

func TestTelegramNotifier_SendBookingConfirmed(t *testing.T) {
	bot := mocks.NewMockBotSender(t)
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}
	user := &domain.User{ID: "u1", TelegramChatID: chatID(42)}

	bot.EXPECT().Send(mock.MatchedBy(func(c tgbotapi.Chattable) bool {
		msg := c.(tgbotapi.MessageConfig)
		return msg.ChatID == 42 &&
			msg.ParseMode == tgbotapi.ModeMarkdown &&
			strings.Contains(msg.Text, `Physics\_masterclass`) &&
			strings.Contains(msg.Text, "01 May 2026 18:30 UTC")
	})).Return(tgbotapi.Message{}, nil).Once()

	err := n.SendBookingConfirmed(context.Background(), testEvent, user, &domain.Booking{ID: "b1"})

	require.NoError(t, err)
}

func TestTelegramNotifier_SkipsUsersWithoutChat(t *testing.T) {
	bot := mocks.NewMockBotSender(t)
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	err := n.SendWaitlisted(context.Background(), testEvent, &domain.User{ID: "u1"})

	require.NoError(t, err)
}

func TestTelegramNotifier_DisabledBot(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	err = n.SendPromoted(context.Background(), testEvent, &domain.User{ID: "u1", TelegramChatID: chatID(1)}, &domain.Booking{ID: "b1"})

	assert.NoError(t, err)
}

func TestTelegramNotifier_ReturnsSendErrors(t *testing.T) {
	bot := mocks.NewMockBotSender(t)
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	apiErr := errors.New("Bad Request: chat not found")
	bot.EXPECT().Send(mock.Anything).Return(tgbotapi.Message{}, apiErr).Once()

	err := n.SendWaitlisted(context.Background(), testEvent, &domain.User{ID: "u1", TelegramChatID: chatID(7)})

	require.ErrorIs(t, err, apiErr)
}

func TestTelegramNotifier_CancelledContext(t *testing.T) {
	bot := mocks.NewMockBotSender(t)
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.SendWaitlisted(ctx, testEvent, &domain.User{ID: "u1", TelegramChatID: chatID(7)})

	require.ErrorIs(t, err, context.Canceled)
}

func TestTelegramNotifier_SendCancelled_NotifiesReserver(t *testing.T) {
	bot := mocks.NewMockBotSender(t)
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	user := &domain.User{ID: "u1", GivenName: "Ada", FamilyName: "Lovelace", TelegramChatID: chatID(1)}
	reserver := &domain.User{ID: "u2", TelegramChatID: chatID(2)}

	bot.EXPECT().Send(message(1, "Booking cancelled")).Return(tgbotapi.Message{}, nil).Once()
	bot.EXPECT().Send(message(2, "Ada Lovelace")).Return(tgbotapi.Message{}, nil).Once()

	require.NoError(t, n.SendCancelled(context.Background(), testEvent, user, reserver))
}

func TestTelegramNotifier_Reservations(t *testing.T) {
	bot := mocks.NewMockBotSender(t)
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	reserver := &domain.User{ID: "t1", GivenName: "Grace", FamilyName: "Hopper", TelegramChatID: chatID(10)}
	reserved := []*domain.User{
		{ID: "s1", GivenName: "Alan", FamilyName: "Turing", TelegramChatID: chatID(11)},
		{ID: "s2", GivenName: "Edsger", FamilyName: "Dijkstra"},
	}

	bot.EXPECT().Send(message(11, "Grace Hopper reserved a place for you")).Return(tgbotapi.Message{}, nil).Once()
	bot.EXPECT().Send(mock.MatchedBy(func(c tgbotapi.Chattable) bool {
		msg := c.(tgbotapi.MessageConfig)
		return msg.ChatID == 10 && strings.Contains(msg.Text, "- Alan Turing") && strings.Contains(msg.Text, "- Edsger Dijkstra")
	})).Return(tgbotapi.Message{}, nil).Once()

	ctx := context.Background()
	for _, u := range reserved {
		require.NoError(t, n.SendReservationRequested(ctx, testEvent, u, reserver.FullName()))
	}
	require.NoError(t, n.SendReservationRecap(ctx, testEvent, reserver, reserved))
}
