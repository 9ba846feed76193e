package notifications

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"booking_backend/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sender is the part of *tgbotapi.BotAPI we use.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts a short message about each new booking to an admin chat.
type TelegramNotifier struct {
	bot    sender
	chatID int64
}

// NewTelegramNotifier returns nil, nil when token or chat ID is missing so callers can
// fall back to Noop.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if strings.TrimSpace(token) == "" || chatID == 0 {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *TelegramNotifier) AppointmentBooked(ctx context.Context, appointment models.Appointment) error {
	if n == nil {
		return errors.New("telegram notifier is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(n.chatID, bookingMessage(appointment))
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

func bookingMessage(a models.Appointment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New appointment #%d\n", a.ID)
	fmt.Fprintf(&b, "Name: %s\n", a.Name)
	fmt.Fprintf(&b, "Email: %s\n", a.Email)
	fmt.Fprintf(&b, "Phone: %s\n", a.Phone)
	fmt.Fprintf(&b, "Category: %s\n", a.Category)
	fmt.Fprintf(&b, "When: %s %s", a.DateString(), a.Time)
	return b.String()
}
