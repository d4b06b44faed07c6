package notification

import (
	"context"
	"fmt"

	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts new bookings to the operators' chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, telegram notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) Name() string { return "telegram" }

func (n *TelegramNotifier) Enabled() bool { return n.bot != nil }

func (n *TelegramNotifier) Send(ctx context.Context, b *domain.Booking) error {
	text := bookingText(b)

	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("booking_id", b.ID))
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("telegram: %w", err)
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send to chat %d: %w", n.chatID, err)
	}
	return nil
}

// bookingText renders guest contact details only. Payment fields never
// reach this package.
func bookingText(b *domain.Booking) string {
	esc := func(s string) string { return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s) }

	text := fmt.Sprintf(
		"*New booking*\n\n"+"Booking: %s\n"+"Guest: %s %s\n"+"Email: %s",
		esc(b.ID), esc(b.FirstName), esc(b.LastName), esc(b.Email),
	)
	if b.PhoneNumber != "" {
		text += "\nPhone: " + esc(b.PhoneNumber)
	}
	return text + "\nCreated (UTC): " + b.CreatedAt.UTC().Format("02.01.2006 15:04")
}
