package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/TalkWave/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pings the organizer chat about talk activity. With an
// empty token or chat id it degrades to a no-op.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyTalkSubmitted(ctx context.Context, event *domain.Event, talk *domain.Talk) {
	text := fmt.Sprintf(
		"*New talk submitted*\n\nEvent: %s\nTalk: %s\nSpeaker: %s",
		event.Title, talk.Title, talk.Speaker,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyTalkAccepted(ctx context.Context, event *domain.Event, talk *domain.Talk) {
	text := fmt.Sprintf(
		"*Talk accepted*\n\nEvent: %s\nTalk: %s\nSpeaker: %s",
		event.Title, talk.Title, talk.Speaker,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
