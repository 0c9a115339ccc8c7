package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

var ErrEmptyToken = errors.New("telegram bot token is empty")

type Client struct {
	bot *bot.Bot
}

// New builds a Bot API client. The token is not checked against the API at
// construction, the first send reports a bad token.
func New(token, serverURL string) (*Client, error) {
	if len(token) == 0 {
		return nil, ErrEmptyToken
	}

	opts := []bot.Option{bot.WithSkipGetMe()}
	if len(serverURL) != 0 {
		opts = append(opts, bot.WithServerURL(serverURL))
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("error while creating telegram bot: %w", err)
	}

	return &Client{bot: b}, nil
}

func (c *Client) SendMessage(ctx context.Context, chatID string, text string) error {
	if _, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	}); err != nil {
		return fmt.Errorf("error while sending telegram message: %w", err)
	}

	return nil
}
