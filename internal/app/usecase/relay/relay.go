package relay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avGenie/go-topup-store/internal/app/converter"
	"github.com/avGenie/go-topup-store/internal/app/entity"
)

var ErrEmptyChatID = errors.New("notification chat id is empty")

type MessageSender interface {
	SendMessage(ctx context.Context, chatID string, text string) error
}

// Relay forwards accepted orders to the operator chat.
type Relay struct {
	sender   MessageSender
	chatID   string
	timezone string
	now      func() time.Time
}

func New(sender MessageSender, chatID, timezone string) (*Relay, error) {
	if len(chatID) == 0 {
		return nil, ErrEmptyChatID
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return nil, fmt.Errorf("error while loading notification timezone %q: %w", timezone, err)
	}

	return &Relay{
		sender:   sender,
		chatID:   chatID,
		timezone: timezone,
		now:      time.Now,
	}, nil
}

// Notify makes a single send attempt. Any failure, including a panic inside
// the sender, is returned as an error.
func (r *Relay) Notify(ctx context.Context, order entity.Order) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic while relaying order %s: %v", order.ID, rec)
		}
	}()

	text, err := converter.BuildOrderNotification(converter.ConvertOrderToNotification(order, r.now(), r.timezone))
	if err != nil {
		return fmt.Errorf("error while building order notification: %w", err)
	}

	if err := r.sender.SendMessage(ctx, r.chatID, text); err != nil {
		return fmt.Errorf("error while relaying order %s: %w", order.ID, err)
	}

	return nil
}
