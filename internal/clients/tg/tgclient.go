package tg

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finances-ledger/internal/logger"
	"max.ks1230/finances-ledger/internal/model/messages"
)

const (
	defaultUpdateOffset = 0
	timeoutSeconds      = 5
)

type clientConfig interface {
	Token() string
	PollTimeoutSeconds() int
}

type incomingHandler interface {
	HandleIncomingMessage(ctx context.Context, msg messages.Message) error
}

type Client struct {
	client      *tgbotapi.BotAPI
	pollTimeout int
}

func New(conf clientConfig) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(conf.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	return &Client{client: client, pollTimeout: conf.PollTimeoutSeconds()}, nil
}

func (c *Client) SendMessage(text string, chatID int64) error {
	_, err := c.client.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

// ListenUpdates blocks until ctx is done or updates stop, handing every text message to
// msgModel one at a time.
func (c *Client) ListenUpdates(ctx context.Context, msgModel incomingHandler) {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = c.pollTimeout

	updates := c.client.GetUpdatesChan(u)
	defer c.client.StopReceivingUpdates()

	logger.Info("Start listening for messages")
	c.listen(ctx, updates, msgModel)
}

// listen returns when ctx is done or updates is closed.
func (c *Client) listen(ctx context.Context, updates tgbotapi.UpdatesChannel, msgModel incomingHandler) {
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop listening for messages")
			return
		case update, ok := <-updates:
			if !ok {
				logger.Info("Updates channel closed")
				return
			}
			c.listenOnce(ctx, update, msgModel)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, msgModel incomingHandler) {
	if update.Message == nil {
		return
	}
	logger.Debug(update.Message.Text, zap.Int64("chat", update.Message.Chat.ID))

	ctx, cancel := context.WithTimeout(ctx, time.Second*timeoutSeconds)
	defer cancel()

	err := msgModel.HandleIncomingMessage(ctx, messages.Message{
		Text:   update.Message.Text,
		ChatID: update.Message.Chat.ID,
	})
	if err != nil {
		logger.Error("error processing message:", zap.Error(err))
	}
}
