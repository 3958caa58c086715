package messages

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"max.ks1230/finances-ledger/internal/model/customerr"
	"max.ks1230/finances-ledger/internal/model/ledger"
)

const failurePrefix = "Sorry, something wrong happened...\n"

type messageSender interface {
	SendMessage(text string, chatID int64) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string, chatID int64) (string, error)
}

// Service answers chat messages one at a time: chat state and ledgers are
// not safe for concurrent use.
type Service struct {
	mu       sync.Mutex
	tgClient messageSender
	handler  MessageHandler
}

// NewService wires the chat commands to storage. Every chat gets its own
// login slot and ledger; observers see the changes of all of them.
func NewService(tgClient messageSender, kv kvStorage, config config, observers ...ledger.Observer) *Service {
	return &Service{
		tgClient: tgClient,
		handler:  newHandler(kv, config, observers...),
	}
}

type Message struct {
	Text   string
	ChatID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	if strings.TrimSpace(msg.Text) == "" {
		return nil
	}

	command := commandLabel(msg.Text)
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()
	span.SetTag("command", command)
	span.SetTag("chat", msg.ChatID)

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	err := s.handle(ctx, msg)
	observeResponse(command, time.Since(start), err != nil)

	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text, msg.ChatID)
	if err != nil {
		// Storage failures already explain themselves in resp.
		if !customerr.IsStorage(err) {
			resp = failurePrefix + resp
		}
		_ = s.tgClient.SendMessage(resp, msg.ChatID)
		return err
	}
	return s.tgClient.SendMessage(resp, msg.ChatID)
}
