package persistence

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"max.ks1230/finances-ledger/internal/logger"
	"max.ks1230/finances-ledger/internal/model/customerr"
)

// Session is one active-user slot. Whoever holds a Session decides which
// user's ledger is loaded; separate sessions never see each other's choice.
type Session struct {
	kv  kvStorage
	key string
}

// NewSession binds a session to "<prefix>:<slot>".
func NewSession(kv kvStorage, config config, slot string) *Session {
	return &Session{kv: kv, key: config.KeyPrefix() + ":" + slot}
}

// ActiveUser returns the logged-in user, or "" when nobody is.
func (s *Session) ActiveUser(ctx context.Context) (string, error) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return "", customerr.NewStorage("get active user", s.key, err)
	}
	if !ok {
		return "", nil
	}
	return string(raw), nil
}

func (s *Session) SetActiveUser(ctx context.Context, user string) error {
	user = strings.TrimSpace(user)
	if user == "" {
		return customerr.NewValidation("user", "must not be blank")
	}
	if strings.Contains(user, ":") {
		return customerr.NewValidation("user", "must not contain ':'")
	}
	if err := s.kv.Set(ctx, s.key, []byte(user)); err != nil {
		return customerr.NewStorage("set active user", s.key, err)
	}
	logger.Info("active user set", zap.String("slot", s.key), zap.String("user", user))
	return nil
}

func (s *Session) ClearActiveUser(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return customerr.NewStorage("clear active user", s.key, err)
	}
	logger.Info("active user cleared", zap.String("slot", s.key))
	return nil
}
