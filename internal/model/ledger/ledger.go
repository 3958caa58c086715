package ledger

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finances-ledger/internal/entity/transaction"
	"max.ks1230/finances-ledger/internal/logger"
)

type recordStore interface {
	Load(ctx context.Context, user string) ([]transaction.Record, error)
	Save(ctx context.Context, user string, records []transaction.Record) error
}

type userSession interface {
	ActiveUser(ctx context.Context) (string, error)
}

// Ledger is the in-memory, authoritative list of the active user's
// transactions. It is not safe for concurrent use: every call runs to
// completion before the next one starts.
type Ledger struct {
	store     recordStore
	session   userSession
	clock     func() time.Time
	user      string
	all       []transaction.Record
	lastID    int64
	observers []Observer
}

func New(store recordStore, session userSession) *Ledger {
	return &Ledger{
		store:   store,
		session: session,
		clock:   time.Now,
		all:     []transaction.Record{},
	}
}

// Subscribe registers o for every change made after this call.
func (l *Ledger) Subscribe(o Observer) {
	l.observers = append(l.observers, o)
}

// User is the user whose records are loaded, "" when nobody is logged in.
func (l *Ledger) User() string {
	return l.user
}

// Reload replaces the in-memory records with those stored for the
// session's active user. On failure the ledger is left empty.
func (l *Ledger) Reload(ctx context.Context) error {
	l.user, l.all, l.lastID = "", []transaction.Record{}, 0

	user, err := l.session.ActiveUser(ctx)
	if err != nil {
		return errors.Wrap(err, "reload ledger")
	}
	if user != "" {
		records, err := l.store.Load(ctx, user)
		if err != nil {
			return errors.Wrap(err, "reload ledger")
		}
		l.user, l.all = user, records
		for _, r := range records {
			if r.ID > l.lastID {
				l.lastID = r.ID
			}
		}
	}

	logger.Info("ledger loaded", zap.String("user", user), zap.Int("records", len(l.all)))
	l.notify(ctx, Event{Kind: Reloaded, User: l.user})
	return nil
}

// Add appends a new transaction and persists the whole list. Without an
// active user it does nothing. A failed save leaves the record in memory
// and returns the storage error.
func (l *Ledger) Add(ctx context.Context, in transaction.Input) (transaction.Record, error) {
	if err := in.Validate(); err != nil {
		return transaction.Record{}, errors.Wrap(err, "add transaction")
	}
	if l.user == "" {
		logger.Info("add ignored: no active user")
		return transaction.Record{}, nil
	}

	rec := in.Record(l.nextID())
	l.all = append(l.all, rec)

	err := l.store.Save(ctx, l.user, l.all)
	if err != nil {
		logger.Error("transaction kept in memory only",
			zap.String("user", l.user), zap.Int64("id", rec.ID), zap.Error(err))
		err = errors.Wrap(err, "add transaction")
	} else {
		logger.Info("transaction added", zap.String("user", l.user), zap.Int64("id", rec.ID))
	}

	l.notify(ctx, Event{Kind: Added, User: l.user, Record: rec})
	return rec, err
}

// Remove drops every transaction with the given id and returns how many
// were dropped. An unknown id is a no-op.
func (l *Ledger) Remove(ctx context.Context, id int64) (int, error) {
	if l.user == "" {
		return 0, nil
	}

	kept := make([]transaction.Record, 0, len(l.all))
	var removed []transaction.Record
	for _, r := range l.all {
		if r.ID == id {
			removed = append(removed, r)
			continue
		}
		kept = append(kept, r)
	}
	if len(removed) == 0 {
		return 0, nil
	}
	l.all = kept

	err := l.store.Save(ctx, l.user, l.all)
	if err != nil {
		logger.Error("removal kept in memory only",
			zap.String("user", l.user), zap.Int64("id", id), zap.Error(err))
		err = errors.Wrap(err, "remove transaction")
	} else {
		logger.Info("transaction removed", zap.String("user", l.user), zap.Int64("id", id))
	}

	for _, r := range removed {
		l.notify(ctx, Event{Kind: Removed, User: l.user, Record: r})
	}
	return len(removed), err
}

// Query returns a copy of all transactions, oldest first.
func (l *Ledger) Query() []transaction.Record {
	res := make([]transaction.Record, len(l.all))
	copy(res, l.all)
	return res
}

// nextID is derived from the clock in milliseconds but never repeats or
// goes backwards within a ledger, even inside one clock tick.
func (l *Ledger) nextID() int64 {
	id := l.clock().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

func (l *Ledger) notify(ctx context.Context, ev Event) {
	observeMutation(ev.Kind)
	for _, o := range l.observers {
		o.LedgerChanged(ctx, ev)
	}
}
