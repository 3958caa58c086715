package ledger

import (
	"context"

	"max.ks1230/finances-ledger/internal/entity/transaction"
)

type EventKind string

const (
	Added    EventKind = "added"
	Removed  EventKind = "removed"
	Reloaded EventKind = "reloaded"
)

// Event describes one change of a ledger. Record is empty for Reloaded.
type Event struct {
	Kind   EventKind          `json:"kind"`
	User   string             `json:"user"`
	Record transaction.Record `json:"record"`
}

// Observer is told about every change after it has been persisted (or the
// save has failed). Observers must not call back into the ledger.
type Observer interface {
	LedgerChanged(ctx context.Context, ev Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, ev Event)

func (f ObserverFunc) LedgerChanged(ctx context.Context, ev Event) {
	f(ctx, ev)
}
