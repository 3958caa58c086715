package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"max.ks1230/finances-ledger/internal/config"
	"max.ks1230/finances-ledger/internal/logger"
	"max.ks1230/finances-ledger/internal/model/ledger"
	"max.ks1230/finances-ledger/internal/model/persistence"
	"max.ks1230/finances-ledger/internal/model/storage"
)

var errNotLoggedIn = errors.New("nobody is logged in, run `ledger login <name>` first")

type keyConfig interface {
	KeyPrefix() string
	ActiveUserSlot() string
}

// app holds what one invocation works on. kv and keys are opened from the
// config file unless already set.
type app struct {
	cfgFile string
	kv      storage.KV
	keys    keyConfig
	owned   bool

	session *persistence.Session
	ledger  *ledger.Ledger
	clock   func() time.Time
}

func main() {
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(&app{}).ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "ledger",
		Short: "💸 Personal incomes and expenses, month by month",
		Long: `ledger keeps a list of transactions per user and answers what came in,
what went out and what is left, for everything or for one month or day.

The logged-in user is remembered between runs.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $CONFIG_FILE or data/config.yaml)")

	root.AddCommand(loginCmd(a))
	root.AddCommand(logoutCmd(a))
	root.AddCommand(whoamiCmd(a))
	root.AddCommand(addCmd(a))
	root.AddCommand(removeCmd(a))
	root.AddCommand(listCmd(a))
	root.AddCommand(monthsCmd(a))
	root.AddCommand(balanceCmd(a))

	return root
}

// open connects to storage and binds the active-user slot. It never reads
// the ledger, so login, logout and whoami keep working when it is corrupt.
func (a *app) open() error {
	if a.kv == nil {
		conf, err := a.loadConfig()
		if err != nil {
			return errors.Wrap(err, "failed to init config")
		}
		kv, err := storage.NewFromConfig(conf)
		if err != nil {
			return errors.Wrap(err, "failed to init storage")
		}
		a.kv, a.keys, a.owned = kv, conf.App(), true
	}

	a.session = persistence.NewSession(a.kv, a.keys, a.keys.ActiveUserSlot())
	return nil
}

// loadLedger reads the active user's transactions.
func (a *app) loadLedger(ctx context.Context) error {
	a.ledger = ledger.New(persistence.NewStore(a.kv, a.keys), a.session)
	return errors.Wrap(a.ledger.Reload(ctx), "failed to load ledger")
}

func (a *app) now() time.Time {
	if a.clock == nil {
		return time.Now()
	}
	return a.clock()
}

func (a *app) loadConfig() (*config.Service, error) {
	if a.cfgFile != "" {
		return config.NewFromFile(a.cfgFile)
	}
	return config.New()
}

func (a *app) close() {
	if !a.owned {
		return
	}
	if err := a.kv.Close(); err != nil {
		logger.Error("failed to close storage", zap.Error(err))
	}
	a.kv, a.owned = nil, false
}

// withSession opens storage around run without touching the ledger.
func (a *app) withSession(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.open(); err != nil {
			return err
		}
		defer a.close()
		return run(cmd, args)
	}
}

// withLedger also requires a logged-in user and loads their ledger.
func (a *app) withLedger(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return a.withSession(func(cmd *cobra.Command, args []string) error {
		user, err := a.session.ActiveUser(cmd.Context())
		if err != nil {
			return errors.Wrap(err, "failed to read active user")
		}
		if user == "" {
			return errNotLoggedIn
		}
		if err = a.loadLedger(cmd.Context()); err != nil {
			return err
		}
		return run(cmd, args)
	})
}
