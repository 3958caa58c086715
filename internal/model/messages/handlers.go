package messages

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finances-ledger/internal/entity/transaction"
	"max.ks1230/finances-ledger/internal/logger"
	"max.ks1230/finances-ledger/internal/model/customerr"
	"max.ks1230/finances-ledger/internal/model/ledger"
	"max.ks1230/finances-ledger/internal/model/persistence"
	"max.ks1230/finances-ledger/internal/model/reports"
)

const (
	dontUnderstandMessage = "I don't understand you :("
	helloMessage          = "Hello! I keep track of your incomes and expenses 💸"
	loveToTalkMessage     = "I would love to talk about it more! Try /help"
	loginFirstMessage     = "Please /login <name> first"
	nothingToRemove       = "There is no transaction with that id"

	incorrectUsageMessage = "That is an incorrect command usage"
	storageFailedMessage  = "⚠️ Your change could not be saved and will be lost on restart. Try again later"
	loadFailedMessage     = "Can't load your transactions atm. Try later"
)

const usageMessage = `/login <name> - open your ledger
/logout - close it
/whoami - who is logged in
/add <amount> <date> <time> <description> - e.g. /add -1500.00 2024-06-05 10:00 Rent
/remove <id> - delete a transaction
/month <YYYY-MM|this|last|all> - filter by month
/date <date|clear> - filter by exact date (wins over the month)
/months - months with transactions
/list - transactions and balance for the current filter
/balance - balance for the current filter`

const (
	startCommand   = "/start"
	helpCommand    = "/help"
	loginCommand   = "/login"
	logoutCommand  = "/logout"
	whoamiCommand  = "/whoami"
	addCommand     = "/add"
	removeCommand  = "/remove"
	monthCommand   = "/month"
	dateCommand    = "/date"
	monthsCommand  = "/months"
	listCommand    = "/list"
	balanceCommand = "/balance"
)

const addArgs = 4

type kvStorage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type config interface {
	KeyPrefix() string
}

// chat is everything one conversation owns: its login slot and the filter
// inputs it has set. The ledger is shared by every chat of the same user.
type chat struct {
	id        int64
	session   *persistence.Session
	user      string
	resolved  bool
	ledger    *ledger.Ledger
	selection reports.Selection
}

// fixedUser is the session of a shared ledger: it always names one user.
type fixedUser string

func (u fixedUser) ActiveUser(context.Context) (string, error) {
	return string(u), nil
}

type handler func(ctx context.Context, arg string, c *chat) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	kv          kvStorage
	config      config
	store       *persistence.Store
	observers   []ledger.Observer
	clock       func() time.Time

	// chats holds logged-in chats only; ledgers holds one ledger per user
	// that at least one of them is logged in as.
	chats   map[int64]*chat
	ledgers map[string]*ledger.Ledger
}

func newHandler(kv kvStorage, config config, observers ...ledger.Observer) *HandlerService {
	res := &HandlerService{
		kv:        kv,
		config:    config,
		store:     persistence.NewStore(kv, config),
		observers: observers,
		clock:     time.Now,
		chats:     make(map[int64]*chat),
		ledgers:   make(map[string]*ledger.Ledger),
	}
	res.handlersMap = newMap(res)
	return res
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[helpCommand] = s.handleHelp
	m[loginCommand] = s.handleLogin
	m[logoutCommand] = s.handleLogout
	m[whoamiCommand] = s.handleWhoami
	m[addCommand] = s.requireUser(s.handleAdd)
	m[removeCommand] = s.requireUser(s.handleRemove)
	m[monthCommand] = s.requireUser(s.handleMonth)
	m[dateCommand] = s.requireUser(s.handleDate)
	m[monthsCommand] = s.requireUser(s.handleMonths)
	m[listCommand] = s.requireUser(s.handleList)
	m[balanceCommand] = s.requireUser(s.handleBalance)

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, chatID int64) (string, error) {
	cmd, arg := parseCommand(text)

	h, ok := s.handlersMap[cmd]
	if !ok {
		return dontUnderstandMessage, nil
	}

	c := s.chat(chatID)
	defer s.keep(c)
	return h(ctx, arg, c)
}

// chat returns the state of chatID. A chat seen for the first time starts
// unresolved: its active user is read from storage when first needed.
func (s *HandlerService) chat(chatID int64) *chat {
	if c, ok := s.chats[chatID]; ok {
		return c
	}
	return &chat{
		id:        chatID,
		session:   persistence.NewSession(s.kv, s.config, "chat:"+strconv.FormatInt(chatID, 10)+":activeUser"),
		selection: reports.Selection{Month: reports.AllMonths},
	}
}

// keep remembers c while it is logged in and forgets it once it is not.
// Ledgers no chat is logged in as are dropped as well.
func (s *HandlerService) keep(c *chat) {
	if c.resolved && c.user != "" {
		s.chats[c.id] = c
	} else {
		delete(s.chats, c.id)
	}
	for user := range s.ledgers {
		if !s.inUse(user) {
			delete(s.ledgers, user)
		}
	}
}

func (s *HandlerService) inUse(user string) bool {
	for _, c := range s.chats {
		if c.user == user {
			return true
		}
	}
	return false
}

func (s *HandlerService) activeUser(ctx context.Context, c *chat) (string, error) {
	if !c.resolved {
		user, err := c.session.ActiveUser(ctx)
		if err != nil {
			return "", err
		}
		c.user, c.resolved = user, true
	}
	return c.user, nil
}

// ledgerFor returns the ledger shared by every chat logged in as user,
// loading it on first use.
func (s *HandlerService) ledgerFor(ctx context.Context, user string) (*ledger.Ledger, error) {
	if l, ok := s.ledgers[user]; ok {
		return l, nil
	}
	l := ledger.New(s.store, fixedUser(user))
	for _, o := range s.observers {
		l.Subscribe(o)
	}
	if err := l.Reload(ctx); err != nil {
		return nil, err
	}
	s.ledgers[user] = l
	return l, nil
}

// requireUser runs h only for a logged-in chat whose ledger could be
// loaded. A ledger that fails to load only fails the commands needing it.
func (s *HandlerService) requireUser(h handler) handler {
	return func(ctx context.Context, arg string, c *chat) (string, error) {
		user, err := s.activeUser(ctx, c)
		if err != nil {
			return loadFailedMessage, errors.Wrap(err, "resolve active user")
		}
		if user == "" {
			return loginFirstMessage, nil
		}
		c.ledger, err = s.ledgerFor(ctx, user)
		if err != nil {
			return loadFailedMessage, errors.Wrap(err, "load ledger")
		}
		return h(ctx, arg, c)
	}
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ *chat) (string, error) {
	return helloMessage + "\n\n" + usageMessage, nil
}

func (s *HandlerService) handleHelp(_ context.Context, _ string, _ *chat) (string, error) {
	return usageMessage, nil
}

func (s *HandlerService) handleLogin(ctx context.Context, arg string, c *chat) (string, error) {
	err := c.session.SetActiveUser(ctx, arg)
	if customerr.IsValidation(err) {
		return "Usage: /login <name>", nil
	}
	if err != nil {
		return loadFailedMessage, errors.Wrap(err, "handle login")
	}
	user := strings.TrimSpace(arg)
	c.user, c.resolved, c.ledger = user, true, nil
	c.selection = reports.Selection{Month: reports.AllMonths}

	l, err := s.ledgerFor(ctx, user)
	if err != nil {
		return "Logged in as " + user + "\n" + loadFailedMessage, errors.Wrap(err, "handle login")
	}
	return fmt.Sprintf("Logged in as %s, %d transaction(s) loaded", user, len(l.Query())), nil
}

func (s *HandlerService) handleLogout(ctx context.Context, _ string, c *chat) (string, error) {
	if err := c.session.ClearActiveUser(ctx); err != nil {
		return loadFailedMessage, errors.Wrap(err, "handle logout")
	}
	c.user, c.resolved, c.ledger = "", true, nil
	c.selection = reports.Selection{Month: reports.AllMonths}
	return "Bye! Use /login to come back", nil
}

func (s *HandlerService) handleWhoami(ctx context.Context, _ string, c *chat) (string, error) {
	user, err := s.activeUser(ctx, c)
	if err != nil {
		return loadFailedMessage, errors.Wrap(err, "handle whoami")
	}
	if user == "" {
		return "Nobody is logged in", nil
	}
	return "Logged in as " + user, nil
}

func (s *HandlerService) handleAdd(ctx context.Context, arg string, c *chat) (string, error) {
	args := strings.Fields(arg)
	if len(args) < addArgs {
		return incorrectUsageMessage + "\n/add <amount> <date> <time> <description>", nil
	}

	in, err := transaction.Draft{
		Amount:      args[0],
		Date:        args[1],
		Time:        args[2],
		Description: strings.Join(args[3:], " "),
	}.Parse()
	if err != nil {
		return validationMessage(err), nil
	}

	rec, err := c.ledger.Add(ctx, in)
	if customerr.IsValidation(err) {
		return validationMessage(err), nil
	}
	if err != nil {
		return storageFailedMessage, errors.Wrap(err, "handle add")
	}

	logger.Info("transaction added from chat", zap.String("user", c.user), zap.Int64("id", rec.ID))
	return fmt.Sprintf("Added #%d %s\n\n%s", rec.ID, formatRecord(rec), s.balance(ctx, c)), nil
}

func (s *HandlerService) handleRemove(ctx context.Context, arg string, c *chat) (string, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return incorrectUsageMessage + "\n/remove <id>", nil
	}

	n, err := c.ledger.Remove(ctx, id)
	if err != nil {
		return storageFailedMessage, errors.Wrap(err, "handle remove")
	}
	if n == 0 {
		return nothingToRemove, nil
	}
	return fmt.Sprintf("Removed #%d\n\n%s", id, s.balance(ctx, c)), nil
}

func (s *HandlerService) handleMonth(ctx context.Context, arg string, c *chat) (string, error) {
	month := strings.TrimSpace(arg)
	if month == "" {
		month = reports.AllMonths
	}
	month = reports.RelativeMonth(month, s.clock())
	if month != reports.AllMonths && !transaction.IsMonthKey(month) {
		return incorrectUsageMessage + "\n/month <YYYY-MM|this|last|all>", nil
	}
	c.selection.Month = month
	return s.render(ctx, c), nil
}

func (s *HandlerService) handleDate(ctx context.Context, arg string, c *chat) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" || arg == "clear" {
		c.selection.Date = ""
		return s.render(ctx, c), nil
	}
	date, err := transaction.NormalizeDate(arg)
	if err != nil {
		return validationMessage(err), nil
	}
	c.selection.Date = date
	return s.render(ctx, c), nil
}

func (s *HandlerService) handleMonths(ctx context.Context, _ string, c *chat) (string, error) {
	report := s.report(ctx, c)
	if len(report.Months) == 0 {
		return noTransactionsMessage, nil
	}
	return formatMonths(report.Months), nil
}

func (s *HandlerService) handleList(ctx context.Context, _ string, c *chat) (string, error) {
	return s.render(ctx, c), nil
}

func (s *HandlerService) handleBalance(ctx context.Context, _ string, c *chat) (string, error) {
	return s.balance(ctx, c), nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ *chat) (string, error) {
	return loveToTalkMessage, nil
}

// report regenerates the chat view and remembers the resolved month, so a
// month that lost its last transaction resets the filter to all months.
func (s *HandlerService) report(ctx context.Context, c *chat) reports.Report {
	report := reports.NewGenerator(c.ledger).GenerateReport(ctx, c.selection)
	c.selection = report.Selection
	return report
}

func (s *HandlerService) render(ctx context.Context, c *chat) string {
	return formatReport(s.report(ctx, c))
}

func (s *HandlerService) balance(ctx context.Context, c *chat) string {
	report := s.report(ctx, c)
	return formatSelection(report.Selection) + "\n" + formatSummary(report.Summary)
}

func validationMessage(err error) string {
	var vErr *customerr.ValidationError
	if errors.As(err, &vErr) {
		return fmt.Sprintf("Please check the %s: %s", vErr.Field, vErr.Reason)
	}
	return incorrectUsageMessage
}
