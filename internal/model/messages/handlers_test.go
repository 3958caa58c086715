package messages

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/finances-ledger/internal/model/customerr"
	"max.ks1230/finances-ledger/internal/model/ledger"
	"max.ks1230/finances-ledger/internal/model/storage"
)

type prefixConfig string

func (p prefixConfig) KeyPrefix() string {
	return string(p)
}

func newTestHandler(observers ...ledger.Observer) *HandlerService {
	return newHandler(storage.NewInMemStorage(), prefixConfig("dev.finances"), observers...)
}

func send(t *testing.T, h *HandlerService, chatID int64, text string) string {
	t.Helper()
	resp, err := h.HandleMessage(context.Background(), text, chatID)
	require.NoError(t, err, text)
	return resp
}

func Test_OnPlainText_ShouldAnswerPolitely(t *testing.T) {
	assert.Equal(t, loveToTalkMessage, send(t, newTestHandler(), 1, "hello there"))
}

func Test_OnAddWithoutLogin_ShouldAskToLogin(t *testing.T) {
	h := newTestHandler()

	assert.Equal(t, loginFirstMessage, send(t, h, 1, "/add 10 2024-06-01 09:00 Salary"))
	assert.Equal(t, "Nobody is logged in", send(t, h, 1, "/whoami"))
}

func Test_OnLogin_ShouldValidateName(t *testing.T) {
	h := newTestHandler()

	assert.Equal(t, "Usage: /login <name>", send(t, h, 1, "/login"))
	assert.Equal(t, "Logged in as alice, 0 transaction(s) loaded", send(t, h, 1, "/login alice"))
	assert.Equal(t, "Logged in as alice", send(t, h, 1, "/whoami"))
}

func Test_SalaryAndRent_ShouldProduceBalance(t *testing.T) {
	h := newTestHandler()
	send(t, h, 1, "/login alice")

	resp := send(t, h, 1, "/add 5000.00 2024-06-01 09:00 Salary")
	assert.Contains(t, resp, "01/06/2024 09:00 Salary: 5000.00")
	resp = send(t, h, 1, "/add -1500 05/06/2024 10:00 Monthly rent")
	assert.Contains(t, resp, "Monthly rent: -1500.00")

	assert.Equal(t, "🗓 All months\nIncomes: 5000.00\nExpenses: -1500.00\nTotal: 3500.00", send(t, h, 1, "/balance"))
	assert.Equal(t, "2024-06 (June 2024)", send(t, h, 1, "/months"))

	resp = send(t, h, 1, "/date 2024-06-05")
	assert.Contains(t, resp, "📅 05/06/2024")
	assert.Contains(t, resp, "Monthly rent")
	assert.NotContains(t, resp, "Salary")
	assert.Contains(t, resp, "Total: -1500.00")
}

func Test_OnAddWithBadInput_ShouldExplainWithoutError(t *testing.T) {
	h := newTestHandler()
	send(t, h, 1, "/login alice")

	assert.Equal(t, "Please check the amount: expected a decimal number, got \"ten\"",
		send(t, h, 1, "/add ten 2024-06-01 09:00 Salary"))
	assert.Contains(t, send(t, h, 1, "/add 10 tomorrow 09:00 Salary"), "Please check the date")
	assert.Contains(t, send(t, h, 1, "/add 10 2024-06-01 Salary"), incorrectUsageMessage)
	assert.Equal(t, noTransactionsMessage, send(t, h, 1, "/months"))
}

func Test_OnRemove_ShouldDeleteAndResetVanishedMonth(t *testing.T) {
	h := newTestHandler()
	send(t, h, 1, "/login alice")
	send(t, h, 1, "/add 5000 2024-06-01 09:00 Salary")
	send(t, h, 1, "/add 25 2024-05-17 18:00 Gift")

	resp := send(t, h, 1, "/month 2024-05")
	assert.Contains(t, resp, "🗓 May 2024")
	assert.Contains(t, resp, "Gift")
	assert.NotContains(t, resp, "Salary")

	records := h.ledgers["alice"].Query()
	require.Len(t, records, 2)
	giftID := strconv.FormatInt(records[1].ID, 10)

	resp = send(t, h, 1, "/remove "+giftID)
	assert.Contains(t, resp, "Removed #"+giftID)
	assert.Contains(t, resp, "🗓 All months")
	assert.Contains(t, resp, "Total: 5000.00")

	assert.Equal(t, nothingToRemove, send(t, h, 1, "/remove "+giftID))
	assert.Contains(t, send(t, h, 1, "/remove abc"), incorrectUsageMessage)
}

func Test_Chats_ShouldKeepSeparateLogins(t *testing.T) {
	h := newTestHandler()
	send(t, h, 1, "/login alice")
	send(t, h, 1, "/add 10 2024-06-01 09:00 Coffee refund")
	send(t, h, 2, "/login bob")

	assert.Contains(t, send(t, h, 2, "/list"), noTransactionsMessage)
	assert.Contains(t, send(t, h, 1, "/list"), "Coffee refund")

	send(t, h, 2, "/login alice")
	assert.Contains(t, send(t, h, 2, "/list"), "Coffee refund")

	send(t, h, 1, "/logout")
	assert.Equal(t, loginFirstMessage, send(t, h, 1, "/list"))
	assert.Equal(t, "Logged in as alice", send(t, h, 2, "/whoami"))
}

func Test_ChatsOfSameUser_ShouldNotLoseEachOthersWrites(t *testing.T) {
	h := newTestHandler()
	send(t, h, 1, "/login alice")
	send(t, h, 1, "/add 10 2024-06-01 09:00 First")
	send(t, h, 2, "/login alice")
	send(t, h, 1, "/add 20 2024-06-02 09:00 Second")
	send(t, h, 2, "/add 30 2024-06-03 09:00 Third")

	// A fresh handler over the same storage sees only what was saved.
	restarted := newHandler(h.kv, prefixConfig("dev.finances"))
	send(t, restarted, 3, "/login alice")
	resp := send(t, restarted, 3, "/list")

	assert.Contains(t, resp, "First")
	assert.Contains(t, resp, "Second")
	assert.Contains(t, resp, "Third")
	assert.Contains(t, resp, "Total: 60.00")

	resp = send(t, h, 1, "/list")
	assert.Contains(t, resp, "Third")
}

func Test_CorruptLedger_ShouldOnlyFailCommandsThatNeedIt(t *testing.T) {
	kv := storage.NewInMemStorage()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "dev.finances:chat:1:activeUser", []byte("alice")))
	require.NoError(t, kv.Set(ctx, "dev.finances:alice:transactions", []byte("garbage")))
	h := newHandler(kv, prefixConfig("dev.finances"))

	resp, err := h.HandleMessage(ctx, "/list", 1)
	assert.Equal(t, loadFailedMessage, resp)
	assert.True(t, customerr.IsStorage(err))

	assert.Equal(t, "Logged in as alice", send(t, h, 1, "/whoami"))
	assert.Equal(t, "Bye! Use /login to come back", send(t, h, 1, "/logout"))
	assert.Equal(t, "Nobody is logged in", send(t, h, 1, "/whoami"))
	assert.Equal(t, "Logged in as bob, 0 transaction(s) loaded", send(t, h, 1, "/login bob"))
	assert.Contains(t, send(t, h, 1, "/add 5 2024-06-01 09:00 Tea"), "Tea: 5.00")

	resp, err = h.HandleMessage(ctx, "/login alice", 1)
	assert.Contains(t, resp, "Logged in as alice\n"+loadFailedMessage)
	assert.True(t, customerr.IsStorage(err))
	assert.Equal(t, "Logged in as alice", send(t, h, 1, "/whoami"))
}

func Test_OnMonthLast_ShouldSelectPreviousMonth(t *testing.T) {
	h := newTestHandler()
	h.clock = func() time.Time { return time.Date(2024, time.March, 31, 23, 30, 0, 0, time.UTC) }
	send(t, h, 1, "/login alice")
	send(t, h, 1, "/add -40 2024-02-10 12:00 Books")
	send(t, h, 1, "/add -15 2024-03-05 12:00 Lunch")

	resp := send(t, h, 1, "/month last")
	assert.Contains(t, resp, "🗓 February 2024")
	assert.Contains(t, resp, "Books")
	assert.NotContains(t, resp, "Lunch")

	resp = send(t, h, 1, "/month this")
	assert.Contains(t, resp, "🗓 March 2024")
	assert.Contains(t, resp, "Lunch")

	assert.Contains(t, send(t, h, 1, "/month yesterday"), incorrectUsageMessage)
}

func Test_Logout_ShouldForgetChatAndLedger(t *testing.T) {
	h := newTestHandler()
	send(t, h, 1, "/start")
	send(t, h, 2, "/whoami")
	assert.Empty(t, h.chats)

	send(t, h, 1, "/login alice")
	send(t, h, 2, "/login alice")
	send(t, h, 1, "/add 10 2024-06-01 09:00 Salary")
	assert.Len(t, h.chats, 2)
	assert.Len(t, h.ledgers, 1)

	send(t, h, 1, "/logout")
	assert.Len(t, h.chats, 1)
	assert.Len(t, h.ledgers, 1)

	send(t, h, 2, "/logout")
	assert.Empty(t, h.chats)
	assert.Empty(t, h.ledgers)
}

func Test_OnAdd_ShouldNotifyObservers(t *testing.T) {
	var kinds []ledger.EventKind
	h := newTestHandler(ledger.ObserverFunc(func(_ context.Context, ev ledger.Event) {
		kinds = append(kinds, ev.Kind)
	}))

	send(t, h, 1, "/login alice")
	send(t, h, 2, "/login alice")
	send(t, h, 1, "/add 10 2024-06-01 09:00 Salary")

	assert.Equal(t, []ledger.EventKind{ledger.Reloaded, ledger.Added}, kinds)
}

func Test_parseCommand(t *testing.T) {
	cmd, arg := parseCommand("  /add 10 2024-06-01 09:00 Salary ")
	assert.Equal(t, "/add", cmd)
	assert.Equal(t, "10 2024-06-01 09:00 Salary", arg)

	cmd, arg = parseCommand("/list")
	assert.Equal(t, "/list", cmd)
	assert.Equal(t, "", arg)

	cmd, arg = parseCommand("just talking")
	assert.Equal(t, "", cmd)
	assert.Equal(t, "just talking", arg)
}

func Test_commandLabel(t *testing.T) {
	assert.Equal(t, "/add", commandLabel("/add 1 2 3 4"))
	assert.Equal(t, "unknown", commandLabel("/rm -rf"))
	assert.Equal(t, "text", commandLabel("hi"))
}
