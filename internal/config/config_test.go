package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_ShouldApplyDefaults(t *testing.T) {
	s, err := Parse([]byte("telegram:\n  token: abc\n"))
	require.NoError(t, err)

	assert.Equal(t, "abc", s.Telegram().Token())
	assert.Equal(t, 60, s.Telegram().PollTimeoutSeconds())
	assert.Equal(t, "dev.finances", s.App().KeyPrefix())
	assert.Equal(t, "activeUser", s.App().ActiveUserSlot())
	assert.Equal(t, DriverSQLite, s.Storage().Driver())
	assert.Equal(t, "data/ledger.db", s.Storage().SQLitePath())
	assert.Equal(t, "finances-ledger", s.Jaeger().ServiceName())
	assert.False(t, s.Memcached().Enabled())
	assert.False(t, s.Kafka().Enabled())
}

func Test_Parse_ShouldReadAllSections(t *testing.T) {
	raw := `
app:
  key-prefix: prod.finances
storage:
  driver: postgres
postgres:
  host: db
  db: ledger
  username: ledger
  password: secret
memcached:
  hosts: ["cache:11211"]
kafka:
  brokers: ["kafka:9092"]
  events-topic: ledger-events
jaeger:
  agent-addr: jaeger:6831
  log-spans: true
metrics:
  addr: ":9090"
`
	s, err := Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "prod.finances", s.App().KeyPrefix())
	assert.Equal(t, DriverPostgres, s.Storage().Driver())
	assert.Equal(t, "db", s.Postgres().Host())
	assert.Equal(t, "disable", s.Postgres().SSLMode())
	assert.Equal(t, []string{"cache:11211"}, s.Memcached().Hosts())
	assert.True(t, s.Kafka().Enabled())
	assert.Equal(t, "ledger-events", s.Kafka().EventsTopic())
	assert.Equal(t, "jaeger:6831", s.Jaeger().AgentAddr())
	assert.True(t, s.Jaeger().LogSpans())
	assert.Equal(t, ":9090", s.Metrics().Addr())
}

func Test_Parse_ShouldRejectInvalidConfig(t *testing.T) {
	for name, raw := range map[string]string{
		"unknown driver":   "storage:\n  driver: mongo\n",
		"postgres no host": "storage:\n  driver: postgres\n",
		"empty prefix":     "app:\n  key-prefix: \"\"\n",
		"kafka no topic":   "kafka:\n  brokers: [\"k:9092\"]\n",
		"broken yaml":      "storage: [",
	} {
		_, err := Parse([]byte(raw))
		assert.Error(t, err, name)
	}
}

func Test_New_ShouldReadFileFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  driver: memory\n"), 0o600))
	t.Setenv(configFileEnv, path)

	s, err := New()
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, s.Storage().Driver())
}
