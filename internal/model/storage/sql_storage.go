package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finances-ledger/internal/logger"

	// postgres driver
	_ "github.com/lib/pq"
	// sqlite driver
	_ "modernc.org/sqlite"
)

const (
	dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=%s"
	recordTable = "records"
)

type dialect struct {
	name    string
	driver  string
	builder sq.StatementBuilderType
}

var (
	postgresDialect = dialect{
		name:    "postgres",
		driver:  "postgres",
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
	sqliteDialect = dialect{
		name:    "sqlite",
		driver:  "sqlite",
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
)

type postgresConfig interface {
	Host() string
	Username() string
	Password() string
	Database() string
	SSLMode() string
}

// SQLStorage keeps every key in one row of the records table. The same
// queries run on postgres and sqlite.
type SQLStorage struct {
	db  *sql.DB
	sql sq.StatementBuilderType
}

func NewPostgresStorage(config postgresConfig) (*SQLStorage, error) {
	dsn := fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database(),
		config.SSLMode())
	return openSQLStorage(postgresDialect, dsn)
}

func NewSQLiteStorage(path string) (*SQLStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create db directory")
	}
	return openSQLStorage(sqliteDialect, path)
}

func openSQLStorage(d dialect, dsn string) (*SQLStorage, error) {
	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = RunMigrations(d, dsn); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "cannot migrate database")
	}
	logger.Info("sql storage ready", zap.String("dialect", d.name))
	return &SQLStorage{db: db, sql: d.builder}, nil
}

func (s *SQLStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := s.sql.Select("payload").
		From(recordTable).
		Where(sq.Eq{"record_key": key})

	var payload string
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "get record")
	}
	return []byte(payload), true, nil
}

func (s *SQLStorage) Set(ctx context.Context, key string, value []byte) error {
	query := s.sql.Insert(recordTable).
		Columns("record_key", "payload", "updated_at").
		Values(key, string(value), time.Now().UTC()).
		Suffix("ON CONFLICT(record_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at")

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "set record")
}

func (s *SQLStorage) Delete(ctx context.Context, key string) error {
	query := s.sql.Delete(recordTable).
		Where(sq.Eq{"record_key": key})

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "delete record")
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}
