package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFile    = "data/config.yaml"
	configFileEnv = "CONFIG_FILE"
)

type config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	App       AppConfig       `yaml:"app"`
	Storage   StorageConfig   `yaml:"storage"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Jaeger    JaegerConfig    `yaml:"jaeger"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type Service struct {
	config config
}

// New reads the file named by CONFIG_FILE, or data/config.yaml.
func New() (*Service, error) {
	path := os.Getenv(configFileEnv)
	if path == "" {
		path = configFile
	}
	return NewFromFile(path)
}

func NewFromFile(path string) (*Service, error) {
	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{}
	s.config.App.setDefaults()
	s.config.Storage.setDefaults()
	s.config.Jaeger.setDefaults()

	err := yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}
	if err = s.validate(); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return s, nil
}

func (s *Service) validate() error {
	switch s.config.Storage.DriverName {
	case DriverMemory:
	case DriverSQLite:
		if s.config.Storage.Path == "" {
			return errors.New("storage.sqlite-path is required for the sqlite driver")
		}
	case DriverPostgres:
		if s.config.Postgres.Hostname == "" || s.config.Postgres.Db == "" {
			return errors.New("postgres.host and postgres.db are required for the postgres driver")
		}
	default:
		return errors.Errorf("unknown storage driver %q", s.config.Storage.DriverName)
	}
	if s.config.App.Prefix == "" {
		return errors.New("app.key-prefix must not be empty")
	}
	if len(s.config.Kafka.BrokerList) > 0 && s.config.Kafka.Topic == "" {
		return errors.New("kafka.events-topic is required when brokers are set")
	}
	return nil
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Jaeger() *JaegerConfig {
	return &s.config.Jaeger
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}
