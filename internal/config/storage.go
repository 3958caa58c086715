package config

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultSQLitePath = "data/ledger.db"
)

type StorageConfig struct {
	DriverName string `yaml:"driver"`
	Path       string `yaml:"sqlite-path"`
}

func (s *StorageConfig) setDefaults() {
	s.DriverName = DriverSQLite
	s.Path = defaultSQLitePath
}

func (s *StorageConfig) Driver() string {
	return s.DriverName
}

func (s *StorageConfig) SQLitePath() string {
	return s.Path
}
