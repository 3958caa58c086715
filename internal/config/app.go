package config

const (
	defaultKeyPrefix  = "dev.finances"
	defaultActiveSlot = "activeUser"
)

type AppConfig struct {
	Prefix     string `yaml:"key-prefix"`
	ActiveSlot string `yaml:"active-user-slot"`
}

func (s *AppConfig) setDefaults() {
	s.Prefix = defaultKeyPrefix
	s.ActiveSlot = defaultActiveSlot
}

func (s *AppConfig) KeyPrefix() string {
	return s.Prefix
}

func (s *AppConfig) ActiveUserSlot() string {
	return s.ActiveSlot
}
