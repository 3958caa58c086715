package config

const defaultServiceName = "finances-ledger"

type JaegerConfig struct {
	Service string `yaml:"service-name"`
	Agent   string `yaml:"agent-addr"`
	Disable bool   `yaml:"disabled"`
	SpanLog bool   `yaml:"log-spans"`
}

func (s *JaegerConfig) setDefaults() {
	s.Service = defaultServiceName
}

func (s *JaegerConfig) ServiceName() string {
	return s.Service
}

func (s *JaegerConfig) AgentAddr() string {
	return s.Agent
}

func (s *JaegerConfig) Disabled() bool {
	return s.Disable
}

func (s *JaegerConfig) LogSpans() bool {
	return s.SpanLog
}
