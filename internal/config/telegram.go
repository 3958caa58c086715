package config

const defaultPollTimeoutSeconds = 60

type TelegramConfig struct {
	ApiToken    string `yaml:"token"`
	PollTimeout int    `yaml:"poll-timeout-seconds"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

func (t *TelegramConfig) PollTimeoutSeconds() int {
	if t.PollTimeout <= 0 {
		return defaultPollTimeoutSeconds
	}
	return t.PollTimeout
}
