package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
type Config struct {
	SlackBotToken      string `envconfig:"SLACK_BOT_TOKEN" required:"true"`
	SlackSigningSecret string `envconfig:"SLACK_SIGNING_SECRET" required:"true"`
	DatabasePath       string `envconfig:"DATABASE_PATH" default:"./coffeechat.db"`
	Port               string `envconfig:"PORT" default:"3000"`
	Timezone           string `envconfig:"TIMEZONE" default:"America/New_York"`
	LogLevel           string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error
	RoundHour          int    `envconfig:"ROUND_HOUR" default:"9"`
	ReminderHour       int    `envconfig:"REMINDER_HOUR" default:"16"`
	LookbackWeeks      int    `envconfig:"LOOKBACK_WEEKS" default:"6"`
	DefaultFrequency   int    `envconfig:"DEFAULT_FREQUENCY_DAYS" default:"14"`
}

// Load reads environment variables into Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
