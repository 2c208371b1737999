package mailer

import "github.com/kelseyhightower/envconfig"

type Config struct {
	SMTPHost     string `envconfig:"REGISTRY_SMTP_HOST" default:"localhost"`
	SMTPPort     int    `envconfig:"REGISTRY_SMTP_PORT" default:"25"`
	SMTPUsername string `envconfig:"REGISTRY_SMTP_USERNAME"`
	SMTPPassword string `envconfig:"REGISTRY_SMTP_PASSWORD"`
	FromAddress  string `envconfig:"REGISTRY_MAIL_FROM" default:"no-reply@registry.local"`
	DeferSends   bool   `envconfig:"REGISTRY_MAIL_DEFER_SENDS" default:"true"`
	QueueSize    int    `envconfig:"REGISTRY_MAIL_QUEUE_SIZE" default:"64"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
