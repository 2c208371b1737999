package auth

import "github.com/kelseyhightower/envconfig"

type Config struct {
	SessionSecret string `envconfig:"REGISTRY_SESSION_SECRET" required:"true"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
