package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	HttpPort           uint16 `envconfig:"REGISTRY_HTTP_SERVER_PORT" default:"8080" required:"true"`
	AllowedEmailDomain string `envconfig:"REGISTRY_ALLOWED_EMAIL_DOMAIN" default:"gmail.com"`
	DefaultPageSize    int    `envconfig:"REGISTRY_DEFAULT_PAGE_SIZE" default:"12"`
	MaxPageSize        int    `envconfig:"REGISTRY_MAX_PAGE_SIZE" default:"100"`
	MaxPhotoSizeBytes  int64  `envconfig:"REGISTRY_MAX_PHOTO_SIZE_BYTES" default:"10485760"`
}

func New() *Config {
	return &Config{}
}

func (c *Config) LoadFromEnv() error {
	return envconfig.Process("", c)
}

func NewConfig() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}
