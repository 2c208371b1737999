package photos

import "github.com/kelseyhightower/envconfig"

type Config struct {
	S3Region      string `envconfig:"REGISTRY_S3_REGION" default:"us-east-1"`
	S3Bucket      string `envconfig:"REGISTRY_S3_BUCKET" default:"registry-photos"`
	S3Endpoint    string `envconfig:"REGISTRY_S3_ENDPOINT"`
	S3AccessKey   string `envconfig:"REGISTRY_S3_ACCESS_KEY"`
	S3SecretKey   string `envconfig:"REGISTRY_S3_SECRET_KEY"`
	PublicBaseURL string `envconfig:"REGISTRY_PHOTOS_PUBLIC_BASE_URL" default:"/storage"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
