package photos

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// ObjectClient is the subset of the S3 API the photo store depends on.
type ObjectClient interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

func NewObjectClient(cfg *Config) (ObjectClient, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("unable to load object storage configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			// MinIO and other self-hosted endpoints require path-style addressing
			o.UsePathStyle = true
		}
	})
	return client, nil
}

func NewStore(client ObjectClient, cfg *Config, logger *zap.SugaredLogger) Store {
	return &s3Store{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

type s3Store struct {
	client ObjectClient
	cfg    *Config
	logger *zap.SugaredLogger
}

var _ Store = &s3Store{}

func (s *s3Store) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.S3Bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", &StorageError{Cause: err}
	}

	return s.publicURL(key), nil
}

func (s *s3Store) Delete(ctx context.Context, key string) {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Errorw("unable to delete photo", "key", key, zap.Error(err))
	}
}

func (s *s3Store) publicURL(key string) string {
	return strings.TrimSuffix(s.cfg.PublicBaseURL, "/") + "/" + key
}
