package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/construction-site/internal/config"
)

// ObjectStorage stores an object and returns its public URL.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

type S3Storage struct {
	client *s3.Client
	cfg    config.StorageConfig
}

func NewS3Storage(cfg config.StorageConfig) *S3Storage {
	opts := s3.Options{
		Region:       cfg.Region,
		UsePathStyle: cfg.UsePathStyle,
	}
	if cfg.AccessKeyID != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	return &S3Storage{client: s3.New(opts), cfg: cfg}
}

func (s *S3Storage) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("storage: put %s: %w", key, err)
	}
	return PublicURL(s.cfg, key), nil
}

// PublicURL resolves where a stored key is served from.
func PublicURL(cfg config.StorageConfig, key string) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/") + "/" + key
	case cfg.Endpoint != "" && cfg.UsePathStyle:
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket + "/" + key
	case cfg.Endpoint != "":
		ep := strings.TrimRight(cfg.Endpoint, "/")
		if scheme, host, ok := strings.Cut(ep, "://"); ok {
			return scheme + "://" + cfg.Bucket + "." + host + "/" + key
		}
		return ep + "/" + cfg.Bucket + "/" + key
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", cfg.Bucket, cfg.Region, key)
	}
}
