// Package publish uploads a static build to S3 compatible object storage.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/vango-ui/internal/config"
	"github.com/vango-dev/vango-ui/internal/site"
)

// ErrNoBucket is returned when a Publisher has no bucket.
var ErrNoBucket = errors.New("publish: bucket is required")

// ObjectPutter is the part of the S3 client the publisher uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads build files under a key prefix.
type Publisher struct {
	client ObjectPutter
	bucket string
	prefix string
	logger *slog.Logger
}

// New returns a Publisher writing to bucket through client.
func New(client ObjectPutter, bucket, prefix string, logger *slog.Logger) (*Publisher, error) {
	if bucket == "" {
		return nil, ErrNoBucket
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{client: client, bucket: bucket, prefix: prefix, logger: logger}, nil
}

// NewClient builds an S3 client from the publishing settings. A custom
// endpoint switches to path style addressing. Without keys requests are
// sent anonymously.
func NewClient(cfg *config.Config) *s3.Client {
	opts := s3.Options{
		Region:      cfg.S3Region,
		Credentials: aws.AnonymousCredentials{},
	}
	if cfg.S3AccessKeyID != "" {
		key, secret := cfg.S3AccessKeyID, cfg.S3SecretAccessKey
		opts.Credentials = aws.NewCredentialsCache(aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{AccessKeyID: key, SecretAccessKey: secret, Source: "environment"}, nil
		}))
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

// Key returns the object key for a build path.
func (p *Publisher) Key(filePath string) string {
	if p.prefix == "" {
		return filePath
	}
	return path.Join(p.prefix, filePath)
}

// Publish uploads files in order and stops at the first failure.
func (p *Publisher) Publish(ctx context.Context, files []site.File) error {
	for _, f := range files {
		key := p.Key(f.Path)
		_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:       aws.String(p.bucket),
			Key:          aws.String(key),
			Body:         bytes.NewReader(f.Data),
			ContentType:  aws.String(ContentType(f.Path)),
			CacheControl: aws.String(cacheControl(f.Path)),
		})
		if err != nil {
			return fmt.Errorf("publish %s: %w", key, err)
		}
		p.logger.InfoContext(ctx, "uploaded", "bucket", p.bucket, "key", key, "size", len(f.Data))
	}
	return nil
}

// ContentType returns the media type for a build path.
func ContentType(filePath string) string {
	switch path.Ext(filePath) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	}
	if t := mime.TypeByExtension(path.Ext(filePath)); t != "" {
		return t
	}
	return "application/octet-stream"
}

func cacheControl(filePath string) string {
	if path.Base(filePath) == site.IndexFile {
		return "no-cache"
	}
	return "public, max-age=3600"
}
