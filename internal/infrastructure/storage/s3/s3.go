// Package s3 implements the file collaborator on top of any S3-compatible
// object store (AWS S3, Cloudflare R2, MinIO). The core treats it as opaque:
// it only ever sees the returned URL and the key used for deletion.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config captures the settings for the object store. Endpoint is optional;
// when set (R2, MinIO) it overrides the AWS endpoint and URL layout.
type Config struct {
	Region    string
	Bucket    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// FileStore stores submission files in an S3 bucket.
type FileStore struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
}

// New builds a FileStore. Static credentials are used when provided,
// otherwise the default AWS credential chain applies.
func New(ctx context.Context, cfg Config) (*FileStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &FileStore{
		client:   client,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
	}, nil
}

// Store uploads content under key and returns the object's URL.
func (f *FileStore) Store(ctx context.Context, content []byte, key, contentType string) (string, error) {
	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(f.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return f.objectURL(key), nil
}

// Delete removes a stored object. Used as the compensating action after a
// failed submission insert.
func (f *FileStore) Delete(ctx context.Context, key string) error {
	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (f *FileStore) objectURL(key string) string {
	if f.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", f.endpoint, f.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", f.bucket, f.region, key)
}
