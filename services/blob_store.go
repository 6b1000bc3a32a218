package services

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/subarudev0/portfolio-backend/config"
)

// BlobStore abstracts the object storage holding uploaded images and PDFs.
// DB rows hold only the public URLs this store hands out.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, rawURL string) error
	// Owns reports whether rawURL points into this store. Foreign URLs and
	// inline data URLs are never owned and must never be deleted.
	Owns(rawURL string) bool
}

// S3BlobStore keeps blobs in an S3-compatible bucket and serves them from a
// public base URL. A custom endpoint covers non-AWS providers (R2, MinIO).
type S3BlobStore struct {
	client  *s3.Client
	bucket  string
	baseURL *url.URL
}

func NewS3BlobStore(c map[string]string) (*S3BlobStore, error) {
	bucket := config.GetString(c, "S3_BUCKET", "")
	publicBase := config.GetString(c, "S3_PUBLIC_BASE_URL", "")
	if bucket == "" || publicBase == "" {
		return nil, fmt.Errorf("S3_BUCKET and S3_PUBLIC_BASE_URL are required")
	}
	baseURL, err := url.Parse(publicBase)
	if err != nil || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid S3_PUBLIC_BASE_URL %q", publicBase)
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(config.GetString(c, "S3_REGION", "auto")),
	}
	accessKey := config.GetString(c, "S3_ACCESS_KEY", "")
	secretKey := config.GetString(c, "S3_SECRET_KEY", "")
	if accessKey != "" && secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	endpoint := config.GetString(c, "S3_ENDPOINT", "")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3BlobStore{client: client, bucket: bucket, baseURL: baseURL}, nil
}

func (s *S3BlobStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("putting object %s: %w", key, err)
	}
	return s.baseURL.JoinPath(key).String(), nil
}

func (s *S3BlobStore) Delete(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parsing blob URL: %w", err)
	}
	key := strings.TrimPrefix(strings.TrimPrefix(u.Path, s.baseURL.Path), "/")
	if key == "" {
		return fmt.Errorf("no object key in %q", rawURL)
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("deleting object %s: %w", key, err)
	}
	return nil
}

func (s *S3BlobStore) Owns(rawURL string) bool {
	if rawURL == "" || strings.HasPrefix(rawURL, "data:") {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Host != "" && strings.EqualFold(u.Host, s.baseURL.Host)
}
