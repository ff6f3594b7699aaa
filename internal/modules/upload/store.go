// Package upload stores product images in an S3-compatible bucket and
// hands back the public URL the catalog rows reference.
package upload

import (
	"context"
	"fmt"
	"io"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store is the object storage surface the handler needs.
type Store interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// S3Store implements Store over AWS S3 or any S3-compatible endpoint
// (e.g. MinIO, Supabase storage gateways).
type S3Store struct {
	client  *s3.Client
	bucket  string
	region  string
	baseURL string // optional explicit public base for constructed URLs
}

// S3Config holds explicit construction parameters.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // optional; enables custom endpoints
	PathStyle bool
	BaseURL   string // optional public URL base; derived when empty
}

// NewS3Store creates an S3-backed store from S3Config.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &S3Store{
		client:  client,
		bucket:  cfg.Bucket,
		region:  region,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	input := &s3.PutObjectInput{Bucket: &s.bucket, Key: &key, Body: body}
	if contentType != "" {
		input.ContentType = &contentType
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", err
	}
	return s.publicURL(key), nil
}

func (s *S3Store) publicURL(key string) string {
	if s.baseURL != "" {
		return s.baseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
