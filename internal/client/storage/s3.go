package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"atlantic-api/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResumeStore uploads applicant resumes to S3 and hands back a public URL.
type ResumeStore struct {
	client    *s3.Client
	bucket    string
	region    string
	publicURL string
}

// NewResumeStore builds a store against the given bucket. publicURL is an
// optional CDN or static-site prefix; when empty, the standard S3 URL form is
// used.
func NewResumeStore(ctx context.Context, bucket, region, publicURL string) (*ResumeStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("resume bucket name is required")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}

	return &ResumeStore{
		client:    s3.NewFromConfig(cfg),
		bucket:    bucket,
		region:    region,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

// Upload stores the resume bytes under a randomized key and returns the
// public URL. The original filename only contributes its extension; the key
// itself is a UUID so uploads can never collide or be guessed.
func (s *ResumeStore) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("resume file is empty")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("resumes/%s%s", uuid.New().String(), ext)

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload resume: %w", err)
	}

	url := s.URLFor(key)

	logger.Info("Uploaded resume",
		zap.String("key", key),
		zap.Int("size_bytes", len(data)))

	return url, nil
}

// URLFor returns the public URL for an object key. When no public prefix is
// configured and the region is unknown, the raw key is returned so callers
// still have a stable reference to store.
func (s *ResumeStore) URLFor(key string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}
	if s.region != "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	}
	return key
}
