package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

// S3API is the subset of the S3 client used by Store.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Store writes rows removed by the cleanup job to S3 as JSON. If bucket is
// empty, all operations are no-ops.
type Store struct {
	bucket   string
	s3Client S3API
	logger   *logging.Logger
}

func NewStore(s3Client S3API, bucket string, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{bucket: bucket, s3Client: s3Client, logger: logger}
}

type ClientOptions struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// NewS3Client builds a client with static credentials. A custom endpoint
// switches to path-style addressing (MinIO and friends).
func NewS3Client(opts ClientOptions) *s3.Client {
	o := s3.Options{
		Region: opts.Region,
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		o.Credentials = credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")
	}
	if opts.Endpoint != "" {
		o.BaseEndpoint = aws.String(opts.Endpoint)
		o.UsePathStyle = true
	}
	return s3.New(o)
}

func (s *Store) Enabled() bool {
	return s != nil && s.bucket != "" && s.s3Client != nil
}

type envelope struct {
	Category   string `json:"category"`
	ArchivedAt string `json:"archived_at"`
	Records    any    `json:"records"`
}

// Key is the object key for one category of one cleanup run.
func Key(category string, runAt time.Time) string {
	u := runAt.UTC()
	return fmt.Sprintf("cleanup/v1/%d/%02d/%02d/%s-%s.json",
		u.Year(), u.Month(), u.Day(), category, u.Format("150405"))
}

func (s *Store) Archive(ctx context.Context, category string, runAt time.Time, records any) error {
	if !s.Enabled() {
		return nil
	}

	data, err := json.Marshal(envelope{
		Category:   category,
		ArchivedAt: runAt.UTC().Format(time.RFC3339),
		Records:    records,
	})
	if err != nil {
		return fmt.Errorf("archive: marshal %s: %w", category, err)
	}

	key := Key(category, runAt)
	_, err = s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("archive: s3 put %s: %w", key, err)
	}

	s.logger.Info("archived cleanup rows", "category", category, "s3_key", key)
	return nil
}
