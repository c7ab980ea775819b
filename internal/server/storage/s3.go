package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "github.com/dmitrijs2005/portfolio-backend/internal/server/config"
)

// S3Store implements ObjectStore against S3 or an S3-compatible backend
// (MinIO via S3BaseEndpoint).
type S3Store struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	cfg           *sc.Config
}

// NewS3Store builds the S3 client once at startup from server config.
func NewS3Store(ctx context.Context, cfg *sc.Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("s3 config error: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.S3Bucket,
		cfg:           cfg,
	}, nil
}

// newStorageKey returns a fresh object key: a UUID with the fixed photo
// extension. Keys are opaque to the rest of the system.
func newStorageKey() string {
	return fmt.Sprintf("%v.jpeg", uuid.New())
}

// SignUploadURL mints a key and presigns a PUT for it. The URL lifetime
// comes from config (60 seconds by default).
func (s *S3Store) SignUploadURL(ctx context.Context) (string, string, error) {
	key := newStorageKey()

	req, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.cfg.UploadURLValidityDuration))
	if err != nil {
		return "", "", fmt.Errorf("presign error: %w", err)
	}

	return key, req.URL, nil
}

// DeleteObjects issues one DeleteObject per key concurrently and waits for
// the whole batch. Failures are reported per key and never retried here.
func (s *S3Store) DeleteObjects(ctx context.Context, keys []string) []DeleteResult {
	results := make([]DeleteResult, len(keys))

	var wg sync.WaitGroup
	for i, key := range keys {
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    aws.String(key),
			})
			results[i] = DeleteResult{Key: key, Err: err}
		}(i, key)
	}
	wg.Wait()

	return results
}
