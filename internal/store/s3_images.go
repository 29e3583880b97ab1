package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/geo-locations/internal/config"
	"github.com/MKhiriev/geo-locations/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// s3API is the subset of *s3.Client used by s3ImageStorage.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3ImageStorage is the [ImageStorage] implementation backed by an
// S3-compatible bucket (AWS S3, MinIO). Image names are used as object keys.
type s3ImageStorage struct {
	client s3API
	bucket string
	logger *logger.Logger
}

// NewS3ImageStorage builds an S3 client from cfg. Static credentials are used
// when an access key is configured, otherwise the default AWS credential
// chain applies. A base endpoint switches to path-style addressing, as
// required by MinIO.
func NewS3ImageStorage(ctx context.Context, cfg config.S3, logger *logger.Logger) (ImageStorage, error) {
	logger.Debug().Str("bucket", cfg.Bucket).Msg("creating s3 image storage")

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return newS3ImageStorage(client, cfg.Bucket, logger), nil
}

func newS3ImageStorage(client s3API, bucket string, logger *logger.Logger) *s3ImageStorage {
	return &s3ImageStorage{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

func (s *s3ImageStorage) Save(ctx context.Context, name string, contentType string, content io.Reader) error {
	log := logger.FromContext(ctx)

	if !validImageName(name) {
		return ErrInvalidImageName
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
		Body:   content,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "s3ImageStorage.Save").Str("key", name).Msg("failed to put object")
		return fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	log.Debug().Str("key", name).Str("bucket", s.bucket).Msg("image saved to s3")
	return nil
}

func (s *s3ImageStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if !validImageName(name) {
		return nil, ErrImageNotFound
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if isS3NotFound(err) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "s3ImageStorage.Open").Str("key", name).Msg("failed to get object")
		return nil, fmt.Errorf("error getting image from s3: %w", err)
	}

	return out.Body, nil
}

func (s *s3ImageStorage) Delete(ctx context.Context, name string) error {
	if !validImageName(name) {
		return ErrInvalidImageName
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil && !isS3NotFound(err) {
		return fmt.Errorf("error deleting image from s3: %w", err)
	}

	return nil
}

func isS3NotFound(err error) bool {
	if err == nil {
		return false
	}

	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}

	return false
}
