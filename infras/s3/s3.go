package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
)

// Storage puts and removes public objects in the configured bucket.
type Storage interface {
	Upload(ctx context.Context, directory, fileName, contentType string, body io.Reader, size int64) (url string, err error)
	Delete(ctx context.Context, url string) error
	ObjectKey(url string) string
}

type storage struct {
	client *s3.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Storage {
	s3Cfg := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s3Cfg.AccessKeyID, s3Cfg.SecretAccessKey, "")),
		awsConfig.WithRegion(s3Cfg.Region),
	)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s3Cfg.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(s3Cfg.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &storage{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *storage) bucket() string {
	return s.cfg.External.S3.BucketName
}

func (s *storage) Upload(ctx context.Context, directory, fileName, contentType string, body io.Reader, size int64) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := path.Join(directory, fileName)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    s.bucket(),
	})

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket()),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload file to S3")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return strings.TrimSuffix(s.cfg.External.S3.PublicDomain, "/") + "/" + key, nil
}

// Delete removes the object behind a URL produced by Upload. Foreign URLs are
// ignored.
func (s *storage) Delete(ctx context.Context, url string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := s.ObjectKey(url)
	if key == "" {
		return nil
	}

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    s.bucket(),
	})

	if _, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket()),
		Key:    aws.String(key),
	}); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (s *storage) ObjectKey(url string) string {
	prefixes := []string{
		strings.TrimSuffix(s.cfg.External.S3.PublicDomain, "/") + "/",
		fmt.Sprintf("%s/%s/", strings.TrimSuffix(s.cfg.External.S3.APIEndpoint, "/"), s.bucket()),
	}

	for _, prefix := range prefixes {
		if prefix == "/" {
			continue
		}

		if key, ok := strings.CutPrefix(url, prefix); ok {
			return key
		}
	}

	return constant.Empty
}
