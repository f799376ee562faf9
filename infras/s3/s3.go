package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"hostly/config"
	"hostly/infras/otel"
	"hostly/shared/constant"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// region is ignored by S3 compatible stores such as R2 but the SDK requires one.
const region = "auto"

// S3 is the receipt store. Objects are addressed by key inside a single bucket.
type S3 interface {
	UploadObject(ctx context.Context, objectKey, contentType string, data []byte) (url string, err error)
	DeleteObject(ctx context.Context, objectKey string) error
}

type bucketStore struct {
	client       *s3.Client
	bucket       string
	publicDomain string
	otel         otel.Otel
}

// New returns a store bound to the configured bucket.
func New(cfg *config.Config, otel otel.Otel) S3 {
	s3Cfg := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(region),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s3Cfg.AccessKeyID, s3Cfg.SecretAccessKey, "")),
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

	return &bucketStore{
		client:       client,
		bucket:       s3Cfg.BucketName,
		publicDomain: strings.TrimRight(s3Cfg.PublicDomain, "/"),
		otel:         otel,
	}
}

func (b *bucketStore) scope(ctx context.Context, op, objectKey string) (context.Context, otel.Scope) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+"."+op)
	scope.SetAttributes(map[string]any{
		"s3.bucket": b.bucket,
		"s3.key":    objectKey,
	})

	return ctx, scope
}

// UploadObject stores data under objectKey and returns its public URL. Keys are used as given.
func (b *bucketStore) UploadObject(ctx context.Context, objectKey, contentType string, data []byte) (url string, err error) {
	ctx, scope := b.scope(ctx, "UploadObject", objectKey)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(b.bucket),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to upload object to S3")

		return constant.Empty, fmt.Errorf("failed to upload object to S3: %w", err)
	}

	return b.publicDomain + "/" + objectKey, nil
}

func (b *bucketStore) DeleteObject(ctx context.Context, objectKey string) (err error) {
	ctx, scope := b.scope(ctx, "DeleteObject", objectKey)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to delete object from S3")

		return fmt.Errorf("failed to delete object from S3: %w", err)
	}

	return nil
}
