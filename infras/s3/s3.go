package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"salon/config"
	"salon/infras/otel"
	"salon/shared/constant"
)

// region is ignored by R2 and MinIO but required by the SDK signer.
const region = "auto"

// S3 stores customer design images in an S3 compatible bucket.
type S3 interface {
	UploadFileBytes(ctx context.Context, directory, fileName, contentType string, fileData []byte) (url string, err error)
}

// putter is the part of the SDK client the bucket needs.
type putter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Impl struct {
	client       putter
	bucket       string
	publicDomain string
	otel         otel.Otel
}

// UploadFileBytes writes the object under directory and returns the public URL customers and
// the automation workflow will fetch it from.
func (svc *s3Impl) UploadFileBytes(ctx context.Context, directory, fileName, contentType string, fileData []byte) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadFileBytes")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := path.Join(directory, fileName)
	scope.SetAttributes(map[string]any{
		"bucket":       svc.bucket,
		"object.key":   key,
		"object.size":  len(fileData),
		"content_type": contentType,
	})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileData),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileData))),
	})
	if err != nil {
		log.Error().Err(err).Str("bucket", svc.bucket).Str("key", key).Msg("failed to store design image")

		return constant.Empty, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return PublicURL(svc.publicDomain, key), nil
}

// PublicURL joins the public bucket domain and an object key.
func PublicURL(publicDomain, objectKey string) string {
	return strings.TrimSuffix(publicDomain, "/") + "/" + objectKey
}

func New(cfg *config.Config, otel otel.Otel) S3 {
	bucket := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(bucket.AccessKeyID, bucket.SecretAccessKey, "")),
	)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if bucket.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(bucket.APIEndpoint)
		}

		o.UsePathStyle = true
		o.Region = region
	})

	return &s3Impl{
		client:       client,
		bucket:       bucket.BucketName,
		publicDomain: bucket.PublicDomain,
		otel:         otel,
	}
}
