package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/craftside/marketplace/internal/config"
)

const presignTTL = 15 * time.Minute

type presignAPI interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// ImageStore issues presigned upload URLs against an S3-compatible bucket
// so product image bytes never pass through this service. The underlying
// client is built once at startup and reused for every request.
type ImageStore struct {
	bucket    string
	presigner presignAPI
}

// NewImageStore builds the store and its S3 presign client.
func NewImageStore(ctx context.Context, cfg config.StorageConfig) (*ImageStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &ImageStore{bucket: cfg.Bucket, presigner: s3.NewPresignClient(client)}, nil
}

// PresignedUpload returns an object key plus a PUT URL valid for 15 minutes.
func (s *ImageStore) PresignedUpload(ctx context.Context) (string, string, error) {
	bucket := s.bucket
	key := randomObjectKey()

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", "", err
	}
	return key, req.URL, nil
}

func randomObjectKey() string {
	d := time.Now()
	return fmt.Sprintf("products/%d/%02d/%v", d.Year(), d.Month(), uuid.New())
}
