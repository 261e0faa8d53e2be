package services

import (
	"context"
	"fmt"
	"io"
	"path"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/mindhaven-org/backend/config"
	"github.com/mindhaven-org/backend/errs"
	"github.com/rs/zerolog/log"
)

// S3Uploader stores files in an S3 bucket instead of the external media
// host. Selected with UPLOAD_BACKEND=s3.
type S3Uploader struct {
	client *s3.Client
	bucket string
	region string
}

// NewS3Uploader builds the uploader from S3_BUCKET and AWS_REGION plus
// the standard AWS credential chain
func NewS3Uploader(cfg map[string]string) (*S3Uploader, error) {
	bucket := config.GetString(cfg, "S3_BUCKET", "")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET environment variable is required for the s3 upload backend")
	}
	region := config.GetString(cfg, "AWS_REGION", "us-east-1")

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &S3Uploader{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
		region: region,
	}, nil
}

// Upload writes the file under a random object key and returns the
// public object URL
func (u *S3Uploader) Upload(ctx context.Context, filename, contentType string, data io.Reader) (string, error) {
	if err := requireImage(contentType); err != nil {
		return "", err
	}

	key := "uploads/" + uuid.New().String() + path.Ext(filename)
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &u.bucket,
		Key:         &key,
		Body:        data,
		ContentType: &contentType,
	})
	if err != nil {
		return "", errs.NewUploadError("failed to store object in S3", err)
	}

	log.Debug().Str("key", key).Msg("Uploaded image to S3")
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
