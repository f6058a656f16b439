package aws

import (
	"context"
	"fmt"
	"strings"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Presigner signs direct uploads into one bucket.
type S3Presigner struct {
	presigner  *s3.PresignClient
	bucket     string
	publicBase string
}

// NewS3Presigner creates a presigner for bucket. publicBase, when set, is the
// CDN or website prefix used to build public object URLs.
func NewS3Presigner(cfg sdkaws.Config, bucket, publicBase string) *S3Presigner {
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		// LocalStack and MinIO only route path-style requests.
		o.UsePathStyle = cfg.BaseEndpoint != nil
	})
	return &S3Presigner{
		presigner:  s3.NewPresignClient(client),
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
	}
}

// PresignPut returns a presigned PUT URL for key.
func (p *S3Presigner) PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      sdkaws.String(p.bucket),
		Key:         sdkaws.String(key),
		ContentType: sdkaws.String(contentType),
	}
	presigned, err := p.presigner.PresignPutObject(ctx, input, func(o *s3.PresignOptions) {
		o.Expires = expires
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign put object: %w", err)
	}
	return presigned.URL, nil
}

// PublicURL is where the object at key is served from once uploaded.
func (p *S3Presigner) PublicURL(key string) string {
	if p.publicBase != "" {
		return p.publicBase + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", p.bucket, key)
}
