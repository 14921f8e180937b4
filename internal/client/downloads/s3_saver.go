package downloads

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// ObjectPutter is the part of *s3.Client used by S3Saver.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Options describes the target bucket. BaseEndpoint may point at MinIO or
// any other S3-compatible service; empty means AWS.
type S3Options struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

// S3Saver uploads files under downloads/YYYY/MM/DD/<uuid>-<name>.
type S3Saver struct {
	bucket string
	client ObjectPutter
	now    func() time.Time
}

// NewS3Saver builds an S3 client from opts. Static credentials are used when
// AccessKey is set, the default AWS chain otherwise.
func NewS3Saver(ctx context.Context, opts S3Options) (*S3Saver, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := loadDefaultAWSConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3SaverWithClient(opts.Bucket, client), nil
}

func NewS3SaverWithClient(bucket string, client ObjectPutter) *S3Saver {
	return &S3Saver{bucket: bucket, client: client, now: time.Now}
}

func (s *S3Saver) objectKey(name string) string {
	return fmt.Sprintf("downloads/%s/%s-%s", s.now().UTC().Format("2006/01/02"), uuid.NewString(), name)
}

func (s *S3Saver) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	n, err := cleanName(name)
	if err != nil {
		return "", err
	}

	key := s.objectKey(n)
	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	}); err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}

	return "s3://" + s.bucket + "/" + key, nil
}
