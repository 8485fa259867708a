package storage

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// DefaultPresignTTL is how long a returned URL stays valid.
const DefaultPresignTTL = time.Hour

// S3Config configures an S3 or S3-compatible (DigitalOcean Spaces, MinIO)
// bucket. Static credentials are used when AccessKey is set, otherwise the
// default AWS credential chain applies.
type S3Config struct {
	Bucket     string
	Region     string
	Endpoint   string
	AccessKey  string
	SecretKey  string
	PresignTTL time.Duration
}

type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type presignAPI interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Store stores objects in one bucket and returns presigned GET URLs.
type S3Store struct {
	bucket  string
	ttl     time.Duration
	objects objectAPI
	presign presignAPI
}

// NewS3Store loads AWS configuration and builds the client.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, &OperationError{Op: "configure", Key: cfg.Bucket, Cause: err}
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return newS3Store(cfg, client, s3.NewPresignClient(client)), nil
}

func newS3Store(cfg S3Config, objects objectAPI, presign presignAPI) *S3Store {
	ttl := cfg.PresignTTL
	if ttl <= 0 {
		ttl = DefaultPresignTTL
	}
	return &S3Store{bucket: cfg.Bucket, ttl: ttl, objects: objects, presign: presign}
}

func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) (Ref, error) {
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if _, err := s.objects.PutObject(ctx, in); err != nil {
		return Ref{}, &OperationError{Op: "put", Key: key, Cause: err}
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return Ref{}, &OperationError{Op: "presign", Key: key, Cause: err}
	}
	return Ref{Bucket: s.bucket, Key: key, URL: req.URL}, nil
}

// Delete removes the object. S3 deletes are idempotent, so existence is
// checked first to report NotFoundError.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.objects.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *s3types.NotFound
		if errors.As(err, &notFound) {
			return &NotFoundError{Key: key}
		}
		return &OperationError{Op: "head", Key: key, Cause: err}
	}

	if _, err := s.objects.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return &OperationError{Op: "delete", Key: key, Cause: err}
	}
	return nil
}
