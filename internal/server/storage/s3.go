package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	sc "github.com/dmitrijs2005/photokeeper/internal/server/config"
)

// SDK calls go through package variables so tests can inject failures
// without a live endpoint.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	headBucket = func(ctx context.Context, c *s3.Client, in *s3.HeadBucketInput) (*s3.HeadBucketOutput, error) {
		return c.HeadBucket(ctx, in)
	}
	createBucket = func(ctx context.Context, c *s3.Client, in *s3.CreateBucketInput) (*s3.CreateBucketOutput, error) {
		return c.CreateBucket(ctx, in)
	}
	putObject = func(ctx context.Context, c *s3.Client, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
	deleteObject = func(ctx context.Context, c *s3.Client, in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
		return c.DeleteObject(ctx, in)
	}
	listObjectsV2 = func(ctx context.Context, c *s3.Client, in *s3.ListObjectsV2Input) (*s3.ListObjectsV2Output, error) {
		return c.ListObjectsV2(ctx, in)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// S3Adapter stores photos in an S3-compatible bucket (MinIO in the
// custom stack). It is safe for concurrent use.
type S3Adapter struct {
	config *sc.Config
}

// NewS3Adapter wraps the S3 settings from cfg. The adapter stays usable
// when the settings are incomplete: Configured reports false and every
// storage call fails fast with ErrNotConfigured.
func NewS3Adapter(cfg *sc.Config) *S3Adapter {
	return &S3Adapter{config: cfg}
}

// Configured reports whether endpoint, credentials and bucket are all
// present.
func (a *S3Adapter) Configured() bool {
	c := a.config
	return c.S3BaseEndpoint != "" && c.S3RootUser != "" && c.S3RootPassword != "" && c.S3Bucket != ""
}

// Bucket returns the configured bucket name.
func (a *S3Adapter) Bucket() string {
	return a.config.S3Bucket
}

// Endpoint returns the configured base endpoint.
func (a *S3Adapter) Endpoint() string {
	return a.config.S3BaseEndpoint
}

func (a *S3Adapter) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(a.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			a.config.S3RootUser,
			a.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("%w: aws config: %v", ErrStorage, err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(a.config.S3BaseEndpoint)
		o.UsePathStyle = true // MinIO serves buckets path-style
	})

	return client, nil
}

// EnsureBucket creates the bucket when missing; an already-owned bucket
// is success. Matching uses the SDK's typed errors, not message text.
func (a *S3Adapter) EnsureBucket(ctx context.Context) error {
	if !a.Configured() {
		return ErrNotConfigured
	}

	client, err := a.getClient(ctx)
	if err != nil {
		return err
	}

	bucket := a.config.S3Bucket
	if _, err := headBucket(ctx, client, &s3.HeadBucketInput{Bucket: &bucket}); err == nil {
		return nil
	}

	_, err = createBucket(ctx, client, &s3.CreateBucketInput{Bucket: &bucket})
	if err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		var exists *types.BucketAlreadyExists
		if errors.As(err, &owned) || errors.As(err, &exists) {
			return nil
		}
		return fmt.Errorf("%w: create bucket %s: %v", ErrStorage, bucket, err)
	}
	return nil
}

// Put stores the payload under key and returns its stable public URL.
func (a *S3Adapter) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error) {
	if !a.Configured() {
		return "", ErrNotConfigured
	}

	client, err := a.getClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := a.config.S3Bucket
	_, err = putObject(ctx, client, &s3.PutObjectInput{
		Bucket:        &bucket,
		Key:           &key,
		Body:          r,
		ContentType:   &contentType,
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("%w: put %s: %v", ErrStorage, key, err)
	}

	return a.publicURL(key), nil
}

// GetURL presigns a GET for key when expiry > 0, otherwise returns the
// stable public URL.
func (a *S3Adapter) GetURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if !a.Configured() {
		return "", ErrNotConfigured
	}
	if expiry <= 0 {
		return a.publicURL(key), nil
	}

	client, err := a.getClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := a.config.S3Bucket
	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("%w: presign %s: %v", ErrStorage, key, err)
	}

	return req.URL, nil
}

// Delete removes the object under key. S3 deletes are idempotent, so a
// missing key is success.
func (a *S3Adapter) Delete(ctx context.Context, key string) error {
	if !a.Configured() {
		return ErrNotConfigured
	}

	client, err := a.getClient(ctx)
	if err != nil {
		return err
	}

	bucket := a.config.S3Bucket
	if _, err := deleteObject(ctx, client, &s3.DeleteObjectInput{Bucket: &bucket, Key: &key}); err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrStorage, key, err)
	}
	return nil
}

// List returns every object under prefix, following pagination.
func (a *S3Adapter) List(ctx context.Context, prefix string) ([]Object, error) {
	if !a.Configured() {
		return nil, ErrNotConfigured
	}

	client, err := a.getClient(ctx)
	if err != nil {
		return nil, err
	}

	bucket := a.config.S3Bucket
	var out []Object
	var token *string

	for {
		page, err := listObjectsV2(ctx, client, &s3.ListObjectsV2Input{
			Bucket:            &bucket,
			Prefix:            &prefix,
			ContinuationToken: token,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: list %s: %v", ErrStorage, prefix, err)
		}

		for _, obj := range page.Contents {
			o := Object{Key: aws.ToString(obj.Key), Size: aws.ToInt64(obj.Size)}
			if obj.LastModified != nil {
				o.LastModified = *obj.LastModified
			}
			out = append(out, o)
		}

		if page.NextContinuationToken == nil {
			return out, nil
		}
		token = page.NextContinuationToken
	}
}

func (a *S3Adapter) publicURL(key string) string {
	return strings.TrimRight(a.config.S3BaseEndpoint, "/") + "/" + a.config.S3Bucket + "/" + key
}
