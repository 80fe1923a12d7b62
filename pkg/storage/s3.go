package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/example/oiladmin/pkg/config"
	"github.com/google/uuid"
)

// S3API is the subset of the S3 client the media library uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Client uploads and deletes image objects and maps between object keys and
// the durable public URLs stored in the settings document.
type Client struct {
	api     S3API
	cfg     *config.StorageConfig
	nowFunc func() time.Time
}

// NewClient binds a Client to an existing S3 implementation. Tests pass a
// fake here.
func NewClient(api S3API, cfg *config.StorageConfig) *Client {
	return &Client{
		api:     api,
		cfg:     cfg,
		nowFunc: time.Now,
	}
}

// NewS3Client loads the default AWS config and returns a concrete client.
func NewS3Client(ctx context.Context, cfg *config.StorageConfig) (S3API, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return s3.NewFromConfig(awsCfg), nil
}

// ObjectKey builds a collision-resistant key for an uploaded file:
// <prefix>/<unix-ms>_<random>_<filename>.
func (c *Client) ObjectKey(fileName string) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	key := fmt.Sprintf("%d_%s_%s", c.nowFunc().UnixMilli(), suffix, fileName)
	if c.cfg.KeyPrefix != "" {
		key = c.cfg.KeyPrefix + "/" + key
	}
	return key
}

// PublicURL returns the durable download URL for a stored object.
func (c *Client) PublicURL(key string) string {
	return strings.TrimSuffix(c.cfg.PublicBaseURL, "/") + "/" + key
}

// KeyFromURL recovers the object key from a stored public URL. Returns an
// error for URLs outside the configured bucket.
func (c *Client) KeyFromURL(url string) (string, error) {
	base := strings.TrimSuffix(c.cfg.PublicBaseURL, "/") + "/"
	if !strings.HasPrefix(url, base) {
		return "", fmt.Errorf("url %q is not in the configured bucket", url)
	}
	return strings.TrimPrefix(url, base), nil
}

// Upload stores one object and returns its public URL.
func (c *Client) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: &c.cfg.Bucket,
		Key:    &key,
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = &contentType
	}
	if _, err := c.api.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return c.PublicURL(key), nil
}

// Delete removes one object. A missing object is not an error; the list
// entry is the source of truth and may outlive the blob.
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &c.cfg.Bucket,
		Key:    &key,
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}
