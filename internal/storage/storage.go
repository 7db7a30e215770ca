// Package storage keeps uploaded images and resumes in an S3 compatible
// bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	PublicURL string
}

// Object describes a stored file.
type Object struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

type Client struct {
	minio     *minio.Client
	bucket    string
	publicURL string
	logger    lager.Logger
}

// New connects to the bucket described by conf, creating the bucket when it
// does not exist yet.
func New(ctx context.Context, conf Config, logger lager.Logger) (*Client, error) {
	if conf.Endpoint == "" || conf.Bucket == "" {
		return nil, errors.New("storage endpoint and bucket are required")
	}

	mc, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
		Region: conf.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	exists, err := mc.BucketExists(ctx, conf.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", conf.Bucket, err)
	}
	if !exists {
		if err := mc.MakeBucket(ctx, conf.Bucket, minio.MakeBucketOptions{Region: conf.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", conf.Bucket, err)
		}
	}

	publicURL := conf.PublicURL
	if publicURL == "" {
		scheme := "http"
		if conf.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, conf.Endpoint, conf.Bucket)
	}

	return &Client{
		minio:     mc,
		bucket:    conf.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger.Session("storage", lager.Data{"bucket": conf.Bucket}),
	}, nil
}

// Upload stores r under folder with a random name and the extension of
// contentType. filename is only logged.
func (c *Client) Upload(ctx context.Context, folder, filename, contentType string, size int64, r io.Reader) (Object, error) {
	key := ObjectKey(folder, contentType)
	info, err := c.minio.PutObject(ctx, c.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		c.logger.Error("upload-failed", err, lager.Data{"key": key})
		return Object{}, fmt.Errorf("upload %s: %w", key, err)
	}
	c.logger.Info("uploaded", lager.Data{"key": key, "filename": filename, "size": info.Size})
	return Object{Key: key, URL: c.PublicURL(key), Size: info.Size, ContentType: contentType}, nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	if err := c.minio.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	c.logger.Info("deleted", lager.Data{"key": key})
	return nil
}

// PresignGet returns a temporary download link for a private object.
func (c *Client) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	u, err := c.minio.PresignedGetObject(ctx, c.bucket, key, ttl, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return u.String(), nil
}

func (c *Client) PublicURL(key string) string {
	return c.publicURL + "/" + key
}

// ObjectKey builds "<folder>/<uuid><ext>". ext comes from contentType, not
// from the uploaded file name.
func ObjectKey(folder, contentType string) string {
	ext := Extension(contentType)
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return uuid.NewString() + ext
	}
	return folder + "/" + uuid.NewString() + ext
}

// ErrNotConfigured is returned by Disabled.
var ErrNotConfigured = errors.New("object storage is not configured")

// Disabled stands in for Client when no bucket is configured.
type Disabled struct{}

func (Disabled) Upload(context.Context, string, string, string, int64, io.Reader) (Object, error) {
	return Object{}, ErrNotConfigured
}

func (Disabled) Delete(context.Context, string) error { return ErrNotConfigured }

func (Disabled) PresignGet(context.Context, string, time.Duration) (string, error) {
	return "", ErrNotConfigured
}
