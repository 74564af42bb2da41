package lib

import (
	"context"
	"io"

	"hbs/src/lib/aws"
)

// ImageStore hides the cloud storage provider from the hotel handlers.
type ImageStore interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}

type s3ImageStore struct{}

var imageStore ImageStore

func GetImageStore() ImageStore {
	if imageStore != nil {
		return imageStore
	}
	imageStore = &s3ImageStore{}
	return imageStore
}

// NewImageStore Replace image store instance with custom implementation
func NewImageStore(s ImageStore) {
	imageStore = s
}

func (s *s3ImageStore) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	url, err := aws.S3UploadImage(ctx, key, contentType, body)
	if err != nil {
		return "", err
	}
	return *url, nil
}
