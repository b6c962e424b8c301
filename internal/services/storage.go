package services

import "context"

// FileStorage is the object-storage collaborator: resumes, profile images
// and company certificates live behind it, addressed by opaque keys.
// Implemented by infra.S3Storage.
type FileStorage interface {
	Upload(ctx context.Context, prefix string, data []byte, contentType string) (key string, err error)
	Fetch(ctx context.Context, key string) ([]byte, error)
	PresignedGetURL(ctx context.Context, key string) (string, error)
}
