package storage

import (
	"context"
	"io"
	"mime/multipart"
)

// Asset is a stable reference to an uploaded object: a presigned URL for
// clients and the object key needed to delete the blob later.
type Asset struct {
	URL        string
	ExternalID string
	Filename   string
}

// AssetStorage is the injected object-store capability. Upload failures abort
// the caller; Delete is best-effort and callers are expected to log and
// continue on error.
type AssetStorage interface {
	Upload(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, folder string) (*Asset, error)
	Delete(ctx context.Context, externalID string) error
}
