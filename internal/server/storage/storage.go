// Package storage abstracts the object store holding project photos. The
// core never constructs storage keys from request data; it only signs upload
// URLs for new keys and deletes by key.
package storage

import "context"

// DeleteResult records the outcome of one delete in a batch.
type DeleteResult struct {
	Key string
	Err error
}

// ObjectStore is the external object-storage collaborator.
type ObjectStore interface {
	// SignUploadURL mints a fresh storage key and a short-lived presigned
	// PUT URL the client uploads the file to directly.
	SignUploadURL(ctx context.Context) (key string, url string, err error)

	// DeleteObjects deletes the given keys concurrently and reports a
	// per-key outcome. Partial failure is expected to be tolerated by the
	// caller; there is no automatic retry.
	DeleteObjects(ctx context.Context, keys []string) []DeleteResult
}
