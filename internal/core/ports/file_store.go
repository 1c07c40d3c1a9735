package ports

import "context"

// FileStore is the external file collaborator. Uploaded submission files live
// there; the core only keeps the returned URL and the key needed for a
// compensating delete.
type FileStore interface {
	// Store uploads content under key and returns a retrievable URL.
	Store(ctx context.Context, content []byte, key, contentType string) (string, error)
	// Delete removes a previously stored object. Used as the compensating
	// action when a submission fails after its file was already uploaded.
	Delete(ctx context.Context, key string) error
}
