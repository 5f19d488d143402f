package driven

import (
	"context"
	"errors"
)

// ErrQuotaExceeded is returned by DocumentStore.Write when storing the
// document would push total storage past the configured budget. The content
// store surfaces it as a user-visible warning without rolling back its
// in-memory state.
var ErrQuotaExceeded = errors.New("storage budget exceeded")

// DocumentStore defines the driven port for durable, named JSON documents.
// The adapter owns serialization and the raw stored bytes; it has no
// knowledge of entity semantics.
type DocumentStore interface {
	// Write serializes doc to JSON and stores it under key, replacing any
	// previous document. Returns ErrQuotaExceeded (possibly wrapped) when
	// the write would exceed the storage budget; the previous document is
	// left intact in that case.
	Write(ctx context.Context, key string, doc any) error

	// Read deserializes the document stored under key into v. Returns
	// (false, nil) when no document exists or the stored text does not
	// parse; callers substitute their built-in seed value. Parse failures
	// are swallowed and logged as diagnostics, never surfaced.
	Read(ctx context.Context, key string, v any) (bool, error)

	// Delete removes the document stored under key. Deleting a missing key
	// is not an error.
	Delete(ctx context.Context, key string) error

	// UsedBytes reports the total size of all stored documents.
	UsedBytes(ctx context.Context) (int64, error)
}
