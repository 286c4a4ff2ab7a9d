package repositories

import (
	"context"
	"errors"
)

// CatalogRepository persists the product collection as one opaque blob plus
// the UI language preference, mirroring the two string keys the store owns.
// Implementations must be safe for concurrent use; the last completed write
// wins.
type CatalogRepository interface {
	// LoadCollection returns the serialized collection blob.
	// A missing blob is reported via ErrCollectionMissing.
	LoadCollection(ctx context.Context) ([]byte, error)
	// SaveCollection replaces the collection blob atomically.
	SaveCollection(ctx context.Context, blob []byte) error

	// Language returns the persisted language code, or ErrLanguageMissing
	// when none has been stored yet.
	Language(ctx context.Context) (string, error)
	// SaveLanguage replaces the persisted language code.
	SaveLanguage(ctx context.Context, code string) error

	Close() error
}

var (
	// ErrCollectionMissing indicates no collection blob has been stored yet.
	ErrCollectionMissing = errors.New("catalog repository: collection not found")
	// ErrLanguageMissing indicates no language preference has been stored yet.
	ErrLanguageMissing = errors.New("catalog repository: language not found")
	// ErrStoreUnavailable indicates the underlying store could not serve the
	// request (closed database, full disk, corrupted file).
	ErrStoreUnavailable = errors.New("catalog repository: store unavailable")
)

// RepositoryError categorises low-level persistence failures for services.
type RepositoryError interface {
	error
	IsNotFound() bool
	IsUnavailable() bool
}

// IsNotFound reports whether err represents a missing-key condition.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrCollectionMissing) || errors.Is(err, ErrLanguageMissing) {
		return true
	}
	var repoErr RepositoryError
	return errors.As(err, &repoErr) && repoErr.IsNotFound()
}

// IsUnavailable reports whether err represents a storage-layer failure.
func IsUnavailable(err error) bool {
	if errors.Is(err, ErrStoreUnavailable) {
		return true
	}
	var repoErr RepositoryError
	return errors.As(err, &repoErr) && repoErr.IsUnavailable()
}
