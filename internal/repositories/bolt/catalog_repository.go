// Package bolt persists the catalog in a single-file bbolt database. The
// layout mirrors the browser storage it replaces: one bucket with a
// "products" key holding the whole collection blob and a "language" key
// holding the UI language code.
package bolt

import (
	"context"
	"fmt"
	"strings"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/tendas-mozambique/api/internal/repositories"
)

const (
	bucketName    = "catalog"
	collectionKey = "products"
	languageKey   = "language"

	openTimeout = 5 * time.Second
)

// CatalogRepository implements repositories.CatalogRepository over bbolt.
type CatalogRepository struct {
	db *bbolt.DB
}

// NewCatalogRepository opens (creating if needed) the database file at path
// and ensures the catalog bucket exists.
func NewCatalogRepository(path string) (*CatalogRepository, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("bolt catalog repository: store path is required")
	}

	db, err := bbolt.Open(trimmed, 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("bolt catalog repository: open %s: %w", trimmed, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bolt catalog repository: create bucket: %w", err)
	}

	return &CatalogRepository{db: db}, nil
}

// LoadCollection returns the serialized collection blob.
func (r *CatalogRepository) LoadCollection(ctx context.Context) ([]byte, error) {
	return r.get(ctx, collectionKey, repositories.ErrCollectionMissing)
}

// SaveCollection replaces the collection blob in one write transaction.
func (r *CatalogRepository) SaveCollection(ctx context.Context, blob []byte) error {
	return r.put(ctx, collectionKey, blob)
}

// Language returns the persisted language code.
func (r *CatalogRepository) Language(ctx context.Context) (string, error) {
	value, err := r.get(ctx, languageKey, repositories.ErrLanguageMissing)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// SaveLanguage replaces the persisted language code.
func (r *CatalogRepository) SaveLanguage(ctx context.Context, code string) error {
	return r.put(ctx, languageKey, []byte(code))
}

// Close releases the database file.
func (r *CatalogRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *CatalogRepository) get(ctx context.Context, key string, missing error) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r == nil || r.db == nil {
		return nil, repositories.ErrStoreUnavailable
	}

	var value []byte
	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return missing
		}
		stored := bucket.Get([]byte(key))
		if stored == nil {
			return missing
		}
		// Bolt values are only valid inside the transaction.
		value = make([]byte, len(stored))
		copy(value, stored)
		return nil
	})
	if err != nil {
		if err == missing {
			return nil, missing
		}
		return nil, fmt.Errorf("%w: %v", repositories.ErrStoreUnavailable, err)
	}
	return value, nil
}

func (r *CatalogRepository) put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r == nil || r.db == nil {
		return repositories.ErrStoreUnavailable
	}

	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", repositories.ErrStoreUnavailable, err)
	}
	return nil
}
