package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tendas-mozambique/api/internal/platform/textutil"
)

var (
	// ErrSessionClosed indicates a mutating call on a saved or cancelled session.
	ErrSessionClosed = errors.New("image session: session is closed")
	// ErrEmptyWorkingList indicates a save attempt with no image references left.
	ErrEmptyWorkingList = errors.New("image session: working list is empty")
	// ErrImageRefRequired indicates a blank reference passed to an add operation.
	ErrImageRefRequired = errors.New("image session: image reference is required")
	// ErrInvalidPosition indicates an index outside the working list.
	ErrInvalidPosition = errors.New("image session: position out of range")
)

type sessionState int

const (
	sessionEditing sessionState = iota
	sessionSaved
	sessionCancelled
)

// ImageSession is a per-product image editing workspace. Changes accumulate
// in a working list and only reach the catalog on Save. A session is single
// use: once saved or cancelled every mutating call fails with
// ErrSessionClosed. Sessions are safe for concurrent use; operations on one
// session serialize on its internal lock.
type ImageSession struct {
	catalog     CatalogService
	productID   int
	folder      string
	maxImageRef int

	mu       sync.Mutex
	original []string
	working  []string
	state    sessionState
}

// ImageSessionDeps bundles constructor inputs for an editing session.
type ImageSessionDeps struct {
	Catalog CatalogService
	// FolderRoot prefixes suggested local paths; empty applies "/images/products".
	FolderRoot string
	// MaxImageRefBytes caps a pasted data URL; zero applies the default.
	MaxImageRefBytes int
}

// NewImageSession opens an editing session for the given product. The
// working list starts from the record's current images and the suggested
// folder is derived from the slugified category.
func NewImageSession(ctx context.Context, deps ImageSessionDeps, product Product) (*ImageSession, error) {
	if deps.Catalog == nil {
		return nil, ErrCatalogServiceMissing
	}
	root := strings.TrimRight(deps.FolderRoot, "/")
	if root == "" {
		root = "/images/products"
	}
	maxImageRef := deps.MaxImageRefBytes
	if maxImageRef <= 0 {
		maxImageRef = defaultMaxImageRefBytes
	}
	folder := root + "/"
	if slug := textutil.Slugify(product.Category); slug != "" {
		folder = root + "/" + slug + "/"
	}
	working := product.ImageList()
	return &ImageSession{
		catalog:     deps.Catalog,
		productID:   product.ID,
		folder:      folder,
		original:    append([]string(nil), working...),
		working:     working,
		maxImageRef: maxImageRef,
	}, nil
}

// Folder returns the suggested local folder for this product's images.
func (s *ImageSession) Folder() string {
	return s.folder
}

// Working returns a copy of the current working list.
func (s *ImageSession) Working() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.working))
	copy(out, s.working)
	return out
}

// Saved reports whether the session ended with a successful save.
func (s *ImageSession) Saved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == sessionSaved
}

// AddLocal appends the next suggested local path: main.jpg for the first
// image, then 1.jpg, 2.jpg and so on.
func (s *ImageSession) AddLocal() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != sessionEditing {
		return "", ErrSessionClosed
	}
	name := "main.jpg"
	if len(s.working) > 0 {
		name = fmt.Sprintf("%d.jpg", len(s.working))
	}
	path := s.folder + name
	s.working = append(s.working, path)
	return path, nil
}

// AddURL appends an external image URL verbatim.
func (s *ImageSession) AddURL(url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != sessionEditing {
		return ErrSessionClosed
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrImageRefRequired
	}
	s.working = append(s.working, url)
	return nil
}

// AddDataURL appends an inline data URL, rejecting payloads over the cap.
func (s *ImageSession) AddDataURL(dataURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != sessionEditing {
		return ErrSessionClosed
	}
	dataURL = strings.TrimSpace(dataURL)
	if dataURL == "" {
		return ErrImageRefRequired
	}
	if len(dataURL) > s.maxImageRef {
		return fmt.Errorf("%w: %d bytes", ErrImageRefTooLarge, len(dataURL))
	}
	s.working = append(s.working, dataURL)
	return nil
}

// Remove drops the reference at position i.
func (s *ImageSession) Remove(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != sessionEditing {
		return ErrSessionClosed
	}
	if i < 0 || i >= len(s.working) {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, i)
	}
	s.working = append(s.working[:i], s.working[i+1:]...)
	return nil
}

// MoveUp swaps the reference at i with its predecessor. Moving the first
// entry is a no-op.
func (s *ImageSession) MoveUp(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != sessionEditing {
		return ErrSessionClosed
	}
	if i < 0 || i >= len(s.working) {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, i)
	}
	if i == 0 {
		return nil
	}
	s.working[i-1], s.working[i] = s.working[i], s.working[i-1]
	return nil
}

// MoveDown swaps the reference at i with its successor. Moving the last
// entry is a no-op.
func (s *ImageSession) MoveDown(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != sessionEditing {
		return ErrSessionClosed
	}
	if i < 0 || i >= len(s.working) {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, i)
	}
	if i == len(s.working)-1 {
		return nil
	}
	s.working[i], s.working[i+1] = s.working[i+1], s.working[i]
	return nil
}

// ResetWorking restores the working list to the record's images as they were
// when the session opened.
func (s *ImageSession) ResetWorking() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != sessionEditing {
		return ErrSessionClosed
	}
	s.working = append([]string(nil), s.original...)
	return nil
}

// Save commits the working list to the catalog. An empty list is rejected
// without touching the session state; a store failure leaves the session
// editing so the caller can retry.
func (s *ImageSession) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != sessionEditing {
		return ErrSessionClosed
	}
	if len(s.working) == 0 {
		return ErrEmptyWorkingList
	}
	if err := s.catalog.UpdateImages(ctx, s.productID, s.working); err != nil {
		return err
	}
	s.state = sessionSaved
	return nil
}

// Cancel discards the working list and closes the session.
func (s *ImageSession) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != sessionEditing {
		return ErrSessionClosed
	}
	s.state = sessionCancelled
	s.working = nil
	return nil
}
