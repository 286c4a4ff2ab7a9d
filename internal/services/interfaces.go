package services

import (
	"context"

	"github.com/tendas-mozambique/api/internal/domain"
)

// Type aliases expose domain models to the services package without reversing dependency direction.
type (
	Product = domain.Product
)

// CatalogService owns the persisted product collection and the site language
// preference. Reads never fail: a missing or unreadable store yields the
// built-in default catalog.
type CatalogService interface {
	// Load returns the current collection, falling back to the defaults when
	// nothing valid is stored.
	Load(ctx context.Context) []Product
	// Save validates and persists a full replacement collection.
	Save(ctx context.Context, products []Product) error
	// UpdateImages replaces one product's image list and re-derives its
	// primary image.
	UpdateImages(ctx context.Context, productID int, images []string) error
	// Reset discards the stored collection and persists the defaults.
	Reset(ctx context.Context) ([]Product, error)
	// Revision reports a counter bumped on every successful write.
	Revision() uint64
	// Language returns the persisted UI language, or the configured default.
	Language(ctx context.Context) string
	// SetLanguage persists the UI language preference.
	SetLanguage(ctx context.Context, code string) error
}

// CatalogQueryService answers read-side questions over a loaded collection.
type CatalogQueryService interface {
	Products(ctx context.Context, category string) []Product
	Product(ctx context.Context, productID int) (Product, error)
	Categories(ctx context.Context) []string
	ProductsByType(ctx context.Context, typeSlug string) []Product
	Related(ctx context.Context, productID int) ([]Product, error)
}

// InquiryService accepts rental inquiries and lists the rentable equipment.
type InquiryService interface {
	Submit(ctx context.Context, inquiry RentalInquiry) (InquiryReceipt, error)
	AvailableItems(ctx context.Context) []RentalItem
}
