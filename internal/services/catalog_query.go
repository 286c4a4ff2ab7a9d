package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tendas-mozambique/api/internal/platform/textutil"
)

// ErrCatalogServiceMissing indicates the catalog dependency is absent.
var ErrCatalogServiceMissing = errors.New("catalog query: catalog service is not configured")

const defaultRelatedLimit = 3

// CatalogQueryDeps bundles constructor inputs for the catalog query service.
type CatalogQueryDeps struct {
	Catalog CatalogService
	// RelatedLimit caps the related-products result; zero applies the default.
	RelatedLimit int
}

type catalogQueryService struct {
	catalog      CatalogService
	relatedLimit int
}

// NewCatalogQueryService constructs the read-side query service.
func NewCatalogQueryService(deps CatalogQueryDeps) (CatalogQueryService, error) {
	if deps.Catalog == nil {
		return nil, ErrCatalogServiceMissing
	}
	limit := deps.RelatedLimit
	if limit <= 0 {
		limit = defaultRelatedLimit
	}
	return &catalogQueryService{catalog: deps.Catalog, relatedLimit: limit}, nil
}

// Products returns the collection filtered by category. An empty or "all"
// category returns everything; matching ignores case.
func (s *catalogQueryService) Products(ctx context.Context, category string) []Product {
	products := s.catalog.Load(ctx)
	want := strings.ToLower(strings.TrimSpace(category))
	if want == "" || want == "all" {
		return products
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.ToLower(strings.TrimSpace(p.Category)) == want {
			out = append(out, p)
		}
	}
	return out
}

func (s *catalogQueryService) Product(ctx context.Context, productID int) (Product, error) {
	for _, p := range s.catalog.Load(ctx) {
		if p.ID == productID {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, productID)
}

// Categories returns the distinct category names in first-seen order.
func (s *catalogQueryService) Categories(ctx context.Context) []string {
	products := s.catalog.Load(ctx)
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		name := strings.TrimSpace(p.Category)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}

// ProductsByType matches products whose subcategories contain the phrase
// decoded from a hyphenated slug ("dome-tents" matches "Dome Tents").
func (s *catalogQueryService) ProductsByType(ctx context.Context, typeSlug string) []Product {
	phrase := textutil.DecodeSlug(typeSlug)
	out := []Product{}
	if phrase == "" {
		return out
	}
	for _, p := range s.catalog.Load(ctx) {
		if p.HasSubcategory(phrase) {
			out = append(out, p)
		}
	}
	return out
}

// Related returns up to the configured limit of other products sharing the
// reference product's category.
func (s *catalogQueryService) Related(ctx context.Context, productID int) ([]Product, error) {
	products := s.catalog.Load(ctx)

	var ref *Product
	for i := range products {
		if products[i].ID == productID {
			ref = &products[i]
			break
		}
	}
	if ref == nil {
		return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, productID)
	}

	want := strings.ToLower(strings.TrimSpace(ref.Category))
	out := make([]Product, 0, s.relatedLimit)
	for _, p := range products {
		if p.ID == productID {
			continue
		}
		if strings.ToLower(strings.TrimSpace(p.Category)) != want {
			continue
		}
		out = append(out, p)
		if len(out) == s.relatedLimit {
			break
		}
	}
	return out, nil
}
