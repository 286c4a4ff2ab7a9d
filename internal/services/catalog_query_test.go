package services

import (
	"context"
	"errors"
	"testing"

	"github.com/tendas-mozambique/api/internal/domain"
)

func newTestQueryService(t *testing.T, products []domain.Product, relatedLimit int) CatalogQueryService {
	t.Helper()
	catalog := newTestCatalogService(t, &stubCatalogRepository{}, nil)
	if products != nil {
		if err := catalog.Save(context.Background(), products); err != nil {
			t.Fatalf("seed save: %v", err)
		}
	}
	query, err := NewCatalogQueryService(CatalogQueryDeps{Catalog: catalog, RelatedLimit: relatedLimit})
	if err != nil {
		t.Fatalf("NewCatalogQueryService: %v", err)
	}
	return query
}

func TestProductsFiltersByCategory(t *testing.T) {
	ctx := context.Background()
	query := newTestQueryService(t, []domain.Product{
		{ID: 1, Name: "Dome Tent", Images: []string{"/a.jpg"}, Category: "Tents"},
		{ID: 2, Name: "Bakkie Cover", Images: []string{"/b.jpg"}, Category: "Covers"},
		{ID: 3, Name: "Marquee", Images: []string{"/c.jpg"}, Category: "Tents"},
	}, 0)

	if got := query.Products(ctx, ""); len(got) != 3 {
		t.Fatalf("empty category should return all, got %d", len(got))
	}
	if got := query.Products(ctx, "all"); len(got) != 3 {
		t.Fatalf("'all' should return everything, got %d", len(got))
	}
	got := query.Products(ctx, " tents ")
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("case-insensitive category filter failed: %+v", got)
	}
	if got := query.Products(ctx, "unknown"); len(got) != 0 {
		t.Fatalf("unknown category should be empty, got %+v", got)
	}
}

func TestProductLookup(t *testing.T) {
	ctx := context.Background()
	query := newTestQueryService(t, nil, 0)

	p, err := query.Product(ctx, 7)
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	if p.ID != 7 {
		t.Fatalf("expected id 7, got %d", p.ID)
	}
	if _, err := query.Product(ctx, 9999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCategoriesAreDistinctInFirstSeenOrder(t *testing.T) {
	ctx := context.Background()
	query := newTestQueryService(t, []domain.Product{
		{ID: 1, Name: "A", Images: []string{"/a.jpg"}, Category: "Tents"},
		{ID: 2, Name: "B", Images: []string{"/b.jpg"}, Category: "Covers"},
		{ID: 3, Name: "C", Images: []string{"/c.jpg"}, Category: "tents"},
		{ID: 4, Name: "D", Images: []string{"/d.jpg"}, Category: ""},
	}, 0)

	got := query.Categories(ctx)
	if len(got) != 2 || got[0] != "Tents" || got[1] != "Covers" {
		t.Fatalf("unexpected categories %v", got)
	}
}

func TestProductsByTypeDecodesSlug(t *testing.T) {
	ctx := context.Background()
	query := newTestQueryService(t, []domain.Product{
		{ID: 1, Name: "2.5m Dome", Images: []string{"/a.jpg"}, Category: "Tents", Subcategories: []string{"Dome Tents", "Camping"}},
		{ID: 2, Name: "Marquee", Images: []string{"/b.jpg"}, Category: "Tents", Subcategories: []string{"Event Tents"}},
		{ID: 3, Name: "Bakkie Cover", Images: []string{"/c.jpg"}, Category: "Covers"},
	}, 0)

	got := query.ProductsByType(ctx, "dome-tents")
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("slug match failed: %+v", got)
	}
	if got := query.ProductsByType(ctx, "no-such-type"); len(got) != 0 {
		t.Fatalf("unknown type should be empty, got %+v", got)
	}
	if got := query.ProductsByType(ctx, ""); len(got) != 0 {
		t.Fatalf("empty slug should be empty, got %+v", got)
	}
}

func TestRelatedSharesCategoryAndExcludesSelf(t *testing.T) {
	ctx := context.Background()
	query := newTestQueryService(t, []domain.Product{
		{ID: 1, Name: "A", Images: []string{"/a.jpg"}, Category: "Covers"},
		{ID: 2, Name: "B", Images: []string{"/b.jpg"}, Category: "Covers"},
		{ID: 3, Name: "C", Images: []string{"/c.jpg"}, Category: "Covers"},
		{ID: 4, Name: "D", Images: []string{"/d.jpg"}, Category: "Covers"},
		{ID: 5, Name: "E", Images: []string{"/e.jpg"}, Category: "Covers"},
		{ID: 6, Name: "F", Images: []string{"/f.jpg"}, Category: "Tents"},
	}, 3)

	got, err := query.Related(ctx, 2)
	if err != nil {
		t.Fatalf("Related: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 related products, got %d", len(got))
	}
	for _, p := range got {
		if p.ID == 2 {
			t.Fatalf("related list contains the reference product")
		}
		if p.Category != "Covers" {
			t.Fatalf("related product from wrong category: %+v", p)
		}
	}

	if _, err := query.Related(ctx, 9999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
