package handlers

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/tendas-mozambique/api/internal/domain"
	"github.com/tendas-mozambique/api/internal/services"
)

func newPublicRouter(t *testing.T, catalog *stubCatalogService) chi.Router {
	t.Helper()
	handler := NewPublicHandlers(
		WithPublicCatalogService(catalog),
		WithPublicQueryService(newQueryService(t, catalog)),
	)
	return NewRouter(WithPublicRoutes(handler.Routes))
}

func samplePublicCatalog() []services.Product {
	return []services.Product{
		{ID: 1, Name: "Dome Tent", Image: "/a.jpg", Images: []string{"/a.jpg"}, Category: "Tents", Subcategories: []string{"Dome Tents"}},
		{ID: 2, Name: "Marquee", Image: "/b.jpg", Images: []string{"/b.jpg"}, Category: "Tents"},
		{ID: 3, Name: "Bakkie Cover", Image: "/c.jpg", Images: []string{"/c.jpg"}, Category: "Covers"},
	}
}

func TestListProducts(t *testing.T) {
	router := newPublicRouter(t, &stubCatalogService{products: samplePublicCatalog()})

	w := doRequest(router, http.MethodGet, "/api/v1/public/products", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var payload struct {
		Products []domain.Product `json:"products"`
	}
	decodeBody(t, w, &payload)
	if len(payload.Products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(payload.Products))
	}

	w = doRequest(router, http.MethodGet, "/api/v1/public/products?category=Covers", "")
	decodeBody(t, w, &payload)
	if len(payload.Products) != 1 || payload.Products[0].ID != 3 {
		t.Fatalf("category filter failed: %+v", payload.Products)
	}
}

func TestGetProductIncludesRelated(t *testing.T) {
	router := newPublicRouter(t, &stubCatalogService{products: samplePublicCatalog()})

	w := doRequest(router, http.MethodGet, "/api/v1/public/products/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var payload struct {
		Product domain.Product   `json:"product"`
		Related []domain.Product `json:"related"`
	}
	decodeBody(t, w, &payload)
	if payload.Product.Name != "Dome Tent" {
		t.Fatalf("unexpected product %+v", payload.Product)
	}
	if len(payload.Related) != 1 || payload.Related[0].ID != 2 {
		t.Fatalf("unexpected related products %+v", payload.Related)
	}
}

func TestGetProductErrors(t *testing.T) {
	router := newPublicRouter(t, &stubCatalogService{products: samplePublicCatalog()})

	if w := doRequest(router, http.MethodGet, "/api/v1/public/products/999", ""); w.Code != http.StatusNotFound {
		t.Fatalf("unknown product: expected 404, got %d", w.Code)
	}
	if w := doRequest(router, http.MethodGet, "/api/v1/public/products/abc", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id: expected 400, got %d", w.Code)
	}
}

func TestListCategories(t *testing.T) {
	router := newPublicRouter(t, &stubCatalogService{products: samplePublicCatalog()})

	w := doRequest(router, http.MethodGet, "/api/v1/public/categories", "")
	var payload struct {
		Categories []string `json:"categories"`
	}
	decodeBody(t, w, &payload)
	if len(payload.Categories) != 2 || payload.Categories[0] != "Tents" {
		t.Fatalf("unexpected categories %v", payload.Categories)
	}
}

func TestListProductsByType(t *testing.T) {
	router := newPublicRouter(t, &stubCatalogService{products: samplePublicCatalog()})

	w := doRequest(router, http.MethodGet, "/api/v1/public/types/dome-tents", "")
	var payload struct {
		Type     string           `json:"type"`
		Products []domain.Product `json:"products"`
	}
	decodeBody(t, w, &payload)
	if payload.Type != "Dome Tents" {
		t.Fatalf("expected display name, got %q", payload.Type)
	}
	if len(payload.Products) != 1 || payload.Products[0].ID != 1 {
		t.Fatalf("type filter failed: %+v", payload.Products)
	}
}

func TestGetTranslations(t *testing.T) {
	router := newPublicRouter(t, &stubCatalogService{language: "pt"})

	w := doRequest(router, http.MethodGet, "/api/v1/public/translations?lang=en", "")
	var payload struct {
		Language     string            `json:"language"`
		Translations map[string]string `json:"translations"`
	}
	decodeBody(t, w, &payload)
	if payload.Language != "en" || payload.Translations["nav.home"] != "Home" {
		t.Fatalf("explicit lang failed: %+v", payload.Language)
	}

	// Without a query parameter the persisted preference wins.
	w = doRequest(router, http.MethodGet, "/api/v1/public/translations", "")
	decodeBody(t, w, &payload)
	if payload.Language != "pt" || payload.Translations["nav.home"] != "Início" {
		t.Fatalf("persisted preference failed: %q", payload.Language)
	}
}
