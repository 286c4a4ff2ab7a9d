package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tendas-mozambique/api/internal/platform/httpx"
	"github.com/tendas-mozambique/api/internal/platform/i18n"
	"github.com/tendas-mozambique/api/internal/platform/textutil"
	"github.com/tendas-mozambique/api/internal/services"
)

// PublicHandlers exposes the unauthenticated catalog endpoints.
type PublicHandlers struct {
	catalog services.CatalogService
	query   services.CatalogQueryService
}

// PublicOption customises construction of PublicHandlers.
type PublicOption func(*PublicHandlers)

// WithPublicCatalogService injects the catalog service dependency.
func WithPublicCatalogService(svc services.CatalogService) PublicOption {
	return func(h *PublicHandlers) {
		h.catalog = svc
	}
}

// WithPublicQueryService injects the catalog query dependency.
func WithPublicQueryService(svc services.CatalogQueryService) PublicOption {
	return func(h *PublicHandlers) {
		h.query = svc
	}
}

// NewPublicHandlers constructs handlers for the public catalog endpoints.
func NewPublicHandlers(opts ...PublicOption) *PublicHandlers {
	handler := &PublicHandlers{}
	for _, opt := range opts {
		if opt != nil {
			opt(handler)
		}
	}
	return handler
}

// Routes registers public endpoints against the provided router.
func (h *PublicHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/products", h.listProducts)
	r.Get("/products/{productID}", h.getProduct)
	r.Get("/categories", h.listCategories)
	r.Get("/types/{typeSlug}", h.listProductsByType)
	r.Get("/translations", h.getTranslations)
}

func (h *PublicHandlers) listProducts(w http.ResponseWriter, r *http.Request) {
	if h.query == nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("catalog_unavailable", "catalog is unavailable", http.StatusServiceUnavailable))
		return
	}
	category := r.URL.Query().Get("category")
	products := h.query.Products(r.Context(), category)
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *PublicHandlers) getProduct(w http.ResponseWriter, r *http.Request) {
	if h.query == nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("catalog_unavailable", "catalog is unavailable", http.StatusServiceUnavailable))
		return
	}
	productID, err := parseProductID(r)
	if err != nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("invalid_product_id", err.Error(), http.StatusBadRequest))
		return
	}

	product, err := h.query.Product(r.Context(), productID)
	if err != nil {
		writeCatalogError(r, w, err)
		return
	}
	related, err := h.query.Related(r.Context(), productID)
	if err != nil {
		writeCatalogError(r, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"product": product,
		"related": related,
	})
}

func (h *PublicHandlers) listCategories(w http.ResponseWriter, r *http.Request) {
	if h.query == nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("catalog_unavailable", "catalog is unavailable", http.StatusServiceUnavailable))
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"categories": h.query.Categories(r.Context())})
}

func (h *PublicHandlers) listProductsByType(w http.ResponseWriter, r *http.Request) {
	if h.query == nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("catalog_unavailable", "catalog is unavailable", http.StatusServiceUnavailable))
		return
	}
	typeSlug := strings.TrimSpace(chi.URLParam(r, "typeSlug"))
	if typeSlug == "" {
		httpx.WriteError(r.Context(), w, httpx.NewError("invalid_type", "type slug is required", http.StatusBadRequest))
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"type":     textutil.TitleCase(typeSlug),
		"products": h.query.ProductsByType(r.Context(), typeSlug),
	})
}

// getTranslations negotiates a language from the lang query parameter, the
// Accept-Language header, and the persisted site preference, in that order.
func (h *PublicHandlers) getTranslations(w http.ResponseWriter, r *http.Request) {
	fallback := ""
	if h.catalog != nil {
		fallback = h.catalog.Language(r.Context())
	}
	lang := i18n.Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), fallback)
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"language":     lang,
		"translations": i18n.Table(lang),
	})
}

func parseProductID(r *http.Request) (int, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "productID"))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.New("product id must be a positive integer")
	}
	return id, nil
}

// writeCatalogError maps service sentinels onto the JSON error envelope.
func writeCatalogError(r *http.Request, w http.ResponseWriter, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		httpx.WriteError(ctx, w, httpx.NewError("product_not_found", "product not found", http.StatusNotFound))
	case errors.Is(err, services.ErrNoValidImages):
		httpx.WriteError(ctx, w, httpx.NewError("no_valid_images", "at least one non-blank image reference is required", http.StatusUnprocessableEntity))
	case errors.Is(err, services.ErrImageRefTooLarge):
		httpx.WriteError(ctx, w, httpx.NewError("image_ref_too_large", "image reference exceeds the size limit", http.StatusRequestEntityTooLarge))
	case errors.Is(err, services.ErrInvalidCollection):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_collection", err.Error(), http.StatusUnprocessableEntity))
	case errors.Is(err, services.ErrUnsupportedLanguage):
		httpx.WriteError(ctx, w, httpx.NewError("unsupported_language", "language must be en or pt", http.StatusUnprocessableEntity))
	case errors.Is(err, services.ErrCatalogStoreUnavailable):
		httpx.WriteError(ctx, w, httpx.NewError("store_unavailable", "catalog store is unavailable", http.StatusServiceUnavailable))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("internal_error", "unexpected error", http.StatusInternalServerError))
	}
}
