package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/tendas-mozambique/api/internal/domain"
	"github.com/tendas-mozambique/api/internal/services"
)

// stubCatalogService is an in-memory CatalogService for handler tests.
type stubCatalogService struct {
	products  []services.Product
	language  string
	saveErr   error
	updateErr error
	revision  atomic.Uint64
}

func (s *stubCatalogService) Load(ctx context.Context) []services.Product {
	if s.products == nil {
		return domain.DefaultCatalog()
	}
	return domain.CloneCatalog(s.products)
}

func (s *stubCatalogService) Save(ctx context.Context, products []services.Product) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.products = domain.CloneCatalog(products)
	s.revision.Add(1)
	return nil
}

func (s *stubCatalogService) UpdateImages(ctx context.Context, productID int, images []string) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	refs := domain.NormalizeImageRefs(images)
	if len(refs) == 0 {
		return services.ErrNoValidImages
	}
	products := s.Load(ctx)
	for i := range products {
		if products[i].ID == productID {
			products[i].Images = refs
			products[i].Image = refs[0]
			s.products = products
			s.revision.Add(1)
			return nil
		}
	}
	return services.ErrProductNotFound
}

func (s *stubCatalogService) Reset(ctx context.Context) ([]services.Product, error) {
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	s.products = domain.DefaultCatalog()
	s.revision.Add(1)
	return domain.DefaultCatalog(), nil
}

func (s *stubCatalogService) Revision() uint64 {
	return s.revision.Load()
}

func (s *stubCatalogService) Language(ctx context.Context) string {
	if s.language == "" {
		return domain.LanguageEnglish
	}
	return s.language
}

func (s *stubCatalogService) SetLanguage(ctx context.Context, code string) error {
	if code != domain.LanguageEnglish && code != domain.LanguagePortuguese {
		return services.ErrUnsupportedLanguage
	}
	s.language = code
	return nil
}

// stubInquiryService records submissions for handler tests.
type stubInquiryService struct {
	receipt   services.InquiryReceipt
	submitErr error
	submitted []services.RentalInquiry
}

func (s *stubInquiryService) Submit(ctx context.Context, inquiry services.RentalInquiry) (services.InquiryReceipt, error) {
	if s.submitErr != nil {
		return services.InquiryReceipt{}, s.submitErr
	}
	s.submitted = append(s.submitted, inquiry)
	return s.receipt, nil
}

func (s *stubInquiryService) AvailableItems(ctx context.Context) []services.RentalItem {
	return []services.RentalItem{
		{ID: 1, Name: "18x9 200man Marquee tent", DailyRate: "$350", Available: true},
		{ID: 2, Name: "5x5 event tents", DailyRate: "$120", Available: true},
	}
}

func newQueryService(t *testing.T, catalog services.CatalogService) services.CatalogQueryService {
	t.Helper()
	query, err := services.NewCatalogQueryService(services.CatalogQueryDeps{Catalog: catalog})
	if err != nil {
		t.Fatalf("NewCatalogQueryService: %v", err)
	}
	return query
}

func doRequest(router chi.Router, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, w.Body.String())
	}
}
