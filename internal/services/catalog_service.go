package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/tendas-mozambique/api/internal/domain"
	"github.com/tendas-mozambique/api/internal/platform/requestctx"
	"github.com/tendas-mozambique/api/internal/repositories"
	"go.uber.org/zap"
)

var (
	// ErrCatalogRepositoryMissing indicates the repository dependency is absent.
	ErrCatalogRepositoryMissing = errors.New("catalog service: repository is not configured")
	// ErrInvalidCollection indicates a replacement collection failed validation.
	ErrInvalidCollection = errors.New("catalog service: invalid collection")
	// ErrProductNotFound indicates the referenced product id is not in the collection.
	ErrProductNotFound = errors.New("catalog service: product not found")
	// ErrNoValidImages indicates an image update contained only blank references.
	ErrNoValidImages = errors.New("catalog service: no valid image references")
	// ErrImageRefTooLarge indicates a single image reference exceeds the configured cap.
	ErrImageRefTooLarge = errors.New("catalog service: image reference too large")
	// ErrUnsupportedLanguage indicates a language code outside the supported set.
	ErrUnsupportedLanguage = errors.New("catalog service: unsupported language")
	// ErrCatalogStoreUnavailable indicates the underlying store rejected a write.
	ErrCatalogStoreUnavailable = errors.New("catalog service: store unavailable")
)

// CatalogServiceDeps bundles constructor inputs for the catalog service.
type CatalogServiceDeps struct {
	Repository repositories.CatalogRepository
	Events     CatalogEventPublisher
	// MaxImageRefBytes caps a single image reference; zero applies the default.
	MaxImageRefBytes int
	// DefaultLanguage is returned when no preference is stored; empty means English.
	DefaultLanguage string
}

const defaultMaxImageRefBytes = 256 << 10

type catalogService struct {
	repo            repositories.CatalogRepository
	events          CatalogEventPublisher
	maxImageRef     int
	defaultLanguage string
	revision        atomic.Uint64
}

// NewCatalogService constructs the catalog service with the supplied dependencies.
func NewCatalogService(deps CatalogServiceDeps) (CatalogService, error) {
	if deps.Repository == nil {
		return nil, ErrCatalogRepositoryMissing
	}
	maxImageRef := deps.MaxImageRefBytes
	if maxImageRef <= 0 {
		maxImageRef = defaultMaxImageRefBytes
	}
	lang := strings.ToLower(strings.TrimSpace(deps.DefaultLanguage))
	if lang != domain.LanguageEnglish && lang != domain.LanguagePortuguese {
		lang = domain.LanguageEnglish
	}
	return &catalogService{
		repo:            deps.Repository,
		events:          deps.Events,
		maxImageRef:     maxImageRef,
		defaultLanguage: lang,
	}, nil
}

// Load never fails: a missing, unreadable, or corrupt stored collection is
// replaced by the built-in defaults so the catalog always renders.
func (s *catalogService) Load(ctx context.Context) []Product {
	blob, err := s.repo.LoadCollection(ctx)
	if err != nil {
		if !repositories.IsNotFound(err) {
			requestctx.Logger(ctx).Warn("catalog load failed, serving defaults", zap.Error(err))
		}
		return domain.DefaultCatalog()
	}

	var products []Product
	if err := json.Unmarshal(blob, &products); err != nil {
		requestctx.Logger(ctx).Warn("stored catalog is corrupt, serving defaults", zap.Error(err))
		return domain.DefaultCatalog()
	}
	if len(products) == 0 {
		return domain.DefaultCatalog()
	}
	return products
}

func (s *catalogService) Save(ctx context.Context, products []Product) error {
	normalized, err := s.normalizeCollection(products)
	if err != nil {
		return err
	}
	return s.persist(ctx, normalized, ChangeReasonSave)
}

func (s *catalogService) UpdateImages(ctx context.Context, productID int, images []string) error {
	refs := domain.NormalizeImageRefs(images)
	if len(refs) == 0 {
		return ErrNoValidImages
	}
	for _, ref := range refs {
		if len(ref) > s.maxImageRef {
			return fmt.Errorf("%w: %d bytes", ErrImageRefTooLarge, len(ref))
		}
	}

	products := s.Load(ctx)
	found := false
	for i := range products {
		if products[i].ID != productID {
			continue
		}
		products[i].Images = refs
		products[i].Image = refs[0]
		found = true
		break
	}
	if !found {
		return fmt.Errorf("%w: id %d", ErrProductNotFound, productID)
	}
	return s.persist(ctx, products, ChangeReasonUpdateImages)
}

func (s *catalogService) Reset(ctx context.Context) ([]Product, error) {
	defaults := domain.DefaultCatalog()
	if err := s.persist(ctx, defaults, ChangeReasonReset); err != nil {
		return nil, err
	}
	return defaults, nil
}

func (s *catalogService) Revision() uint64 {
	return s.revision.Load()
}

func (s *catalogService) Language(ctx context.Context) string {
	code, err := s.repo.Language(ctx)
	if err != nil {
		if !repositories.IsNotFound(err) {
			requestctx.Logger(ctx).Warn("language load failed, using default", zap.Error(err))
		}
		return s.defaultLanguage
	}
	code = strings.ToLower(strings.TrimSpace(code))
	if code != domain.LanguageEnglish && code != domain.LanguagePortuguese {
		return s.defaultLanguage
	}
	return code
}

func (s *catalogService) SetLanguage(ctx context.Context, code string) error {
	code = strings.ToLower(strings.TrimSpace(code))
	if code != domain.LanguageEnglish && code != domain.LanguagePortuguese {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	if err := s.repo.SaveLanguage(ctx, code); err != nil {
		return fmt.Errorf("%w: %v", ErrCatalogStoreUnavailable, err)
	}
	return nil
}

// normalizeCollection trims image references, re-derives each primary image,
// and validates the structural invariants of a replacement collection. An
// empty collection is rejected: Load reads an empty blob as "no data yet"
// and would resurrect the defaults, so accepting one would break the
// save-then-load round trip.
func (s *catalogService) normalizeCollection(products []Product) ([]Product, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: collection is empty", ErrInvalidCollection)
	}
	out := domain.CloneCatalog(products)
	seen := make(map[int]struct{}, len(out))
	for i := range out {
		p := &out[i]
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidCollection, p.ID)
		}
		seen[p.ID] = struct{}{}

		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("%w: product %d has no name", ErrInvalidCollection, p.ID)
		}
		p.Images = domain.NormalizeImageRefs(p.ImageList())
		if len(p.Images) == 0 {
			return nil, fmt.Errorf("%w: product %d has no images", ErrInvalidCollection, p.ID)
		}
		for _, ref := range p.Images {
			if len(ref) > s.maxImageRef {
				return nil, fmt.Errorf("%w: product %d", ErrImageRefTooLarge, p.ID)
			}
		}
		p.Image = p.Images[0]
	}
	return out, nil
}

func (s *catalogService) persist(ctx context.Context, products []Product, reason string) error {
	blob, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCollection, err)
	}
	if err := s.repo.SaveCollection(ctx, blob); err != nil {
		return fmt.Errorf("%w: %v", ErrCatalogStoreUnavailable, err)
	}
	rev := s.revision.Add(1)
	if s.events != nil {
		s.events.PublishCatalogChanged(CatalogChange{Revision: rev, Reason: reason})
	}
	return nil
}
