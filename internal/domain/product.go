package domain

import "strings"

// Language codes accepted for the persisted UI language preference.
const (
	LanguageEnglish    = "en"
	LanguagePortuguese = "pt"
)

// Product is a single catalog entry representing one sellable or rentable item.
//
// Image is the primary image reference and must equal Images[0] whenever
// Images is non-empty; the catalog service maintains that invariant on every
// write. Capacity, Weight and Seasonality are display-only and optional.
type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	Subcategories []string `json:"subcategories,omitempty"`
	Capacity      string   `json:"capacity,omitempty"`
	Weight        string   `json:"weight,omitempty"`
	Seasonality   string   `json:"seasonality,omitempty"`
}

// Clone returns a deep copy so callers can mutate slices without aliasing
// the source record.
func (p Product) Clone() Product {
	out := p
	if p.Images != nil {
		out.Images = make([]string, len(p.Images))
		copy(out.Images, p.Images)
	}
	if p.Subcategories != nil {
		out.Subcategories = make([]string, len(p.Subcategories))
		copy(out.Subcategories, p.Subcategories)
	}
	return out
}

// ImageList returns the record's image references, falling back to a
// single-element list built from the primary image when Images is absent.
func (p Product) ImageList() []string {
	if len(p.Images) > 0 {
		out := make([]string, len(p.Images))
		copy(out, p.Images)
		return out
	}
	if strings.TrimSpace(p.Image) == "" {
		return nil
	}
	return []string{p.Image}
}

// HasSubcategory reports whether any subcategory equals the phrase,
// ignoring case and surrounding whitespace.
func (p Product) HasSubcategory(phrase string) bool {
	want := strings.ToLower(strings.TrimSpace(phrase))
	if want == "" {
		return false
	}
	for _, sub := range p.Subcategories {
		if strings.ToLower(strings.TrimSpace(sub)) == want {
			return true
		}
	}
	return false
}

// NormalizeImageRefs trims the provided references and drops blank entries,
// preserving order.
func NormalizeImageRefs(refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		trimmed := strings.TrimSpace(ref)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// CloneCatalog deep-copies a collection.
func CloneCatalog(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}
