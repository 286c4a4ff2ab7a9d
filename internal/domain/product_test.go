package domain

import "testing"

func TestDefaultCatalogShape(t *testing.T) {
	catalog := DefaultCatalog()
	if len(catalog) != 10 {
		t.Fatalf("expected 10 seed records, got %d", len(catalog))
	}

	seen := make(map[int]struct{}, len(catalog))
	for _, product := range catalog {
		if _, dup := seen[product.ID]; dup {
			t.Fatalf("duplicate product id %d", product.ID)
		}
		seen[product.ID] = struct{}{}

		if len(product.Images) == 0 {
			t.Fatalf("product %d has no images", product.ID)
		}
		if product.Image != product.Images[0] {
			t.Fatalf("product %d primary image %q does not match images[0] %q", product.ID, product.Image, product.Images[0])
		}
		if product.Category == "" {
			t.Fatalf("product %d has empty category", product.ID)
		}
	}
}

func TestDefaultCatalogReturnsFreshCopies(t *testing.T) {
	first := DefaultCatalog()
	first[0].Images[0] = "mutated"
	first[0].Name = "mutated"

	second := DefaultCatalog()
	if second[0].Images[0] == "mutated" {
		t.Fatalf("seed images aliased between calls")
	}
	if second[0].Name == "mutated" {
		t.Fatalf("seed record aliased between calls")
	}
}

func TestProductImageListFallsBackToPrimary(t *testing.T) {
	p := Product{Image: "/images/products/tents/main.jpg"}
	list := p.ImageList()
	if len(list) != 1 || list[0] != p.Image {
		t.Fatalf("expected single-element fallback, got %v", list)
	}

	p.Images = []string{"a.jpg", "b.jpg"}
	list = p.ImageList()
	if len(list) != 2 || list[0] != "a.jpg" {
		t.Fatalf("expected images copy, got %v", list)
	}
	list[0] = "mutated"
	if p.Images[0] != "a.jpg" {
		t.Fatalf("ImageList aliased the record's slice")
	}
}

func TestProductHasSubcategory(t *testing.T) {
	p := Product{Subcategories: []string{"Bakkie Covers", "Seat Covers"}}
	if !p.HasSubcategory("bakkie covers") {
		t.Fatalf("expected case-insensitive subcategory match")
	}
	if !p.HasSubcategory("  Seat Covers  ") {
		t.Fatalf("expected whitespace-tolerant match")
	}
	if p.HasSubcategory("") {
		t.Fatalf("blank phrase must not match")
	}
	if p.HasSubcategory("Tents") {
		t.Fatalf("unexpected match for unrelated phrase")
	}
}

func TestNormalizeImageRefs(t *testing.T) {
	refs := NormalizeImageRefs([]string{" main.jpg ", "", "   ", "1.jpg"})
	if len(refs) != 2 || refs[0] != "main.jpg" || refs[1] != "1.jpg" {
		t.Fatalf("unexpected normalized refs %v", refs)
	}

	if refs := NormalizeImageRefs(nil); len(refs) != 0 {
		t.Fatalf("expected empty result for nil input, got %v", refs)
	}
}
