package i18n

import "testing"

func TestTranslatorResolvesLanguageTable(t *testing.T) {
	pt := ForLanguage("pt")
	if got := pt.T("nav.home"); got != "Início" {
		t.Fatalf("pt nav.home: got %q", got)
	}
	en := ForLanguage("en")
	if got := en.T("nav.home"); got != "Home" {
		t.Fatalf("en nav.home: got %q", got)
	}
}

func TestTranslatorFallsBackToEnglishThenKey(t *testing.T) {
	unknown := ForLanguage("fr")
	if unknown.Language() != "en" {
		t.Fatalf("unsupported code should fall back to en, got %q", unknown.Language())
	}
	if got := unknown.T("products.title"); got != "Premium Outdoor Products" {
		t.Fatalf("fallback table lookup: got %q", got)
	}
	if got := unknown.T("no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key should echo the key, got %q", got)
	}
}

func TestNegotiate(t *testing.T) {
	if got := Negotiate("pt", "", "en"); got != "pt" {
		t.Fatalf("query wins: got %q", got)
	}
	if got := Negotiate("", "pt-BR,pt;q=0.9,en;q=0.5", "en"); got != "pt" {
		t.Fatalf("accept header match: got %q", got)
	}
	if got := Negotiate("", "fr-FR,fr;q=0.9", "pt"); got != "pt" {
		t.Fatalf("fallback when header unmatched: got %q", got)
	}
	if got := Negotiate("", "", ""); got != "en" {
		t.Fatalf("default language: got %q", got)
	}
}

func TestTableReturnsCopy(t *testing.T) {
	table := Table("en")
	if len(table) == 0 {
		t.Fatalf("expected non-empty table")
	}
	table["nav.home"] = "mutated"
	if got := ForLanguage("en").T("nav.home"); got != "Home" {
		t.Fatalf("table copy aliased internal state: got %q", got)
	}
}
