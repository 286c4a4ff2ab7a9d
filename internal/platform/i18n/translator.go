// Package i18n resolves display strings for the two site languages. Lookups
// fall back to the English table and finally to the literal key, so a
// missing translation never breaks rendering.
package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/tendas-mozambique/api/internal/domain"
)

var matcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the matcher fallback
	language.Portuguese,
})

// Translator resolves keys against one language table.
type Translator struct {
	lang string
}

// ForLanguage returns a translator for the given code, falling back to
// English for unknown codes.
func ForLanguage(code string) Translator {
	if !IsSupported(code) {
		return Translator{lang: domain.LanguageEnglish}
	}
	return Translator{lang: strings.ToLower(strings.TrimSpace(code))}
}

// Language reports the resolved language code.
func (t Translator) Language() string {
	if t.lang == "" {
		return domain.LanguageEnglish
	}
	return t.lang
}

// T resolves a translation key: language table, then English, then the key
// itself.
func (t Translator) T(key string) string {
	if table, ok := tables[t.Language()]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}
	if value, ok := tables[domain.LanguageEnglish][key]; ok {
		return value
	}
	return key
}

// IsSupported reports whether code names one of the site languages.
func IsSupported(code string) bool {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case domain.LanguageEnglish, domain.LanguagePortuguese:
		return true
	}
	return false
}

// Negotiate picks a language from an explicit query value, then the
// Accept-Language header, then the provided fallback.
func Negotiate(queryLang, acceptHeader, fallback string) string {
	if IsSupported(queryLang) {
		return strings.ToLower(strings.TrimSpace(queryLang))
	}
	if strings.TrimSpace(acceptHeader) != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptHeader); err == nil && len(tags) > 0 {
			if tag, _, conf := matcher.Match(tags...); conf > language.No {
				base, _ := tag.Base()
				if IsSupported(base.String()) {
					return base.String()
				}
			}
		}
	}
	if IsSupported(fallback) {
		return strings.ToLower(strings.TrimSpace(fallback))
	}
	return domain.LanguageEnglish
}

// Table returns a copy of the full key/value table for a language, for
// clients that hydrate their own UI.
func Table(code string) map[string]string {
	lang := domain.LanguageEnglish
	if IsSupported(code) {
		lang = strings.ToLower(strings.TrimSpace(code))
	}
	source := tables[lang]
	out := make(map[string]string, len(source))
	for key, value := range source {
		out[key] = value
	}
	return out
}
