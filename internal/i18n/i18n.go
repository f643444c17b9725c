// Package i18n provides string lookup for UI labels.
//
// Catalogs are flat key/value YAML files compiled into the binary. Lookup
// falls back to English, and a key missing from every catalog renders as
// the key itself so a forgotten translation is visible instead of blank.
package i18n

import (
	"embed"
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

const fallbackLang = "en"

// Translator resolves message keys for one active language.
type Translator struct {
	lang     string
	catalog  map[string]string
	fallback map[string]string
}

// New loads the catalog for lang. Unknown languages fall back to English
// entirely.
func New(lang string) *Translator {
	fallback := loadCatalog(fallbackLang)
	catalog := fallback
	if lang != "" && lang != fallbackLang {
		if c := loadCatalog(lang); c != nil {
			catalog = c
		}
	}
	return &Translator{lang: lang, catalog: catalog, fallback: fallback}
}

// Lang returns the active language code.
func (t *Translator) Lang() string {
	return t.lang
}

// Languages lists the available catalog languages.
func Languages() []string {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return []string{fallbackLang}
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		langs = append(langs, name[:len(name)-len(path.Ext(name))])
	}
	return langs
}

// T resolves a message key, formatting args printf-style when given.
func (t *Translator) T(key string, args ...any) string {
	msg, ok := t.catalog[key]
	if !ok {
		msg, ok = t.fallback[key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

func loadCatalog(lang string) map[string]string {
	data, err := localeFS.ReadFile("locales/" + lang + ".yaml")
	if err != nil {
		return nil
	}
	var catalog map[string]string
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil
	}
	return catalog
}
