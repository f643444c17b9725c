package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnglishLookup(t *testing.T) {
	tr := New("en")
	assert.Equal(t, "Memories", tr.T("tab.memories"))
}

func TestGermanLookup(t *testing.T) {
	tr := New("de")
	assert.Equal(t, "Erinnerungen", tr.T("tab.memories"))
}

func TestFormattingArgs(t *testing.T) {
	tr := New("en")
	assert.Equal(t, "42 memories", tr.T("stats.memories", 42))
	assert.Equal(t, "attempt 2 of 5", tr.T("loading.attempt", 2, 5))
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	tr := New("xx")
	assert.Equal(t, "Memories", tr.T("tab.memories"))
}

func TestMissingKeyReturnsKey(t *testing.T) {
	tr := New("en")
	assert.Equal(t, "no.such.key", tr.T("no.such.key"))
}

func TestMissingKeyInCatalogFallsBackToEnglish(t *testing.T) {
	// Every key present in en must resolve even when the active catalog
	// drops it; guard the contract with a synthetic translator.
	tr := New("de")
	delete(tr.catalog, "tab.bookmarks")
	assert.Equal(t, "Bookmarks", tr.T("tab.bookmarks"))
}

func TestLanguagesIncludesShippedCatalogs(t *testing.T) {
	langs := Languages()
	assert.Contains(t, langs, "en")
	assert.Contains(t, langs, "de")
}

func TestCatalogsShareKeys(t *testing.T) {
	en := loadCatalog("en")
	de := loadCatalog("de")
	for key := range en {
		assert.Contains(t, de, key, "key %q missing from de catalog", key)
	}
	for key := range de {
		assert.Contains(t, en, key, "key %q missing from en catalog", key)
	}
}
