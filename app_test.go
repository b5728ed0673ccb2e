package aldicrawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestCrawler(t *testing.T) *Crawler {
	t.Helper()
	t.Setenv("STORAGE_PATH", t.TempDir())
	return NewCrawler("aldi-test", "https://shop.aldi.us/store/aldi/storefront")
}

func TestNewCrawler(t *testing.T) {
	app := newTestCrawler(t)

	assert.Equal(t, "aldi-test", app.Name)
	assert.Equal(t, "https://shop.aldi.us", app.BaseUrl)
	assert.Equal(t, PlayWrightEngine, app.engine.Adapter)
	assert.Equal(t, "chromium", app.engine.BrowserType)
	assert.Equal(t, "Confirm", app.engine.CookieConsent.ButtonText)
	assert.NotNil(t, app.seenUrls)
	assert.NotNil(t, app.Logger)
}

func TestNewCrawlerEngineOverride(t *testing.T) {
	t.Setenv("STORAGE_PATH", t.TempDir())
	app := NewCrawler("aldi-test", "https://shop.aldi.us/store/aldi/storefront", Engine{
		Adapter:         RodEngine,
		BrowserType:     "firefox",
		MaxScrollRounds: 5,
	})

	assert.Equal(t, RodEngine, app.engine.Adapter)
	assert.Equal(t, "firefox", app.engine.BrowserType)
	assert.Equal(t, 5, app.engine.MaxScrollRounds)
	// Untouched fields keep their defaults.
	assert.Equal(t, "Confirm", app.engine.CookieConsent.ButtonText)
}

func TestNewCrawlerEnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_PATH", t.TempDir())
	t.Setenv("ENGINE", RodEngine)
	t.Setenv("MAX_SCROLL_ROUNDS", "7")
	t.Setenv("HEADLESS", "true")

	app := NewCrawler("aldi-test", "https://shop.aldi.us/store/aldi/storefront")

	assert.Equal(t, RodEngine, app.engine.Adapter)
	assert.Equal(t, 7, app.engine.MaxScrollRounds)
	assert.True(t, app.headless())
}
