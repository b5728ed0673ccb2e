package aldicrawler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullUrl(t *testing.T) {
	assert.Equal(t, "https://shop.aldi.us/store/aldi/collections/n-1",
		fullUrl("https://shop.aldi.us", "/store/aldi/collections/n-1"))
	assert.Equal(t, "https://other.example/page",
		fullUrl("https://shop.aldi.us", "https://other.example/page"))
	assert.Equal(t, "http://other.example/page",
		fullUrl("https://shop.aldi.us", "http://other.example/page"))
}

func TestGetBaseUrl(t *testing.T) {
	app := newTestCrawler(t)
	assert.Equal(t, "https://shop.aldi.us", app.getBaseUrl("https://shop.aldi.us/store/aldi/storefront"))
}

func TestGenerateFilename(t *testing.T) {
	name := generateFilename("https://shop.aldi.us/store/aldi/collections/n-1?page=2")
	assert.True(t, strings.HasSuffix(name, ".html"))
	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, ":")
	assert.NotContains(t, name, "?")
}

func TestWritePageContentToFile(t *testing.T) {
	app := newTestCrawler(t)

	err := app.writePageContentToFile("<html><body>dump</body></html>",
		"https://shop.aldi.us/store/aldi/storefront", "nav list not found")
	require.NoError(t, err)
}
