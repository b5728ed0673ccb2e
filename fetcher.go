package aldicrawler

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// The fetcher hides the adapter split: everything above it talks in URLs,
// JS snippets and goquery documents, regardless of which engine drives
// the browser.

func (app *Crawler) openBrowser() error {
	switch app.engine.Adapter {
	case PlayWrightEngine:
		return app.openPlaywright()
	case RodEngine:
		return app.openRod()
	default:
		return fmt.Errorf("unsupported adapter: %s", app.engine.Adapter)
	}
}

func (app *Crawler) closeBrowser() {
	switch app.engine.Adapter {
	case PlayWrightEngine:
		app.closePlaywright()
	case RodEngine:
		app.closeRod()
	}
}

func (app *Crawler) navigate(url string) error {
	app.Logger.Info("Crawling %s", url)
	if app.engine.Adapter == PlayWrightEngine {
		return app.navigatePlaywright(url)
	}
	return app.navigateRod(url)
}

// handleCookieConsent dismisses the storefront dialog when present and
// reports whether a click happened.
func (app *Crawler) handleCookieConsent() (bool, error) {
	if app.engine.Adapter == PlayWrightEngine {
		return app.handlePlaywrightCookieConsent()
	}
	return app.handleRodCookieConsent()
}

func (app *Crawler) evaluate(js string) (interface{}, error) {
	if app.engine.Adapter == PlayWrightEngine {
		return app.playwrightEvaluate(js)
	}
	return app.rodEvaluate(js)
}

// pageContent returns the current page HTML, or an empty string when the
// page cannot be serialized. Used for diagnostics only.
func (app *Crawler) pageContent() string {
	var html string
	var err error
	if app.engine.Adapter == PlayWrightEngine {
		html, err = app.playwrightContent()
	} else {
		html, err = app.rodContent()
	}
	if err != nil {
		app.Logger.Error("failed to get html from page: %v", err)
		return ""
	}
	return html
}

// pageDom snapshots the current page into a goquery document. Extraction
// and discovery both run against these snapshots.
func (app *Crawler) pageDom() (*goquery.Document, error) {
	var html string
	var err error
	if app.engine.Adapter == PlayWrightEngine {
		html, err = app.playwrightContent()
	} else {
		html, err = app.rodContent()
	}
	if err != nil {
		return nil, err
	}
	document, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return document, nil
}

func (app *Crawler) headless() bool {
	if app.engine.Headless != nil {
		return *app.engine.Headless
	}
	return !app.isLocalEnv
}
