package aldicrawler

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/playwright-community/playwright-go"
	"github.com/temoto/robotstxt"
)

// Crawler drives one scraping run against a single storefront: a browser
// session, category discovery, per-category extraction and a CSV export.
type Crawler struct {
	Name        string
	Url         string
	BaseUrl     string
	Config      *configService
	Logger      *defaultLogger
	StartTime   time.Time
	engine      *Engine
	preference  Preference
	storagePath string
	outputFile  string
	userAgent   string
	isLocalEnv  bool
	robotsData  *robotstxt.RobotsData
	seenUrls    *lru.Cache[string, struct{}]

	pw         *playwright.Playwright
	pwBrowser  playwright.Browser
	pwPage     playwright.Page
	rodBrowser *rod.Browser
	rdPage     *rod.Page
}

func NewCrawler(name, url string, engines ...Engine) *Crawler {
	defaultEngine := getDefaultEngine()
	if len(engines) > 0 {
		eng := engines[0]
		overrideEngineDefaults(&defaultEngine, &eng)
	}
	config := newConfig()

	crawler := &Crawler{
		Name:   name,
		Url:    url,
		engine: &defaultEngine,
		Config: config,
	}

	crawler.storagePath = config.EnvString("STORAGE_PATH", "storage")
	crawler.outputFile = config.EnvString("OUTPUT_FILE", "aldi_products.csv")
	crawler.userAgent = config.EnvString("USER_AGENT", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36")
	crawler.isLocalEnv = config.EnvString("APP_ENV") == "local"
	crawler.applyEnvOverrides()

	logger := newDefaultLogger(crawler, name)
	crawler.Logger = logger
	crawler.BaseUrl = crawler.getBaseUrl(url)

	seen, err := lru.New[string, struct{}](4096)
	if err != nil {
		logger.Fatal("failed to create url cache: %v", err)
	}
	crawler.seenUrls = seen
	return crawler
}

// Start opens the browser session. The session lives for the whole run
// and is released by Stop.
func (app *Crawler) Start() {
	defer func() {
		if r := recover(); r != nil {
			app.Logger.Error("Recovered in Start: %v", r)
		}
	}()
	app.StartTime = time.Now()
	app.Logger.Info("Crawler Started! 🚀")
	app.bootstrap()
	if err := app.openBrowser(); err != nil {
		app.Logger.Fatal("failed to open browser: %v", err)
	}
}

func (app *Crawler) Stop() {
	defer func() {
		if r := recover(); r != nil {
			app.Logger.Error("Recovered in Stop: %v", r)
		}
	}()
	app.closeBrowser()

	duration := time.Since(app.StartTime)
	app.Logger.Info("Crawler stopped in ⚡ %v", duration)
}

// Run executes the whole pipeline: discover leaf categories, scrape each
// one with per-category error isolation, then append everything to the
// CSV output. A CSV write failure is the only error that aborts the run.
func (app *Crawler) Run() error {
	app.Start()
	defer app.Stop()

	urls, err := app.DiscoverCategories()
	if err != nil {
		return fmt.Errorf("category discovery: %w", err)
	}
	if len(urls) == 0 {
		app.Logger.Summary("No URLs to scrape. Exiting.")
		return nil
	}

	summary := RunSummary{Categories: len(urls)}
	var products []ProductRecord
	for i, url := range urls {
		app.Logger.Info("Processing URL %d/%d: %s", i+1, len(urls), url)
		items, err := app.ScrapeCategory(url)
		if err != nil {
			summary.Errors++
			app.Logger.Error("Error scraping %s: %v", url, err)
			continue
		}
		products = append(products, items...)
		time.Sleep(app.engine.PoliteSleep)
	}
	summary.Products = len(products)

	if err := app.appendToCSV(products, app.outputFile); err != nil {
		return fmt.Errorf("csv export: %w", err)
	}

	app.Logger.Summary("Scraped %d products from %d categories (%d errors)",
		summary.Products, summary.Categories, summary.Errors)
	return nil
}

// ScrapeCategory loads one category page, waits for lazy-loaded tiles to
// finish rendering, and extracts every product on the stabilized page.
func (app *Crawler) ScrapeCategory(url string) ([]ProductRecord, error) {
	if !app.shouldCrawl(url) {
		app.Logger.Debug("[SKIP] Robots disallowed: %s", url)
		return nil, nil
	}
	if err := app.navigate(url); err != nil {
		return nil, err
	}
	time.Sleep(app.engine.CategoryDelay)

	if err := app.stabilizeLazyLoad(); err != nil {
		return nil, err
	}

	doc, err := app.pageDom()
	if err != nil {
		return nil, err
	}
	return app.scrapeItems(doc), nil
}
