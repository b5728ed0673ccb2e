package aldicrawler

import "time"

// Engine holds the tunables of a crawl: which browser adapter drives the
// session and how long each settle/scroll wait lasts.
type Engine struct {
	Adapter                string
	BrowserType            string
	ForceInstallPlaywright bool
	Headless               *bool
	JavaScriptEnabled      bool
	Args                   []string
	Timeout                time.Duration

	// Fixed waits. The storefront hydrates its navigation and tiles well
	// after domcontentloaded, so navigation is followed by a blocking sleep
	// rather than an event wait.
	StorefrontDelay time.Duration
	DepartmentDelay time.Duration
	CategoryDelay   time.Duration
	ScrollDelay     time.Duration
	PoliteSleep     time.Duration

	// MaxScrollRounds caps the lazy-load stabilization loop. A page whose
	// height never settles (rotating ads, infinite-scroll placeholders)
	// would otherwise keep the crawler scrolling forever.
	MaxScrollRounds int

	CookieConsent *CookieAction
}

func getDefaultEngine() Engine {
	return Engine{
		Adapter:           PlayWrightEngine,
		BrowserType:       "chromium",
		JavaScriptEnabled: true,
		Timeout:           30 * time.Second,
		StorefrontDelay:   5 * time.Second,
		DepartmentDelay:   3 * time.Second,
		CategoryDelay:     2 * time.Second,
		ScrollDelay:       2 * time.Second,
		PoliteSleep:       1 * time.Second,
		MaxScrollRounds:   30,
		CookieConsent: &CookieAction{
			ButtonText: "Confirm",
		},
	}
}

func overrideEngineDefaults(defaultEngine *Engine, eng *Engine) {
	if eng.Adapter != "" {
		defaultEngine.Adapter = eng.Adapter
	}
	if eng.BrowserType != "" {
		defaultEngine.BrowserType = eng.BrowserType
	}
	if eng.ForceInstallPlaywright {
		defaultEngine.ForceInstallPlaywright = eng.ForceInstallPlaywright
	}
	if eng.Headless != nil {
		defaultEngine.Headless = eng.Headless
	}
	if eng.JavaScriptEnabled {
		defaultEngine.JavaScriptEnabled = eng.JavaScriptEnabled
	}
	if len(eng.Args) > 0 {
		defaultEngine.Args = eng.Args
	}
	if eng.Timeout > 0 {
		defaultEngine.Timeout = eng.Timeout
	}
	if eng.StorefrontDelay > 0 {
		defaultEngine.StorefrontDelay = eng.StorefrontDelay
	}
	if eng.DepartmentDelay > 0 {
		defaultEngine.DepartmentDelay = eng.DepartmentDelay
	}
	if eng.CategoryDelay > 0 {
		defaultEngine.CategoryDelay = eng.CategoryDelay
	}
	if eng.ScrollDelay > 0 {
		defaultEngine.ScrollDelay = eng.ScrollDelay
	}
	if eng.PoliteSleep > 0 {
		defaultEngine.PoliteSleep = eng.PoliteSleep
	}
	if eng.MaxScrollRounds > 0 {
		defaultEngine.MaxScrollRounds = eng.MaxScrollRounds
	}
	if eng.CookieConsent != nil {
		defaultEngine.CookieConsent = eng.CookieConsent
	}
}

func (app *Crawler) SetAdapter(adapter string) *Crawler {
	app.engine.Adapter = adapter
	return app
}

func (app *Crawler) SetBrowserType(browserType string) *Crawler {
	app.engine.BrowserType = browserType
	return app
}

func (app *Crawler) SetTimeout(timeout time.Duration) *Crawler {
	app.engine.Timeout = timeout
	return app
}

func (app *Crawler) SetScrollDelay(delay time.Duration) *Crawler {
	app.engine.ScrollDelay = delay
	return app
}

func (app *Crawler) SetMaxScrollRounds(rounds int) *Crawler {
	app.engine.MaxScrollRounds = rounds
	return app
}

func (app *Crawler) SetCookieConsent(action *CookieAction) *Crawler {
	app.engine.CookieConsent = action
	return app
}

func (app *Crawler) SetPreference(preference Preference) *Crawler {
	app.preference = preference
	return app
}

// applyEnvOverrides folds environment configuration over engine defaults,
// so a deployment can flip adapters or output without a rebuild.
func (app *Crawler) applyEnvOverrides() {
	if adapter := app.Config.EnvString("ENGINE"); adapter != "" {
		app.engine.Adapter = adapter
	}
	if browserType := app.Config.EnvString("BROWSER_TYPE"); browserType != "" {
		app.engine.BrowserType = browserType
	}
	if app.Config.v.Get("HEADLESS") != nil {
		headless := app.Config.EnvBool("HEADLESS")
		app.engine.Headless = &headless
	}
	if rounds := app.Config.EnvInt("MAX_SCROLL_ROUNDS"); rounds > 0 {
		app.engine.MaxScrollRounds = rounds
	}
}
