package aldicrawler

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// GetPlaywright initializes and runs the Playwright framework.
// It returns a Playwright instance if successful, otherwise returns an error.
func (app *Crawler) GetPlaywright() (*playwright.Playwright, error) {
	if app.engine.ForceInstallPlaywright || !app.isLocalEnv {
		app.Logger.Info("Force Installing Playwright!")
		err := playwright.Install()
		if err != nil {
			return nil, err
		}
	}
	pw, err := playwright.Run()
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// openPlaywright launches a browser instance and creates the single page
// used for the whole run. It supports Chromium, Firefox, and WebKit.
func (app *Crawler) openPlaywright() error {
	pw, err := app.GetPlaywright()
	if err != nil {
		return fmt.Errorf("failed to initialize playwright: %w", err)
	}
	app.pw = pw

	var browserTypeLaunchOptions playwright.BrowserTypeLaunchOptions
	browserTypeLaunchOptions.Headless = playwright.Bool(app.headless())
	browserTypeLaunchOptions.Devtools = playwright.Bool(app.isLocalEnv)
	if len(app.engine.Args) > 0 {
		browserTypeLaunchOptions.Args = app.engine.Args
	}

	var browser playwright.Browser
	switch app.engine.BrowserType {
	case "chromium":
		browser, err = pw.Chromium.Launch(browserTypeLaunchOptions)
	case "firefox":
		browser, err = pw.Firefox.Launch(browserTypeLaunchOptions)
	case "webkit":
		browser, err = pw.WebKit.Launch(browserTypeLaunchOptions)
	default:
		return fmt.Errorf("unsupported browser type: %s", app.engine.BrowserType)
	}
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}
	app.pwBrowser = browser

	page, err := browser.NewPage(playwright.BrowserNewPageOptions{
		UserAgent:         playwright.String(app.userAgent),
		JavaScriptEnabled: playwright.Bool(app.engine.JavaScriptEnabled),
	})
	if err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}
	app.pwPage = page
	return nil
}

func (app *Crawler) closePlaywright() {
	if app.pwPage != nil {
		if err := app.pwPage.Close(); err != nil {
			app.Logger.Error("Failed to close page: %v", err)
		}
	}
	if app.pwBrowser != nil {
		if err := app.pwBrowser.Close(); err != nil {
			app.Logger.Error("Failed to close browser: %v", err)
		}
	}
	if app.pw != nil {
		if err := app.pw.Stop(); err != nil {
			app.Logger.Error("Failed to stop playwright: %v", err)
		}
	}
}

// navigatePlaywright navigates to a specified URL and waits for the DOM to
// be parsed. Tile hydration is handled separately by the settle delays and
// the scroll stabilization loop.
func (app *Crawler) navigatePlaywright(url string) error {
	res, err := app.pwPage.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(app.engine.Timeout.Milliseconds())),
	})
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("failed to load page: %d %s", res.Status(), res.StatusText())
	}
	return nil
}

// handlePlaywrightCookieConsent fills form fields and clicks the consent
// button if the dialog is present. An absent dialog is not an error.
func (app *Crawler) handlePlaywrightCookieConsent() (bool, error) {
	action := app.engine.CookieConsent
	if action == nil {
		return false, nil
	}
	for _, field := range action.Fields {
		inputSelector := fmt.Sprintf("input[name='%s']", field.Key)
		input, err := app.pwPage.QuerySelector(inputSelector)
		if err != nil {
			return false, fmt.Errorf("failed to find input field with name '%s': %w", field.Key, err)
		}
		if input != nil {
			if err := input.Fill(field.Val); err != nil {
				return false, fmt.Errorf("failed to fill input field with name '%s': %w", field.Key, err)
			}
		}
	}

	if action.ButtonText == "" {
		return false, nil
	}
	buttonSelector := fmt.Sprintf("button:has-text('%s')", action.ButtonText)
	button, err := app.pwPage.QuerySelector(buttonSelector)
	if err != nil || button == nil {
		return false, nil
	}
	if err := button.Click(); err != nil {
		return false, fmt.Errorf("failed to click cookie consent button: %w", err)
	}
	if action.MustHaveSelectorAfterAction != "" {
		app.pwPage.WaitForSelector(action.MustHaveSelectorAfterAction)
	}
	return true, nil
}

func (app *Crawler) playwrightEvaluate(js string) (interface{}, error) {
	return app.pwPage.Evaluate(js)
}

func (app *Crawler) playwrightContent() (string, error) {
	return app.pwPage.Content()
}
