package aldicrawler

import (
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// openRod initializes the Rod browser and creates the single page used
// for the whole run.
func (app *Crawler) openRod() error {
	l := launcher.New().Headless(app.headless()).Devtools(app.isLocalEnv).NoSandbox(!app.isLocalEnv)

	url, err := l.Launch()
	if err != nil {
		return fmt.Errorf("failed to launch rod browser: %w", err)
	}
	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("failed to connect rod browser: %w", err)
	}
	app.rodBrowser = browser

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}
	err = page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent: app.userAgent,
	})
	if err != nil {
		return fmt.Errorf("error setting user agent: %s", err.Error())
	}
	app.rdPage = page
	return nil
}

func (app *Crawler) closeRod() {
	if app.rdPage != nil {
		if err := app.rdPage.Close(); err != nil {
			app.Logger.Error("Failed to close page: %v", err)
		}
	}
	if app.rodBrowser != nil {
		if err := app.rodBrowser.Close(); err != nil {
			app.Logger.Error("Failed to close browser: %v", err)
		}
	}
}

// navigateRod navigates to a specified URL using the Rod page.
func (app *Crawler) navigateRod(url string) error {
	e := proto.NetworkResponseReceived{}
	wait := app.rdPage.WaitEvent(&e)
	err := app.rdPage.Timeout(app.engine.Timeout).Navigate(url)
	if err != nil {
		return err
	}
	wait()
	if e.Response == nil {
		return fmt.Errorf("no response received: %+v", e)
	}
	if !statusOk(e.Response.Status) {
		return fmt.Errorf("failed to load page: %d %s", e.Response.Status, e.Response.StatusText)
	}
	return app.rdPage.WaitLoad()
}

// handleRodCookieConsent clicks the consent button if the dialog is
// present. An absent dialog is not an error.
func (app *Crawler) handleRodCookieConsent() (bool, error) {
	action := app.engine.CookieConsent
	if action == nil {
		return false, nil
	}
	for _, field := range action.Fields {
		el, err := app.rdPage.Timeout(app.engine.ScrollDelay).Element(fmt.Sprintf("input[name='%s']", field.Key))
		if err != nil {
			continue
		}
		if err := el.Input(field.Val); err != nil {
			return false, fmt.Errorf("failed to fill input field with name '%s': %w", field.Key, err)
		}
	}

	if action.ButtonText == "" {
		return false, nil
	}
	button, err := app.rdPage.Timeout(app.engine.ScrollDelay).ElementR("button", action.ButtonText)
	if err != nil || button == nil {
		return false, nil
	}
	if err := button.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return false, fmt.Errorf("failed to click cookie consent button: %w", err)
	}
	if err := app.rdPage.WaitLoad(); err != nil {
		return false, err
	}
	return true, nil
}

func (app *Crawler) rodEvaluate(js string) (interface{}, error) {
	res, err := app.rdPage.Eval(js)
	if err != nil {
		return nil, err
	}
	return res.Value.Val(), nil
}

func (app *Crawler) rodContent() (string, error) {
	return app.rdPage.HTML()
}

func statusOk(status int) bool {
	return status == 0 || (status >= 200 && status <= 299)
}
