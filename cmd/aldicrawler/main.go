package main

import (
	"github.com/lazuli-inc/aldicrawler"
)

func main() {
	app := aldicrawler.NewCrawler("aldi", "https://shop.aldi.us/store/aldi/storefront", aldicrawler.Engine{
		Adapter:     aldicrawler.PlayWrightEngine,
		BrowserType: "chromium",
		CookieConsent: &aldicrawler.CookieAction{
			ButtonText: "Confirm",
		},
	})
	defer func() {
		if r := recover(); r != nil {
			app.Logger.Error("Recovered in main: %v", r)
		}
	}()

	if err := app.Run(); err != nil {
		app.Logger.Fatal("run failed: %v", err)
	}
}
