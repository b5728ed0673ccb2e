package aldicrawler

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/temoto/robotstxt"
)

func (app *Crawler) bootstrap() {
	if app.preference.CheckRobotsTxt != nil && *app.preference.CheckRobotsTxt {
		app.checkRobotsTxt()
	}
}

func (app *Crawler) checkRobotsTxt() {
	app.Logger.Info("Checking robots.txt")
	robotsData, isUserAgentAllowed := fetchRobotsTxt(app.BaseUrl, app.userAgent)
	if isUserAgentAllowed {
		app.robotsData = robotsData
	} else {
		app.Logger.Summary("Crawling is disallowed by robots.txt")
		app.Logger.Fatal("Crawling is disallowed by robots.txt")
	}
}

// shouldCrawl consults the robots.txt data loaded at bootstrap. With the
// check disabled (the default) everything is allowed.
func (app *Crawler) shouldCrawl(fullURL string) bool {
	if app.robotsData == nil {
		return true
	}
	group := app.robotsData.FindGroup(app.userAgent)

	parsedURL, err := url.Parse(fullURL)
	if err != nil {
		app.Logger.Error("failed to parse url for robots check: %v", err)
		return false
	}
	return group.Test(parsedURL.Path)
}

func fetchRobotsTxt(baseUrl, userAgent string) (*robotstxt.RobotsData, bool) {
	client := &http.Client{}
	req, err := http.NewRequest("GET", baseUrl+"/robots.txt", nil)
	if err != nil {
		return nil, true
	}
	req.Header.Set("User-Agent", userAgent)
	client.Timeout = 30 * time.Second
	response, err := client.Do(req)

	if err != nil || response.StatusCode != http.StatusOK {
		fmt.Println("Could not fetch robots.txt:", err)
		return nil, true // default to allow if robots.txt can't be fetched
	}
	defer response.Body.Close()

	robotsData, err := robotstxt.FromResponse(response)
	if err != nil {
		fmt.Println("Error parsing robots.txt:", err)
		return nil, true
	}

	group := robotsData.FindGroup(userAgent)
	return robotsData, group.Test("/")
}
