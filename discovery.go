package aldicrawler

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DiscoverCategories walks the two-level storefront hierarchy and returns
// the deduplicated leaf category URLs. An empty result means there is
// nothing to scrape; the caller exits early.
func (app *Crawler) DiscoverCategories() ([]string, error) {
	app.Logger.Info("Navigating to %s...", app.Url)
	if err := app.navigate(app.Url); err != nil {
		return nil, err
	}
	time.Sleep(app.engine.StorefrontDelay)

	clicked, err := app.handleCookieConsent()
	if err != nil {
		app.Logger.Html(app.pageContent(), app.Url, err.Error())
		return nil, err
	}
	if clicked {
		app.Logger.Info("Confirm button clicked")
		time.Sleep(app.engine.CategoryDelay)
	} else {
		app.Logger.Info("Confirm button not found")
	}

	doc, err := app.pageDom()
	if err != nil {
		return nil, err
	}
	if doc.Find(departmentNavSelector).Length() == 0 {
		app.Logger.Html(app.pageContent(), app.Url,
			fmt.Sprintf("%s not found. Dumping page content for inspection", departmentNavSelector))
		return nil, nil
	}

	deptUrls := departmentLinks(doc, app.BaseUrl)
	app.Logger.Info("Total department links found: %d", len(deptUrls))
	for _, dept := range deptUrls {
		app.Logger.Info("Found department URL: %s", dept)
	}

	var all []string
	for _, dept := range deptUrls {
		subUrls, err := app.getSubcategoryUrls(dept)
		if err != nil {
			app.Logger.Error("Error discovering sub-categories for %s: %v", dept, err)
			continue
		}
		all = append(all, subUrls...)
	}
	app.Logger.Info("Total unique sub-category URLs found: %d", len(all))
	return all, nil
}

// getSubcategoryUrls extracts unique sub-category URLs from one department
// page, falling back to the department itself when the page exposes no
// collection links.
func (app *Crawler) getSubcategoryUrls(departmentUrl string) ([]string, error) {
	app.Logger.Info("Navigating to department: %s", departmentUrl)
	if err := app.navigate(departmentUrl); err != nil {
		return nil, err
	}
	time.Sleep(app.engine.DepartmentDelay)

	doc, err := app.pageDom()
	if err != nil {
		return nil, err
	}

	fresh := app.resolveSubcategories(doc, departmentUrl)
	for _, url := range fresh {
		app.Logger.Info("Found sub-category URL: %s", url)
	}
	return fresh, nil
}

// resolveSubcategories turns one department page into its unseen leaf
// category URLs. A department exposing no collection links stands in for
// itself as a single category.
func (app *Crawler) resolveSubcategories(doc *goquery.Document, departmentUrl string) []string {
	links := collectionLinks(doc, app.BaseUrl)
	if len(links) == 0 {
		app.Logger.Info("No sub-categories found for %s. Treating as a single category.", departmentUrl)
		links = []string{departmentUrl}
	}
	return app.filterSeen(links)
}

// departmentLinks collects top-level department URLs from the storefront
// navigation, deduplicated and resolved against the base URL.
func departmentLinks(doc *goquery.Document, baseUrl string) []string {
	var urls []string
	seen := make(map[string]struct{})
	doc.Find(departmentLinkSelector).Each(func(i int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		full := fullUrl(baseUrl, href)
		if _, dup := seen[full]; dup {
			return
		}
		seen[full] = struct{}{}
		urls = append(urls, full)
	})
	return urls
}

// collectionLinks collects the collection URLs on a department page that
// match the known leaf-category path shapes, deduplicated.
func collectionLinks(doc *goquery.Document, baseUrl string) []string {
	var urls []string
	seen := make(map[string]struct{})
	doc.Find(collectionLinkSelector).Each(func(i int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		full := fullUrl(baseUrl, href)
		if !matchesCollectionPath(full) {
			return
		}
		if _, dup := seen[full]; dup {
			return
		}
		seen[full] = struct{}{}
		urls = append(urls, full)
	})
	return urls
}

func matchesCollectionPath(url string) bool {
	for _, marker := range collectionPathMarkers {
		if strings.Contains(url, marker) {
			return true
		}
	}
	return false
}

// filterSeen drops URLs already handed out earlier in the run, so the same
// collection reached through two departments is scraped once.
func (app *Crawler) filterSeen(urls []string) []string {
	var fresh []string
	for _, url := range urls {
		if app.seenUrls.Contains(url) {
			continue
		}
		app.seenUrls.Add(url, struct{}{})
		fresh = append(fresh, url)
	}
	return fresh
}
