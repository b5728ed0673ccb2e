package aldicrawler

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// fullUrl resolves an href against the storefront base URL. Absolute hrefs
// pass through untouched.
func fullUrl(baseUrl, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return baseUrl + href
}

// GetFullUrl resolves an href against this crawler's base URL.
func (app *Crawler) GetFullUrl(href string) string {
	return fullUrl(app.BaseUrl, href)
}

func (app *Crawler) getBaseUrl(urlString string) string {
	parsedURL, err := url.Parse(urlString)
	if err != nil {
		app.Logger.Error("failed to parse Url %s: %v", urlString, err)
		return ""
	}
	return parsedURL.Scheme + "://" + parsedURL.Host
}

// writePageContentToFile persists a page dump under the html log directory
// so a broken selector can be diagnosed after the run. Only the first 1KB
// of content rides along in the message header.
func (app *Crawler) writePageContentToFile(html, url, msg string) error {
	if html == "" {
		html = "No Page Content Found"
	}
	preview := html
	if len(preview) > 1024 {
		preview = preview[:1024]
	}
	html = fmt.Sprintf("<!-- Time: %v \n Page Url: %s \n %s \n Preview: %s -->\n%s",
		time.Now(), url, strings.TrimSpace(msg), preview, html)

	directory := filepath.Join(app.storagePath, "logs", app.Name, "html")
	if err := os.MkdirAll(directory, 0755); err != nil {
		return err
	}
	filePath := filepath.Join(directory, generateFilename(url))
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(html)
	return err
}

// generateFilename generates a filename based on URL and current date.
func generateFilename(rawURL string) string {
	invalidChars := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	for _, char := range invalidChars {
		rawURL = strings.ReplaceAll(rawURL, char, "_")
	}
	currentDate := time.Now().Format("2006-01-02")
	return currentDate + "_" + rawURL + ".html"
}
