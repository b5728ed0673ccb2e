package aldicrawler

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// scrapeItems extracts every product tile from a stabilized category page,
// stamped with the page heading and the run date.
func (app *Crawler) scrapeItems(doc *goquery.Document) []ProductRecord {
	category := categoryHeading(doc)
	app.Logger.Info("Scraping category: %s", category)

	tiles := doc.Find(productTileSelector)
	app.Logger.Info("Number of products found: %d", tiles.Length())
	if tiles.Length() == 0 {
		app.Logger.Info("No products found with selector %s", productTileSelector)
		return nil
	}

	date := time.Now().Format("2006-01-02")
	var records []ProductRecord
	tiles.Each(func(i int, tile *goquery.Selection) {
		record := extractItem(tile)
		record.Category = category
		record.Date = date
		records = append(records, record)
	})
	return records
}

// extractItem reads one product tile, substituting sentinels for absent
// fields. Missing markup is expected on this storefront and is not an
// error.
func extractItem(tile *goquery.Selection) ProductRecord {
	price := notFoundSentinel
	for _, containerSelector := range priceContainerSelectors {
		span := tile.Find(containerSelector).First().Find(screenReaderSelector).First()
		if span.Length() == 0 {
			continue
		}
		price = parsePrice(span.Text())
		break
	}

	name := notFoundSentinel
	if nameDiv := tile.Find(productNameSelector).First(); nameDiv.Length() > 0 {
		name = strings.TrimSpace(nameDiv.Text())
	}

	ounces := notFoundSentinel
	if ozDiv := tile.Find(productWeightSelector).First(); ozDiv.Length() > 0 {
		ounces = strings.TrimSpace(ozDiv.Text())
	}

	return ProductRecord{
		ProductName: name,
		Price:       "$" + price,
		Ounces:      ounces,
	}
}

// parsePrice isolates the numeric portion of an accessible price string
// such as "current price: $3.99". Promo strings carry a second price
// ("$2.99 discounted from $3.49"); only the text up to the second "$" is
// the current price. Text without a currency symbol is kept as-is.
func parsePrice(text string) string {
	text = strings.TrimSpace(text)
	parts := strings.SplitN(text, "$", 3)
	if len(parts) < 2 {
		return text
	}
	return parts[1]
}

func categoryHeading(doc *goquery.Document) string {
	heading := doc.Find(categoryHeadingSelector).First()
	if heading.Length() == 0 {
		return unknownCategory
	}
	return strings.TrimSpace(heading.Text())
}
