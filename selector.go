package aldicrawler

// Selectors are tied to the storefront's current markup. When the site
// ships new class names the crawler degrades to sentinel values instead
// of failing, so these are the first thing to re-check when a run comes
// back full of "Not found".
const (
	departmentNavSelector  = "ul.e-19g896u"
	departmentLinkSelector = "ul.e-19g896u > li > a.e-v0wv1"
	collectionLinkSelector = `a[href*="/store/aldi/collections"]`

	categoryHeadingSelector = "h1.e-4jb28s"
	productTileSelector     = "h3.e-ti75j2"
	productNameSelector     = "div.e-147kl2c"
	productWeightSelector   = "div.e-an4oxa"

	// Price text lives in an accessibility-only span inside the price container.
	screenReaderSelector = "span.screen-reader-only"
)

// The site renders price markup differently depending on promotion state,
// so price extraction tries these containers in order.
var priceContainerSelectors = []string{"div.e-2feaft", "div.e-s71gfs"}

// Only these collection path shapes are real leaf categories.
var collectionPathMarkers = []string{"/collections/n-", "/collections/rc-"}

const (
	notFoundSentinel = "Not found"
	unknownCategory  = "Unknown Category"
)
