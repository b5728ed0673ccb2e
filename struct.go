package aldicrawler

const (
	PlayWrightEngine = "playwright"
	RodEngine        = "rod"
)

// ProductRecord is one scraped storefront item, in CSV column order.
type ProductRecord struct {
	Date        string `json:"date"`
	Category    string `json:"category"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	Ounces      string `json:"ounces"`
}

type FormInput struct {
	Key string
	Val string
}

// CookieAction describes a consent dialog that must be dismissed before
// the storefront renders its navigation.
type CookieAction struct {
	ButtonText                  string
	MustHaveSelectorAfterAction string
	Fields                      []FormInput
}

type Preference struct {
	CheckRobotsTxt *bool
}

// RunSummary aggregates counters reported when a run finishes.
type RunSummary struct {
	Categories int
	Products   int
	Errors     int
}
