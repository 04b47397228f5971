package scrape

import "context"

// Scraper fetches a single URL and returns its parsed document.
type Scraper interface {
	Fetch(ctx context.Context, url string) (*Document, error)
	Name() string
}
