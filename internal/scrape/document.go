package scrape

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
)

// Document is a fetched page parsed into a queryable form.
type Document struct {
	URL   string
	Title string

	doc *goquery.Document
}

// ParseDocument parses raw HTML into a Document.
func ParseDocument(url string, body []byte) (*Document, error) {
	gq, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "scrape: parse html")
	}

	// Script and style contents are noise for text extraction.
	gq.Find("script, style").Remove()

	return &Document{
		URL:   url,
		Title: strings.TrimSpace(gq.Find("title").First().Text()),
		doc:   gq,
	}, nil
}

// Text returns the full visible text of the page with whitespace collapsed.
func (d *Document) Text() string {
	return collapseWhitespace(d.doc.Text())
}

// Region returns the text of the first container matching one of the
// structural label hints: a div carrying the hint as a class token, or a
// section carrying it as an id. Document order wins; ok is false when no
// hint matches.
func (d *Document) Region(hints ...string) (string, bool) {
	var parts []string
	for _, h := range hints {
		parts = append(parts, "div."+h, "section#"+h)
	}
	sel := d.doc.Find(strings.Join(parts, ", ")).First()
	if sel.Length() == 0 {
		return "", false
	}
	return collapseWhitespace(sel.Text()), true
}

var spaceRe = regexp.MustCompile(`\s+`)

// collapseWhitespace squeezes runs of whitespace into single spaces.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
