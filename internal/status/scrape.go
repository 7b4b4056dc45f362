package status

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

const (
	outOfSyncTableID = "outofsync_mirrors"
	inSyncTableID    = "successful_mirrors"
)

// ErrScrape means the status page did not have the expected layout.
var ErrScrape = errors.New("web scraping failed")

// Scrape is what milcheck keeps from the HTML status page.
type Scrape struct {
	// outOfSync is the text and link targets of the out-of-sync table.
	outOfSync string
}

// ParseStatusPage extracts the out-of-sync table from the status page. Both
// the out-of-sync and the successful tables must be present.
func ParseStatusPage(page string) (*Scrape, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScrape, err)
	}

	outOfSync := findByID(doc, "table", outOfSyncTableID)
	if outOfSync == nil {
		return nil, fmt.Errorf("%w: table %q not found", ErrScrape, outOfSyncTableID)
	}
	if findByID(doc, "table", inSyncTableID) == nil {
		return nil, fmt.Errorf("%w: table %q not found", ErrScrape, inSyncTableID)
	}

	var b strings.Builder
	collect(outOfSync, &b)
	return &Scrape{outOfSync: b.String()}, nil
}

// IsOutOfSync reports whether server is listed in the out-of-sync table.
func (s *Scrape) IsOutOfSync(server string) bool {
	return server != "" && strings.Contains(s.outOfSync, server)
}

func findByID(n *html.Node, tag, id string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, tag, id); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// collect writes every text node and href under n, one per line.
func collect(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		if text := strings.TrimSpace(n.Data); text != "" {
			b.WriteString(text)
			b.WriteByte('\n')
		}
	case html.ElementNode:
		if href := attr(n, "href"); href != "" {
			b.WriteString(href)
			b.WriteByte('\n')
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, b)
	}
}
