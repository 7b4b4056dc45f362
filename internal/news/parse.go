package news

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrParse means the home page did not have the expected news layout.
var ErrParse = errors.New("failed to parse news data")

// Article is one news entry. Body is the unrendered article content.
type Article struct {
	Title string
	Link  string
	Date  string
	Body  *html.Node
}

// Parse extracts the articles listed directly under the #news element of
// page. Relative links are resolved against baseURL.
func Parse(page, baseURL string) ([]Article, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	root := findID(doc, "news")
	if root == nil {
		return nil, fmt.Errorf("%w: no #news element", ErrParse)
	}

	var (
		titles []Article
		dates  []string
		bodies []*html.Node
	)
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch {
		case c.DataAtom == atom.H4:
			if a := firstChild(c, atom.A); a != nil {
				titles = append(titles, Article{
					Title: collapse(textOf(a)),
					Link:  resolve(baseURL, attr(a, "href")),
				})
			}
		case hasClass(c, "timestamp"):
			dates = append(dates, strings.TrimSpace(textOf(c)))
		case hasClass(c, "article-content"):
			bodies = append(bodies, c)
		}
	}

	if len(titles) != len(dates) || len(titles) != len(bodies) {
		return nil, fmt.Errorf("%w: %d titles, %d dates, %d bodies", ErrParse, len(titles), len(dates), len(bodies))
	}

	for i := range titles {
		titles[i].Date = dates[i]
		titles[i].Body = bodies[i]
	}
	return titles, nil
}

func resolve(baseURL, href string) string {
	if href == "" || strings.Contains(href, "://") {
		return href
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(href, "/")
}

func findID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func firstChild(n *html.Node, a atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
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

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
