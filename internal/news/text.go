package news

import (
	"strconv"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LineLength caps the rendered width; see https://tachyons.io/docs/typography/measure/
const LineLength = 66

type block struct {
	text  string
	pre   bool
	tight bool // joined to the previous block without a blank line
}

// textRenderer flattens an HTML fragment into blocks of text. Links and
// images are numbered and listed as footnotes.
type textRenderer struct {
	blocks []block
	cur    strings.Builder
	pre    int
	tight  bool
	items  int // list items seen in the innermost list
	notes  []string
}

// RenderBody converts an article body to plain text wrapped at width
// columns. Emphasis is marked with _, strong with *, strikeout with ~ and
// code with backticks; links become ">[n] text<".
func RenderBody(n *html.Node, width int) string {
	if n == nil {
		return ""
	}
	if width <= 0 || width > LineLength {
		width = LineLength
	}

	r := &textRenderer{}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.walk(c)
	}
	r.flush()

	var b strings.Builder
	for _, blk := range r.blocks {
		text := blk.text
		if !blk.pre {
			text = wordwrap.WrapString(collapse(text), uint(width))
		}
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			if blk.tight {
				b.WriteString("\n")
			} else {
				b.WriteString("\n\n")
			}
		}
		b.WriteString(text)
	}

	for i, note := range r.notes {
		if i == 0 {
			b.WriteString("\n\n")
		} else {
			b.WriteString("\n")
		}
		b.WriteString("[" + strconv.Itoa(i+1) + "] " + note)
	}
	return b.String()
}

func (r *textRenderer) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		r.cur.WriteString(n.Data)
		return
	case html.ElementNode:
	default:
		r.children(n)
		return
	}

	switch n.DataAtom {
	case atom.P, atom.Div, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Blockquote, atom.Table, atom.Tr:
		r.flush()
		r.children(n)
		r.flush()
	case atom.Ul, atom.Ol:
		r.flush()
		items := r.items
		r.items = 0
		r.children(n)
		r.flush()
		r.items = items
	case atom.Li:
		r.flush()
		r.tight = r.items > 0
		r.items++
		r.cur.WriteString("* ")
		r.children(n)
		r.flush()
	case atom.Br:
		r.flush()
		r.tight = true
	case atom.Pre:
		r.flush()
		r.pre++
		r.children(n)
		r.pre--
		r.flushPre()
	case atom.A:
		r.wrap(n, ">["+r.note(attr(n, "href"))+"] ", "<")
	case atom.Em, atom.I:
		r.wrap(n, "_", "_")
	case atom.Strong, atom.B:
		r.wrap(n, "*", "*")
	case atom.Del, atom.S, atom.Strike:
		r.wrap(n, "~", "~")
	case atom.Code:
		if r.pre > 0 {
			r.children(n)
		} else {
			r.wrap(n, "`", "`")
		}
	case atom.Img:
		title := attr(n, "title")
		if title == "" {
			title = attr(n, "alt")
		}
		if title == "" {
			title = attr(n, "src")
		}
		r.cur.WriteString("[I][" + r.note(title) + "] ")
	case atom.Script, atom.Style:
	default:
		r.children(n)
	}
}

func (r *textRenderer) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.walk(c)
	}
}

func (r *textRenderer) wrap(n *html.Node, open, end string) {
	r.cur.WriteString(open)
	r.children(n)
	r.cur.WriteString(end)
}

func (r *textRenderer) note(s string) string {
	r.notes = append(r.notes, s)
	return strconv.Itoa(len(r.notes))
}

func (r *textRenderer) flush() {
	if r.pre > 0 {
		return
	}
	text := r.cur.String()
	r.cur.Reset()
	if strings.TrimSpace(text) == "" {
		return
	}
	r.blocks = append(r.blocks, block{text: text, tight: r.tight})
	r.tight = false
}

func (r *textRenderer) flushPre() {
	text := strings.Trim(r.cur.String(), "\n")
	r.cur.Reset()
	if text != "" {
		r.blocks = append(r.blocks, block{text: text, pre: true})
	}
	r.tight = false
}
