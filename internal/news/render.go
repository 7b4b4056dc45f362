package news

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer writes rendered news to one output.
type Printer struct {
	out     io.Writer
	width   int
	heading lipgloss.Style
	date    lipgloss.Style
	title   lipgloss.Style
	link    lipgloss.Style
}

// NewPrinter creates a Printer that wraps article bodies at width columns.
func NewPrinter(out io.Writer, width int) *Printer {
	return newPrinter(out, width, lipgloss.NewRenderer(out))
}

// NewPrinterWithProfile is NewPrinter with a fixed colour profile.
func NewPrinterWithProfile(out io.Writer, width int, profile termenv.Profile) *Printer {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(profile)
	return newPrinter(out, width, r)
}

func newPrinter(out io.Writer, width int, r *lipgloss.Renderer) *Printer {
	return &Printer{
		out:     out,
		width:   width,
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		date:    r.NewStyle().Italic(true).Foreground(lipgloss.Color("5")),
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		link:    r.NewStyle().Underline(true).Foreground(lipgloss.Color("4")),
	}
}

// Print writes the "Latest News" heading with a link to the archive at
// baseURL, followed by articles.
func (p *Printer) Print(baseURL string, articles []Article) error {
	var b strings.Builder

	b.WriteString(p.heading.Render("Latest News") + "\n")
	b.WriteString(p.link.Render(strings.TrimSuffix(baseURL, "/")+"/news") + "\n")

	for _, a := range articles {
		b.WriteString("\n")
		b.WriteString(p.date.Render(a.Date) + " " + p.title.Render(a.Title) + "\n")
		b.WriteString(p.link.Render(a.Link) + "\n")
		if body := RenderBody(a.Body, p.width); body != "" {
			b.WriteString("\n" + body + "\n")
		}
	}

	if _, err := io.WriteString(p.out, b.String()); err != nil {
		return fmt.Errorf("failed to write news: %w", err)
	}
	return nil
}
