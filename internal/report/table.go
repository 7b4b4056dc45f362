// Package report prints the mirror status table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/specialistvlad/milcheck/internal/status"
)

var headers = [...]string{
	"State", "Url", "Protocol", "Country", "Completion %", "Delay h:m", "Avg dur s", "Dev dur s", "Score",
}

// column alignment, true for right-aligned
var rightAligned = [...]bool{true, false, false, false, true, true, true, true, true}

const columns = len(headers)

// Printer writes status tables to one output.
type Printer struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	palette  Palette
}

// NewPrinter creates a Printer for out. Colour support is detected from out
// and the environment.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{out: out, renderer: r, palette: PaletteFor(r.ColorProfile())}
}

// NewPrinterWithProfile creates a Printer with a fixed colour profile.
func NewPrinterWithProfile(out io.Writer, profile termenv.Profile) *Printer {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(profile)
	return &Printer{out: out, renderer: r, palette: PaletteFor(profile)}
}

// Print writes one row per state, preceded by a header and followed by a
// blank line.
func (p *Printer) Print(states []status.State) error {
	rows := make([][columns]string, len(states))
	for i, st := range states {
		rows[i] = cells(st)
	}
	widths := columnWidths(rows)

	var b strings.Builder
	bold := p.renderer.NewStyle().Bold(true)

	header := make([]string, columns)
	for i, h := range headers {
		header[i] = pad(h, widths[i], rightAligned[i])
	}
	b.WriteString(bold.Render(strings.Join(header, " ")))
	b.WriteByte('\n')

	for i, st := range states {
		if st.Kind == status.NotFound {
			label := bold.Foreground(p.palette.Orange).Render(pad(st.Kind.Label(), widths[0], true))
			b.WriteString(label + " " + st.Server + "\n")
			continue
		}

		styles := p.cellStyles(st)
		line := make([]string, columns)
		for c := range columns {
			text := pad(rows[i][c], widths[c], rightAligned[c])
			if styles[c] != nil {
				text = styles[c].Render(text)
			}
			line[c] = text
		}
		b.WriteString(strings.Join(line, " "))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	_, err := io.WriteString(p.out, b.String())
	if err != nil {
		return fmt.Errorf("failed to write status table: %w", err)
	}
	return nil
}

func cells(st status.State) [columns]string {
	if st.Kind == status.NotFound {
		return [columns]string{st.Kind.Label(), st.Server}
	}
	m := st.Mirror
	return [columns]string{
		st.Kind.Label(),
		m.URL,
		m.Protocol,
		m.Country,
		m.CompletionText(),
		m.DelayText(),
		m.DurationAvgText(),
		m.DurationStddevText(),
		m.ScoreText(),
	}
}

func columnWidths(rows [][columns]string) [columns]int {
	var widths [columns]int
	for c, h := range headers {
		widths[c] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for c, cell := range row {
			widths[c] = max(widths[c], lipgloss.Width(cell))
		}
	}
	return widths
}

// cellStyles returns the style of every column of a found mirror; nil means
// the cell is printed plain.
func (p *Printer) cellStyles(st status.State) [columns]*lipgloss.Style {
	var styles [columns]*lipgloss.Style

	stateColor := p.palette.Green
	if st.Kind == status.OutOfSync {
		stateColor = p.palette.Red
	}
	stateStyle := p.renderer.NewStyle().Bold(true).Foreground(stateColor)
	styles[0] = &stateStyle

	if c, ok := p.level(completionLevel(st.Mirror)); ok {
		styles[4] = p.fg(c)
	}
	if c, ok := p.level(delayLevel(st.Mirror)); ok {
		styles[5] = p.fg(c)
	}
	if c, ok := p.level(scoreLevel(st.Mirror)); ok {
		styles[8] = p.fg(c)
	}
	return styles
}

func (p *Printer) fg(c lipgloss.Color) *lipgloss.Style {
	s := p.renderer.NewStyle().Foreground(c)
	return &s
}

func (p *Printer) level(l Level) (lipgloss.Color, bool) {
	switch l {
	case Warning:
		return p.palette.Orange, true
	case Critical:
		return p.palette.Red, true
	}
	return "", false
}
