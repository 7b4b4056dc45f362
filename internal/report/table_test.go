package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/specialistvlad/milcheck/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func testStates() []status.State {
	return []status.State{
		{
			Kind:   status.Synced,
			Server: "https://fast.example/arch/",
			Mirror: status.Mirror{
				URL: "https://fast.example/arch/", Protocol: "https", Country: "Germany",
				Completion: ptr(100.0), Delay: &status.Delay{Minutes: 12},
				DurationAvg: ptr(0.12), DurationStddev: ptr(0.5), Score: ptr(0.6),
			},
		},
		{
			Kind:   status.OutOfSync,
			Server: "https://late.example/arch/",
			Mirror: status.Mirror{
				URL: "https://late.example/arch/", Protocol: "http", Country: "France",
				Completion: ptr(96.7), Delay: &status.Delay{Hours: 2, Minutes: 3},
				DurationAvg: ptr(1.5), DurationStddev: ptr(0.25), Score: ptr(3.3),
			},
		},
		{
			Kind:   status.NotFound,
			Server: "https://a-much-longer-unknown.example/archlinux/",
		},
	}
}

func TestPrinter_Layout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewPrinterWithProfile(&buf, termenv.Ascii).Print(testStates()))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 6, "header, three rows, blank line, trailing newline")
	assert.Equal(t, "", lines[4])

	urlWidth := len("https://a-much-longer-unknown.example/archlinux/")
	expectedHeader := "       State " + "Url" + strings.Repeat(" ", urlWidth-3) +
		" Protocol Country Completion % Delay h:m Avg dur s Dev dur s Score"
	assert.Equal(t, expectedHeader, lines[0])

	expectedSynced := "          Ok " + "https://fast.example/arch/" + strings.Repeat(" ", urlWidth-26) +
		" https    Germany          100      0:12      0.12      0.50   0.6"
	assert.Equal(t, expectedSynced, lines[1])

	assert.True(t, strings.HasPrefix(lines[2], "Out of sync! https://late.example/arch/"))
	assert.True(t, strings.HasSuffix(lines[2], "96.7      2:03      1.50      0.25   3.3"))
	assert.Equal(t, "  Not found! https://a-much-longer-unknown.example/archlinux/", lines[3])
}

func TestPrinter_Colours(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewPrinterWithProfile(&buf, termenv.TrueColor).Print(testStates()))

	out := buf.String()
	assert.Contains(t, out, "\x1b[", "styled output contains escape sequences")
	assert.Contains(t, out, "Out of sync!")
}

func TestPaletteFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, trueColorPalette, PaletteFor(termenv.TrueColor))
	assert.Equal(t, ansiPalette, PaletteFor(termenv.ANSI256))
	assert.Equal(t, ansiPalette, PaletteFor(termenv.Ascii))
}

func TestLevels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mirror   status.Mirror
		level    func(status.Mirror) Level
		expected Level
	}{
		{"complete", status.Mirror{Completion: ptr(100.0)}, completionLevel, Normal},
		{"nearly complete", status.Mirror{Completion: ptr(97.0)}, completionLevel, Warning},
		{"incomplete", status.Mirror{Completion: ptr(80.0)}, completionLevel, Critical},
		{"no completion", status.Mirror{}, completionLevel, Normal},
		{"short delay", status.Mirror{Delay: &status.Delay{Minutes: 30}}, delayLevel, Normal},
		{"medium delay", status.Mirror{Delay: &status.Delay{Minutes: 31}}, delayLevel, Warning},
		{"one hour", status.Mirror{Delay: &status.Delay{Hours: 1}}, delayLevel, Warning},
		{"over an hour", status.Mirror{Delay: &status.Delay{Hours: 1, Minutes: 5}}, delayLevel, Critical},
		{"one hour ten", status.Mirror{Delay: &status.Delay{Hours: 1, Minutes: 10}}, delayLevel, Critical},
		{"one hour forty-five", status.Mirror{Delay: &status.Delay{Hours: 1, Minutes: 45}}, delayLevel, Critical},
		{"two hours exactly", status.Mirror{Delay: &status.Delay{Hours: 2}}, delayLevel, Critical},
		{"good score", status.Mirror{Score: ptr(1.0)}, scoreLevel, Normal},
		{"fair score", status.Mirror{Score: ptr(1.5)}, scoreLevel, Warning},
		{"bad score", status.Mirror{Score: ptr(2.5)}, scoreLevel, Critical},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.level(tc.mirror))
		})
	}
}
