package argparse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_BinaryName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		argv     []string
		expected string
	}{
		{name: "path is stripped", argv: []string{"path/to/bin", "-h"}, expected: "bin"},
		{name: "absolute path", argv: []string{"/usr/bin/milcheck"}, expected: "milcheck"},
		{name: "bare name", argv: []string{"mc"}, expected: "mc"},
		{name: "empty vector falls back to the packaged name", argv: []string{}, expected: "milcheck"},
		{name: "nil vector falls back to the packaged name", argv: nil, expected: "milcheck"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, New(tc.argv).BinaryName())
		})
	}
}

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	argv := []string{"milcheck", "-hL", "--news", "3", "-d", "extra"}
	p := New(argv).Help().Version().License().News().Debug()

	news := Flag{ID: "news", Short: 'n', Long: "news", TakesValue: true}
	expected := []Token{
		NewOption(Flag{ID: "help", Short: 'h', Long: "help"}),
		NewOption(Flag{ID: "license", Short: 'L', Long: "license"}),
		NewOptionValue(news, "3"),
		NewOption(Flag{ID: "debug", Short: 'd', Long: "debug"}),
		NewArgument("extra"),
	}

	require.Empty(t, cmp.Diff(expected, p.Parse()))
}

func TestParser_FusesSeparateValue(t *testing.T) {
	t.Parallel()

	p := New([]string{"bin", "--flag", "value"}).Flag("flag", 'f', "flag", true)
	require.Empty(t, cmp.Diff([]Token{NewOptionValue(valueFlag, "value")}, p.Parse()))
}

func TestParser_SeparateValueLooksLikeFlag(t *testing.T) {
	t.Parallel()

	p := New([]string{"bin", "--flag", "-h"}).Flag("flag", 'f', "flag", true).Help()
	require.Empty(t, cmp.Diff([]Token{NewOption(valueFlag), NewOption(helpFlag)}, p.Parse()))
}

func TestParser_ValueAfterEndOfOptions(t *testing.T) {
	t.Parallel()

	// "-h" after "--" is a literal, so it is taken as the value.
	p := New([]string{"bin", "--flag", "--", "-h"}).Flag("flag", 'f', "flag", true).Help()
	require.Empty(t, cmp.Diff([]Token{NewOptionValue(valueFlag, "-h")}, p.Parse()))
}

func TestParser_ParseIsRepeatable(t *testing.T) {
	t.Parallel()

	argv := []string{"bin", "-n", "2", "--bogus", "-x"}
	p := New(argv).Help().News()

	first := p.Parse()
	second := p.Parse()
	require.Empty(t, cmp.Diff(first, second))
	require.Len(t, first, 3)
}

func TestParser_CapturesArguments(t *testing.T) {
	t.Parallel()

	argv := []string{"bin", "-h"}
	p := New(argv).Help()
	argv[1] = "--bogus"

	require.Equal(t, []string{"-h"}, p.Args())
	require.True(t, p.Parse()[0].Is("help"))
}

func TestParser_Flags(t *testing.T) {
	t.Parallel()

	flags := New(nil).Help().News().Flags()
	require.Len(t, flags, 2)
	assert.Equal(t, "help", flags[0].ID)
	assert.Equal(t, "news", flags[1].ID)
	assert.True(t, flags[1].TakesValue)
}
