package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagTable_Lookup(t *testing.T) {
	t.Parallel()

	table := testTable(helpFlag, valueFlag, Flag{ID: "quiet", Long: "quiet"})

	f, ok := table.LookupShort('f')
	require.True(t, ok)
	assert.Equal(t, "flag", f.ID)

	f, ok = table.LookupLong("quiet")
	require.True(t, ok)
	assert.Equal(t, "quiet", f.ID)

	_, ok = table.LookupShort('q')
	assert.False(t, ok, "quiet has no short form")

	_, ok = table.LookupShort(0)
	assert.False(t, ok, "zero rune never matches")

	_, ok = table.LookupLong("")
	assert.False(t, ok, "empty name never matches")
}

func TestFlagTable_FirstRegistrationWins(t *testing.T) {
	t.Parallel()

	first := Flag{ID: "first", Short: 'x', Long: "dup"}
	second := Flag{ID: "second", Short: 'x', Long: "dup", TakesValue: true}
	table := testTable(first, second)

	f, ok := table.LookupShort('x')
	require.True(t, ok)
	assert.Equal(t, "first", f.ID)

	f, ok = table.LookupLong("dup")
	require.True(t, ok)
	assert.Equal(t, "first", f.ID)

	assert.Equal(t, 2, table.Len(), "duplicates are kept")

	got := Tokenize([]string{"-xy", "--dup=1"}, table)
	assert.Equal(t, []Token{NewOption(first), NewUnknownShort('y'), NewOption(first)}, got)
}

func TestFlagTable_FlagsIsACopy(t *testing.T) {
	t.Parallel()

	table := testTable(helpFlag)
	flags := table.Flags()
	flags[0].ID = "changed"

	f, _ := table.LookupShort('h')
	assert.Equal(t, "help", f.ID)
}

func TestToken_Spelling(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "--nope", NewUnknownLong("nope").Spelling())
	assert.Equal(t, "-x", NewUnknownShort('x').Spelling())
	assert.Equal(t, "stray", NewArgument("stray").Spelling())
	assert.Equal(t, "--help", NewOption(helpFlag).Spelling())
	assert.Equal(t, "-s", NewOption(Flag{ID: "s", Short: 's'}).Spelling())
}

func TestToken_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `Option(flag, "-h")`, NewOptionValue(valueFlag, "-h").String())
	assert.Equal(t, `Option(help)`, NewOption(helpFlag).String())
	assert.Equal(t, `UnknownShortFlag('n')`, NewUnknownShort('n').String())
	assert.Equal(t, `Argument("-")`, NewArgument("-").String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
