package argparse

import (
	"strings"

	"github.com/specialistvlad/milcheck/internal/buildinfo"
)

// Parser owns a flag table and a captured argument list.
type Parser struct {
	flags  FlagTable
	args   []string
	binary string
}

// New builds a parser over argv, the full process argument vector with the
// program path first. argv is copied, so the caller may reuse its slice.
func New(argv []string) *Parser {
	p := &Parser{binary: buildinfo.Name}
	if len(argv) == 0 {
		return p
	}

	p.binary = argv[0][strings.LastIndexByte(argv[0], '/')+1:]
	p.args = make([]string, len(argv)-1)
	copy(p.args, argv[1:])
	return p
}

// BinaryName is the program name as invoked, without its directory.
func (p *Parser) BinaryName() string {
	return p.binary
}

// Args returns a copy of the captured arguments, program path excluded.
func (p *Parser) Args() []string {
	out := make([]string, len(p.args))
	copy(out, p.args)
	return out
}

// Flags returns the declared flags in registration order.
func (p *Parser) Flags() []Flag {
	return p.flags.Flags()
}

// Flag declares a flag. Use a zero short or an empty long to omit that form.
func (p *Parser) Flag(id string, short rune, long string, takesValue bool) *Parser {
	p.flags.Register(Flag{ID: id, Short: short, Long: long, TakesValue: takesValue})
	return p
}

// Help declares -h, --help.
func (p *Parser) Help() *Parser {
	return p.Flag("help", 'h', "help", false)
}

// Version declares -v, --version.
func (p *Parser) Version() *Parser {
	return p.Flag("version", 'v', "version", false)
}

// License declares -L, --license.
func (p *Parser) License() *Parser {
	return p.Flag("license", 'L', "license", false)
}

// News declares -n, --news[=N].
func (p *Parser) News() *Parser {
	return p.Flag("news", 'n', "news", true)
}

// Debug declares -d, --debug.
func (p *Parser) Debug() *Parser {
	return p.Flag("debug", 'd', "debug", false)
}

// Parse tokenizes and normalizes the captured arguments. It has no side
// effects and returns the same tokens every time it is called.
func (p *Parser) Parse() []Token {
	return Normalize(Tokenize(p.args, &p.flags))
}
