package argparse

import (
	"fmt"
	"strconv"
)

// Kind tags the variant held by a Token.
type Kind int

const (
	// Argument is a literal positional argument.
	Argument Kind = iota
	// Option is a recognized flag, with or without a value.
	Option
	// UnknownLongFlag is a "--name" that matched no declared flag.
	UnknownLongFlag
	// UnknownShortFlag is a character in a "-xyz" cluster that matched no
	// declared flag.
	UnknownShortFlag
)

func (k Kind) String() string {
	switch k {
	case Argument:
		return "Argument"
	case Option:
		return "Option"
	case UnknownLongFlag:
		return "UnknownLongFlag"
	case UnknownShortFlag:
		return "UnknownShortFlag"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is one classified unit of a parsed command line.
//
// Which fields are meaningful depends on Kind:
//
//	Argument          Text
//	Option            Flag, Value, HasValue
//	UnknownLongFlag   Text (name without "--" and without "=value")
//	UnknownShortFlag  Short
//
// Option tokens hold a copy of the matched Flag, so they stay valid
// independently of the table that produced them.
type Token struct {
	Kind     Kind
	Text     string
	Short    rune
	Flag     Flag
	Value    string
	HasValue bool
}

// NewArgument returns an Argument token.
func NewArgument(text string) Token {
	return Token{Kind: Argument, Text: text}
}

// NewOption returns an Option token without a value.
func NewOption(f Flag) Token {
	return Token{Kind: Option, Flag: f}
}

// NewOptionValue returns an Option token carrying value.
func NewOptionValue(f Flag, value string) Token {
	return Token{Kind: Option, Flag: f, Value: value, HasValue: true}
}

// NewUnknownLong returns an UnknownLongFlag token.
func NewUnknownLong(name string) Token {
	return Token{Kind: UnknownLongFlag, Text: name}
}

// NewUnknownShort returns an UnknownShortFlag token.
func NewUnknownShort(r rune) Token {
	return Token{Kind: UnknownShortFlag, Short: r}
}

// Is reports whether t is an Option token for the flag identified by id.
func (t Token) Is(id string) bool {
	return t.Kind == Option && t.Flag.ID == id
}

// Spelling renders the token the way a user would have typed it. It is
// meant for error messages.
func (t Token) Spelling() string {
	switch t.Kind {
	case Argument:
		return t.Text
	case UnknownLongFlag:
		return "--" + t.Text
	case UnknownShortFlag:
		return "-" + string(t.Short)
	case Option:
		if t.Flag.Long != "" {
			return "--" + t.Flag.Long
		}
		return "-" + string(t.Flag.Short)
	}
	return ""
}

func (t Token) String() string {
	switch t.Kind {
	case Argument:
		return fmt.Sprintf("Argument(%q)", t.Text)
	case Option:
		if t.HasValue {
			return fmt.Sprintf("Option(%s, %q)", t.Flag.ID, t.Value)
		}
		return fmt.Sprintf("Option(%s)", t.Flag.ID)
	case UnknownLongFlag:
		return fmt.Sprintf("UnknownLongFlag(%q)", t.Text)
	case UnknownShortFlag:
		return fmt.Sprintf("UnknownShortFlag(%q)", t.Short)
	}
	return t.Kind.String()
}
