package argparse

import (
	"strings"
	"unicode/utf8"
)

// Tokenize classifies args, left to right, against table. args must not
// include the program path.
//
// Once "--" has been seen every later argument is emitted as an Argument.
// Any "--" is consumed and never emitted.
func Tokenize(args []string, table *FlagTable) []Token {
	tokens := make([]Token, 0, len(args))
	acceptOpt := true

	for _, arg := range args {
		switch {
		case arg == "--":
			acceptOpt = false
		case arg == "-":
			tokens = append(tokens, NewArgument(arg))
		case acceptOpt && len(arg) > 2 && strings.HasPrefix(arg, "--"):
			tokens = append(tokens, tokenizeLong(arg[2:], table))
		case acceptOpt && len(arg) > 1 && strings.HasPrefix(arg, "-"):
			tokens = tokenizeCluster(arg[1:], table, tokens)
		default:
			tokens = append(tokens, NewArgument(arg))
		}
	}

	return tokens
}

// tokenizeLong handles the text after "--". An empty "=value" is dropped.
func tokenizeLong(body string, table *FlagTable) Token {
	name, value, _ := strings.Cut(body, "=")

	flag, ok := table.LookupLong(name)
	if !ok {
		return NewUnknownLong(name)
	}
	if !flag.TakesValue || value == "" {
		return NewOption(flag)
	}
	return NewOptionValue(flag, value)
}

// tokenizeCluster handles the text after a single "-". A value-taking flag
// swallows the rest of the cluster verbatim, so "-f-h" is one token.
func tokenizeCluster(cluster string, table *FlagTable, tokens []Token) []Token {
	for i := 0; i < len(cluster); {
		r, size := utf8.DecodeRuneInString(cluster[i:])
		i += size

		flag, ok := table.LookupShort(r)
		if !ok {
			tokens = append(tokens, NewUnknownShort(r))
			continue
		}
		if !flag.TakesValue {
			tokens = append(tokens, NewOption(flag))
			continue
		}

		rest := cluster[i:]
		if rest == "" {
			return append(tokens, NewOption(flag))
		}
		return append(tokens, NewOptionValue(flag, rest))
	}
	return tokens
}
