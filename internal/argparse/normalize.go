package argparse

// Normalize fuses a value-taking Option that has no value with the Argument
// immediately after it. It reads tokens once, front to back, and returns a
// new slice; tokens is not modified.
//
// A value-taking Option followed by anything other than an Argument keeps
// HasValue false, meaning the flag was given without a value.
func Normalize(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Kind == Option && tok.Flag.TakesValue && !tok.HasValue && i+1 < len(tokens) {
			if next := tokens[i+1]; next.Kind == Argument {
				out = append(out, NewOptionValue(tok.Flag, next.Text))
				i++
				continue
			}
		}
		out = append(out, tok)
	}

	return out
}
