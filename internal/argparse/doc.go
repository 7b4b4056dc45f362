/*
Package argparse turns a raw argument vector into a stream of classified
tokens, given a caller-declared table of flags.

The grammar is a compact POSIX/GNU hybrid:

	-h               short flag
	-hvL             clustered short flags
	-n5, -n-5        glued value for a value-taking short flag
	--news           long flag
	--news=5         attached long value
	--news 5         separate value, fused by the normalizer
	-                literal positional argument
	--               end of options; everything after is positional

Parsing happens in two passes. Tokenize classifies each argument on its own,
and Normalize reattaches a separately supplied value to the value-taking flag
immediately before it.

The package never fails. Unknown flags and stray positionals come back as
ordinary tokens, and deciding what counts as a usage error is left to the
caller.
*/
package argparse
