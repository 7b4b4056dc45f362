package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/specialistvlad/milcheck/internal/app"
	"github.com/specialistvlad/milcheck/internal/argparse"
	"github.com/specialistvlad/milcheck/internal/buildinfo"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(binary, format string, args ...any) *ExitError {
	msg := fmt.Sprintf(format, args...)
	return &ExitError{Code: 1, Message: fmt.Sprintf("%s, run %s --help", msg, binary)}
}

// printUsage writes the help text.
func printUsage(out io.Writer, binary string) {
	fmt.Fprintf(out, `%s %s
%s
%s

USAGE:
    %s [FLAGS]

FLAGS:
    -h, --help       Prints this message
    -v, --version    Prints version information
    -L, --license    Prints license information
    -n, --news [N]   Prints the N latest Arch Linux news, all of them without N
    -d, --debug      Prints debug logs on stderr
`, buildinfo.Name, buildinfo.Version, buildinfo.Author, buildinfo.Description, binary)
}

// Parse processes the full argument vector, program path included. It
// returns a populated Config, a boolean indicating if the program should exit
// cleanly, or an ExitError.
func Parse(argv []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	parser := argparse.New(argv).Help().Version().License().News().Debug()
	binary := parser.BinaryName()

	cfg := app.Config{Interactive: true}
	for _, tok := range parser.Parse() {
		switch tok.Kind {
		case argparse.UnknownLongFlag, argparse.UnknownShortFlag:
			return nil, false, usageError(binary, "unknown option %q", tok.Spelling())
		case argparse.Argument:
			return nil, false, usageError(binary, "unexpected argument %q", tok.Spelling())
		}

		switch tok.Flag.ID {
		case "help":
			printUsage(output, binary)
			return nil, true, nil
		case "version":
			fmt.Fprintf(output, "%s %s\n", buildinfo.Name, buildinfo.Version)
			return nil, true, nil
		case "license":
			fmt.Fprintln(output, buildinfo.License)
			return nil, true, nil
		case "news":
			cfg.News = true
			cfg.NewsCount = 0
			if tok.HasValue {
				n, err := strconv.Atoi(tok.Value)
				if err != nil || n < 1 {
					return nil, false, usageError(binary, "invalid news count %q", tok.Value)
				}
				cfg.NewsCount = n
			}
		case "debug":
			cfg.LogLevel = "debug"
		}
	}
	slog.Debug("Arguments parsed successfully.", "news", cfg.News, "count", cfg.NewsCount)

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
