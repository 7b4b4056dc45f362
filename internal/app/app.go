package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/x/term"

	"github.com/specialistvlad/milcheck/internal/buildinfo"
	"github.com/specialistvlad/milcheck/internal/fetch"
	"github.com/specialistvlad/milcheck/internal/news"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	inR    io.Reader
	logger *slog.Logger
	config *Config
	client *fetch.Client
}

// Option customizes an App.
type Option func(*App)

// WithInput sets the reader watched for exit keys while the spinner runs.
func WithInput(r io.Reader) Option {
	return func(a *App) { a.inR = r }
}

// WithFetchOptions replaces the HTTP client settings, mostly for tests.
func WithFetchOptions(fo fetch.Options) Option {
	return func(a *App) { a.client = fetch.New(fo) }
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, opts ...Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	a := &App{outW: outW, logger: logger, config: cfg}
	for _, opt := range opts {
		opt(a)
	}
	if a.client == nil {
		a.client = fetch.New(fetch.Options{
			Timeout:   cfg.Timeout,
			Retries:   1,
			UserAgent: buildinfo.Name + "/" + buildinfo.Version,
		})
	}
	return a
}

// textWidth is the wrap width for news bodies.
func (a *App) textWidth() int {
	f, ok := a.outW.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return news.LineLength
	}
	w, _, err := term.GetSize(f.Fd())
	if err != nil || w <= 0 {
		return news.LineLength
	}
	return min(w, news.LineLength)
}
