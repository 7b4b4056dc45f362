package progress

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// ErrAborted is returned by Stop when the user pressed an exit key.
var ErrAborted = errors.New("aborted by user")

// Indicator reports the current step of a run.
type Indicator interface {
	// Status replaces the displayed step. It never blocks.
	Status(msg string)
	// Stop clears the indicator. It returns ErrAborted if the user quit.
	Stop() error
}

// Options configures Start.
type Options struct {
	Out    io.Writer
	In     io.Reader
	Logger *slog.Logger
	// Interactive forces the spinner on or off. When nil the spinner runs
	// only if Out is a terminal.
	Interactive *bool
}

// Start launches an indicator. The returned context is cancelled when the
// user aborts.
func Start(ctx context.Context, opts Options) (Indicator, context.Context) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if !interactive(opts) {
		return &quiet{logger: logger}, ctx
	}
	return startSpinner(ctx, opts, logger)
}

func interactive(opts Options) bool {
	if opts.Interactive != nil {
		return *opts.Interactive
	}
	f, ok := opts.Out.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

// quiet is used when no terminal is attached.
type quiet struct {
	logger *slog.Logger
}

func (q *quiet) Status(msg string) {
	q.logger.Debug("Run status.", "status", msg)
}

func (q *quiet) Stop() error {
	return nil
}

// Spinner is the terminal indicator.
type Spinner struct {
	logger  *slog.Logger
	program *tea.Program
	cancel  context.CancelFunc

	mu      sync.Mutex
	stopped bool
	updates chan string
	fwdDone chan struct{}
	runDone chan error
	err     error
}

func startSpinner(ctx context.Context, opts Options, logger *slog.Logger) (*Spinner, context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	teaOpts := []tea.ProgramOption{tea.WithoutSignalHandler()}
	if opts.Out != nil {
		teaOpts = append(teaOpts, tea.WithOutput(opts.Out))
	}
	if opts.In != nil {
		teaOpts = append(teaOpts, tea.WithInput(opts.In))
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	s := &Spinner{
		logger:  logger,
		program: tea.NewProgram(newModel(lipgloss.NewRenderer(out)), teaOpts...),
		cancel:  cancel,
		updates: make(chan string, 16),
		fwdDone: make(chan struct{}),
		runDone: make(chan error, 1),
	}

	go s.forward()
	go s.run()
	return s, ctx
}

func (s *Spinner) forward() {
	defer close(s.fwdDone)
	for msg := range s.updates {
		s.program.Send(statusMsg(msg))
	}
}

func (s *Spinner) run() {
	final, err := s.program.Run()
	if m, ok := final.(model); ok && m.aborted {
		s.logger.Debug("Progress indicator aborted by user.")
		s.cancel()
		err = ErrAborted
	}
	s.runDone <- err
}

func (s *Spinner) Status(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.logger.Debug("Run status.", "status", msg)
	select {
	case s.updates <- msg:
	default:
		// A newer status will replace it shortly.
	}
}

// Stop is safe to call more than once.
func (s *Spinner) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return s.err
	}
	s.stopped = true
	close(s.updates)
	<-s.fwdDone

	s.program.Quit()
	s.err = <-s.runDone
	s.cancel()
	return s.err
}
