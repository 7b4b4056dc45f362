package progress

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// frameRate matches the speed the eye reads as a smooth chomp.
const frameRate = 40 * time.Millisecond

var exitKeys = map[string]bool{"q": true, "esc": true, "ctrl+c": true}

type statusMsg string

type model struct {
	spinner  spinner.Model
	status   string
	aborted  bool
	quitting bool
	italic   lipgloss.Style
}

func newModel(r *lipgloss.Renderer) model {
	return model{
		spinner: spinner.New(spinner.WithSpinner(pacman(r))),
		italic:  r.NewStyle().Italic(true),
	}
}

// pacman builds the frames of a yellow pac-man eating a row of four dots.
func pacman(r *lipgloss.Renderer) spinner.Spinner {
	yellow := r.NewStyle().Foreground(lipgloss.Color("3"))
	frame := func(pos int, mouth string) string {
		return strings.Repeat(" ", pos) + yellow.Render(mouth) + strings.Repeat("-", 4-pos)
	}

	frames := []string{" ----", frame(0, "c"), frame(0, "C")}
	for pos := 1; pos <= 4; pos++ {
		frames = append(frames, frame(pos, "C"), frame(pos, "c"))
		if pos < 4 {
			frames = append(frames, frame(pos, "C"))
		}
	}
	return spinner.Spinner{Frames: frames, FPS: frameRate}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if exitKeys[msg.String()] {
			m.aborted = true
			m.quitting = true
			return m, tea.Quit
		}
	case statusMsg:
		m.status = string(msg)
	case tea.QuitMsg:
		m.quitting = true
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	return m.spinner.View() + "  " + m.italic.Render(m.status)
}
