package report

import "github.com/specialistvlad/milcheck/internal/status"

// Level grades a metric for colouring.
type Level int

const (
	Normal Level = iota
	Warning
	Critical
)

func completionLevel(m status.Mirror) Level {
	switch {
	case m.Completion == nil:
		return Normal
	case *m.Completion < 95:
		return Critical
	case *m.Completion < 100:
		return Warning
	}
	return Normal
}

// delayLevel is critical past one hour and a warning past thirty minutes.
func delayLevel(m status.Mirror) Level {
	if m.Delay == nil {
		return Normal
	}
	minutes := m.Delay.Hours*60 + m.Delay.Minutes
	switch {
	case minutes > 60:
		return Critical
	case minutes > 30:
		return Warning
	}
	return Normal
}

func scoreLevel(m status.Mirror) Level {
	switch {
	case m.Score == nil:
		return Normal
	case *m.Score > 2:
		return Critical
	case *m.Score > 1:
		return Warning
	}
	return Normal
}
