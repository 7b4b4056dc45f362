package status

import (
	"fmt"
	"strconv"
)

// Delay is a sync lag, truncated to whole minutes.
type Delay struct {
	Hours   int
	Minutes int
}

// Mirror is the display view of a MirrorURL. Nil pointers are metrics the
// service did not report.
type Mirror struct {
	URL            string
	Protocol       string
	Country        string
	Completion     *float64 // percent, 0-100
	Delay          *Delay
	DurationAvg    *float64
	DurationStddev *float64
	Score          *float64
}

// NewMirror converts a JSON entry to its display view.
func NewMirror(u *MirrorURL) Mirror {
	m := Mirror{
		URL:            u.URL,
		Protocol:       u.Protocol,
		Country:        u.Country,
		DurationAvg:    u.DurationAvg,
		DurationStddev: u.DurationStddev,
		Score:          u.Score,
	}
	if u.CompletionPct != nil {
		pct := *u.CompletionPct * 100
		m.Completion = &pct
	}
	if u.Delay != nil {
		d := *u.Delay
		m.Delay = &Delay{Hours: d / 3600, Minutes: d % 3600 / 60}
	}
	return m
}

// CompletionText renders completion with one decimal, or none at 100%.
func (m Mirror) CompletionText() string {
	if m.Completion == nil {
		return ""
	}
	if *m.Completion == 100 {
		return "100"
	}
	return strconv.FormatFloat(*m.Completion, 'f', 1, 64)
}

// DelayText renders the delay as h:mm.
func (m Mirror) DelayText() string {
	if m.Delay == nil {
		return ""
	}
	return fmt.Sprintf("%d:%02d", m.Delay.Hours, m.Delay.Minutes)
}

func (m Mirror) DurationAvgText() string {
	return formatOptional(m.DurationAvg, 2)
}

func (m Mirror) DurationStddevText() string {
	return formatOptional(m.DurationStddev, 2)
}

func (m Mirror) ScoreText() string {
	return formatOptional(m.Score, 1)
}

func formatOptional(v *float64, prec int) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', prec, 64)
}
