package app

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/specialistvlad/milcheck/internal/mirrorlist"
)

// Default endpoints.
const (
	DefaultStatusURL     = "https://archlinux.org/mirrors/status/"
	DefaultStatusJSONURL = "https://archlinux.org/mirrors/status/json/"
	DefaultArchURL       = "https://archlinux.org"
	DefaultTimeout       = 15 * time.Second
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	MirrorlistPath string
	StatusURL      string // HTML status page
	StatusJSONURL  string
	ArchURL        string // homepage carrying the news block

	News      bool
	NewsCount int // 0 shows every article

	LogFormat   string
	LogLevel    string
	Timeout     time.Duration
	Interactive bool // show the spinner when stdout is a terminal
}

// NewConfig fills in defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.MirrorlistPath == "" {
		cfg.MirrorlistPath = mirrorlist.DefaultPath
	}
	if cfg.StatusURL == "" {
		cfg.StatusURL = DefaultStatusURL
	}
	if cfg.StatusJSONURL == "" {
		cfg.StatusJSONURL = DefaultStatusJSONURL
	}
	if cfg.ArchURL == "" {
		cfg.ArchURL = DefaultArchURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	if cfg.NewsCount < 0 {
		return nil, errors.New("NewsCount cannot be negative")
	}
	if cfg.Timeout < 0 {
		return nil, errors.New("Timeout cannot be negative")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LogLevel %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid LogFormat %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	for name, raw := range map[string]string{
		"StatusURL":     cfg.StatusURL,
		"StatusJSONURL": cfg.StatusJSONURL,
		"ArchURL":       cfg.ArchURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
		}
	}

	return &cfg, nil
}
