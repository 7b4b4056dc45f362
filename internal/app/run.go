package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/milcheck/internal/ctxlog"
	"github.com/specialistvlad/milcheck/internal/fetch"
	"github.com/specialistvlad/milcheck/internal/mirrorlist"
	"github.com/specialistvlad/milcheck/internal/news"
	"github.com/specialistvlad/milcheck/internal/progress"
	"github.com/specialistvlad/milcheck/internal/report"
	"github.com/specialistvlad/milcheck/internal/status"
)

// ErrAborted is returned by Run when the user quit from the spinner.
var ErrAborted = progress.ErrAborted

// Run executes the mode selected in the configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "news", a.config.News)
	defer a.client.Close()

	interactive := a.config.Interactive
	opts := progress.Options{Out: a.outW, In: a.inR, Logger: a.logger}
	if !interactive {
		opts.Interactive = &interactive
	}
	ind, ctx := progress.Start(ctx, opts)

	var render func() error
	var err error
	if a.config.News {
		render, err = a.collectNews(ctx, ind)
	} else {
		render, err = a.collectMirrors(ctx, ind)
	}

	// The spinner must be gone before anything is printed.
	if stopErr := ind.Stop(); stopErr != nil {
		return stopErr
	}
	if err != nil {
		return err
	}
	if err := render(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) collectMirrors(ctx context.Context, ind progress.Indicator) (func() error, error) {
	ind.Status("parsing local mirrorlist")
	servers, err := mirrorlist.Load(a.config.MirrorlistPath)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Mirrorlist parsed.", "path", a.config.MirrorlistPath, "servers", len(servers))

	ind.Status("fetching mirror status list")
	page := a.client.Get(ctx, a.config.StatusURL)
	jsonJob := fetch.Start(func() (*status.Report, error) {
		var r status.Report
		if err := a.client.JSON(ctx, a.config.StatusJSONURL, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
	html, htmlErr := page.Wait()
	statusReport, jsonErr := jsonJob.Wait()
	if err := errors.Join(htmlErr, jsonErr); err != nil {
		return nil, err
	}

	ind.Status("deserialize json data")
	a.logger.Debug("Mirror status received.", "mirrors", len(statusReport.URLs), "last_check", statusReport.LastCheck)

	ind.Status("web scraping")
	scrape, err := status.ParseStatusPage(html)
	if err != nil {
		return nil, err
	}

	ind.Status("build data for rendering")
	states, err := status.Classify(ctx, servers, statusReport, scrape)
	if err != nil {
		return nil, err
	}

	return func() error {
		return report.NewPrinter(a.outW).Print(states)
	}, nil
}

func (a *App) collectNews(ctx context.Context, ind progress.Indicator) (func() error, error) {
	ind.Status("fetching news")
	page, err := a.client.Text(ctx, a.config.ArchURL)
	if err != nil {
		return nil, err
	}

	articles, err := news.Parse(page, a.config.ArchURL)
	if err != nil {
		return nil, err
	}
	if n := a.config.NewsCount; n > 0 && n < len(articles) {
		articles = articles[:n]
	}
	a.logger.Debug("News parsed.", "articles", len(articles))

	return func() error {
		return news.NewPrinter(a.outW, a.textWidth()).Print(a.config.ArchURL, articles)
	}, nil
}
