// Package app wires the fetch, extract, segment and freq stages into one
// request-driven analysis cycle.
package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jkorri/pagelens/internal/charts"
	"github.com/jkorri/pagelens/internal/extract"
	"github.com/jkorri/pagelens/internal/fetch"
	"github.com/jkorri/pagelens/internal/freq"
	"github.com/jkorri/pagelens/internal/images"
	"github.com/jkorri/pagelens/internal/metrics"
	"github.com/jkorri/pagelens/internal/segment"
)

// Request is the per-interaction input: the URL to analyze and the chosen
// view. It is an explicit value so no state lives between interactions.
type Request struct {
	URL  string
	View charts.View
}

// Analysis is everything one cycle produces for rendering.
type Analysis struct {
	URL   string
	Title string
	Table *freq.Table
	Top   []freq.Entry
}

// App holds the long-lived collaborators. The segmenter dictionary is the
// only expensive construction, so App is built once and reused; everything
// per-interaction flows through Analyze and Gallery arguments.
type App struct {
	cfg       Config
	pages     *fetch.Client
	imgClient *fetch.Client
	tokenizer segment.Tokenizer
}

// New constructs the application, loading the segmentation dictionary.
func New(cfg Config) (*App, error) {
	tok, err := segment.NewGseTokenizer()
	if err != nil {
		return nil, fmt.Errorf("load segmenter: %w", err)
	}
	return NewWithTokenizer(cfg, tok), nil
}

// NewWithTokenizer is New with an injected tokenizer, for tests that need
// deterministic segmentation without the dictionary.
func NewWithTokenizer(cfg Config, tok segment.Tokenizer) *App {
	return &App{
		cfg: cfg,
		pages: &fetch.Client{
			UserAgent:         cfg.UserAgent,
			PerRequestTimeout: cfg.RequestTimeout,
			MaxBodyBytes:      cfg.MaxPageBytes,
		},
		imgClient: &fetch.Client{
			UserAgent:         cfg.UserAgent,
			PerRequestTimeout: cfg.RequestTimeout,
			MaxBodyBytes:      cfg.MaxImageBytes,
		},
		tokenizer: tok,
	}
}

// Config returns the active configuration.
func (a *App) Config() Config { return a.cfg }

// Analyze runs one fetch → extract → normalize → tokenize → aggregate
// cycle and returns the frequency table plus its top-N view. Everything is
// recomputed from the URL; nothing is cached between calls.
func (a *App) Analyze(ctx context.Context, req Request) (*Analysis, error) {
	rawURL := strings.TrimSpace(req.URL)
	if rawURL == "" {
		return nil, ErrNoURL
	}

	started := time.Now()
	body, err := a.pages.GetHTML(ctx, rawURL)
	if err != nil {
		metrics.AnalyzeFailuresTotal.WithLabelValues("network").Inc()
		return nil, &NetworkError{URL: rawURL, Err: err}
	}

	doc, err := extract.Parse(body)
	if err != nil {
		metrics.AnalyzeFailuresTotal.WithLabelValues("parse").Inc()
		return nil, &ParseError{URL: rawURL, Err: err}
	}

	tokens := segment.Tokenize(a.tokenizer, doc.Text)
	table := freq.Count(tokens)
	top := table.TopN(a.cfg.TopN)

	metrics.PagesAnalyzedTotal.Inc()
	log.Debug().
		Str("url", rawURL).
		Int("tokens", len(tokens)).
		Int("distinct", table.Len()).
		Dur("took", time.Since(started)).
		Msg("analyzed page")

	return &Analysis{URL: rawURL, Title: doc.Title, Table: table, Top: top}, nil
}

// Gallery fetches the page again and downloads every referenced image.
// Each interaction is an independent cycle, so the refetch is deliberate.
// Individual download failures are recorded on their items; only the page
// fetch itself can fail the call.
func (a *App) Gallery(ctx context.Context, rawURL string) ([]images.Item, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, ErrNoURL
	}

	body, err := a.pages.GetHTML(ctx, rawURL)
	if err != nil {
		metrics.AnalyzeFailuresTotal.WithLabelValues("network").Inc()
		return nil, &NetworkError{URL: rawURL, Err: err}
	}

	base, _ := url.Parse(rawURL)
	srcs, err := images.List(body, base)
	if err != nil {
		metrics.AnalyzeFailuresTotal.WithLabelValues("parse").Inc()
		return nil, &ParseError{URL: rawURL, Err: err}
	}

	items := images.Collect(ctx, a.imgClient, srcs)
	for _, it := range items {
		if it.Err != nil {
			metrics.ImagesFetchedTotal.WithLabelValues("error").Inc()
		} else {
			metrics.ImagesFetchedTotal.WithLabelValues("ok").Inc()
		}
	}
	return items, nil
}
