package web

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jkorri/pagelens/internal/app"
	"github.com/jkorri/pagelens/internal/charts"
	"github.com/jkorri/pagelens/internal/freq"
	"github.com/jkorri/pagelens/internal/images"
	"github.com/jkorri/pagelens/internal/metrics"
	"github.com/jkorri/pagelens/internal/report"
)

type viewOption struct {
	Value    string
	Label    string
	Selected bool
}

type indexData struct {
	URL   string
	TopN  int
	Views []viewOption
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		URL:  r.URL.Query().Get("url"),
		TopN: s.app.Config().TopN,
	}
	selected := r.URL.Query().Get("view")
	for _, v := range charts.Views {
		data.Views = append(data.Views, viewOption{
			Value:    string(v),
			Label:    v.Label(),
			Selected: string(v) == selected,
		})
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		log.Error().Err(err).Msg("render index")
	}
}

// handleAnalyze is the single failure boundary of the cycle: any error
// from fetch to render becomes exactly one message page, and no partial
// chart output is written before the cycle succeeds.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rawURL := q.Get("url")

	view, ok := charts.ParseView(q.Get("view"))
	if !ok {
		metrics.AnalyzeFailuresTotal.WithLabelValues("selection").Inc()
		s.renderError(w, http.StatusBadRequest, app.ErrNoSelection)
		return
	}

	if view == charts.ViewImages {
		s.renderGallery(w, r, rawURL)
		return
	}

	analysis, err := s.app.Analyze(r.Context(), app.Request{URL: rawURL, View: view})
	if err != nil {
		s.renderError(w, statusFor(err), err)
		return
	}

	// The funnel divides by the full top-20 sum even when a smaller
	// top-N is displayed.
	chart, err := charts.ForView(view, chartTitle(analysis), analysis.Top, analysis.Table.TopN(freq.DefaultTopN))
	if err != nil {
		s.renderError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chart.Render(w); err != nil {
		log.Error().Err(err).Str("view", string(view)).Msg("render chart")
		return
	}
	metrics.ChartsRenderedTotal.WithLabelValues(string(view)).Inc()
}

type galleryItem struct {
	URL     string
	Failed  bool
	Error   string
	DataURI template.URL
}

type galleryData struct {
	URL   string
	Title string
	Items []galleryItem
}

func (s *Server) renderGallery(w http.ResponseWriter, r *http.Request, rawURL string) {
	items, err := s.app.Gallery(r.Context(), rawURL)
	if err != nil {
		s.renderError(w, statusFor(err), err)
		return
	}

	data := galleryData{URL: rawURL, Title: rawURL}
	for _, it := range items {
		gi := galleryItem{URL: it.URL}
		if it.Err != nil {
			gi.Failed = true
			gi.Error = it.Err.Error()
		} else {
			gi.DataURI = dataURI(it)
		}
		data.Items = append(data.Items, gi)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := galleryTmpl.Execute(w, data); err != nil {
		log.Error().Err(err).Msg("render gallery")
	}
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")

	analysis, err := s.app.Analyze(r.Context(), app.Request{URL: rawURL})
	if err != nil {
		s.renderError(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="pagelens-report.pdf"`)
	if err := report.WritePDF(w, analysis.Title, analysis.URL, analysis.Top, analysis.Table.Sum()); err != nil {
		log.Error().Err(err).Msg("write pdf")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) renderError(w http.ResponseWriter, status int, err error) {
	log.Warn().Err(err).Msg("cycle failed")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = errorTmpl.Execute(w, struct{ Message string }{Message: app.UserMessage(err)})
}

func statusFor(err error) int {
	if errors.Is(err, app.ErrNoURL) || errors.Is(err, app.ErrNoSelection) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

func chartTitle(a *app.Analysis) string {
	if a.Title != "" {
		return a.Title
	}
	return a.URL
}

// dataURI inlines image bytes so the gallery page needs no second round
// of requests to render.
func dataURI(it images.Item) template.URL {
	ct := it.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	return template.URL(fmt.Sprintf("data:%s;base64,%s", ct, base64.StdEncoding.EncodeToString(it.Data)))
}
