package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"

	"progress-tracker/internal/config"
	"progress-tracker/internal/domain"
	"progress-tracker/internal/service"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

type filterLink struct {
	Label  string
	Href   string
	Active bool
}

type sortChoice struct {
	Value  string
	Label  string
	Active bool
}

type row struct {
	Name       string
	Email      string
	Badges     string
	Games      string
	Completed  bool
	ProfileURL string
}

type page struct {
	Title   string
	Loading bool
	Stats   domain.Stats
	Search  string
	Status  string
	Filters []filterLink
	Sorts   []sortChoice
	Rows    []row
	Shown   int
	Total   int
}

// DashboardHandler renders the progress table and serves the raw dataset.
type DashboardHandler struct {
	svc    *service.DashboardService
	title  string
	logger zerolog.Logger
}

func NewDashboardHandler(svc *service.DashboardService, cfg *config.Config, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, title: cfg.Title, logger: logger}
}

func (h *DashboardHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Dashboard)
	mux.HandleFunc("GET /data.json", h.Data)
}

// Dashboard never reports control errors: unknown values fall back to
// their defaults.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := h.svc.LenientQuery(params.Get("q"), params.Get("status"), params.Get("sort"))
	v := h.svc.View(r.Context(), q)

	p := page{
		Title:   h.title,
		Loading: v.Loading,
		Stats:   v.Stats,
		Search:  q.Search,
		Status:  string(q.Status),
		Shown:   v.Shown,
		Total:   v.Total,
		Rows:    make([]row, 0, len(v.Records)),
	}

	for _, f := range domain.StatusFilters {
		p.Filters = append(p.Filters, filterLink{
			Label:  f.Label(),
			Href:   "/?" + encodeQuery(q.Search, f, q.Sort),
			Active: f == q.Status,
		})
	}
	for _, o := range domain.SortOptions {
		p.Sorts = append(p.Sorts, sortChoice{Value: string(o), Label: o.Label(), Active: o == q.Sort})
	}
	for _, rec := range v.Records {
		p.Rows = append(p.Rows, row{
			Name:       rec.Name,
			Email:      rec.Email,
			Badges:     rec.BadgeCount.String(),
			Games:      rec.GameCount.String(),
			Completed:  rec.Completed(),
			ProfileURL: rec.ProfileURL,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, p); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to render dashboard")
	}
}

// Data serves the loaded records at the well-known dataset path.
func (h *DashboardHandler) Data(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.svc.Records()); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode dataset")
	}
}

func encodeQuery(search string, status domain.StatusFilter, sort domain.SortOption) string {
	v := url.Values{}
	if search != "" {
		v.Set("q", search)
	}
	v.Set("status", string(status))
	v.Set("sort", string(sort))
	return v.Encode()
}
