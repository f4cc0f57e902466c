package service

import (
	"context"
	"fmt"
	"time"

	"progress-tracker/internal/config"
	"progress-tracker/internal/constants"
	"progress-tracker/internal/domain"
	"progress-tracker/internal/loader"
	"progress-tracker/internal/progress"
	"progress-tracker/internal/repository"

	"github.com/rs/zerolog"
)

// EventLister reads the load-event log.
type EventLister interface {
	List(ctx context.Context, limit int) ([]domain.LoadEvent, error)
}

// View is one derivation: the visible records plus whole-dataset stats.
type View struct {
	Query   domain.Query
	Records []domain.Record
	Shown   int
	Total   int
	Stats   domain.Stats
	Loading bool
}

type Status struct {
	State       domain.LoadState
	Source      string
	RecordCount int
	LoadedAt    time.Time
}

type DashboardService struct {
	loader   *loader.Loader
	pipeline *progress.Pipeline
	events   EventLister
	logger   zerolog.Logger
}

func NewDashboardService(l *loader.Loader, cfg *config.Config, events *repository.LoadEventRepository, logger zerolog.Logger) *DashboardService {
	return New(l, progress.New(cfg.Locale), events, logger)
}

// New builds a service; events may be nil when no log is kept.
func New(l *loader.Loader, pipeline *progress.Pipeline, events EventLister, logger zerolog.Logger) *DashboardService {
	return &DashboardService{loader: l, pipeline: pipeline, events: events, logger: logger}
}

// View recomputes the visible records and stats from scratch. While the
// dataset is loading it operates on the empty dataset.
func (s *DashboardService) View(ctx context.Context, q domain.Query) View {
	snap := s.loader.Snapshot()
	records := s.pipeline.Derive(snap.Records, q)

	zerolog.Ctx(ctx).Debug().
		Str("search", q.Search).
		Str("status", string(q.Status)).
		Str("sort", string(q.Sort)).
		Int("shown", len(records)).
		Int("total", len(snap.Records)).
		Msg("view derived")

	return View{
		Query:   q,
		Records: records,
		Shown:   len(records),
		Total:   len(snap.Records),
		Stats:   progress.ComputeStats(snap.Records),
		Loading: snap.State == domain.StateLoading,
	}
}

// ParseQuery validates raw control values.
func (s *DashboardService) ParseQuery(search, status, sort string) (domain.Query, error) {
	f, err := domain.ParseStatusFilter(status)
	if err != nil {
		return domain.Query{}, err
	}
	o, err := domain.ParseSortOption(sort)
	if err != nil {
		return domain.Query{}, err
	}
	return domain.Query{Search: search, Status: f, Sort: o}, nil
}

// LenientQuery maps unknown control values to their defaults.
func (s *DashboardService) LenientQuery(search, status, sort string) domain.Query {
	f, _ := domain.ParseStatusFilter(status)
	o, _ := domain.ParseSortOption(sort)
	return domain.Query{Search: search, Status: f, Sort: o}
}

func (s *DashboardService) Stats() (domain.Stats, bool) {
	snap := s.loader.Snapshot()
	return progress.ComputeStats(snap.Records), snap.State == domain.StateLoading
}

func (s *DashboardService) Status() Status {
	snap := s.loader.Snapshot()
	return Status{
		State:       snap.State,
		Source:      snap.Source,
		RecordCount: len(snap.Records),
		LoadedAt:    snap.LoadedAt,
	}
}

// Records returns the full dataset as loaded.
func (s *DashboardService) Records() []domain.Record {
	return s.loader.Records()
}

func (s *DashboardService) LoadEvents(ctx context.Context, limit int) ([]domain.LoadEvent, error) {
	if s.events == nil {
		return []domain.LoadEvent{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if limit <= 0 {
		limit = constants.DefaultLoadEventLimit
	}
	if limit > constants.MaxLoadEventLimit {
		limit = constants.MaxLoadEventLimit
	}

	events, err := s.events.List(ctx, limit)
	if err != nil {
		s.logger.Error().Err(err).Int("limit", limit).Msg("failed to list load events")
		return nil, fmt.Errorf("failed to list load events: %w", err)
	}
	return events, nil
}
