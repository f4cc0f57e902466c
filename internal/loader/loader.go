package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"progress-tracker/internal/api"
	"progress-tracker/internal/config"
	"progress-tracker/internal/constants"
	"progress-tracker/internal/domain"
	"progress-tracker/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type Fetcher interface {
	FetchRecords(ctx context.Context, url string) ([]domain.Record, error)
}

type Recorder interface {
	Record(ctx context.Context, event domain.LoadEvent) error
}

// Snapshot is a consistent view of the loader at one instant.
type Snapshot struct {
	State    domain.LoadState
	Source   string
	Records  []domain.Record
	LoadedAt time.Time
	Err      error
}

// Loader fetches the dataset exactly once. Failures leave it ready with an
// empty dataset; there is no retry.
type Loader struct {
	source   string
	fetcher  Fetcher
	recorder Recorder
	logger   zerolog.Logger

	once sync.Once
	done chan struct{}

	mu       sync.RWMutex
	state    domain.LoadState
	records  []domain.Record
	loadedAt time.Time
	err      error
}

func New(cfg *config.Config, client *api.SourceClient, events *repository.LoadEventRepository, logger zerolog.Logger) *Loader {
	return NewWithSource(cfg.DataSource, client, events, logger)
}

// NewWithSource builds a loader for source. recorder may be nil.
func NewWithSource(source string, fetcher Fetcher, recorder Recorder, logger zerolog.Logger) *Loader {
	return &Loader{
		source:   source,
		fetcher:  fetcher,
		recorder: recorder,
		logger:   logger.With().Str("component", "loader").Logger(),
		done:     make(chan struct{}),
		state:    domain.StateLoading,
		records:  []domain.Record{},
	}
}

// Start loads in the background and returns immediately.
func (l *Loader) Start() {
	g := new(errgroup.Group)
	g.Go(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), constants.SourceFetchTimeout)
		defer cancel()
		return l.Load(ctx)
	})

	go func() {
		if err := g.Wait(); err != nil {
			l.logger.Warn().Err(err).Msg("continuing with empty dataset")
		}
	}()
}

// Load performs the single fetch, or waits for the one already running.
// The returned error is diagnostic only: the loader is ready either way.
func (l *Loader) Load(ctx context.Context) error {
	l.once.Do(func() {
		l.load(ctx)
	})
	<-l.done
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

func (l *Loader) load(ctx context.Context) {
	defer close(l.done)

	start := time.Now()
	l.logger.Info().Str("source", l.source).Msg("loading dataset")

	records, err := l.fetch(ctx)
	duration := time.Since(start)

	event := domain.LoadEvent{
		Source:   l.source,
		Duration: duration,
		LoadedAt: time.Now(),
	}

	l.mu.Lock()
	l.state = domain.StateReady
	l.loadedAt = event.LoadedAt
	if err != nil {
		l.err = err
		l.records = []domain.Record{}
	} else {
		l.records = records
	}
	l.mu.Unlock()

	if err != nil {
		event.Status = domain.LoadStatusError
		event.Error = err.Error()
		l.logger.Error().Err(err).Str("source", l.source).Dur("duration", duration).Msg("error loading data")
	} else {
		event.Status = domain.LoadStatusOK
		event.RecordCount = len(records)
		l.logger.Info().
			Str("source", l.source).
			Int("records", len(records)).
			Dur("duration", duration).
			Msg("dataset loaded")
	}

	if l.recorder == nil {
		return
	}
	recCtx, cancel := context.WithTimeout(context.Background(), constants.DatabaseTimeout)
	defer cancel()
	if err := l.recorder.Record(recCtx, event); err != nil {
		l.logger.Warn().Err(err).Msg("failed to record load event")
	}
}

func (l *Loader) fetch(ctx context.Context) ([]domain.Record, error) {
	if isRemote(l.source) {
		if l.fetcher == nil {
			return nil, fmt.Errorf("no fetcher configured for %s", l.source)
		}
		records, err := l.fetcher.FetchRecords(ctx, l.source)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", l.source, err)
		}
		return nonNil(records), nil
	}

	data, err := os.ReadFile(l.source)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", l.source, err)
	}
	var records []domain.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", l.source, err)
	}
	return nonNil(records), nil
}

// Wait blocks until the load finished or ctx ends.
func (l *Loader) Wait(ctx context.Context) error {
	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loader) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Snapshot{
		State:    l.state,
		Source:   l.source,
		Records:  l.records,
		LoadedAt: l.loadedAt,
		Err:      l.err,
	}
}

// Records returns the loaded dataset. Callers must treat it as read-only.
func (l *Loader) Records() []domain.Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.records
}

func (l *Loader) State() domain.LoadState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

func (l *Loader) Source() string {
	return l.source
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// JSON null decodes to a nil slice; keep the empty-dataset shape.
func nonNil(records []domain.Record) []domain.Record {
	if records == nil {
		return []domain.Record{}
	}
	return records
}
