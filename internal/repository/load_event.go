package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"progress-tracker/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// LoadEventRepository is the diagnostic log of dataset load attempts.
type LoadEventRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewLoadEventRepository(sqlDB *sql.DB, logger zerolog.Logger) *LoadEventRepository {
	return &LoadEventRepository{
		db:     sqlDB,
		logger: logger,
	}
}

const insertLoadEvent = `
INSERT INTO load_events (id, source, status, record_count, error, duration_ms, loaded_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

const listLoadEvents = `
SELECT id, source, status, record_count, error, duration_ms, loaded_at
FROM load_events
ORDER BY loaded_at DESC, id
LIMIT ?`

func (r *LoadEventRepository) Record(ctx context.Context, event domain.LoadEvent) error {
	id := event.ID
	if id == "" {
		var err error
		id, err = gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
	}

	loadedAt := event.LoadedAt
	if loadedAt.IsZero() {
		loadedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, insertLoadEvent,
		id,
		event.Source,
		event.Status,
		int64(event.RecordCount),
		event.Error,
		event.Duration.Milliseconds(),
		loadedAt.UTC(),
	)
	if err != nil {
		r.logger.Error().Err(err).Str("source", event.Source).Msg("failed to insert load event")
		return fmt.Errorf("failed to insert load event: %w", err)
	}

	r.logger.Debug().Str("id", id).Str("status", event.Status).Msg("load event recorded")
	return nil
}

// List returns the most recent events first.
func (r *LoadEventRepository) List(ctx context.Context, limit int) ([]domain.LoadEvent, error) {
	rows, err := r.db.QueryContext(ctx, listLoadEvents, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list load events: %w", err)
	}
	defer rows.Close()

	result := []domain.LoadEvent{}
	for rows.Next() {
		var (
			e          domain.LoadEvent
			count      int64
			durationMs int64
		)
		if err := rows.Scan(&e.ID, &e.Source, &e.Status, &count, &e.Error, &durationMs, &e.LoadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan load event: %w", err)
		}
		e.RecordCount = int(count)
		e.Duration = time.Duration(durationMs) * time.Millisecond
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate load events: %w", err)
	}
	return result, nil
}
