package server

import (
	"time"

	"progress-tracker/internal/domain"
)

type ViewRequest struct {
	Search string `json:"search"`
	Status string `json:"status"`
	Sort   string `json:"sort"`
}

type ViewResponse struct {
	Records []domain.Record `json:"records"`
	Shown   int             `json:"shown"`
	Total   int             `json:"total"`
	Stats   domain.Stats    `json:"stats"`
	Status  string          `json:"status"`
	Sort    string          `json:"sort"`
	Loading bool            `json:"loading"`
}

type StatsRequest struct{}

type StatsResponse struct {
	Stats   domain.Stats `json:"stats"`
	Loading bool         `json:"loading"`
}

type StatusRequest struct{}

type StatusResponse struct {
	State       string     `json:"state"`
	Source      string     `json:"source"`
	RecordCount int        `json:"record_count"`
	LoadedAt    *time.Time `json:"loaded_at,omitempty"`
}

type ListLoadEventsRequest struct {
	Limit int `json:"limit"`
}

type LoadEvent struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Status      string    `json:"status"`
	RecordCount int       `json:"record_count"`
	Error       string    `json:"error,omitempty"`
	DurationMs  int64     `json:"duration_ms"`
	LoadedAt    time.Time `json:"loaded_at"`
}

type ListLoadEventsResponse struct {
	Events []LoadEvent `json:"events"`
}
