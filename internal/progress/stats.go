package progress

import "progress-tracker/internal/domain"

// ComputeStats counts the whole dataset; it ignores any view controls.
func ComputeStats(records []domain.Record) domain.Stats {
	completed := 0
	for _, r := range records {
		if r.Completed() {
			completed++
		}
	}
	return domain.Stats{
		Total:     len(records),
		Completed: completed,
		Pending:   len(records) - completed,
	}
}
