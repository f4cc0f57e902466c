package progress

import (
	"strings"

	"progress-tracker/internal/domain"
)

// MatchesSearch reports whether needle occurs in the record's name or email,
// ignoring case. An empty needle matches every record.
func MatchesSearch(r domain.Record, needle string) bool {
	if needle == "" {
		return true
	}
	needle = strings.ToLower(needle)
	return strings.Contains(strings.ToLower(r.Name), needle) ||
		strings.Contains(strings.ToLower(r.Email), needle)
}

func MatchesStatus(r domain.Record, f domain.StatusFilter) bool {
	switch f {
	case domain.FilterCompleted:
		return r.Completed()
	case domain.FilterPending:
		return !r.Completed()
	default:
		return true
	}
}

// Filter returns the records passing both predicates, in input order.
func Filter(records []domain.Record, search string, status domain.StatusFilter) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if MatchesSearch(r, search) && MatchesStatus(r, status) {
			out = append(out, r)
		}
	}
	return out
}
