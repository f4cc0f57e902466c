package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownStatusFilter = errors.New("unknown status filter")
	ErrUnknownSortOption   = errors.New("unknown sort option")
)

type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterCompleted StatusFilter = "completed"
	FilterPending   StatusFilter = "pending"
)

var StatusFilters = []StatusFilter{FilterAll, FilterCompleted, FilterPending}

// ParseStatusFilter maps a control value to a filter. Empty means FilterAll.
func ParseStatusFilter(s string) (StatusFilter, error) {
	if s == "" {
		return FilterAll, nil
	}
	for _, f := range StatusFilters {
		if string(f) == s {
			return f, nil
		}
	}
	return FilterAll, fmt.Errorf("%w: %q", ErrUnknownStatusFilter, s)
}

func (f StatusFilter) Label() string {
	switch f {
	case FilterCompleted:
		return "Completed"
	case FilterPending:
		return "Pending"
	default:
		return "All"
	}
}

type SortOption string

const (
	SortNameAsc              SortOption = "name-asc"
	SortNameDesc             SortOption = "name-desc"
	SortBadgesAsc            SortOption = "badges-asc"
	SortBadgesDesc           SortOption = "badges-desc"
	SortGamesAsc             SortOption = "games-asc"
	SortGamesDesc            SortOption = "games-desc"
	SortStatusCompletedFirst SortOption = "status-completed-first"
	SortStatusPendingFirst   SortOption = "status-pending-first"
)

const DefaultSort = SortBadgesDesc

var SortOptions = []SortOption{
	SortNameAsc,
	SortNameDesc,
	SortBadgesAsc,
	SortBadgesDesc,
	SortGamesAsc,
	SortGamesDesc,
	SortStatusCompletedFirst,
	SortStatusPendingFirst,
}

// ParseSortOption maps a control value to a sort option. Empty means DefaultSort.
func ParseSortOption(s string) (SortOption, error) {
	if s == "" {
		return DefaultSort, nil
	}
	for _, o := range SortOptions {
		if string(o) == s {
			return o, nil
		}
	}
	return DefaultSort, fmt.Errorf("%w: %q", ErrUnknownSortOption, s)
}

func (o SortOption) Label() string {
	switch o {
	case SortNameAsc:
		return "Name (A-Z)"
	case SortNameDesc:
		return "Name (Z-A)"
	case SortBadgesAsc:
		return "Badges (low to high)"
	case SortBadgesDesc:
		return "Badges (high to low)"
	case SortGamesAsc:
		return "Games (low to high)"
	case SortGamesDesc:
		return "Games (high to low)"
	case SortStatusCompletedFirst:
		return "Completed first"
	case SortStatusPendingFirst:
		return "In progress first"
	default:
		return string(o)
	}
}

// Query is the view state: search text plus the two controls.
type Query struct {
	Search string
	Status StatusFilter
	Sort   SortOption
}

func DefaultQuery() Query {
	return Query{Status: FilterAll, Sort: DefaultSort}
}
