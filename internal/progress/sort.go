package progress

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"progress-tracker/internal/domain"
)

type comparator func(a, b domain.Record) int

// Sorter orders records for one derivation. It owns a collator, which is
// stateful, so a Sorter must not be shared between goroutines.
type Sorter struct {
	coll *collate.Collator
}

func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{coll: collate.New(tag)}
}

func (s *Sorter) compareNames(a, b domain.Record) int {
	return s.coll.CompareString(a.Name, b.Name)
}

func (s *Sorter) primary(opt domain.SortOption) comparator {
	switch opt {
	case domain.SortNameAsc:
		return s.compareNames
	case domain.SortNameDesc:
		return func(a, b domain.Record) int { return s.compareNames(b, a) }
	case domain.SortBadgesAsc:
		return func(a, b domain.Record) int { return cmp.Compare(a.BadgeCount.Int(), b.BadgeCount.Int()) }
	case domain.SortGamesAsc:
		return func(a, b domain.Record) int { return cmp.Compare(a.GameCount.Int(), b.GameCount.Int()) }
	case domain.SortGamesDesc:
		return func(a, b domain.Record) int { return cmp.Compare(b.GameCount.Int(), a.GameCount.Int()) }
	case domain.SortStatusCompletedFirst:
		return func(a, b domain.Record) int { return cmp.Compare(statusRank(b), statusRank(a)) }
	case domain.SortStatusPendingFirst:
		return func(a, b domain.Record) int { return cmp.Compare(statusRank(a), statusRank(b)) }
	default:
		return func(a, b domain.Record) int { return cmp.Compare(b.BadgeCount.Int(), a.BadgeCount.Int()) }
	}
}

func statusRank(r domain.Record) int {
	if r.Completed() {
		return 1
	}
	return 0
}

// Compare orders a before b under opt, breaking primary ties by name
// ascending.
func (s *Sorter) Compare(opt domain.SortOption, a, b domain.Record) int {
	if c := s.primary(opt)(a, b); c != 0 {
		return c
	}
	return s.compareNames(a, b)
}

// Sort orders records in place. Records equal under both keys keep their
// relative order.
func (s *Sorter) Sort(records []domain.Record, opt domain.SortOption) {
	primary := s.primary(opt)
	slices.SortStableFunc(records, func(a, b domain.Record) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		return s.compareNames(a, b)
	})
}
